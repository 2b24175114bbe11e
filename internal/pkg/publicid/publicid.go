package publicid

import (
	"strings"

	"github.com/google/uuid"
)

// New returns an unguessable identifier for public booking links. The value
// carries no meaning; only its unpredictability matters.
func New() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
