package publiclink

import "errors"

var (
	ErrNotFound      = errors.New("public link not found")
	ErrRequestState  = errors.New("booking request cannot be published")
	ErrNoSlots       = errors.New("no materialized slots to publish")
	ErrUnknownSlot   = errors.New("slot does not belong to this booking request")
	ErrNotAuthorized = errors.New("identity is not on the allow-list")
)
