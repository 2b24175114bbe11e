package interviewer

import "errors"

var (
	ErrNotFound   = errors.New("interviewer not found")
	ErrEmailTaken = errors.New("email is already registered")
	ErrValidation = errors.New("invalid interviewer")
	ErrBadStatus  = errors.New("unknown interviewer status")
)
