package availability

import "errors"

var (
	ErrNotFound      = errors.New("booking request not found")
	ErrNotInvited    = errors.New("interviewer is not invited to this booking request")
	ErrRequestClosed = errors.New("booking request no longer accepts availability")
	ErrValidation    = errors.New("invalid availability windows")
)
