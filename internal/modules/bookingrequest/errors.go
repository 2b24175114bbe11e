package bookingrequest

import "errors"

var (
	ErrNotFound       = errors.New("booking request not found")
	ErrValidation     = errors.New("invalid booking request")
	ErrInvalidState   = errors.New("booking request is not in a valid state for this operation")
	ErrNoAvailability = errors.New("no availability windows submitted yet")
)
