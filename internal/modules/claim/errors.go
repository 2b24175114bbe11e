package claim

import "errors"

var (
	ErrNotFound        = errors.New("booking or link not found")
	ErrLinkClosed      = errors.New("public link is closed")
	ErrNotAuthorized   = errors.New("identity is not on the allow-list")
	ErrAlreadyBooked   = errors.New("identity already holds a confirmed booking on this link")
	ErrSlotUnavailable = errors.New("slot is not available")
)
