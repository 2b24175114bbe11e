package claim

import (
	"context"

	"interviewdesk/internal/domain"
)

// PublicLinkRepository is the gate's storage surface needed by claims.
type PublicLinkRepository interface {
	GetByPublicID(ctx context.Context, publicID string) (*domain.PublicLink, error)
	IsAllowed(ctx context.Context, linkID int64, identity string) (bool, error)
	ContainsSlot(ctx context.Context, linkID int64, slotID string) (bool, error)
}

type BookingRequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
}

// StudentBookingRepository owns the atomic claim/cancel transactions.
type StudentBookingRepository interface {
	CreateConfirmed(ctx context.Context, b *domain.StudentBooking) error
	Cancel(ctx context.Context, b *domain.StudentBooking, releaseSlot bool) error
	GetByID(ctx context.Context, id int64) (*domain.StudentBooking, error)
	GetConfirmedByIdentity(ctx context.Context, linkID int64, identity string) (*domain.StudentBooking, error)
	ListSince(ctx context.Context, sinceID int64, limit int) ([]domain.StudentBooking, error)
}
