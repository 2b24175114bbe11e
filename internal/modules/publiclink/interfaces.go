package publiclink

import (
	"context"

	"interviewdesk/internal/domain"
)

type PublicLinkRepository interface {
	CreateWithSnapshot(ctx context.Context, link *domain.PublicLink, slotIDs []string, allowList []string, fromStatus domain.BookingRequestStatus) error
	GetByPublicID(ctx context.Context, publicID string) (*domain.PublicLink, error)
	ExtendAllowList(ctx context.Context, linkID int64, identities []string) error
	AllowListSize(ctx context.Context, linkID int64) (int64, error)
	IsAllowed(ctx context.Context, linkID int64, identity string) (bool, error)
}

type BookingRequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
}

type SlotRepository interface {
	ListByRequest(ctx context.Context, requestID int64) ([]domain.Slot, error)
	ListAvailableForLink(ctx context.Context, publicLinkID int64) ([]domain.Slot, error)
}
