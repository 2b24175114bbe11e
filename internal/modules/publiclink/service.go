package publiclink

import (
	"context"
	"errors"
	"fmt"

	"interviewdesk/internal/domain"
	"interviewdesk/internal/pkg/publicid"

	"gorm.io/gorm"
)

type Service struct {
	links    PublicLinkRepository
	requests BookingRequestRepository
	slots    SlotRepository
}

func NewService(links PublicLinkRepository, requests BookingRequestRepository, slots SlotRepository) *Service {
	return &Service{links: links, requests: requests, slots: slots}
}

// Create publishes a snapshot of the request's slots behind a fresh public
// ID. The backing request moves to published on the first link; later links
// share the same state. The slot set is frozen here, the allow-list is not.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.PublicLink, error) {
	request, err := s.requests.GetByID(ctx, req.BookingRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	switch request.Status {
	case domain.BookingRequestCollected, domain.BookingRequestPublished:
	default:
		return nil, ErrRequestState
	}

	materialized, err := s.slots.ListByRequest(ctx, req.BookingRequestID)
	if err != nil {
		return nil, err
	}
	if len(materialized) == 0 {
		return nil, ErrNoSlots
	}

	slotIDs := req.SlotIDs
	if len(slotIDs) == 0 {
		for _, slot := range materialized {
			slotIDs = append(slotIDs, slot.ID)
		}
	} else {
		known := make(map[string]struct{}, len(materialized))
		for _, slot := range materialized {
			known[slot.ID] = struct{}{}
		}
		for _, id := range slotIDs {
			if _, ok := known[id]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownSlot, id)
			}
		}
	}

	link := &domain.PublicLink{
		PublicID:         publicid.New(),
		BookingRequestID: req.BookingRequestID,
	}
	if err := s.links.CreateWithSnapshot(ctx, link, slotIDs, req.AllowList, request.Status); err != nil {
		return nil, err
	}
	return link, nil
}

// ExtendAllowList unions identities into the link's allow-list and returns
// the resulting size. The list only ever grows.
func (s *Service) ExtendAllowList(ctx context.Context, publicID string, identities []string) (int64, error) {
	link, err := s.getLink(ctx, publicID)
	if err != nil {
		return 0, err
	}
	if err := s.links.ExtendAllowList(ctx, link.ID, identities); err != nil {
		return 0, err
	}
	return s.links.AllowListSize(ctx, link.ID)
}

// ListAvailableSlots returns the link's still-claimable slots for an
// authorized identity. Reads stay open after the request closes so students
// can see their situation; only claims are gated on request status.
func (s *Service) ListAvailableSlots(ctx context.Context, publicID, identity string) ([]domain.Slot, error) {
	link, err := s.getLink(ctx, publicID)
	if err != nil {
		return nil, err
	}
	allowed, err := s.links.IsAllowed(ctx, link.ID, identity)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrNotAuthorized
	}
	return s.slots.ListAvailableForLink(ctx, link.ID)
}

func (s *Service) getLink(ctx context.Context, publicID string) (*domain.PublicLink, error) {
	link, err := s.links.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return link, nil
}
