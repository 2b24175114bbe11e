package claim

import (
	"context"
	"errors"
	"time"

	"interviewdesk/internal/domain"
	"interviewdesk/internal/lock"
	"interviewdesk/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const slotLockTTL = 10 * time.Second

type Service struct {
	links    PublicLinkRepository
	requests BookingRequestRepository
	bookings StudentBookingRepository
	locker   lock.Locker
}

// NewService wires the reservation ledger. locker may be nil; the database
// conditional update is the correctness guarantee either way.
func NewService(links PublicLinkRepository, requests BookingRequestRepository, bookings StudentBookingRepository, locker lock.Locker) *Service {
	return &Service{
		links:    links,
		requests: requests,
		bookings: bookings,
		locker:   locker,
	}
}

// ClaimSlot atomically reserves one slot for an authorized student identity.
// Preconditions are checked in a fixed order so each failure maps to one
// error kind; the check-and-transition itself happens inside the storage
// transaction, never under an in-memory lock held across external calls.
func (s *Service) ClaimSlot(ctx context.Context, publicID, slotID, identity string) (*domain.StudentBooking, error) {
	link, err := s.links.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	request, err := s.requests.GetByID(ctx, link.BookingRequestID)
	if err != nil {
		return nil, err
	}
	if !request.Status.AcceptsClaims() {
		return nil, ErrLinkClosed
	}

	allowed, err := s.links.IsAllowed(ctx, link.ID, identity)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrNotAuthorized
	}

	existing, err := s.bookings.GetConfirmedByIdentity(ctx, link.ID, identity)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		if existing.SlotID == slotID {
			// exact duplicate retry of the caller's own successful claim
			return existing, nil
		}
		return nil, ErrAlreadyBooked
	}

	inSet, err := s.links.ContainsSlot(ctx, link.ID, slotID)
	if err != nil {
		return nil, err
	}
	if !inSet {
		return nil, ErrSlotUnavailable
	}

	if s.locker != nil {
		locked, err := s.locker.Lock(ctx, "slot:"+slotID, slotLockTTL)
		if err != nil {
			return nil, err
		}
		if !locked {
			// another claim holds the slot right now; caller should
			// re-fetch the slot list and pick a different one
			return nil, ErrSlotUnavailable
		}
		defer func() {
			_ = s.locker.Unlock(ctx, "slot:"+slotID)
		}()
	}

	booking := &domain.StudentBooking{
		PublicLinkID:    link.ID,
		SlotID:          slotID,
		StudentIdentity: identity,
	}
	if err := s.bookings.CreateConfirmed(ctx, booking); err != nil {
		return nil, mapClaimError(err)
	}
	return booking, nil
}

// mapClaimError separates a lost race from genuine storage failure so the
// caller never retries on a broken store believing it lost the slot.
func mapClaimError(err error) error {
	if errors.Is(err, repository.ErrSlotNotAvailable) {
		return ErrSlotUnavailable
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		// partial unique index on (public_link_id, student_identity):
		// the same identity committed another claim concurrently
		return ErrAlreadyBooked
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyBooked
	}
	return err
}

// CancelBooking is admin-only and idempotent: cancelling an already
// cancelled booking returns its current state instead of failing.
func (s *Service) CancelBooking(ctx context.Context, bookingID int64, releaseSlot bool) (*domain.StudentBooking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if booking.Status == domain.StudentBookingCancelled {
		return booking, nil
	}

	if err := s.bookings.Cancel(ctx, booking, releaseSlot); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// a concurrent cancel won; report the state it produced
			return s.bookings.GetByID(ctx, bookingID)
		}
		return nil, err
	}
	return booking, nil
}

// ListBookings is the pull query for the main-sheet projection consumer.
func (s *Service) ListBookings(ctx context.Context, sinceID int64, limit int) ([]domain.StudentBooking, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.bookings.ListSince(ctx, sinceID, limit)
}
