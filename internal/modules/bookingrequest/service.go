package bookingrequest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"interviewdesk/internal/domain"
	"interviewdesk/internal/repository"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	requests     BookingRequestRepository
	windows      AvailabilityRepository
	slots        SlotRepository
	interviewers InterviewerRepository

	defaultSlotDuration time.Duration
}

func NewService(requests BookingRequestRepository, windows AvailabilityRepository, slots SlotRepository, interviewers InterviewerRepository, defaultSlotDuration time.Duration) *Service {
	return &Service{
		requests:            requests,
		windows:             windows,
		slots:               slots,
		interviewers:        interviewers,
		defaultSlotDuration: defaultSlotDuration,
	}
}

// Create opens a booking request and invites the given interviewers. Every
// invitee must exist and be in an invitable status.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.BookingRequest, error) {
	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrValidation, req.Date)
	}

	found, err := s.interviewers.GetByIDs(ctx, req.InterviewerIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Interviewer, len(found))
	for _, iv := range found {
		byID[iv.ID] = iv
	}
	for _, id := range req.InterviewerIDs {
		iv, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: interviewer %d not found", ErrValidation, id)
		}
		if !iv.Status.Invitable() {
			return nil, fmt.Errorf("%w: interviewer %d is not invitable", ErrValidation, id)
		}
	}

	br := &domain.BookingRequest{
		Date:      date,
		DomainTag: req.DomainTag,
		Status:    domain.BookingRequestAwaitingAvailability,
	}
	if err := s.requests.Create(ctx, br, req.InterviewerIDs); err != nil {
		return nil, err
	}
	return s.requests.GetByID(ctx, br.ID)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	br, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return br, nil
}

func (s *Service) List(ctx context.Context) ([]domain.BookingRequest, error) {
	return s.requests.List(ctx)
}

// MaterializeSlots turns every submitted window into bookable slots. Slot
// IDs are derived from content, so calling this again after late window
// submissions only adds the new slots; claimed ones keep their state.
func (s *Service) MaterializeSlots(ctx context.Context, id int64, override *int) ([]domain.Slot, error) {
	br, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch br.Status {
	case domain.BookingRequestCollected, domain.BookingRequestPublished:
	default:
		return nil, ErrInvalidState
	}

	windows, err := s.windows.ListByRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return nil, ErrNoAvailability
	}

	dur := s.defaultSlotDuration
	if override != nil {
		dur = time.Duration(*override) * time.Minute
	}

	var slots []domain.Slot
	for _, w := range windows {
		slots = append(slots, sliceWindow(w, dur)...)
	}
	if err := s.slots.Upsert(ctx, slots); err != nil {
		return nil, err
	}
	return s.slots.ListByRequest(ctx, id)
}

func (s *Service) ListSlots(ctx context.Context, id int64) ([]domain.Slot, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return s.slots.ListByRequest(ctx, id)
}

// OverrideCollected force-advances a request whose invitees have gone quiet,
// so the admin can proceed with whatever windows came in.
func (s *Service) OverrideCollected(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	br, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	err = s.requests.UpdateStatus(ctx, id, br.Status, domain.BookingRequestCollected)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			return nil, ErrInvalidState
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// Close ends the request's lifecycle. Existing bookings stay readable;
// further claims are refused. Closing twice is a no-op.
func (s *Service) Close(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	br, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if br.Status == domain.BookingRequestClosed {
		return br, nil
	}
	err = s.requests.UpdateStatus(ctx, id, br.Status, domain.BookingRequestClosed)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			// Lost a race with another close.
			return s.Get(ctx, id)
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// sliceWindow cuts a window into fixed-size slots. A non-positive duration
// keeps the whole window as one slot; a trailing remainder shorter than the
// duration is dropped.
func sliceWindow(w domain.AvailabilityWindow, dur time.Duration) []domain.Slot {
	if dur <= 0 {
		return []domain.Slot{newSlot(w, w.StartTime, w.EndTime)}
	}
	var out []domain.Slot
	for cur := w.StartTime; !cur.Add(dur).After(w.EndTime); cur = cur.Add(dur) {
		out = append(out, newSlot(w, cur, cur.Add(dur)))
	}
	return out
}

func newSlot(w domain.AvailabilityWindow, start, end time.Time) domain.Slot {
	return domain.Slot{
		ID:               domain.NewSlotID(w.InterviewerID, start, end),
		BookingRequestID: w.BookingRequestID,
		InterviewerID:    w.InterviewerID,
		StartTime:        start,
		EndTime:          end,
		Status:           domain.SlotAvailable,
	}
}
