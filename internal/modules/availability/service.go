package availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"interviewdesk/internal/domain"
	"interviewdesk/internal/repository"

	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Service struct {
	requests     BookingRequestRepository
	windows      AvailabilityRepository
	interviewers InterviewerRepository
}

func NewService(requests BookingRequestRepository, windows AvailabilityRepository, interviewers InterviewerRepository) *Service {
	return &Service{requests: requests, windows: windows, interviewers: interviewers}
}

// Submit records the interviewer's offered windows for a booking request.
// A resubmission for a date replaces that date's prior windows. The first
// accepted submission advances the request to availability_collected.
func (s *Service) Submit(ctx context.Context, requestID, userID int64, req SubmitRequest) ([]domain.AvailabilityWindow, error) {
	interviewer, err := s.interviewers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInvited
		}
		return nil, err
	}
	if !interviewer.Status.Invitable() {
		return nil, ErrNotInvited
	}

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	switch request.Status {
	case domain.BookingRequestPublished, domain.BookingRequestClosed:
		return nil, ErrRequestClosed
	}

	invited, err := s.requests.IsInvited(ctx, requestID, interviewer.ID)
	if err != nil {
		return nil, err
	}
	if !invited {
		return nil, ErrNotInvited
	}

	byDate, err := parseWindows(interviewer.ID, requestID, req.Windows)
	if err != nil {
		return nil, err
	}

	var all []domain.AvailabilityWindow
	for date, windows := range byDate {
		if err := s.windows.ReplaceForDate(ctx, interviewer.ID, requestID, date, windows); err != nil {
			return nil, err
		}
		all = append(all, windows...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].StartTime.Before(all[j].StartTime) })

	// Best effort advance; a concurrent submission may have moved it already.
	if request.Status != domain.BookingRequestCollected {
		err = s.requests.UpdateStatus(ctx, requestID, request.Status, domain.BookingRequestCollected)
		if err != nil && !errors.Is(err, repository.ErrInvalidTransition) {
			return nil, err
		}
	}

	return all, nil
}

// ListByRequest returns every submitted window for a booking request,
// ordered by interviewer and start time.
func (s *Service) ListByRequest(ctx context.Context, requestID int64) ([]domain.AvailabilityWindow, error) {
	if _, err := s.requests.GetByID(ctx, requestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.windows.ListByRequest(ctx, requestID)
}

// parseWindows validates the inputs and groups them per date. Windows on the
// same date must be disjoint; touching endpoints are allowed.
func parseWindows(interviewerID, requestID int64, inputs []WindowInput) (map[time.Time][]domain.AvailabilityWindow, error) {
	byDate := make(map[time.Time][]domain.AvailabilityWindow)
	for _, in := range inputs {
		date, err := time.ParseInLocation(dateLayout, in.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("%w: bad date %q", ErrValidation, in.Date)
		}
		start, err := timeOnDate(date, in.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: bad start %q", ErrValidation, in.Start)
		}
		end, err := timeOnDate(date, in.End)
		if err != nil {
			return nil, fmt.Errorf("%w: bad end %q", ErrValidation, in.End)
		}
		if !end.After(start) {
			return nil, fmt.Errorf("%w: window %s-%s is empty", ErrValidation, in.Start, in.End)
		}
		byDate[date] = append(byDate[date], domain.AvailabilityWindow{
			InterviewerID:    interviewerID,
			BookingRequestID: requestID,
			Date:             date,
			StartTime:        start,
			EndTime:          end,
		})
	}

	for date, windows := range byDate {
		sort.Slice(windows, func(i, j int) bool { return windows[i].StartTime.Before(windows[j].StartTime) })
		for i := 1; i < len(windows); i++ {
			if windows[i].StartTime.Before(windows[i-1].EndTime) {
				return nil, fmt.Errorf("%w: overlapping windows on %s", ErrValidation, date.Format(dateLayout))
			}
		}
		byDate[date] = windows
	}
	return byDate, nil
}

func timeOnDate(date time.Time, hhmm string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, hhmm, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
