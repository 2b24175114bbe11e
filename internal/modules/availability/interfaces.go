package availability

import (
	"context"
	"time"

	"interviewdesk/internal/domain"
)

type BookingRequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	IsInvited(ctx context.Context, requestID, interviewerID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingRequestStatus) error
}

type AvailabilityRepository interface {
	ReplaceForDate(ctx context.Context, interviewerID, requestID int64, date time.Time, windows []domain.AvailabilityWindow) error
	ListByRequest(ctx context.Context, requestID int64) ([]domain.AvailabilityWindow, error)
}

type InterviewerRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Interviewer, error)
}
