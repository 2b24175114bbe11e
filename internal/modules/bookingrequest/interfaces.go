package bookingrequest

import (
	"context"

	"interviewdesk/internal/domain"
)

type BookingRequestRepository interface {
	Create(ctx context.Context, br *domain.BookingRequest, interviewerIDs []int64) error
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	List(ctx context.Context) ([]domain.BookingRequest, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingRequestStatus) error
}

type AvailabilityRepository interface {
	ListByRequest(ctx context.Context, requestID int64) ([]domain.AvailabilityWindow, error)
	HasSubmissions(ctx context.Context, requestID int64) (bool, error)
}

type SlotRepository interface {
	Upsert(ctx context.Context, slots []domain.Slot) error
	ListByRequest(ctx context.Context, requestID int64) ([]domain.Slot, error)
}

type InterviewerRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Interviewer, error)
}
