package repository

import (
	"context"
	"errors"

	"interviewdesk/internal/domain"

	"gorm.io/gorm"
)

// ErrInvalidTransition is returned when a status update would violate the
// booking request state machine.
var ErrInvalidTransition = errors.New("invalid booking request transition")

type BookingRequestRepository struct {
	db *gorm.DB
}

func NewBookingRequestRepository(db *gorm.DB) *BookingRequestRepository {
	return &BookingRequestRepository{db: db}
}

// Create inserts the request and its invite rows in one transaction.
func (r *BookingRequestRepository) Create(ctx context.Context, br *domain.BookingRequest, interviewerIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(br).Error; err != nil {
			return err
		}
		for _, id := range interviewerIDs {
			invite := domain.BookingRequestInvite{
				BookingRequestID: br.ID,
				InterviewerID:    id,
			}
			if err := tx.Create(&invite).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *BookingRequestRepository) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	var br domain.BookingRequest
	if err := r.db.WithContext(ctx).Preload("Invites").First(&br, id).Error; err != nil {
		return nil, err
	}
	return &br, nil
}

func (r *BookingRequestRepository) List(ctx context.Context) ([]domain.BookingRequest, error) {
	var out []domain.BookingRequest
	if err := r.db.WithContext(ctx).Preload("Invites").Order("id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus performs a guarded transition: the row is only touched when it
// is still in the expected state, so concurrent admin actions cannot skip
// steps of the state machine.
func (r *BookingRequestRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingRequestStatus) error {
	if !from.CanTransitionTo(to) {
		return ErrInvalidTransition
	}
	res := r.db.WithContext(ctx).
		Model(&domain.BookingRequest{}).
		Where("id = ? AND status = ?", id, string(from)).
		Update("status", string(to))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func (r *BookingRequestRepository) IsInvited(ctx context.Context, requestID, interviewerID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.BookingRequestInvite{}).
		Where("booking_request_id = ? AND interviewer_id = ?", requestID, interviewerID).
		Count(&cnt).Error
	return cnt > 0, err
}
