package repository

import (
	"context"
	"time"

	"interviewdesk/internal/domain"

	"gorm.io/gorm"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// ReplaceForDate swaps the interviewer's windows for one date atomically.
// Resubmission replaces, never accumulates, which keeps retries idempotent.
func (r *AvailabilityRepository) ReplaceForDate(ctx context.Context, interviewerID, requestID int64, date time.Time, windows []domain.AvailabilityWindow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("interviewer_id = ? AND booking_request_id = ? AND date = ?", interviewerID, requestID, date).
			Delete(&domain.AvailabilityWindow{}).Error
		if err != nil {
			return err
		}
		for i := range windows {
			if err := tx.Create(&windows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AvailabilityRepository) ListByRequest(ctx context.Context, requestID int64) ([]domain.AvailabilityWindow, error) {
	var out []domain.AvailabilityWindow
	err := r.db.WithContext(ctx).
		Where("booking_request_id = ?", requestID).
		Order("interviewer_id ASC, start_time ASC").
		Find(&out).Error
	return out, err
}

// HasSubmissions reports whether any interviewer has submitted windows yet.
func (r *AvailabilityRepository) HasSubmissions(ctx context.Context, requestID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.AvailabilityWindow{}).
		Where("booking_request_id = ?", requestID).
		Count(&cnt).Error
	return cnt > 0, err
}
