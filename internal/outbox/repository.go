package outbox

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FetchPending returns the oldest pending events up to limit. failed events
// are retried too, oldest first, until maxAttempts is exceeded.
func (r *Repository) FetchPending(ctx context.Context, limit, maxAttempts int) ([]Event, error) {
	var events []Event
	err := r.db.WithContext(ctx).
		Where("status IN ? AND attempts < ?", []string{string(StatusPending), string(StatusFailed)}, maxAttempts).
		Order("id ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *Repository) MarkDispatched(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":        string(StatusDispatched),
			"dispatched_at": now,
		}).Error
}

func (r *Repository) MarkFailed(ctx context.Context, id int64, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return r.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(StatusFailed),
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": msg,
		}).Error
}
