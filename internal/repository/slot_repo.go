package repository

import (
	"context"

	"interviewdesk/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SlotRepository struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// Upsert inserts slots, silently skipping IDs that already exist. Slot IDs
// are content-addressed, so re-materializing a request never duplicates and
// never resets the state of an already claimed slot.
func (r *SlotRepository) Upsert(ctx context.Context, slots []domain.Slot) error {
	if len(slots) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&slots).Error
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	var s domain.Slot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SlotRepository) ListByRequest(ctx context.Context, requestID int64) ([]domain.Slot, error) {
	var out []domain.Slot
	err := r.db.WithContext(ctx).
		Where("booking_request_id = ?", requestID).
		Order("start_time ASC, interviewer_id ASC").
		Find(&out).Error
	return out, err
}

// ListAvailableForLink returns the available subset of a link's snapshot.
func (r *SlotRepository) ListAvailableForLink(ctx context.Context, publicLinkID int64) ([]domain.Slot, error) {
	var out []domain.Slot
	err := r.db.WithContext(ctx).
		Joins("JOIN public_link_slots pls ON pls.slot_id = slots.id").
		Where("pls.public_link_id = ? AND slots.status = ?", publicLinkID, string(domain.SlotAvailable)).
		Order("slots.start_time ASC, slots.interviewer_id ASC").
		Find(&out).Error
	return out, err
}
