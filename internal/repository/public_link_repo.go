package repository

import (
	"context"

	"interviewdesk/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PublicLinkRepository struct {
	db *gorm.DB
}

func NewPublicLinkRepository(db *gorm.DB) *PublicLinkRepository {
	return &PublicLinkRepository{db: db}
}

// CreateWithSnapshot persists the link, its slot snapshot, the initial
// allow-list and the publish transition of the backing request as one unit.
func (r *PublicLinkRepository) CreateWithSnapshot(ctx context.Context, link *domain.PublicLink, slotIDs []string, allowList []string, fromStatus domain.BookingRequestStatus) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(link).Error; err != nil {
			return err
		}
		for _, slotID := range slotIDs {
			ref := domain.PublicLinkSlot{PublicLinkID: link.ID, SlotID: slotID}
			if err := tx.Create(&ref).Error; err != nil {
				return err
			}
		}
		for _, identity := range allowList {
			entry := domain.AllowListEntry{PublicLinkID: link.ID, Identity: identity}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&entry).Error; err != nil {
				return err
			}
		}
		if fromStatus == domain.BookingRequestPublished {
			// already published by an earlier link, nothing to advance
			return nil
		}
		res := tx.Model(&domain.BookingRequest{}).
			Where("id = ? AND status = ?", link.BookingRequestID, string(fromStatus)).
			Update("status", string(domain.BookingRequestPublished))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}

func (r *PublicLinkRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.PublicLink, error) {
	var link domain.PublicLink
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// ExtendAllowList unions new identities into the allow-list. Duplicates are
// absorbed by the unique index; entries are never removed here.
func (r *PublicLinkRepository) ExtendAllowList(ctx context.Context, linkID int64, identities []string) error {
	for _, identity := range identities {
		entry := domain.AllowListEntry{PublicLinkID: linkID, Identity: identity}
		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&entry).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PublicLinkRepository) AllowListSize(ctx context.Context, linkID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.AllowListEntry{}).
		Where("public_link_id = ?", linkID).
		Count(&cnt).Error
	return cnt, err
}

// IsAllowed always reads current storage state, so an allow-list extension is
// visible to the next claim without any cache invalidation.
func (r *PublicLinkRepository) IsAllowed(ctx context.Context, linkID int64, identity string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.AllowListEntry{}).
		Where("public_link_id = ? AND identity = ?", linkID, identity).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *PublicLinkRepository) ContainsSlot(ctx context.Context, linkID int64, slotID string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.PublicLinkSlot{}).
		Where("public_link_id = ? AND slot_id = ?", linkID, slotID).
		Count(&cnt).Error
	return cnt > 0, err
}
