package repository

import (
	"context"
	"errors"
	"time"

	"interviewdesk/internal/domain"
	"interviewdesk/internal/outbox"

	"gorm.io/gorm"
)

// ErrSlotNotAvailable signals a lost race on the slot's conditional update.
var ErrSlotNotAvailable = errors.New("slot is not available")

type StudentBookingRepository struct {
	db *gorm.DB
}

func NewStudentBookingRepository(db *gorm.DB) *StudentBookingRepository {
	return &StudentBookingRepository{db: db}
}

// CreateConfirmed is the atomic core of the reservation ledger. In one
// transaction it compare-and-swaps the slot from available to confirmed,
// inserts the booking (guarded by the partial unique index on
// (public_link_id, student_identity) for confirmed rows) and appends the
// slot.confirmed outbox record. Any failure rolls the whole unit back, so a
// losing claimant never leaves an orphaned booking behind.
func (r *StudentBookingRepository) CreateConfirmed(ctx context.Context, b *domain.StudentBooking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Slot{}).
			Where("id = ? AND status = ?", b.SlotID, string(domain.SlotAvailable)).
			Update("status", string(domain.SlotConfirmed))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSlotNotAvailable
		}

		b.Status = domain.StudentBookingConfirmed
		b.ConfirmedAt = time.Now().UTC()
		if err := tx.Create(b).Error; err != nil {
			return err
		}

		ev, err := outbox.NewEvent(outbox.EventSlotConfirmed, outbox.BookingPayload{
			StudentBookingID: b.ID,
			SlotID:           b.SlotID,
			StudentIdentity:  b.StudentIdentity,
		})
		if err != nil {
			return err
		}
		return tx.Create(ev).Error
	})
}

// Cancel transitions the booking to cancelled and moves its slot back to
// available (releaseSlot) or to released, with the booking.cancelled outbox
// record in the same transaction. Callers must pass a still-confirmed
// booking; idempotence on repeated cancels is handled one level up.
func (r *StudentBookingRepository) Cancel(ctx context.Context, b *domain.StudentBooking, releaseSlot bool) error {
	slotStatus := domain.SlotReleased
	if releaseSlot {
		slotStatus = domain.SlotAvailable
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		res := tx.Model(&domain.StudentBooking{}).
			Where("id = ? AND status = ?", b.ID, string(domain.StudentBookingConfirmed)).
			Updates(map[string]any{
				"status":       string(domain.StudentBookingCancelled),
				"cancelled_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// lost a cancel/cancel race; the other admin action won
			return gorm.ErrRecordNotFound
		}

		err := tx.Model(&domain.Slot{}).
			Where("id = ? AND status = ?", b.SlotID, string(domain.SlotConfirmed)).
			Update("status", string(slotStatus)).Error
		if err != nil {
			return err
		}

		ev, err := outbox.NewEvent(outbox.EventBookingCancelled, outbox.BookingPayload{
			StudentBookingID: b.ID,
			SlotID:           b.SlotID,
			StudentIdentity:  b.StudentIdentity,
			SlotReleased:     releaseSlot,
		})
		if err != nil {
			return err
		}
		if err := tx.Create(ev).Error; err != nil {
			return err
		}

		b.Status = domain.StudentBookingCancelled
		b.CancelledAt = &now
		return nil
	})
}

func (r *StudentBookingRepository) GetByID(ctx context.Context, id int64) (*domain.StudentBooking, error) {
	var b domain.StudentBooking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// GetConfirmedByIdentity finds the identity's confirmed booking on a link,
// if any. At most one can exist by the partial unique index.
func (r *StudentBookingRepository) GetConfirmedByIdentity(ctx context.Context, linkID int64, identity string) (*domain.StudentBooking, error) {
	var b domain.StudentBooking
	err := r.db.WithContext(ctx).
		Where("public_link_id = ? AND student_identity = ? AND status = ?", linkID, identity, string(domain.StudentBookingConfirmed)).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListSince is the pull feed for the main-sheet projection: keyset-paginated
// on booking ID so the consumer can resume from its cursor.
func (r *StudentBookingRepository) ListSince(ctx context.Context, sinceID int64, limit int) ([]domain.StudentBooking, error) {
	var out []domain.StudentBooking
	err := r.db.WithContext(ctx).
		Where("id > ?", sinceID).
		Order("id ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *StudentBookingRepository) AttachMeetLink(ctx context.Context, id int64, url string) error {
	return r.db.WithContext(ctx).
		Model(&domain.StudentBooking{}).
		Where("id = ?", id).
		Update("meet_link", url).Error
}

// MeetContext assembles the details the meet collaborator needs: both
// parties' emails, the interview window and a title with the domain tag.
func (r *StudentBookingRepository) MeetContext(ctx context.Context, id int64) (*outbox.MeetContext, error) {
	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var slot domain.Slot
	if err := r.db.WithContext(ctx).Where("id = ?", b.SlotID).First(&slot).Error; err != nil {
		return nil, err
	}

	var iv domain.Interviewer
	if err := r.db.WithContext(ctx).First(&iv, slot.InterviewerID).Error; err != nil {
		return nil, err
	}

	var br domain.BookingRequest
	if err := r.db.WithContext(ctx).First(&br, slot.BookingRequestID).Error; err != nil {
		return nil, err
	}

	title := "Interview"
	if br.DomainTag != "" {
		title = "Interview: " + br.DomainTag
	}

	return &outbox.MeetContext{
		Title:            title,
		InterviewerEmail: iv.Email,
		StudentEmail:     b.StudentIdentity,
		Start:            slot.StartTime,
		End:              slot.EndTime,
		MeetLink:         b.MeetLink,
	}, nil
}
