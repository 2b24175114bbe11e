package domain

import "time"

type StudentBookingStatus string

const (
	StudentBookingConfirmed StudentBookingStatus = "confirmed"
	StudentBookingCancelled StudentBookingStatus = "cancelled"
)

// StudentBooking binds one authorized student identity to exactly one slot.
// It is created already confirmed inside the claim transaction. The partial
// unique indexes back the one-per-student-per-link and one-per-slot rules.
type StudentBooking struct {
	ID              int64                `json:"id" gorm:"primaryKey;column:id"`
	PublicLinkID    int64                `json:"public_link_id" gorm:"column:public_link_id;index:idx_booking_identity,unique,where:status = 'confirmed'"`
	SlotID          string               `json:"slot_id" gorm:"column:slot_id;size:64;index:idx_booking_slot,unique,where:status = 'confirmed'"`
	StudentIdentity string               `json:"student_identity" gorm:"column:student_identity;index:idx_booking_identity,unique,where:status = 'confirmed'"`
	Status          StudentBookingStatus `json:"status" gorm:"column:status"`
	MeetLink        string               `json:"meet_link,omitempty" gorm:"column:meet_link"`
	ConfirmedAt     time.Time            `json:"confirmed_at" gorm:"column:confirmed_at"`
	CancelledAt     *time.Time           `json:"cancelled_at,omitempty" gorm:"column:cancelled_at"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func (StudentBooking) TableName() string { return "student_bookings" }
