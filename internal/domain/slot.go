package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotConfirmed SlotStatus = "confirmed"
	SlotReleased  SlotStatus = "released"
)

// Slot is one bookable time unit derived from an availability window.
// IDs are content-addressed so repeated materialization of the same window
// yields the same row instead of a duplicate.
type Slot struct {
	ID               string     `json:"id" gorm:"primaryKey;column:id;size:64"`
	BookingRequestID int64      `json:"booking_request_id" gorm:"column:booking_request_id;index"`
	InterviewerID    int64      `json:"interviewer_id" gorm:"column:interviewer_id;index"`
	StartTime        time.Time  `json:"start_time" gorm:"column:start_time"`
	EndTime          time.Time  `json:"end_time" gorm:"column:end_time"`
	Status           SlotStatus `json:"status" gorm:"column:status;index"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Slot) TableName() string { return "slots" }

// NewSlotID derives a stable identifier from the slot's defining fields.
func NewSlotID(interviewerID int64, start, end time.Time) string {
	seed := fmt.Sprintf("%d|%s|%s", interviewerID, start.UTC().Format(time.RFC3339), end.UTC().Format(time.RFC3339))
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:16])
}
