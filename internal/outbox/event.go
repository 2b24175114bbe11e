package outbox

import (
	"encoding/json"
	"time"
)

// EventType identifies the downstream effect an event requests.
type EventType string

const (
	EventSlotConfirmed    EventType = "slot.confirmed"
	EventBookingCancelled EventType = "booking.cancelled"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusDispatched Status = "dispatched"
	StatusFailed     Status = "failed"
)

// Event is a durable outbox record. It is written in the same transaction as
// the state change it announces, then drained by the outbox worker, which
// gives at-least-once delivery without coupling claim latency to external
// services.
type Event struct {
	ID           int64           `json:"id" gorm:"primaryKey;column:id"`
	Type         EventType       `json:"type" gorm:"column:type"`
	Payload      json.RawMessage `json:"payload" gorm:"column:payload;type:jsonb"`
	Status       Status          `json:"status" gorm:"column:status;index"`
	Attempts     int             `json:"attempts" gorm:"column:attempts"`
	LastError    string          `json:"last_error,omitempty" gorm:"column:last_error"`
	CreatedAt    time.Time       `json:"created_at"`
	DispatchedAt *time.Time      `json:"dispatched_at,omitempty" gorm:"column:dispatched_at"`
}

func (Event) TableName() string { return "outbox_events" }

// BookingPayload is the envelope shared by both event types.
type BookingPayload struct {
	StudentBookingID int64  `json:"student_booking_id"`
	SlotID           string `json:"slot_id"`
	StudentIdentity  string `json:"student_identity"`
	SlotReleased     bool   `json:"slot_released,omitempty"`
}

// NewEvent marshals the payload into a pending outbox record.
func NewEvent(t EventType, p BookingPayload) (*Event, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return &Event{Type: t, Payload: raw, Status: StatusPending}, nil
}

// DecodePayload unmarshals the stored payload.
func (e *Event) DecodePayload() (BookingPayload, error) {
	var p BookingPayload
	err := json.Unmarshal(e.Payload, &p)
	return p, err
}
