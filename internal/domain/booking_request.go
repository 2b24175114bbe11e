package domain

import "time"

type BookingRequestStatus string

const (
	BookingRequestCreated              BookingRequestStatus = "created"
	BookingRequestAwaitingAvailability BookingRequestStatus = "awaiting_availability"
	BookingRequestCollected            BookingRequestStatus = "availability_collected"
	BookingRequestPublished            BookingRequestStatus = "published"
	BookingRequestClosed               BookingRequestStatus = "closed"
)

// CanTransitionTo encodes the booking request state machine. Transitions are
// pure functions of (current, next) so they can be tested without storage.
func (s BookingRequestStatus) CanTransitionTo(next BookingRequestStatus) bool {
	switch s {
	case BookingRequestCreated:
		return next == BookingRequestAwaitingAvailability || next == BookingRequestCollected || next == BookingRequestClosed
	case BookingRequestAwaitingAvailability:
		return next == BookingRequestCollected || next == BookingRequestClosed
	case BookingRequestCollected:
		return next == BookingRequestPublished || next == BookingRequestClosed
	case BookingRequestPublished:
		return next == BookingRequestPublished || next == BookingRequestClosed
	case BookingRequestClosed:
		return false
	}
	return false
}

// Closed requests freeze new claims but not historical reads.
func (s BookingRequestStatus) AcceptsClaims() bool {
	return s == BookingRequestPublished
}

type BookingRequest struct {
	ID        int64                `json:"id" gorm:"primaryKey;column:id"`
	Date      time.Time            `json:"date" gorm:"column:date;index"`
	DomainTag string               `json:"domain_tag,omitempty" gorm:"column:domain_tag"`
	Status    BookingRequestStatus `json:"status" gorm:"column:status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`

	Invites []BookingRequestInvite `json:"invites,omitempty" gorm:"foreignKey:BookingRequestID"`
}

func (BookingRequest) TableName() string { return "booking_requests" }

// BookingRequestInvite links an invited interviewer to a booking request.
type BookingRequestInvite struct {
	ID               int64     `json:"id" gorm:"primaryKey;column:id"`
	BookingRequestID int64     `json:"booking_request_id" gorm:"column:booking_request_id;uniqueIndex:idx_request_interviewer"`
	InterviewerID    int64     `json:"interviewer_id" gorm:"column:interviewer_id;uniqueIndex:idx_request_interviewer"`
	CreatedAt        time.Time `json:"created_at"`
}

func (BookingRequestInvite) TableName() string { return "booking_request_invites" }
