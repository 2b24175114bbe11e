package domain

import "time"

// AvailabilityWindow is one offered time range for an interviewer on a date.
// Windows for the same interviewer/date must be disjoint; a resubmission for
// a date replaces the prior rows for that date.
type AvailabilityWindow struct {
	ID               int64     `json:"id" gorm:"primaryKey;column:id"`
	InterviewerID    int64     `json:"interviewer_id" gorm:"column:interviewer_id;index:idx_availability_owner"`
	BookingRequestID int64     `json:"booking_request_id" gorm:"column:booking_request_id;index:idx_availability_owner"`
	Date             time.Time `json:"date" gorm:"column:date"`
	StartTime        time.Time `json:"start_time" gorm:"column:start_time"`
	EndTime          time.Time `json:"end_time" gorm:"column:end_time"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (AvailabilityWindow) TableName() string { return "availability_windows" }
