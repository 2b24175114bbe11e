package domain

import "time"

type InterviewerStatus string

const (
	InterviewerActive      InterviewerStatus = "active"
	InterviewerOnProbation InterviewerStatus = "on_probation"
	InterviewerInactive    InterviewerStatus = "inactive"
)

// Invitable reports whether an interviewer in this status may be invited
// to a booking request.
func (s InterviewerStatus) Invitable() bool {
	return s == InterviewerActive || s == InterviewerOnProbation
}

type Interviewer struct {
	ID            int64             `json:"id" gorm:"primaryKey;column:id"`
	UserID        int64             `json:"user_id" gorm:"column:user_id;index"`
	FullName      string            `json:"full_name" gorm:"column:full_name" validate:"required"`
	Email         string            `json:"email" gorm:"column:email;uniqueIndex" validate:"required,email"`
	Status        InterviewerStatus `json:"status" gorm:"column:status"`
	Domains       []string          `json:"domains,omitempty" gorm:"column:domains;serializer:json"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeactivatedAt *time.Time        `json:"deactivated_at,omitempty" gorm:"column:deactivated_at"`
}

func (Interviewer) TableName() string { return "interviewers" }
