package domain

import "time"

type UserRole string

const (
	RoleAdmin       UserRole = "admin"
	RoleInterviewer UserRole = "interviewer"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey;column:id"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"column:password_hash"`
	Role         UserRole  `json:"role" gorm:"column:role"`
	Name         string    `json:"name" gorm:"column:name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
