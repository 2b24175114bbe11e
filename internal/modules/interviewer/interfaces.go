package interviewer

import (
	"context"

	"interviewdesk/internal/domain"
)

type InterviewerRepository interface {
	Create(ctx context.Context, iv *domain.Interviewer) error
	GetByID(ctx context.Context, id int64) (*domain.Interviewer, error)
	List(ctx context.Context, status *domain.InterviewerStatus) ([]domain.Interviewer, error)
	Update(ctx context.Context, iv *domain.Interviewer) error
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
