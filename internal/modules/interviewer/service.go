package interviewer

import (
	"context"
	"errors"
	"time"

	"interviewdesk/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	interviewers InterviewerRepository
	users        UserRepository
}

func NewService(interviewers InterviewerRepository, users UserRepository) *Service {
	return &Service{interviewers: interviewers, users: users}
}

// Create registers an interviewer together with their login account.
// New interviewers start on probation until an admin promotes them.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Interviewer, error) {
	if existing, err := s.users.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleInterviewer,
		Name:         req.FullName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	iv := &domain.Interviewer{
		UserID:   user.ID,
		FullName: req.FullName,
		Email:    req.Email,
		Status:   domain.InterviewerOnProbation,
		Domains:  req.Domains,
	}
	if err := s.interviewers.Create(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Interviewer, error) {
	iv, err := s.interviewers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return iv, nil
}

func (s *Service) List(ctx context.Context, statusFilter string) ([]domain.Interviewer, error) {
	var status *domain.InterviewerStatus
	if statusFilter != "" {
		parsed, err := parseStatus(statusFilter)
		if err != nil {
			return nil, err
		}
		status = &parsed
	}
	return s.interviewers.List(ctx, status)
}

// Update patches profile fields and, optionally, the status. Moving to
// inactive stamps the deactivation time; moving back clears it.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Interviewer, error) {
	iv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		iv.FullName = *req.FullName
	}
	if req.Domains != nil {
		iv.Domains = req.Domains
	}
	if req.Status != nil {
		status, err := parseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		if status == domain.InterviewerInactive && iv.Status != domain.InterviewerInactive {
			now := time.Now().UTC()
			iv.DeactivatedAt = &now
		}
		if status != domain.InterviewerInactive {
			iv.DeactivatedAt = nil
		}
		iv.Status = status
	}

	if err := s.interviewers.Update(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func parseStatus(s string) (domain.InterviewerStatus, error) {
	switch domain.InterviewerStatus(s) {
	case domain.InterviewerActive, domain.InterviewerOnProbation, domain.InterviewerInactive:
		return domain.InterviewerStatus(s), nil
	}
	return "", ErrBadStatus
}
