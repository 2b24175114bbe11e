package repository

import (
	"context"

	"interviewdesk/internal/domain"

	"gorm.io/gorm"
)

type InterviewerRepository struct {
	db *gorm.DB
}

func NewInterviewerRepository(db *gorm.DB) *InterviewerRepository {
	return &InterviewerRepository{db: db}
}

func (r *InterviewerRepository) Create(ctx context.Context, iv *domain.Interviewer) error {
	return r.db.WithContext(ctx).Create(iv).Error
}

func (r *InterviewerRepository) GetByID(ctx context.Context, id int64) (*domain.Interviewer, error) {
	var iv domain.Interviewer
	if err := r.db.WithContext(ctx).First(&iv, id).Error; err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *InterviewerRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Interviewer, error) {
	var iv domain.Interviewer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&iv).Error; err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *InterviewerRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Interviewer, error) {
	var out []domain.Interviewer
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InterviewerRepository) List(ctx context.Context, status *domain.InterviewerStatus) ([]domain.Interviewer, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}
	var out []domain.Interviewer
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *InterviewerRepository) Update(ctx context.Context, iv *domain.Interviewer) error {
	return r.db.WithContext(ctx).Save(iv).Error
}
