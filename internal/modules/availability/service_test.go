package availability

import (
	"context"
	"testing"
	"time"

	"interviewdesk/internal/domain"
	"interviewdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

/* ==================== MOCKS ==================== */

type MockBookingRequestRepository struct {
	mock.Mock
}

func (m *MockBookingRequestRepository) GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingRequest), args.Error(1)
}

func (m *MockBookingRequestRepository) IsInvited(ctx context.Context, requestID, interviewerID int64) (bool, error) {
	args := m.Called(ctx, requestID, interviewerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRequestRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingRequestStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

type MockAvailabilityRepository struct {
	mock.Mock
}

func (m *MockAvailabilityRepository) ReplaceForDate(ctx context.Context, interviewerID, requestID int64, date time.Time, windows []domain.AvailabilityWindow) error {
	args := m.Called(ctx, interviewerID, requestID, date, windows)
	return args.Error(0)
}

func (m *MockAvailabilityRepository) ListByRequest(ctx context.Context, requestID int64) ([]domain.AvailabilityWindow, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailabilityWindow), args.Error(1)
}

type MockInterviewerRepository struct {
	mock.Mock
}

func (m *MockInterviewerRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Interviewer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interviewer), args.Error(1)
}

/* ==================== FIXTURES ==================== */

func activeInterviewer() *domain.Interviewer {
	return &domain.Interviewer{ID: 3, UserID: 30, Status: domain.InterviewerActive}
}

func awaitingRequest() *domain.BookingRequest {
	return &domain.BookingRequest{ID: 10, Status: domain.BookingRequestAwaitingAvailability}
}

/* ==================== TESTS ==================== */

func TestSubmit_ReplacesAndAdvancesState(t *testing.T) {
	requests := new(MockBookingRequestRepository)
	windows := new(MockAvailabilityRepository)
	interviewers := new(MockInterviewerRepository)

	interviewers.On("GetByUserID", mock.Anything, int64(30)).Return(activeInterviewer(), nil)
	requests.On("GetByID", mock.Anything, int64(10)).Return(awaitingRequest(), nil)
	requests.On("IsInvited", mock.Anything, int64(10), int64(3)).Return(true, nil)
	windows.On("ReplaceForDate", mock.Anything, int64(3), int64(10), mock.Anything, mock.Anything).Return(nil)
	requests.On("UpdateStatus", mock.Anything, int64(10),
		domain.BookingRequestAwaitingAvailability, domain.BookingRequestCollected).Return(nil)

	service := NewService(requests, windows, interviewers)

	got, err := service.Submit(context.Background(), 10, 30, SubmitRequest{
		Windows: []WindowInput{
			{Date: "2026-09-14", Start: "09:00", End: "12:00"},
			{Date: "2026-09-14", Start: "14:00", End: "16:00"},
		},
	})

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.True(t, got[0].StartTime.Before(got[1].StartTime))
	assert.Equal(t, 9, got[0].StartTime.Hour())
	requests.AssertExpectations(t)
	windows.AssertExpectations(t)
}

func TestSubmit_ConcurrentAdvanceIsIgnored(t *testing.T) {
	requests := new(MockBookingRequestRepository)
	windows := new(MockAvailabilityRepository)
	interviewers := new(MockInterviewerRepository)

	interviewers.On("GetByUserID", mock.Anything, int64(30)).Return(activeInterviewer(), nil)
	requests.On("GetByID", mock.Anything, int64(10)).Return(awaitingRequest(), nil)
	requests.On("IsInvited", mock.Anything, int64(10), int64(3)).Return(true, nil)
	windows.On("ReplaceForDate", mock.Anything, int64(3), int64(10), mock.Anything, mock.Anything).Return(nil)
	requests.On("UpdateStatus", mock.Anything, int64(10),
		domain.BookingRequestAwaitingAvailability, domain.BookingRequestCollected).
		Return(repository.ErrInvalidTransition)

	service := NewService(requests, windows, interviewers)

	_, err := service.Submit(context.Background(), 10, 30, SubmitRequest{
		Windows: []WindowInput{{Date: "2026-09-14", Start: "09:00", End: "10:00"}},
	})
	assert.NoError(t, err)
}

func TestSubmit_OverlappingWindowsRejected(t *testing.T) {
	requests := new(MockBookingRequestRepository)
	windows := new(MockAvailabilityRepository)
	interviewers := new(MockInterviewerRepository)

	interviewers.On("GetByUserID", mock.Anything, int64(30)).Return(activeInterviewer(), nil)
	requests.On("GetByID", mock.Anything, int64(10)).Return(awaitingRequest(), nil)
	requests.On("IsInvited", mock.Anything, int64(10), int64(3)).Return(true, nil)

	service := NewService(requests, windows, interviewers)

	_, err := service.Submit(context.Background(), 10, 30, SubmitRequest{
		Windows: []WindowInput{
			{Date: "2026-09-14", Start: "09:00", End: "12:00"},
			{Date: "2026-09-14", Start: "11:00", End: "13:00"},
		},
	})
	assert.ErrorIs(t, err, ErrValidation)
	windows.AssertNotCalled(t, "ReplaceForDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmit_TouchingWindowsAllowed(t *testing.T) {
	requests := new(MockBookingRequestRepository)
	windows := new(MockAvailabilityRepository)
	interviewers := new(MockInterviewerRepository)

	interviewers.On("GetByUserID", mock.Anything, int64(30)).Return(activeInterviewer(), nil)
	requests.On("GetByID", mock.Anything, int64(10)).Return(awaitingRequest(), nil)
	requests.On("IsInvited", mock.Anything, int64(10), int64(3)).Return(true, nil)
	windows.On("ReplaceForDate", mock.Anything, int64(3), int64(10), mock.Anything, mock.Anything).Return(nil)
	requests.On("UpdateStatus", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(nil)

	service := NewService(requests, windows, interviewers)

	_, err := service.Submit(context.Background(), 10, 30, SubmitRequest{
		Windows: []WindowInput{
			{Date: "2026-09-14", Start: "09:00", End: "10:00"},
			{Date: "2026-09-14", Start: "10:00", End: "11:00"},
		},
	})
	assert.NoError(t, err)
}

func TestSubmit_EmptyWindowRejected(t *testing.T) {
	requests := new(MockBookingRequestRepository)
	interviewers := new(MockInterviewerRepository)

	interviewers.On("GetByUserID", mock.Anything, int64(30)).Return(activeInterviewer(), nil)
	requests.On("GetByID", mock.Anything, int64(10)).Return(awaitingRequest(), nil)
	requests.On("IsInvited", mock.Anything, int64(10), int64(3)).Return(true, nil)

	service := NewService(requests, new(MockAvailabilityRepository), interviewers)

	_, err := service.Submit(context.Background(), 10, 30, SubmitRequest{
		Windows: []WindowInput{{Date: "2026-09-14", Start: "10:00", End: "10:00"}},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmit_NotInvited(t *testing.T) {
	requests := new(MockBookingRequestRepository)
	interviewers := new(MockInterviewerRepository)

	interviewers.On("GetByUserID", mock.Anything, int64(30)).Return(activeInterviewer(), nil)
	requests.On("GetByID", mock.Anything, int64(10)).Return(awaitingRequest(), nil)
	requests.On("IsInvited", mock.Anything, int64(10), int64(3)).Return(false, nil)

	service := NewService(requests, new(MockAvailabilityRepository), interviewers)

	_, err := service.Submit(context.Background(), 10, 30, SubmitRequest{
		Windows: []WindowInput{{Date: "2026-09-14", Start: "09:00", End: "10:00"}},
	})
	assert.ErrorIs(t, err, ErrNotInvited)
}

func TestSubmit_DeactivatedInterviewerRejected(t *testing.T) {
	interviewers := new(MockInterviewerRepository)
	interviewers.On("GetByUserID", mock.Anything, int64(30)).Return(&domain.Interviewer{
		ID:     3,
		UserID: 30,
		Status: domain.InterviewerInactive,
	}, nil)

	service := NewService(new(MockBookingRequestRepository), new(MockAvailabilityRepository), interviewers)

	_, err := service.Submit(context.Background(), 10, 30, SubmitRequest{
		Windows: []WindowInput{{Date: "2026-09-14", Start: "09:00", End: "10:00"}},
	})
	assert.ErrorIs(t, err, ErrNotInvited)
}

func TestSubmit_PublishedRequestRejectsWindows(t *testing.T) {
	requests := new(MockBookingRequestRepository)
	interviewers := new(MockInterviewerRepository)

	interviewers.On("GetByUserID", mock.Anything, int64(30)).Return(activeInterviewer(), nil)
	requests.On("GetByID", mock.Anything, int64(10)).Return(&domain.BookingRequest{
		ID:     10,
		Status: domain.BookingRequestPublished,
	}, nil)

	service := NewService(requests, new(MockAvailabilityRepository), interviewers)

	_, err := service.Submit(context.Background(), 10, 30, SubmitRequest{
		Windows: []WindowInput{{Date: "2026-09-14", Start: "09:00", End: "10:00"}},
	})
	assert.ErrorIs(t, err, ErrRequestClosed)
}
