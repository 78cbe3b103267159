package handlers_test

import (
	"context"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/services"
	"job-tracker-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// authAs returns a middleware that injects the user ID the way the real
// auth middleware does, so handlers can be tested without minting tokens.
func authAs(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

// MockUserService is a mock type for the services.UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockUserService) GetUserByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

var _ services.UserService = (*MockUserService)(nil)

// MockJobService is a mock type for the services.JobService interface
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	args := m.Called(ctx, req)
	if jobs, ok := args.Get(0).([]models.Job); ok {
		return jobs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

var _ services.JobService = (*MockJobService)(nil)

// MockInterviewService is a mock type for the services.InterviewService interface
type MockInterviewService struct {
	mock.Mock
}

func (m *MockInterviewService) Schedule(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewService) GetInterviewByID(ctx context.Context, req *dto.GetInterviewByIDRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewService) ListInterviews(ctx context.Context, req *dto.ListInterviewsRequest) ([]models.Interview, error) {
	args := m.Called(ctx, req)
	if interviews, ok := args.Get(0).([]models.Interview); ok {
		return interviews, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInterviewService) UpdateInterview(ctx context.Context, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewService) Cancel(ctx context.Context, req *dto.CancelInterviewRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

var _ services.InterviewService = (*MockInterviewService)(nil)
