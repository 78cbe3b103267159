package services

import (
	"context"
	"errors"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock type for the storage.UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

var _ storage.UserRepository = (*MockUserRepository)(nil)

// MockJobRepository is a mock type for the storage.JobRepository interface
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) ListByOwner(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	args := m.Called(ctx, req)
	if jobs, ok := args.Get(0).([]models.Job); ok {
		return jobs, args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return nil, errors.New("mock return value type mismatch for []models.Job")
}

func (m *MockJobRepository) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockJobRepository) WithTx(tx pgx.Tx) storage.JobRepository {
	args := m.Called(tx)
	return args.Get(0).(storage.JobRepository)
}

var _ storage.JobRepository = (*MockJobRepository)(nil)

// MockInterviewRepository is a mock type for the storage.InterviewRepository interface
type MockInterviewRepository struct {
	mock.Mock
}

func (m *MockInterviewRepository) Create(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) GetByID(ctx context.Context, req *dto.GetInterviewByIDRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) ListByOwner(ctx context.Context, req *dto.ListInterviewsRequest) ([]models.Interview, error) {
	args := m.Called(ctx, req)
	if interviews, ok := args.Get(0).([]models.Interview); ok {
		return interviews, args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return nil, errors.New("mock return value type mismatch for []models.Interview")
}

func (m *MockInterviewRepository) Update(ctx context.Context, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewRepository) Delete(ctx context.Context, req *dto.CancelInterviewRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockInterviewRepository) DeleteByJobID(ctx context.Context, jobID uuid.UUID) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

func (m *MockInterviewRepository) WithTx(tx pgx.Tx) storage.InterviewRepository {
	args := m.Called(tx)
	return args.Get(0).(storage.InterviewRepository)
}

var _ storage.InterviewRepository = (*MockInterviewRepository)(nil)

// MockTx embeds pgx.Tx so only the methods the services actually call need
// mock behavior; anything else panics loudly.
type MockTx struct {
	pgx.Tx
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTxBeginner is a mock type for the TxBeginner interface
type MockTxBeginner struct {
	mock.Mock
}

func (m *MockTxBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

var _ TxBeginner = (*MockTxBeginner)(nil)

// MockExporter is a mock type for the calendar.Exporter interface
type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) Export(ctx context.Context, interview *models.Interview) error {
	args := m.Called(ctx, interview)
	return args.Error(0)
}
