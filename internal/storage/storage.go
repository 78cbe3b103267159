package storage

import (
	"context"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for credential data operations.
type UserRepository interface {
	Create(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error)
	GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error)
}

// JobRepository defines the interface for job data operations. Every lookup
// and mutation is scoped by the owning user's ID; a row owned by someone
// else behaves exactly like a missing row.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListByOwner(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, req *dto.DeleteJobRequest) error
	WithTx(tx pgx.Tx) JobRepository
}

// InterviewRepository defines the interface for interview data operations,
// owner-scoped like JobRepository.
type InterviewRepository interface {
	Create(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error)
	GetByID(ctx context.Context, req *dto.GetInterviewByIDRequest) (*models.Interview, error)
	ListByOwner(ctx context.Context, req *dto.ListInterviewsRequest) ([]models.Interview, error)
	Update(ctx context.Context, req *dto.UpdateInterviewRequest) (*models.Interview, error)
	Delete(ctx context.Context, req *dto.CancelInterviewRequest) error
	DeleteByJobID(ctx context.Context, jobID uuid.UUID) error
	WithTx(tx pgx.Tx) InterviewRepository
}
