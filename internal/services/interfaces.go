// internal/services/interfaces.go
package services

import (
	"context"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/transport/dto"

	"github.com/jackc/pgx/v5"
)

// TxBeginner starts database transactions. *pgxpool.Pool satisfies it;
// tests substitute a mock.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// UserService handles registration, login, and profile lookups.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error)
	GetUserByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error)
}

// JobService handles job application business logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error
}

// InterviewService handles the interview scheduling workflow.
type InterviewService interface {
	Schedule(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error)
	GetInterviewByID(ctx context.Context, req *dto.GetInterviewByIDRequest) (*models.Interview, error)
	ListInterviews(ctx context.Context, req *dto.ListInterviewsRequest) ([]models.Interview, error)
	UpdateInterview(ctx context.Context, req *dto.UpdateInterviewRequest) (*models.Interview, error)
	Cancel(ctx context.Context, req *dto.CancelInterviewRequest) error
}
