// internal/services/job_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"
)

// jobService implements the JobService interface.
type jobService struct {
	jobRepo       storage.JobRepository
	interviewRepo storage.InterviewRepository
	db            TxBeginner
}

// NewJobService creates a new job service instance.
func NewJobService(jobRepo storage.JobRepository, interviewRepo storage.InterviewRepository, db TxBeginner) JobService {
	return &jobService{jobRepo: jobRepo, interviewRepo: interviewRepo, db: db}
}

// CreateJob records a new job application for the caller.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		log.Printf("Service: Error creating job: %v\n", err)
		return nil, fmt.Errorf("could not create job: %w", err)
	}
	return job, nil
}

// GetJobByID fetches one of the caller's jobs.
func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("Service: Error getting job by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("could not get job: %w", err)
	}
	return job, nil
}

// ListJobs fetches all of the caller's jobs, most recent application first.
func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByOwner(ctx, req)
	if err != nil {
		log.Printf("Service: Error listing jobs for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("could not list jobs: %w", err)
	}
	return jobs, nil
}

// UpdateJob replaces the caller's job with the supplied fields.
func (s *jobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("Service: Error updating job %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("could not update job: %w", err)
	}
	return job, nil
}

// DeleteJob removes a job and all interviews scheduled against it in one
// transaction, so a failure partway leaves everything in place.
func (s *jobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		log.Printf("Service: Error starting transaction for job deletion: %v\n", err)
		return fmt.Errorf("could not start transaction: %w", err)
	}
	defer tx.Rollback(ctx) // Safe no-op if committed

	if err := s.interviewRepo.WithTx(tx).DeleteByJobID(ctx, req.ID); err != nil {
		log.Printf("Service: Error deleting interviews for job %s: %v\n", req.ID, err)
		return fmt.Errorf("could not delete interviews for job: %w", err)
	}

	if err := s.jobRepo.WithTx(tx).Delete(ctx, req); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		log.Printf("Service: Error deleting job %s: %v\n", req.ID, err)
		return fmt.Errorf("could not delete job: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Service: Error committing job deletion %s: %v\n", req.ID, err)
		return fmt.Errorf("could not commit job deletion: %w", err)
	}

	return nil
}
