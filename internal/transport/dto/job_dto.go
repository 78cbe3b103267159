// internal/transport/dto/job_dto.go
package dto

import (
	"time"

	"job-tracker-api/internal/models"

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job application.
type CreateJobRequest struct {
	Company         string           `json:"company" validate:"required"`
	Position        string           `json:"position" validate:"required"`
	Status          models.JobStatus `json:"status" validate:"required,oneof=applied interviewing offer rejected pending accepted"`
	ApplicationDate string           `json:"application_date" validate:"required,datetime=2006-01-02"`
	Notes           string           `json:"notes" validate:"omitempty"`
	UserID          uuid.UUID        `json:"-"` // Set internally by handler from auth context
}

// GetJobByIDRequest defines the structure for getting a job by ID.
// UserID scopes the lookup; a job owned by another user is not found.
type GetJobByIDRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-" validate:"required"`
}

// ListJobsRequest defines the structure for listing the caller's jobs.
type ListJobsRequest struct {
	UserID uuid.UUID `json:"-" validate:"required"`
}

// UpdateJobRequest defines the structure for updating a job.
// Replace semantics: every mutable field is written as supplied.
type UpdateJobRequest struct {
	ID              uuid.UUID        `json:"-" validate:"required"`
	UserID          uuid.UUID        `json:"-" validate:"required"`
	Company         string           `json:"company" validate:"required"`
	Position        string           `json:"position" validate:"required"`
	Status          models.JobStatus `json:"status" validate:"required,oneof=applied interviewing offer rejected pending accepted"`
	ApplicationDate string           `json:"application_date" validate:"required,datetime=2006-01-02"`
	Notes           string           `json:"notes" validate:"omitempty"`
}

// DeleteJobRequest defines the structure for deleting a job.
type DeleteJobRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-" validate:"required"`
}

// JobResponse defines the standard job data returned to the client.
type JobResponse struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"user_id"`
	Company         string           `json:"company"`
	Position        string           `json:"position"`
	Status          models.JobStatus `json:"status"`
	ApplicationDate string           `json:"application_date"`
	Notes           string           `json:"notes"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
