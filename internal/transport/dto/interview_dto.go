// internal/transport/dto/interview_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Interview Request DTOs ---

// ScheduleInterviewRequest defines the structure for scheduling an interview
// against one of the caller's jobs. Date and time are the scheduling user's
// wall clock; a combined DateTime ("2025-01-20T09:00") may be supplied
// instead and is split by the service. UserID is resolved from the owning
// job, never from the request.
type ScheduleInterviewRequest struct {
	JobID           uuid.UUID `json:"job_id" validate:"required"`
	Title           string    `json:"title" validate:"required"`
	Date            string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time            string    `json:"time" validate:"omitempty,datetime=15:04"`
	DateTime        string    `json:"date_time" validate:"omitempty"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	Location        string    `json:"location" validate:"omitempty"`
	AttendeeEmail   string    `json:"attendee_email" validate:"required,email"`
	Description     string    `json:"description" validate:"omitempty"`
	UserID          uuid.UUID `json:"-"` // Set internally by handler from auth context
}

// GetInterviewByIDRequest defines the structure for getting an interview by ID.
type GetInterviewByIDRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-" validate:"required"`
}

// ListInterviewsRequest defines the structure for listing the caller's interviews.
type ListInterviewsRequest struct {
	UserID uuid.UUID `json:"-" validate:"required"`
}

// UpdateInterviewRequest defines the structure for updating an interview.
// The owning job cannot be changed; job_id is deliberately absent.
type UpdateInterviewRequest struct {
	ID              uuid.UUID `json:"-" validate:"required"`
	UserID          uuid.UUID `json:"-" validate:"required"`
	Title           string    `json:"title" validate:"required"`
	Date            string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time            string    `json:"time" validate:"omitempty,datetime=15:04"`
	DateTime        string    `json:"date_time" validate:"omitempty"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	Location        string    `json:"location" validate:"omitempty"`
	AttendeeEmail   string    `json:"attendee_email" validate:"required,email"`
	Description     string    `json:"description" validate:"omitempty"`
}

// CancelInterviewRequest defines the structure for canceling an interview.
type CancelInterviewRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-" validate:"required"`
}

// InterviewResponse defines the interview data returned to the client.
type InterviewResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	JobID           uuid.UUID `json:"job_id"`
	Title           string    `json:"title"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"duration_minutes"`
	Location        string    `json:"location"`
	AttendeeEmail   string    `json:"attendee_email"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
}
