// internal/services/interview_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"job-tracker-api/internal/calendar"
	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"
)

// interviewService implements the InterviewService interface.
type interviewService struct {
	interviewRepo storage.InterviewRepository
	jobRepo       storage.JobRepository
	exporter      calendar.Exporter
}

// NewInterviewService creates a new interview service instance.
func NewInterviewService(interviewRepo storage.InterviewRepository, jobRepo storage.JobRepository, exporter calendar.Exporter) InterviewService {
	return &interviewService{interviewRepo: interviewRepo, jobRepo: jobRepo, exporter: exporter}
}

// splitDateTime fills Date and Time from a combined "YYYY-MM-DDTHH:MM"
// value. Explicit date/time fields win when both forms are present. The
// halves bypass the DTO validator (the separate fields were empty when it
// ran), so they are format-checked here before anything reaches the store.
func splitDateTime(dateTime string, date, timeOfDay *string) error {
	idx := strings.IndexByte(dateTime, 'T')
	if idx < 0 {
		return fmt.Errorf("%w: date_time must look like 2025-01-20T09:00", ErrValidation)
	}
	if *date == "" {
		*date = dateTime[:idx]
	}
	if *timeOfDay == "" {
		*timeOfDay = dateTime[idx+1:]
	}
	if _, err := time.Parse("2006-01-02", *date); err != nil {
		return fmt.Errorf("%w: date must look like 2025-01-20", ErrValidation)
	}
	if _, err := time.Parse("15:04", *timeOfDay); err != nil {
		return fmt.Errorf("%w: time must look like 09:00", ErrValidation)
	}
	return nil
}

// Schedule books an interview against one of the caller's jobs. The job is
// resolved with the caller's own scope, so scheduling against a missing or
// foreign job fails identically with ErrJobNotFound.
func (s *interviewService) Schedule(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error) {
	if req.DateTime != "" {
		if err := splitDateTime(req.DateTime, &req.Date, &req.Time); err != nil {
			return nil, err
		}
	}
	if req.Date == "" || req.Time == "" {
		return nil, fmt.Errorf("%w: date and time are required", ErrValidation)
	}

	job, err := s.jobRepo.GetByID(ctx, &dto.GetJobByIDRequest{ID: req.JobID, UserID: req.UserID})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		log.Printf("Service: Error resolving job %s for interview: %v\n", req.JobID, err)
		return nil, fmt.Errorf("could not resolve job for interview: %w", err)
	}

	// The stored owner is always the job's owner, not caller input.
	req.UserID = job.UserID

	interview, err := s.interviewRepo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Job deleted between the lookup and the insert.
			return nil, ErrJobNotFound
		}
		log.Printf("Service: Error scheduling interview for job %s: %v\n", req.JobID, err)
		return nil, fmt.Errorf("could not schedule interview: %w", err)
	}

	// Calendar export is best-effort; a hook failure never unschedules.
	if err := s.exporter.Export(ctx, interview); err != nil {
		log.Printf("Service: Calendar export failed for interview %s: %v\n", interview.ID, err)
	}

	return interview, nil
}

// GetInterviewByID fetches one of the caller's interviews.
func (s *interviewService) GetInterviewByID(ctx context.Context, req *dto.GetInterviewByIDRequest) (*models.Interview, error) {
	interview, err := s.interviewRepo.GetByID(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("Service: Error getting interview by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("could not get interview: %w", err)
	}
	return interview, nil
}

// ListInterviews fetches all of the caller's interviews in chronological order.
func (s *interviewService) ListInterviews(ctx context.Context, req *dto.ListInterviewsRequest) ([]models.Interview, error) {
	interviews, err := s.interviewRepo.ListByOwner(ctx, req)
	if err != nil {
		log.Printf("Service: Error listing interviews for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("could not list interviews: %w", err)
	}
	return interviews, nil
}

// UpdateInterview replaces the caller's interview with the supplied fields.
// The interview cannot be moved to a different job.
func (s *interviewService) UpdateInterview(ctx context.Context, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	if req.DateTime != "" {
		if err := splitDateTime(req.DateTime, &req.Date, &req.Time); err != nil {
			return nil, err
		}
	}
	if req.Date == "" || req.Time == "" {
		return nil, fmt.Errorf("%w: date and time are required", ErrValidation)
	}

	interview, err := s.interviewRepo.Update(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("Service: Error updating interview %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("could not update interview: %w", err)
	}
	return interview, nil
}

// Cancel removes the caller's interview.
func (s *interviewService) Cancel(ctx context.Context, req *dto.CancelInterviewRequest) error {
	if err := s.interviewRepo.Delete(ctx, req); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		log.Printf("Service: Error canceling interview %s: %v\n", req.ID, err)
		return fmt.Errorf("could not cancel interview: %w", err)
	}
	return nil
}
