package services

import (
	"context"
	"errors"
	"testing"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInterviewService_Schedule(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	jobID := uuid.New()
	job := &models.Job{ID: jobID, UserID: userID, Company: "Acme", Position: "Engineer", Status: models.JobStatusInterviewing}

	baseReq := func() *dto.ScheduleInterviewRequest {
		return &dto.ScheduleInterviewRequest{
			JobID:           jobID,
			Title:           "Technical screen",
			Date:            "2025-01-20",
			Time:            "09:00",
			DurationMinutes: 45,
			AttendeeEmail:   "recruiter@acme.com",
			UserID:          userID,
		}
	}

	t.Run("Success", func(t *testing.T) {
		mockInterviews := new(MockInterviewRepository)
		mockJobs := new(MockJobRepository)
		exporter := new(MockExporter)
		svc := NewInterviewService(mockInterviews, mockJobs, exporter)

		req := baseReq()
		created := &models.Interview{ID: uuid.New(), UserID: userID, JobID: jobID, Title: req.Title, Date: req.Date, Time: req.Time}

		mockJobs.On("GetByID", mock.Anything, &dto.GetJobByIDRequest{ID: jobID, UserID: userID}).Return(job, nil).Once()
		mockInterviews.On("Create", mock.Anything, req).Return(created, nil).Once()
		exporter.On("Export", mock.Anything, created).Return(nil).Once()

		got, err := svc.Schedule(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, created, got)

		mockJobs.AssertExpectations(t)
		mockInterviews.AssertExpectations(t)
		exporter.AssertExpectations(t)
	})

	t.Run("Combined date_time is split", func(t *testing.T) {
		mockInterviews := new(MockInterviewRepository)
		mockJobs := new(MockJobRepository)
		exporter := new(MockExporter)
		svc := NewInterviewService(mockInterviews, mockJobs, exporter)

		req := baseReq()
		req.Date = ""
		req.Time = ""
		req.DateTime = "2025-01-20T09:30"

		mockJobs.On("GetByID", mock.Anything, mock.Anything).Return(job, nil).Once()
		mockInterviews.On("Create", mock.Anything, mock.MatchedBy(func(r *dto.ScheduleInterviewRequest) bool {
			return r.Date == "2025-01-20" && r.Time == "09:30"
		})).Return(&models.Interview{ID: uuid.New()}, nil).Once()
		exporter.On("Export", mock.Anything, mock.Anything).Return(nil).Once()

		_, err := svc.Schedule(ctx, req)
		require.NoError(t, err)
		mockInterviews.AssertExpectations(t)
	})

	t.Run("Malformed date_time", func(t *testing.T) {
		svc := NewInterviewService(new(MockInterviewRepository), new(MockJobRepository), new(MockExporter))

		req := baseReq()
		req.Date = ""
		req.Time = ""
		req.DateTime = "2025-01-20 09:30"

		_, err := svc.Schedule(ctx, req)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Garbage date_time halves never reach the store", func(t *testing.T) {
		mockInterviews := new(MockInterviewRepository)
		mockJobs := new(MockJobRepository)
		svc := NewInterviewService(mockInterviews, mockJobs, new(MockExporter))

		req := baseReq()
		req.Date = ""
		req.Time = ""
		req.DateTime = "not-a-dateTzz:99"

		_, err := svc.Schedule(ctx, req)
		assert.ErrorIs(t, err, ErrValidation)
		mockJobs.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		mockInterviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Bad time half is rejected", func(t *testing.T) {
		mockInterviews := new(MockInterviewRepository)
		svc := NewInterviewService(mockInterviews, new(MockJobRepository), new(MockExporter))

		req := baseReq()
		req.Date = ""
		req.Time = ""
		req.DateTime = "2025-01-20T25:61"

		_, err := svc.Schedule(ctx, req)
		assert.ErrorIs(t, err, ErrValidation)
		mockInterviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Missing date and time", func(t *testing.T) {
		svc := NewInterviewService(new(MockInterviewRepository), new(MockJobRepository), new(MockExporter))

		req := baseReq()
		req.Date = ""
		req.Time = ""

		_, err := svc.Schedule(ctx, req)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Job not found", func(t *testing.T) {
		mockJobs := new(MockJobRepository)
		svc := NewInterviewService(new(MockInterviewRepository), mockJobs, new(MockExporter))

		mockJobs.On("GetByID", mock.Anything, mock.Anything).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.Schedule(ctx, baseReq())
		assert.ErrorIs(t, err, ErrJobNotFound)
		mockJobs.AssertExpectations(t)
	})

	t.Run("Job deleted between lookup and insert", func(t *testing.T) {
		mockInterviews := new(MockInterviewRepository)
		mockJobs := new(MockJobRepository)
		svc := NewInterviewService(mockInterviews, mockJobs, new(MockExporter))

		mockJobs.On("GetByID", mock.Anything, mock.Anything).Return(job, nil).Once()
		mockInterviews.On("Create", mock.Anything, mock.Anything).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.Schedule(ctx, baseReq())
		assert.ErrorIs(t, err, ErrJobNotFound)
		mockInterviews.AssertExpectations(t)
	})

	t.Run("Exporter failure does not unschedule", func(t *testing.T) {
		mockInterviews := new(MockInterviewRepository)
		mockJobs := new(MockJobRepository)
		exporter := new(MockExporter)
		svc := NewInterviewService(mockInterviews, mockJobs, exporter)

		created := &models.Interview{ID: uuid.New(), UserID: userID, JobID: jobID}
		mockJobs.On("GetByID", mock.Anything, mock.Anything).Return(job, nil).Once()
		mockInterviews.On("Create", mock.Anything, mock.Anything).Return(created, nil).Once()
		exporter.On("Export", mock.Anything, created).Return(errors.New("webhook down")).Once()

		got, err := svc.Schedule(ctx, baseReq())
		require.NoError(t, err)
		assert.Equal(t, created, got)
		exporter.AssertExpectations(t)
	})
}

func TestInterviewService_UpdateInterview(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing date and time", func(t *testing.T) {
		svc := NewInterviewService(new(MockInterviewRepository), new(MockJobRepository), new(MockExporter))

		_, err := svc.UpdateInterview(ctx, &dto.UpdateInterviewRequest{
			ID:              uuid.New(),
			UserID:          uuid.New(),
			Title:           "Onsite",
			DurationMinutes: 60,
			AttendeeEmail:   "hr@acme.com",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Garbage date_time halves never reach the store", func(t *testing.T) {
		mockInterviews := new(MockInterviewRepository)
		svc := NewInterviewService(mockInterviews, new(MockJobRepository), new(MockExporter))

		_, err := svc.UpdateInterview(ctx, &dto.UpdateInterviewRequest{
			ID:              uuid.New(),
			UserID:          uuid.New(),
			Title:           "Onsite",
			DateTime:        "not-a-dateTzz:99",
			DurationMinutes: 60,
			AttendeeEmail:   "hr@acme.com",
		})
		assert.ErrorIs(t, err, ErrValidation)
		mockInterviews.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Not found", func(t *testing.T) {
		mockInterviews := new(MockInterviewRepository)
		svc := NewInterviewService(mockInterviews, new(MockJobRepository), new(MockExporter))

		mockInterviews.On("Update", mock.Anything, mock.Anything).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.UpdateInterview(ctx, &dto.UpdateInterviewRequest{
			ID:              uuid.New(),
			UserID:          uuid.New(),
			Title:           "Onsite",
			Date:            "2025-02-01",
			Time:            "14:00",
			DurationMinutes: 60,
			AttendeeEmail:   "hr@acme.com",
		})
		assert.ErrorIs(t, err, ErrNotFound)
		mockInterviews.AssertExpectations(t)
	})
}

func TestInterviewService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("Not found", func(t *testing.T) {
		mockInterviews := new(MockInterviewRepository)
		svc := NewInterviewService(mockInterviews, new(MockJobRepository), new(MockExporter))

		mockInterviews.On("Delete", mock.Anything, mock.Anything).Return(storage.ErrNotFound).Once()

		err := svc.Cancel(ctx, &dto.CancelInterviewRequest{ID: uuid.New(), UserID: uuid.New()})
		assert.ErrorIs(t, err, ErrNotFound)
		mockInterviews.AssertExpectations(t)
	})
}
