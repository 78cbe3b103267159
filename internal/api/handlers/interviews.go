package handlers

import (
	"errors"
	"log"
	"net/http"

	"job-tracker-api/internal/api/middleware"
	"job-tracker-api/internal/services"
	"job-tracker-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// InterviewHandler holds the service dependency for interview operations
type InterviewHandler struct {
	service   services.InterviewService
	validator *validator.Validate
}

// NewInterviewHandler creates a new InterviewHandler with the given service
func NewInterviewHandler(service services.InterviewService, validate *validator.Validate) *InterviewHandler {
	return &InterviewHandler{service: service, validator: validate}
}

// ScheduleInterview books an interview against one of the caller's jobs.
// Scheduling against a job the caller does not own reports job-not-found,
// the same as a job that does not exist.
func (h *InterviewHandler) ScheduleInterview(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "unauthorized"})
		return
	}

	var req dto.ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error(), "code": "invalid_body"})
		return
	}
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "code": "validation_failed", "details": FormatValidationErrors(err)})
		return
	}

	interview, err := h.service.Schedule(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found", "code": "job_not_found"})
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_failed"})
		default:
			log.Printf("Error scheduling interview: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule interview", "code": "internal_error"})
		}
		return
	}

	c.JSON(http.StatusOK, MapInterviewModelToResponse(interview))
}

// GetInterviews lists the caller's interviews in chronological order.
func (h *InterviewHandler) GetInterviews(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "unauthorized"})
		return
	}

	interviews, err := h.service.ListInterviews(c.Request.Context(), &dto.ListInterviewsRequest{UserID: userID})
	if err != nil {
		log.Printf("Error listing interviews for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve interviews", "code": "internal_error"})
		return
	}

	resp := make([]dto.InterviewResponse, 0, len(interviews))
	for i := range interviews {
		resp = append(resp, MapInterviewModelToResponse(&interviews[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetInterviewByID retrieves one of the caller's interviews.
func (h *InterviewHandler) GetInterviewByID(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview ID", "code": "invalid_id"})
		return
	}

	interview, err := h.service.GetInterviewByID(c.Request.Context(), &dto.GetInterviewByIDRequest{ID: id, UserID: userID})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found", "code": "not_found"})
		} else {
			log.Printf("Error fetching interview %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve interview", "code": "internal_error"})
		}
		return
	}

	c.JSON(http.StatusOK, MapInterviewModelToResponse(interview))
}

// UpdateInterview replaces one of the caller's interviews. The owning job
// cannot be changed.
func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview ID", "code": "invalid_id"})
		return
	}

	var req dto.UpdateInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error(), "code": "invalid_body"})
		return
	}
	req.ID = id
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "code": "validation_failed", "details": FormatValidationErrors(err)})
		return
	}

	interview, err := h.service.UpdateInterview(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found", "code": "not_found"})
		case errors.Is(err, services.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "validation_failed"})
		default:
			log.Printf("Error updating interview %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update interview", "code": "internal_error"})
		}
		return
	}

	c.JSON(http.StatusOK, MapInterviewModelToResponse(interview))
}

// CancelInterview removes one of the caller's interviews.
func (h *InterviewHandler) CancelInterview(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid interview ID", "code": "invalid_id"})
		return
	}

	err = h.service.Cancel(c.Request.Context(), &dto.CancelInterviewRequest{ID: id, UserID: userID})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Interview not found", "code": "not_found"})
		} else {
			log.Printf("Error canceling interview %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel interview", "code": "internal_error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Interview canceled"})
}
