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

// JobHandler holds the service dependency for job operations
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler with the given service
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{service: service, validator: validate}
}

// CreateJob records a new job application for the authenticated user.
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error(), "code": "invalid_body"})
		return
	}
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "code": "validation_failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job", "code": "internal_error"})
		return
	}

	c.JSON(http.StatusCreated, MapJobModelToJobResponse(job))
}

// GetJobs lists the authenticated user's jobs, most recent application first.
func (h *JobHandler) GetJobs(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "unauthorized"})
		return
	}

	jobs, err := h.service.ListJobs(c.Request.Context(), &dto.ListJobsRequest{UserID: userID})
	if err != nil {
		log.Printf("Error listing jobs for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs", "code": "internal_error"})
		return
	}

	resp := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, MapJobModelToJobResponse(&jobs[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// GetJobByID retrieves one of the authenticated user's jobs.
func (h *JobHandler) GetJobByID(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID", "code": "invalid_id"})
		return
	}

	job, err := h.service.GetJobByID(c.Request.Context(), &dto.GetJobByIDRequest{ID: id, UserID: userID})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found", "code": "not_found"})
		} else {
			log.Printf("Error fetching job %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job", "code": "internal_error"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// UpdateJob replaces one of the authenticated user's jobs.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID", "code": "invalid_id"})
		return
	}

	var req dto.UpdateJobRequest
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

	job, err := h.service.UpdateJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found", "code": "not_found"})
		} else {
			log.Printf("Error updating job %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job", "code": "internal_error"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// DeleteJob removes one of the authenticated user's jobs along with every
// interview scheduled against it.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID", "code": "invalid_id"})
		return
	}

	err = h.service.DeleteJob(c.Request.Context(), &dto.DeleteJobRequest{ID: id, UserID: userID})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found", "code": "not_found"})
		} else {
			log.Printf("Error deleting job %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job", "code": "internal_error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job and associated interviews deleted"})
}
