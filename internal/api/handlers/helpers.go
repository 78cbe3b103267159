package handlers

import (
	"fmt"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts validator errors into a field -> message
// map suitable for the error response body.
func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		case "datetime":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must match the format %s", fieldName, fieldError.Param())
		case "gt":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be greater than %s", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// MapUserModelToUserResponse converts a models.User to a dto.UserResponse
func MapUserModelToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// MapJobModelToJobResponse converts a models.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:              job.ID,
		UserID:          job.UserID,
		Company:         job.Company,
		Position:        job.Position,
		Status:          job.Status,
		ApplicationDate: job.ApplicationDate,
		Notes:           job.Notes,
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}
}

// MapInterviewModelToResponse converts a models.Interview to a dto.InterviewResponse
func MapInterviewModelToResponse(iv *models.Interview) dto.InterviewResponse {
	return dto.InterviewResponse{
		ID:              iv.ID,
		UserID:          iv.UserID,
		JobID:           iv.JobID,
		Title:           iv.Title,
		Date:            iv.Date,
		Time:            iv.Time,
		DurationMinutes: iv.DurationMinutes,
		Location:        iv.Location,
		AttendeeEmail:   iv.AttendeeEmail,
		Description:     iv.Description,
		CreatedAt:       iv.CreatedAt,
	}
}
