package routes

import (
	"job-tracker-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterInterviewRoutes registers all routes related to interviews
func RegisterInterviewRoutes(rg *gin.RouterGroup, interviewHandler *handlers.InterviewHandler, authMiddleware gin.HandlerFunc) {
	interviews := rg.Group("/interviews")
	interviews.Use(authMiddleware)
	{
		interviews.POST("/schedule", interviewHandler.ScheduleInterview)
		interviews.GET("", interviewHandler.GetInterviews)
		interviews.GET("/:id", interviewHandler.GetInterviewByID)
		interviews.PUT("/:id", interviewHandler.UpdateInterview)
		interviews.DELETE("/:id", interviewHandler.CancelInterview)
	}
}
