package routes

import (
	"job-tracker-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job applications
func RegisterJobRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, authMiddleware gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	jobs.Use(authMiddleware)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("", jobHandler.GetJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)
		jobs.PUT("/:id", jobHandler.UpdateJob)
		jobs.DELETE("/:id", jobHandler.DeleteJob)
	}
}
