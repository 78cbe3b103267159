// internal/api/routes/routes.go
package routes

import (
	"job-tracker-api/internal/api/handlers"
	"job-tracker-api/internal/api/middleware"
	"job-tracker-api/internal/app"
	"job-tracker-api/internal/services"
	"job-tracker-api/internal/storage/postgres"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Repositories ---
	userRepo := postgres.NewUserRepo(app.DBPool)
	jobRepo := postgres.NewJobRepo(app.DBPool)
	interviewRepo := postgres.NewInterviewRepo(app.DBPool)

	// --- Services ---
	userService := services.NewUserService(userRepo, app.Tokens)
	jobService := services.NewJobService(jobRepo, interviewRepo, app.DBPool)
	interviewService := services.NewInterviewService(interviewRepo, jobRepo, app.Exporter)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(userService, app.Validator)
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	interviewHandler := handlers.NewInterviewHandler(interviewService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Tokens)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(apiV1, authHandler, authMiddleware)
	RegisterJobRoutes(apiV1, jobHandler, authMiddleware)
	RegisterInterviewRoutes(apiV1, interviewHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)
}
