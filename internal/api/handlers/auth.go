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
)

// AuthHandler holds the service dependency for account operations
type AuthHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given service
func NewAuthHandler(service services.UserService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{service: service, validator: validate}
}

// Register creates a new account and returns it with a session token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error(), "code": "invalid_body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "code": "validation_failed", "details": FormatValidationErrors(err)})
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already registered", "code": "email_taken"})
		} else {
			log.Printf("Error registering user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register", "code": "internal_error"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  MapUserModelToUserResponse(user),
		Token: token,
	})
}

// Login verifies credentials and returns the account with a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error(), "code": "invalid_body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "code": "validation_failed", "details": FormatValidationErrors(err)})
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password", "code": "invalid_credentials"})
		} else {
			log.Printf("Error logging in: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in", "code": "internal_error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  MapUserModelToUserResponse(user),
		Token: token,
	})
}

// Me returns the authenticated user's own profile.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required", "code": "unauthorized"})
		return
	}

	user, err := h.service.GetUserByID(c.Request.Context(), &dto.GetUserByIdRequest{ID: userID})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found", "code": "not_found"})
		} else {
			log.Printf("Error fetching user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user", "code": "internal_error"})
		}
		return
	}

	c.JSON(http.StatusOK, MapUserModelToUserResponse(user))
}
