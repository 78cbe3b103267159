// internal/services/user_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"job-tracker-api/internal/auth"
	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"

	"golang.org/x/crypto/bcrypt"
)

// userService implements the UserService interface.
type userService struct {
	userRepo storage.UserRepository
	tokens   *auth.TokenManager
}

// NewUserService creates a new user service instance.
func NewUserService(userRepo storage.UserRepository, tokens *auth.TokenManager) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

// Register creates a new account and returns the user with a fresh session
// token, so clients are signed in immediately after registering.
func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, string, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) {
			return nil, "", ErrEmailTaken
		}
		log.Printf("Service: Error registering user: %v\n", err)
		return nil, "", fmt.Errorf("could not register user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, nil)
	if err != nil {
		log.Printf("Service: Error issuing token for user %s: %v\n", user.ID, err)
		return nil, "", fmt.Errorf("could not issue token: %w", err)
	}

	return user, token, nil
}

// Login verifies credentials and returns the user with a session token.
// A missing account and a wrong password produce the same error, so the
// response does not reveal which emails are registered.
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, &dto.GetUserByEmailRequest{Email: email})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		log.Printf("Service: Error fetching user for login: %v\n", err)
		return nil, "", fmt.Errorf("could not log in: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, nil)
	if err != nil {
		log.Printf("Service: Error issuing token for user %s: %v\n", user.ID, err)
		return nil, "", fmt.Errorf("could not issue token: %w", err)
	}

	return user, token, nil
}

// GetUserByID fetches a user's profile.
func (s *userService) GetUserByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("Service: Error getting user by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	return user, nil
}
