// internal/storage/postgres/users.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"job-tracker-api/internal/models"
	"job-tracker-api/internal/storage"
	"job-tracker-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

// Create stores a new user with a bcrypt hash of the supplied password.
// The raw password never reaches the database.
func (r *UserRepo) Create(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password for email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, name, email, password_hash, created_at
	`

	row := r.db.QueryRow(ctx, query, uuid.New(), req.Name, req.Email, string(hashedPassword))

	var createdUser models.User
	err = row.Scan(
		&createdUser.ID,
		&createdUser.Name,
		&createdUser.Email,
		&createdUser.PasswordHash,
		&createdUser.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			log.Printf("Attempted to create user with duplicate email %s\n", req.Email)
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error creating user with email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("User created successfully with ID: %s", createdUser.ID)
	return &createdUser, nil
}

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, req *dto.GetUserByIdRequest) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, req.ID)

	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with ID: %s\n", req.ID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", req.ID, err)
	}

	return &user, nil
}

// GetByEmail retrieves a single user by email (including password hash,
// so the service can verify credentials).
func (r *UserRepo) GetByEmail(ctx context.Context, req *dto.GetUserByEmailRequest) (*models.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	row := r.db.QueryRow(ctx, query, req.Email)

	var user models.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with email: %s\n", req.Email)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by email %s: %v\n", req.Email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}
