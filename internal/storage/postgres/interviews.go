// internal/storage/postgres/interviews.go
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
)

// interviewColumns renders date and time as the exact wall-clock strings
// that were stored; no timezone conversion happens on either side.
const interviewColumns = `id, user_id, job_id, title,
	to_char(date, 'YYYY-MM-DD') AS date,
	to_char(time, 'HH24:MI') AS time,
	duration_minutes, location, attendee_email, description, created_at`

// InterviewRepo implements the storage.InterviewRepository interface using
// PostgreSQL. All queries are owner-scoped like JobRepo's.
type InterviewRepo struct {
	db Querier
}

// NewInterviewRepo creates a new InterviewRepo.
func NewInterviewRepo(db *pgxpool.Pool) *InterviewRepo {
	return &InterviewRepo{db: db}
}

// WithTx creates a new InterviewRepo bound to the transaction.
func (r *InterviewRepo) WithTx(tx pgx.Tx) storage.InterviewRepository {
	return &InterviewRepo{db: tx}
}

// Compile-time check to ensure InterviewRepo implements InterviewRepository
var _ storage.InterviewRepository = (*InterviewRepo)(nil)

// Create persists a new interview. The service has already resolved the
// owning job, so req.UserID is the job owner's ID, not caller input.
func (r *InterviewRepo) Create(ctx context.Context, req *dto.ScheduleInterviewRequest) (*models.Interview, error) {
	query := fmt.Sprintf(`
		INSERT INTO interviews (id, user_id, job_id, title, date, time, duration_minutes, location, attendee_email, description, created_at)
		VALUES ($1, $2, $3, $4, $5::date, $6::time, $7, $8, $9, $10, NOW())
		RETURNING %s
	`, interviewColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.UserID,
		req.JobID,
		req.Title,
		req.Date,
		req.Time,
		req.DurationMinutes,
		req.Location,
		req.AttendeeEmail,
		req.Description,
	)

	var created models.Interview
	err := scanInterview(row, &created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			// The job was deleted between the ownership check and this
			// insert; to the caller that is the same as job-not-found.
			log.Printf("Error creating interview: job %s no longer exists\n", req.JobID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error creating interview for job %s: %v\n", req.JobID, err)
		return nil, fmt.Errorf("failed to create interview: %w", err)
	}

	log.Printf("Interview created successfully with ID: %s", created.ID)
	return &created, nil
}

// GetByID retrieves a specific interview by ID for its owner.
func (r *InterviewRepo) GetByID(ctx context.Context, req *dto.GetInterviewByIDRequest) (*models.Interview, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM interviews
		WHERE id = $1 AND user_id = $2
	`, interviewColumns)
	row := r.db.QueryRow(ctx, query, req.ID, req.UserID)

	var iv models.Interview
	err := scanInterview(row, &iv)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Interview not found with ID %s for user %s\n", req.ID, req.UserID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning interview by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get interview by ID %s: %w", req.ID, err)
	}

	return &iv, nil
}

// ListByOwner retrieves the owner's interviews ordered by date, then time.
func (r *InterviewRepo) ListByOwner(ctx context.Context, req *dto.ListInterviewsRequest) ([]models.Interview, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM interviews
		WHERE user_id = $1
		ORDER BY date ASC, time ASC
	`, interviewColumns)

	rows, err := r.db.Query(ctx, query, req.UserID)
	if err != nil {
		log.Printf("Error querying interviews for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to query interviews: %w", err)
	}
	defer rows.Close()

	interviews, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Interview])
	if err != nil {
		log.Printf("Error scanning interviews for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to scan interviews: %w", err)
	}

	if interviews == nil {
		interviews = []models.Interview{}
	}

	return interviews, nil
}

// Update replaces every mutable field of the owner's interview. The owning
// job reference is deliberately not part of the SET list.
func (r *InterviewRepo) Update(ctx context.Context, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	query := fmt.Sprintf(`
		UPDATE interviews
		SET title = $3, date = $4::date, time = $5::time, duration_minutes = $6, location = $7, attendee_email = $8, description = $9
		WHERE id = $1 AND user_id = $2
		RETURNING %s
	`, interviewColumns)

	row := r.db.QueryRow(ctx, query,
		req.ID,
		req.UserID,
		req.Title,
		req.Date,
		req.Time,
		req.DurationMinutes,
		req.Location,
		req.AttendeeEmail,
		req.Description,
	)

	var updated models.Interview
	err := scanInterview(row, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Interview not found for update with ID %s for user %s\n", req.ID, req.UserID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating interview %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update interview %s: %w", req.ID, err)
	}

	log.Printf("Interview updated successfully: %s", updated.ID)
	return &updated, nil
}

// Delete removes the owner's interview by ID.
func (r *InterviewRepo) Delete(ctx context.Context, req *dto.CancelInterviewRequest) error {
	query := `DELETE FROM interviews WHERE id = $1 AND user_id = $2`

	cmdTag, err := r.db.Exec(ctx, query, req.ID, req.UserID)
	if err != nil {
		log.Printf("Error deleting interview %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete interview %s: %w", req.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Interview not found for deletion with ID %s for user %s\n", req.ID, req.UserID)
		return storage.ErrNotFound
	}

	log.Printf("Interview canceled successfully: %s", req.ID)
	return nil
}

// DeleteByJobID removes every interview attached to a job. Called inside
// the job-deletion transaction; zero rows is not an error.
func (r *InterviewRepo) DeleteByJobID(ctx context.Context, jobID uuid.UUID) error {
	query := `DELETE FROM interviews WHERE job_id = $1`

	cmdTag, err := r.db.Exec(ctx, query, jobID)
	if err != nil {
		log.Printf("Error deleting interviews for job %s: %v\n", jobID, err)
		return fmt.Errorf("failed to delete interviews for job %s: %w", jobID, err)
	}

	log.Printf("Deleted %d interview(s) for job %s", cmdTag.RowsAffected(), jobID)
	return nil
}

func scanInterview(row pgx.Row, iv *models.Interview) error {
	return row.Scan(
		&iv.ID,
		&iv.UserID,
		&iv.JobID,
		&iv.Title,
		&iv.Date,
		&iv.Time,
		&iv.DurationMinutes,
		&iv.Location,
		&iv.AttendeeEmail,
		&iv.Description,
		&iv.CreatedAt,
	)
}
