// internal/storage/postgres/jobs.go
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

// jobColumns is the SELECT list shared by every job query. The application
// date is rendered as plain YYYY-MM-DD so no timezone math ever touches it.
const jobColumns = `id, user_id, company, position, status,
	to_char(application_date, 'YYYY-MM-DD') AS application_date,
	notes, created_at, updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
// All queries are scoped by user_id: a job owned by a different user is
// indistinguishable from a nonexistent one.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// Create saves a new job application for the owning user.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	query := fmt.Sprintf(`
		INSERT INTO jobs (id, user_id, company, position, status, application_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7, NOW(), NOW())
		RETURNING %s
	`, jobColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(), // Generate ID server-side
		req.UserID,
		req.Company,
		req.Position,
		req.Status,
		req.ApplicationDate,
		req.Notes,
	)

	var createdJob models.Job
	err := scanJob(row, &createdJob)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			log.Printf("Error creating job: owner %s does not exist: %v\n", req.UserID, err)
			return nil, fmt.Errorf("failed to create job: invalid owner: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", createdJob.ID)
	return &createdJob, nil
}

// GetByID retrieves a specific job by ID for its owner.
func (r *JobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		WHERE id = $1 AND user_id = $2
	`, jobColumns)
	row := r.db.QueryRow(ctx, query, req.ID, req.UserID)

	var job models.Job
	err := scanJob(row, &job)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID %s for user %s\n", req.ID, req.UserID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", req.ID, err)
	}

	return &job, nil
}

// ListByOwner retrieves the owner's jobs ordered by application date,
// most recent first.
func (r *JobRepo) ListByOwner(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		WHERE user_id = $1
		ORDER BY application_date DESC, created_at DESC
	`, jobColumns)

	rows, err := r.db.Query(ctx, query, req.UserID)
	if err != nil {
		log.Printf("Error querying jobs for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning jobs for user %s: %v\n", req.UserID, err)
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{} // Return empty slice, not nil
	}

	return jobs, nil
}

// Update replaces every mutable field of the owner's job.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	query := fmt.Sprintf(`
		UPDATE jobs
		SET company = $3, position = $4, status = $5, application_date = $6::date, notes = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING %s
	`, jobColumns)

	row := r.db.QueryRow(ctx, query,
		req.ID,
		req.UserID,
		req.Company,
		req.Position,
		req.Status,
		req.ApplicationDate,
		req.Notes,
	)

	var updatedJob models.Job
	err := scanJob(row, &updatedJob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found for update with ID %s for user %s\n", req.ID, req.UserID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job %s: %w", req.ID, err)
	}

	log.Printf("Job updated successfully: %s", updatedJob.ID)
	return &updatedJob, nil
}

// Delete removes the owner's job by ID. Interview rows are removed by the
// service-level transaction (and mirrored by the FK cascade).
func (r *JobRepo) Delete(ctx context.Context, req *dto.DeleteJobRequest) error {
	query := `DELETE FROM jobs WHERE id = $1 AND user_id = $2`

	cmdTag, err := r.db.Exec(ctx, query, req.ID, req.UserID)
	if err != nil {
		log.Printf("Error deleting job %s: %v\n", req.ID, err)
		return fmt.Errorf("failed to delete job %s: %w", req.ID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Job not found for deletion with ID %s for user %s\n", req.ID, req.UserID)
		return storage.ErrNotFound
	}

	log.Printf("Job deleted successfully: %s", req.ID)
	return nil
}

func scanJob(row pgx.Row, job *models.Job) error {
	return row.Scan(
		&job.ID,
		&job.UserID,
		&job.Company,
		&job.Position,
		&job.Status,
		&job.ApplicationDate,
		&job.Notes,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
}
