package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema statements, applied in order at startup. The jobs -> interviews
// cascade is declared here and also enforced transactionally by the job
// service, so orphaned interviews cannot exist either way.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		company TEXT NOT NULL,
		position TEXT NOT NULL,
		status TEXT NOT NULL CHECK (status IN ('applied', 'interviewing', 'offer', 'rejected', 'pending', 'accepted')),
		application_date DATE NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_user_application_date ON jobs (user_id, application_date DESC)`,
	`CREATE TABLE IF NOT EXISTS interviews (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		job_id UUID NOT NULL REFERENCES jobs(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		date DATE NOT NULL,
		time TIME NOT NULL,
		duration_minutes INTEGER NOT NULL CHECK (duration_minutes > 0),
		location TEXT NOT NULL DEFAULT '',
		attendee_email TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_interviews_user_date_time ON interviews (user_id, date, time)`,
}

// Migrate applies the schema statements. Every statement is idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement %d failed: %w", i+1, err)
		}
	}
	log.Println("Database schema up to date")
	return nil
}
