// internal/app/app.go
package app

import (
	"job-tracker-api/config"
	"job-tracker-api/internal/auth"
	"job-tracker-api/internal/calendar"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Application holds core application dependencies.
type Application struct {
	Config    *config.Config
	DBPool    *pgxpool.Pool
	Validator *validator.Validate
	Tokens    *auth.TokenManager
	Exporter  calendar.Exporter
}
