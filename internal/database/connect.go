package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"job-tracker-api/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewConnectionPool creates the shared PostgreSQL connection pool. The
// pool is the only shared resource between requests; every repository
// acquires and releases connections per operation.
func NewConnectionPool(cfg config.DBConfig) (*pgxpool.Pool, error) {
	// sslmode=disable suits local and containerized setups; front with a
	// TLS-terminating proxy or adjust the DSN for anything else.
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx config: %w", err)
	}

	// A personal tracker never needs a big pool; keep a couple of warm
	// connections and recycle them hourly.
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	log.Println("Attempting to connect to database...")
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection pool established successfully")
	return pool, nil
}
