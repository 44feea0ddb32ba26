package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool     *pgxpool.Pool
	poolOnce sync.Once
)

// InitDB opens the shared connection pool for run history. It reads
// DATABASE_URL and pings the server so a bad URL fails at startup rather
// than on the first saved run.
func InitDB(ctx context.Context) error {
	var err error
	poolOnce.Do(func() {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			err = fmt.Errorf("DATABASE_URL environment variable not set")
			return
		}

		cfg, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database config: %w", parseErr)
			return
		}
		cfg.MaxConns = 4 // run history is low traffic

		pool, err = pgxpool.NewWithConfig(ctx, cfg)
		if err != nil {
			return
		}
		if pingErr := pool.Ping(ctx); pingErr != nil {
			pool.Close()
			pool = nil
			err = fmt.Errorf("database unreachable: %w", pingErr)
		}
	})
	return err
}

// GetPool returns the run-history pool, nil when no database is configured.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close releases the pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
