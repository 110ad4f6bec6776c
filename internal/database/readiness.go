package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// ReadinessWaiter blocks startup until the database answers pings
type ReadinessWaiter struct {
	db  *sql.DB
	log *slog.Logger
}

func NewReadinessWaiter(db *sql.DB, log *slog.Logger) *ReadinessWaiter {
	return &ReadinessWaiter{
		db:  db,
		log: log,
	}
}

// WaitForDatabase pings up to maxRetries times, retryInterval apart
func (w *ReadinessWaiter) WaitForDatabase(ctx context.Context) error {
	w.log.Info("Waiting for database to be ready")

	for i := 0; i < maxRetries; i++ {
		err := w.db.PingContext(ctx)
		if err == nil {
			w.log.Info("Database is ready", "attempts", i+1)
			return nil
		}

		w.log.Warn("Database not ready", "attempt", i+1, "max_attempts", maxRetries, "error", err)

		if i == maxRetries-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}
