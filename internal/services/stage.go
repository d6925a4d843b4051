package services

import (
	"context"
	"time"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
)

// runStage times one pipeline stage and logs its outcome.
func runStage(log *logger.Logger, name string, fn func() error) error {
	start := time.Now()
	log.Info("Stage started", "stage", name)
	if err := fn(); err != nil {
		log.Error("Stage failed", "stage", name, "elapsed_ms", time.Since(start).Milliseconds(), "error", err)
		return err
	}
	log.Info("Stage complete", "stage", name, "elapsed_ms", time.Since(start).Milliseconds())
	return nil
}

// withRetry runs fn up to attempts times with a fixed delay between tries.
func withRetry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}
