package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// RetryConfig defines retry behavior
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	EnableRetry  bool
}

// DefaultRetryConfig returns sensible defaults for retry behavior
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		Multiplier:   2.0,
		EnableRetry:  true,
	}
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Don't retry context errors (timeout, cancellation)
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}

	// Don't retry "no rows" errors
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}

	// Check for pgx/PostgreSQL specific errors
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "23"):
			// Constraint and integrity violations never resolve on retry
			return false

		case strings.HasPrefix(pgErr.Code, "42"):
			// Syntax and access rule violations are programming errors
			return false

		case pgErr.Code == "40001" || pgErr.Code == "40P01":
			// serialization_failure / deadlock_detected are transaction
			// conflicts worth retrying
			return true

		case strings.HasPrefix(pgErr.Code, "08"):
			// Connection errors are retryable
			return true

		case strings.HasPrefix(pgErr.Code, "53"):
			// Resource errors (too many connections, out of memory)
			return true

		case pgErr.Code == "57P03": // cannot_connect_now
			return true

		default:
			return false
		}
	}

	// Check error message for common transient issues
	errMsg := strings.ToLower(err.Error())

	// Network and connection errors
	if strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "no such host") ||
		strings.Contains(errMsg, "network is unreachable") ||
		strings.Contains(errMsg, "i/o timeout") ||
		strings.Contains(errMsg, "eof") ||
		strings.Contains(errMsg, "connection closed") ||
		strings.Contains(errMsg, "bad connection") {
		return true
	}

	// Database temporary issues
	if strings.Contains(errMsg, "too many clients") ||
		strings.Contains(errMsg, "server is not accepting") ||
		strings.Contains(errMsg, "connection pool exhausted") ||
		strings.Contains(errMsg, "temporary failure") {
		return true
	}

	// Default: don't retry
	return false
}

// RetryWithBackoff executes a function with exponential backoff retry logic
func RetryWithBackoff(ctx context.Context, config RetryConfig, operation func() error) error {
	if !config.EnableRetry {
		return operation()
	}

	var lastErr error
	delay := config.InitialDelay

	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		if !isRetryableError(err) {
			return err
		}

		if attempt >= config.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay = time.Duration(float64(delay) * config.Multiplier)
			if delay > config.MaxDelay {
				delay = config.MaxDelay
			}
		}
	}

	return lastErr
}

// WithRetry wraps a database operation with retry logic
func WithRetry(ctx context.Context, fn func() error) error {
	return RetryWithBackoff(ctx, DefaultRetryConfig(), fn)
}
