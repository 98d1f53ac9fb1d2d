package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsRetryableError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"context deadline", context.DeadlineExceeded, false},
		{"context canceled", context.Canceled, false},
		{"no rows", sql.ErrNoRows, false},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"connection failure", &pgconn.PgError{Code: "08006"}, true},
		{"too many connections", &pgconn.PgError{Code: "53300"}, true},
		{"cannot connect now", &pgconn.PgError{Code: "57P03"}, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"syntax error", &pgconn.PgError{Code: "42601"}, false},
		{"connection refused message", errors.New("dial tcp: connection refused"), true},
		{"broken pipe message", errors.New("write: broken pipe"), true},
		{"pool exhausted message", errors.New("connection pool exhausted"), true},
		{"plain application error", errors.New("invalid product title"), false},
	}

	for _, c := range cases {
		if got := isRetryableError(c.err); got != c.want {
			t.Fatalf("%s: isRetryableError = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRetryWithBackoffStopsOnPermanentError(t *testing.T) {
	calls := 0
	permanent := errors.New("column does not exist")

	err := RetryWithBackoff(context.Background(), fastRetryConfig(), func() error {
		calls++
		return permanent
	})

	if !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("permanent error must not be retried, got %d calls", calls)
	}
}

func TestRetryWithBackoffRetriesUntilSuccess(t *testing.T) {
	calls := 0

	err := RetryWithBackoff(context.Background(), fastRetryConfig(), func() error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestRetryWithBackoffGivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	transient := errors.New("connection reset by peer")

	err := RetryWithBackoff(context.Background(), fastRetryConfig(), func() error {
		calls++
		return transient
	})

	if !errors.Is(err, transient) {
		t.Fatalf("expected the last error back, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected MaxAttempts calls, got %d", calls)
	}
}

func TestRetryDisabledRunsOnce(t *testing.T) {
	cfg := fastRetryConfig()
	cfg.EnableRetry = false

	calls := 0
	_ = RetryWithBackoff(context.Background(), cfg, func() error {
		calls++
		return errors.New("connection refused")
	})

	if calls != 1 {
		t.Fatalf("expected a single call with retry disabled, got %d", calls)
	}
}

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2.0,
		EnableRetry:  true,
	}
}
