package httputil

import (
	"context"
	"errors"
	"testing"
	"time"
)

// swapSleep replaces the backoff sleep with a recorder and restores it on cleanup.
func swapSleep(t *testing.T) *[]time.Duration {
	t.Helper()
	var delays []time.Duration
	orig := sleep
	sleep = func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}
	t.Cleanup(func() { sleep = orig })
	return &delays
}

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	delays := swapSleep(t)

	calls := 0
	err := Retry(context.Background(), 4, 500*time.Millisecond, func() error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
	if len(*delays) != 0 {
		t.Errorf("slept %d times, want 0", len(*delays))
	}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	delays := swapSleep(t)

	calls := 0
	err := Retry(context.Background(), 4, 500*time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return Retryable(errors.New("connection reset"))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry() error: %v", err)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}

	// Two failures before success: 500ms then 1s of backoff.
	want := []time.Duration{500 * time.Millisecond, time.Second}
	if len(*delays) != len(want) {
		t.Fatalf("slept %d times, want %d", len(*delays), len(want))
	}
	for i, d := range want {
		if (*delays)[i] != d {
			t.Errorf("delay[%d] = %v, want %v", i, (*delays)[i], d)
		}
	}
}

func TestRetryExhaustsBudget(t *testing.T) {
	delays := swapSleep(t)

	final := errors.New("still down")
	calls := 0
	err := Retry(context.Background(), 4, 500*time.Millisecond, func() error {
		calls++
		return Retryable(final)
	})
	if calls != 4 {
		t.Errorf("fn called %d times, want 4 (initial + 3 retries)", calls)
	}
	if !errors.Is(err, final) {
		t.Errorf("Retry() should surface the last underlying error, got %v", err)
	}
	// No sleep after the final attempt.
	want := []time.Duration{500 * time.Millisecond, time.Second, 2 * time.Second}
	if len(*delays) != len(want) {
		t.Fatalf("slept %d times, want %d", len(*delays), len(want))
	}
}

func TestRetryNonRetryableFailsFast(t *testing.T) {
	delays := swapSleep(t)

	fatal := errors.New("bad credentials")
	calls := 0
	err := Retry(context.Background(), 4, 500*time.Millisecond, func() error {
		calls++
		return fatal
	})
	if calls != 1 {
		t.Errorf("fn called %d times, want 1", calls)
	}
	if !errors.Is(err, fatal) {
		t.Errorf("Retry() = %v, want %v", err, fatal)
	}
	if len(*delays) != 0 {
		t.Errorf("slept %d times, want 0", len(*delays))
	}
}

func TestRetryContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 4, time.Millisecond, func() error {
		return Retryable(errors.New("transient"))
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Retry() = %v, want context.Canceled", err)
	}
}

func TestRetryAtLeastOneAttempt(t *testing.T) {
	calls := 0
	_ = Retry(context.Background(), 0, time.Millisecond, func() error {
		calls++
		return nil
	})
	if calls != 1 {
		t.Errorf("fn called %d times, want 1 even with attempts=0", calls)
	}
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(errors.New("plain")) {
		t.Error("plain errors are not retryable")
	}
	if !IsRetryable(Retryable(errors.New("transient"))) {
		t.Error("wrapped errors are retryable")
	}
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should be nil")
	}
}
