package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy controls how many times an operation is attempted and how long to
// wait between attempts. Backoff and Sleep are injectable so callers can be
// tested without real delays.
type Policy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
	Sleep       func(ctx context.Context, d time.Duration) error
}

const DefaultMaxAttempts = 3

// ExponentialBackoff waits 2^attempt seconds: 2s before the first retry,
// then 4s, 8s, and so on.
func ExponentialBackoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return time.Duration(1<<uint(attempt)) * time.Second
}

func ContextSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: DefaultMaxAttempts,
		Backoff:     ExponentialBackoff,
		Sleep:       ContextSleep,
	}
}

func (p Policy) normalized() Policy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.Backoff == nil {
		p.Backoff = ExponentialBackoff
	}
	if p.Sleep == nil {
		p.Sleep = ContextSleep
	}
	return p
}

// Do runs fn up to MaxAttempts times, sleeping Backoff(attempt) between
// attempts. onRetry, when non-nil, is invoked before each wait with the
// attempt number (starting at 1), the upcoming wait and the error that
// triggered the retry. The last error is returned once attempts run out.
func (p Policy) Do(ctx context.Context, fn func() error, onRetry func(attempt int, wait time.Duration, err error)) (int, error) {
	p = p.normalized()

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return attempt - 1, err
		}

		lastErr = fn()
		if lastErr == nil {
			return attempt, nil
		}
		if attempt == p.MaxAttempts {
			return attempt, lastErr
		}

		wait := p.Backoff(attempt)
		if onRetry != nil {
			onRetry(attempt, wait, lastErr)
		}
		if err := p.Sleep(ctx, wait); err != nil {
			return attempt, err
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("retry: no attempts executed")
	}
	return p.MaxAttempts, lastErr
}
