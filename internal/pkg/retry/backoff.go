// Package retry retries backend dials with capped exponential backoff.
package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/dispatch/internal/pkg/logger"
)

// Policy bounds how often and how slowly a dial is retried
type Policy struct {
	Attempts   int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool
	// Retryable reports whether an error is worth another attempt. Nil retries everything.
	Retryable func(error) bool
}

// DefaultPolicy covers a backend that is still starting next to the service
func DefaultPolicy() Policy {
	return Policy{
		Attempts:   5,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   10 * time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier runs dials under a Policy
type Retrier struct {
	policy Policy
	logger *logger.ZapLogger
	sleep  func(context.Context, time.Duration) error
}

// New creates a Retrier. A nil logger falls back to the global one.
func New(policy Policy, l *logger.ZapLogger) *Retrier {
	if policy.Attempts < 1 {
		policy.Attempts = 1
	}
	if policy.Multiplier < 1 {
		policy.Multiplier = 1
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &Retrier{policy: policy, logger: l, sleep: sleepCtx}
}

// Do calls fn until it succeeds, the error is not retryable, attempts run out or ctx ends
func (r *Retrier) Do(ctx context.Context, name string, fn func(context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= r.policy.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			if attempt > 1 {
				r.logger.Info("Connected after retries",
					logger.String("backend", name),
					logger.Int("attempt", attempt))
			}
			return nil
		}
		if r.policy.Retryable != nil && !r.policy.Retryable(lastErr) {
			return lastErr
		}
		if attempt == r.policy.Attempts {
			break
		}

		delay := r.Delay(attempt)
		r.logger.Warn("Connection failed, retrying",
			logger.String("backend", name),
			logger.Err(lastErr),
			logger.Int("attempt", attempt),
			logger.Duration("delay", delay))
		if err := r.sleep(ctx, delay); err != nil {
			return err
		}
	}

	return fmt.Errorf("%s: giving up after %d attempts: %w", name, r.policy.Attempts, lastErr)
}

// Delay returns the wait after the given failed attempt, counting from 1
func (r *Retrier) Delay(attempt int) time.Duration {
	delay := float64(r.policy.BaseDelay) * math.Pow(r.policy.Multiplier, float64(attempt-1))
	if limit := float64(r.policy.MaxDelay); limit > 0 && delay > limit {
		delay = limit
	}
	if r.policy.Jitter {
		delay += delay * 0.1 * rand.Float64()
	}
	return time.Duration(delay)
}

// Dial retries a constructor and returns the value it produced
func Dial[T any](ctx context.Context, r *Retrier, name string, open func(context.Context) (T, error)) (T, error) {
	var out T
	err := r.Do(ctx, name, func(ctx context.Context) error {
		v, err := open(ctx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
