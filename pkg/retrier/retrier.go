package retrier

import (
	"context"
	"errors"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// ShouldRetry reports whether a failed attempt may be repeated.
type ShouldRetry func(error) bool

// OnRetry observes a failed attempt before the retrier sleeps for next.
type OnRetry func(err error, next time.Duration)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64
	MaxRetries      uint64 // 0 is unlimited within MaxElapsedTime

	ShouldRetry ShouldRetry // nil retries every error
	OnRetry     OnRetry
}

// RetryUnless retries every error except those matching one of permanent.
// Context cancellation and deadlines are always permanent.
func RetryUnless(permanent ...error) ShouldRetry {
	permanent = append(permanent, context.Canceled, context.DeadlineExceeded)
	return func(err error) bool {
		for _, target := range permanent {
			if errors.Is(err, target) {
				return false
			}
		}
		return true
	}
}
