// Package token_bucket implements the limiter behind the HTTP rate limit middleware.
package token_bucket

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

// TokenBucket admits up to capacity requests in a burst and refills at
// refillRate tokens per second. Partial tokens carry over between calls.
type TokenBucket struct {
	clock      Clock
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64, clock Clock) *TokenBucket {
	return &TokenBucket{
		clock:      clock,
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: clock.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens >= 1 {
		t.tokens--
		return true
	}
	return false
}

func (t *TokenBucket) refill() {
	now := t.clock.Now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = min(t.capacity, t.tokens+elapsed*t.refillRate)
	t.lastRefill = now
}
