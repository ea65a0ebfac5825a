package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	tokens float64
	last   time.Time
}

// Limiter is a keyed token bucket. Every key gets its own bucket sharing the
// configured capacity and refill rate. A denied call consumes nothing.
type Limiter struct {
	capacity float64
	refill   float64 // tokens per second

	mu sync.Mutex
	m  map[string]*bucket
}

// New creates a limiter with the given burst capacity and refill rate.
func New(capacity, refillPerSec float64) *Limiter {
	return &Limiter{
		capacity: capacity,
		refill:   refillPerSec,
		m:        make(map[string]*bucket),
	}
}

// Allow reports whether one token can be consumed for key.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.m[key]
	if !ok {
		b = &bucket{tokens: l.capacity, last: now}
		l.m[key] = b
	}

	elapsed := now.Sub(b.last).Seconds()
	if elapsed > 0 {
		b.tokens += elapsed * l.refill
		if b.tokens > l.capacity {
			b.tokens = l.capacity
		}
		b.last = now
	}

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}
