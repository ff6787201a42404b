package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/bike-storefront/internal/config"
)

type memoryLimiter struct {
	mu        sync.Mutex
	attempts  map[string][]time.Time
	lastSweep time.Time
	cfg       config.RateConfig
	now       func() time.Time
}

func NewMemoryLimiter(cfg config.RateConfig, now func() time.Time) Limiter {
	return &memoryLimiter{
		attempts:  make(map[string][]time.Time),
		lastSweep: now(),
		cfg:       cfg,
		now:       now,
	}
}

func (m *memoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	windowStart := now.Add(-m.cfg.WindowSize)

	m.sweep(now, windowStart)

	kept := inWindow(m.attempts[key], windowStart)
	kept = append(kept, now)
	m.attempts[key] = kept

	attempts := int64(len(kept))
	if attempts > m.cfg.MaxAttempts {
		return reject(kept[0], now, m.cfg.WindowSize), nil
	}

	return Result{Allowed: true, Remaining: int(m.cfg.MaxAttempts - attempts)}, nil
}

// sweep forgets keys with no attempt inside the window, at most once per
// window. Caller holds mu.
func (m *memoryLimiter) sweep(now, windowStart time.Time) {
	if now.Sub(m.lastSweep) < m.cfg.WindowSize {
		return
	}

	for key, attempts := range m.attempts {
		if kept := inWindow(attempts, windowStart); len(kept) == 0 {
			delete(m.attempts, key)
		} else {
			m.attempts[key] = kept
		}
	}

	m.lastSweep = now
}

func inWindow(attempts []time.Time, windowStart time.Time) []time.Time {
	kept := attempts[:0]
	for _, at := range attempts {
		if at.After(windowStart) {
			kept = append(kept, at)
		}
	}

	return kept
}
