package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/bike-storefront/internal/models"
)

const (
	DefaultInboxSize = 20
	DefaultInboxTTL  = 10 * time.Minute
)

type queue struct {
	toasts  []models.Toast
	touched time.Time
}

// Inbox buffers toasts per session until the client drains them. When a
// session's buffer is full the oldest toast is dropped, and a buffer nobody
// has added to for the TTL is forgotten.
type Inbox struct {
	mu        sync.Mutex
	size      int
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
	queues    map[string]*queue
	logger    *slog.Logger
}

func NewInbox(size int, logger *slog.Logger) *Inbox {
	return NewInboxWithExpiry(size, DefaultInboxTTL, time.Now, logger)
}

func NewInboxWithExpiry(size int, ttl time.Duration, now func() time.Time, logger *slog.Logger) *Inbox {
	if size <= 0 {
		size = DefaultInboxSize
	}

	if ttl <= 0 {
		ttl = DefaultInboxTTL
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Inbox{
		size:      size,
		ttl:       ttl,
		now:       now,
		lastSweep: now(),
		queues:    make(map[string]*queue),
		logger:    logger,
	}
}

func (i *Inbox) Notify(_ context.Context, sessionID string, toast models.Toast) {
	i.mu.Lock()
	defer i.mu.Unlock()

	now := i.now()
	i.sweep(now)

	q, ok := i.queues[sessionID]
	if !ok || i.expired(q, now) {
		q = &queue{}
		i.queues[sessionID] = q
	}

	q.toasts = append(q.toasts, toast)
	if len(q.toasts) > i.size {
		q.toasts = q.toasts[len(q.toasts)-i.size:]
	}

	q.touched = now

	i.logger.Debug("Toast queued",
		slog.String("session_id", sessionID),
		slog.String("title", toast.Title),
		slog.String("variant", string(toast.Variant)))
}

// Drain returns the pending toasts of a session in arrival order and
// forgets them.
func (i *Inbox) Drain(sessionID string) []models.Toast {
	i.mu.Lock()
	defer i.mu.Unlock()

	q, ok := i.queues[sessionID]
	delete(i.queues, sessionID)

	if !ok || i.expired(q, i.now()) {
		return []models.Toast{}
	}

	return q.toasts
}

func (i *Inbox) Pending(sessionID string) int {
	i.mu.Lock()
	defer i.mu.Unlock()

	q, ok := i.queues[sessionID]
	if !ok || i.expired(q, i.now()) {
		return 0
	}

	return len(q.toasts)
}

func (i *Inbox) expired(q *queue, now time.Time) bool {
	return now.Sub(q.touched) >= i.ttl
}

// sweep drops expired buffers at most once per TTL. Caller holds mu.
func (i *Inbox) sweep(now time.Time) {
	if now.Sub(i.lastSweep) < i.ttl {
		return
	}

	for sessionID, q := range i.queues {
		if i.expired(q, now) {
			delete(i.queues, sessionID)
		}
	}

	i.lastSweep = now
}
