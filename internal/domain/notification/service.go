// internal/domain/notification/service.go
package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Kind classifies a notification
type Kind string

// Notification kinds
const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notification is a transient user-feedback message. It auto-expires
// after the center's TTL and is never persisted.
type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Center collects transient notifications and prunes expired ones
type Center struct {
	mu      sync.Mutex
	logger  *logrus.Logger
	ttl     time.Duration
	entries []Notification

	now func() time.Time
}

// NewCenter creates a notification center with the given TTL
func NewCenter(ttl time.Duration, logger *logrus.Logger) *Center {
	return &Center{
		logger: logger,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Notify records a notification of the given kind
func (c *Center) Notify(kind Kind, message string) Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}

	c.pruneLocked(now)
	c.entries = append(c.entries, n)

	c.logger.WithFields(logrus.Fields{
		"kind":    kind,
		"message": message,
	}).Debug("Notification emitted")

	return n
}

// Success records a success notification
func (c *Center) Success(message string) Notification {
	return c.Notify(KindSuccess, message)
}

// Error records an error notification
func (c *Center) Error(message string) Notification {
	return c.Notify(KindError, message)
}

// Info records an info notification
func (c *Center) Info(message string) Notification {
	return c.Notify(KindInfo, message)
}

// Active prunes expired notifications and returns the live ones
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked(c.now())
	return append([]Notification(nil), c.entries...)
}

func (c *Center) pruneLocked(now time.Time) {
	live := c.entries[:0]
	for _, n := range c.entries {
		if n.ExpiresAt.After(now) {
			live = append(live, n)
		}
	}
	c.entries = live
}
