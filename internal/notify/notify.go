// Package notify decouples user-facing notifications from the state
// services. Stores publish events to a Hub; renderers (the CLI, tests)
// subscribe instead of being called inline, so the state logic stays
// headless.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies an event the way the storefront UI styles its toasts.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Event is a single user-facing notification.
type Event struct {
	Time    time.Time
	ID      string
	Message string
	Level   Level
}

// Notifier is the interface the state services publish through.
type Notifier interface {
	Success(msg string)
	Info(msg string)
	Error(msg string)
}

// Hub fans events out to registered subscribers and mirrors them to the
// structured log. Subscribers are invoked synchronously in registration
// order.
type Hub struct {
	logger *slog.Logger
	subs   []func(Event)
	mu     sync.Mutex
}

var _ Notifier = (*Hub)(nil)

// NewHub creates a Hub. A nil logger falls back to slog.Default().
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{logger: logger}
}

// Subscribe registers a callback for every subsequent event.
func (h *Hub) Subscribe(fn func(Event)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs, fn)
}

// Success publishes a success-level event.
func (h *Hub) Success(msg string) { h.publish(LevelSuccess, msg) }

// Info publishes an info-level event.
func (h *Hub) Info(msg string) { h.publish(LevelInfo, msg) }

// Error publishes an error-level event.
func (h *Hub) Error(msg string) { h.publish(LevelError, msg) }

func (h *Hub) publish(level Level, msg string) {
	event := Event{
		ID:      uuid.New().String(),
		Level:   level,
		Message: msg,
		Time:    time.Now(),
	}

	switch level {
	case LevelError:
		h.logger.Warn("notification", "level", level, "message", msg)
	default:
		h.logger.Debug("notification", "level", level, "message", msg)
	}

	h.mu.Lock()
	subs := make([]func(Event), len(h.subs))
	copy(subs, h.subs)
	h.mu.Unlock()

	for _, fn := range subs {
		fn(event)
	}
}
