// Package notify keeps the short-lived notification feed the UI shows after
// each action (movie added, rating rejected, search failed, ...). Entries
// are mirrored to the structured log.
package notify

import (
	"time"

	"log/slog"

	"github.com/google/uuid"
)

// Level classifies a notification for styling.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one entry in the feed.
type Notification struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Feed holds the most recent notifications, oldest first.
type Feed struct {
	logger  *slog.Logger
	max     int
	entries []Notification
}

// NewFeed creates a feed bounded to max entries; max <= 0 uses 20.
func NewFeed(logger *slog.Logger, max int) *Feed {
	if max <= 0 {
		max = 20
	}
	return &Feed{logger: logger, max: max}
}

// Push appends a notification, dropping the oldest entries past the bound.
func (f *Feed) Push(level Level, message string) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}

	f.entries = append(f.entries, n)
	if len(f.entries) > f.max {
		f.entries = f.entries[len(f.entries)-f.max:]
	}

	switch level {
	case LevelError:
		f.logger.Error(message, slog.String("notification", n.ID))
	default:
		f.logger.Info(message,
			slog.String("notification", n.ID),
			slog.String("level", string(level)))
	}

	return n
}

// Recent returns the current feed, oldest first.
func (f *Feed) Recent() []Notification {
	out := make([]Notification, len(f.entries))
	copy(out, f.entries)
	return out
}
