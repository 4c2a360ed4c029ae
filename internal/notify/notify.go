// Package notify keeps the short-lived messages shown after each user action.
//
// Every toast schedules its own removal. The scheduled task is kept with the
// toast so dismissing early also stops the timer.
package notify

import (
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"speseview/internal/log"
)

// DefaultTimeout is how long a toast stays visible.
const DefaultTimeout = 3 * time.Second

// Type is the toast severity.
type Type string

const (
	Success Type = "success"
	Info    Type = "info"
	Error   Type = "error"
)

// Toast is a transient user-facing message.
type Toast struct {
	ID      string
	Message string
	Type    Type
}

type entry struct {
	toast Toast
	task  Task
}

// Center owns the visible toasts.
type Center struct {
	mu        sync.Mutex
	timeout   time.Duration
	scheduler Scheduler
	now       func() time.Time
	logger    *log.Logger
	entries   []entry
}

// Option configures a Center.
type Option func(*Center)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Center) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithScheduler replaces the real-time scheduler, mostly for tests.
func WithScheduler(s Scheduler) Option {
	return func(c *Center) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithClock replaces time.Now when generating ids.
func WithClock(now func() time.Time) Option {
	return func(c *Center) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger injects a logger; toast lines are tagged with the notify
// component.
func WithLogger(l *log.Logger) Option {
	return func(c *Center) {
		if l != nil {
			c.logger = l.WithComponent(log.ComponentNotify)
		}
	}
}

// NewCenter creates an empty notification center.
func NewCenter(opts ...Option) *Center {
	c := &Center{
		timeout:   DefaultTimeout,
		scheduler: TimerScheduler{},
		now:       time.Now,
		logger:    log.Default(log.ComponentNotify),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Push shows a new toast and schedules its removal. An empty type means Info.
func (c *Center) Push(message string, typ Type) Toast {
	if typ == "" {
		typ = Info
	}
	t := Toast{
		ID:      c.newID(),
		Message: message,
		Type:    typ,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	task := c.scheduler.AfterFunc(c.timeout, func() { c.expire(t.ID) })
	c.entries = append(c.entries, entry{toast: t, task: task})

	c.logger.Debug("Toast pushed",
		log.FieldNotification, t.ID,
		"type", string(t.Type),
		"message", t.Message)
	return t
}

// Dismiss removes a toast and cancels its pending removal. It reports
// whether the toast was still visible.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	if task := c.entries[i].task; task != nil {
		task.Stop()
	}
	c.entries = slices.Delete(c.entries, i, i+1)

	c.logger.Debug("Toast dismissed", log.FieldNotification, id)
	return true
}

// Toasts returns the visible toasts, oldest first.
func (c *Center) Toasts() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Toast, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.toast
	}
	return out
}

// Close cancels every pending removal and clears the toasts.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.task != nil {
			e.task.Stop()
		}
	}
	c.entries = nil
}

func (c *Center) expire(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(id); i >= 0 {
		c.entries = slices.Delete(c.entries, i, i+1)
		c.logger.Debug("Toast expired", log.FieldNotification, id)
	}
}

func (c *Center) indexOf(id string) int {
	return slices.IndexFunc(c.entries, func(e entry) bool { return e.toast.ID == id })
}

// newID combines a millisecond timestamp with a random component.
func (c *Center) newID() string {
	return strconv.FormatInt(c.now().UnixMilli(), 10) + "-" + uuid.NewString()
}
