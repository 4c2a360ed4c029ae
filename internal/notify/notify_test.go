package notify

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"speseview/internal/log"
)

type fakeTask struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTask) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeScheduler only runs tasks when Advance is called.
type fakeScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*fakeTask
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTask{at: s.now + d, f: f}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*fakeTask
	for _, t := range s.tasks {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

func TestPushAndExpire(t *testing.T) {
	sched := &fakeScheduler{}
	c := NewCenter(WithScheduler(sched))

	first := c.Push("Expense added successfully!", Success)
	sched.Advance(time.Second)
	second := c.Push("Budget saved successfully!", Success)

	if got := c.Toasts(); len(got) != 2 || got[0].ID != first.ID || got[1].ID != second.ID {
		t.Fatalf("unexpected toasts: %+v", got)
	}

	sched.Advance(2 * time.Second)
	got := c.Toasts()
	if len(got) != 1 || got[0].ID != second.ID {
		t.Fatalf("first toast should expire after 3s, got %+v", got)
	}

	sched.Advance(time.Second)
	if got := c.Toasts(); len(got) != 0 {
		t.Fatalf("all toasts should be gone, got %+v", got)
	}
}

func TestDismissCancelsTimer(t *testing.T) {
	sched := &fakeScheduler{}
	c := NewCenter(WithScheduler(sched))

	toast := c.Push("hello", "")
	if toast.Type != Info {
		t.Fatalf("empty type should default to info, got %q", toast.Type)
	}
	if !c.Dismiss(toast.ID) {
		t.Fatalf("dismiss should report the toast was visible")
	}
	if !sched.tasks[0].stopped {
		t.Fatalf("dismiss should stop the scheduled removal")
	}
	if c.Dismiss(toast.ID) {
		t.Fatalf("second dismiss should be a no-op")
	}
	sched.Advance(DefaultTimeout)
	if sched.tasks[0].fired {
		t.Fatalf("stopped task must not fire")
	}
}

func TestCustomTimeout(t *testing.T) {
	sched := &fakeScheduler{}
	c := NewCenter(WithScheduler(sched), WithTimeout(500*time.Millisecond))
	c.Push("x", Error)
	sched.Advance(499 * time.Millisecond)
	if len(c.Toasts()) != 1 {
		t.Fatalf("toast expired too early")
	}
	sched.Advance(time.Millisecond)
	if len(c.Toasts()) != 0 {
		t.Fatalf("toast should have expired")
	}
}

func TestIDsCombineTimestampAndRandom(t *testing.T) {
	fixed := time.UnixMilli(1700000000000)
	c := NewCenter(WithScheduler(&fakeScheduler{}), WithClock(func() time.Time { return fixed }))
	a := c.Push("a", Info)
	b := c.Push("b", Info)
	if !strings.HasPrefix(a.ID, "1700000000000-") {
		t.Fatalf("unexpected id %q", a.ID)
	}
	if a.ID == b.ID {
		t.Fatalf("ids must be unique even with the same timestamp")
	}
}

func TestCloseStopsEverything(t *testing.T) {
	sched := &fakeScheduler{}
	c := NewCenter(WithScheduler(sched))
	c.Push("a", Info)
	c.Push("b", Info)
	c.Close()
	if len(c.Toasts()) != 0 {
		t.Fatalf("close should clear toasts")
	}
	for i, task := range sched.tasks {
		if !task.stopped {
			t.Fatalf("task %d not stopped", i)
		}
	}
}

func TestTimerSchedulerFires(t *testing.T) {
	c := NewCenter(WithTimeout(10 * time.Millisecond))
	c.Push("real timer", Info)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(c.Toasts()) == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("toast was not removed by the real timer")
}

func TestLoggerTagsToastLines(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.Config{Level: slog.LevelDebug, Component: log.ComponentCLI, Output: &buf})
	sched := &fakeScheduler{}
	c := NewCenter(WithScheduler(sched), WithLogger(logger))

	kept := c.Push("Expense deleted successfully!", Success)
	dropped := c.Push("Could not save your changes", Error)
	c.Dismiss(dropped.ID)
	sched.Advance(DefaultTimeout)

	out := buf.String()
	for _, want := range []string{
		"component=notify",
		"notification=" + kept.ID,
		`msg="Toast dismissed" component=notify notification=` + dropped.ID,
		`msg="Toast expired" component=notify notification=` + kept.ID,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "component=cli") {
		t.Errorf("toast lines should not keep the injected component:\n%s", out)
	}
}
