package format

import (
	"sync"
	"time"
)

// Debouncer delays a call until wait has elapsed without another Call.
// Only the last scheduled function runs. Safe for concurrent use.
type Debouncer struct {
	mu    sync.Mutex
	wait  time.Duration
	timer *time.Timer
}

// NewDebouncer creates a trailing-edge debouncer.
func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Call schedules fn, cancelling any pending call.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, fn)
}

// Stop cancels a pending call and reports whether one was cancelled.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}

// Debounce wraps fn so that bursts of calls collapse into one call with the
// last argument. The returned stop function cancels a pending call.
func Debounce[T any](wait time.Duration, fn func(T)) (call func(T), stop func() bool) {
	d := NewDebouncer(wait)
	return func(arg T) {
		d.Call(func() { fn(arg) })
	}, d.Stop
}
