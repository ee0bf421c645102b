package services

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period before search input is acted on.
const DefaultDebounce = 500 * time.Millisecond

// Debouncer runs only the last of a burst of calls, once the calls have been
// quiet for the wait period. Superseded calls are dropped, never queued.
type Debouncer struct {
	wait time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	stopped bool
}

// NewDebouncer creates a debouncer. A zero wait runs calls synchronously.
func NewDebouncer(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Trigger schedules fn, replacing any call still waiting.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	seq := d.seq

	if d.wait <= 0 {
		d.mu.Unlock()
		fn()
		return
	}

	d.timer = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		// Stop can lose the race with a timer that already fired.
		if d.stopped || d.seq != seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
	d.mu.Unlock()
}

// Cancel drops the pending call, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}

// Stop cancels the pending call and ignores all future triggers.
func (d *Debouncer) Stop() {
	d.Cancel()
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()
}
