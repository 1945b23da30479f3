package query

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period for free-text search input.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer collapses rapid updates into a single trailing commit: the
// commit callback fires with the final value once no update has arrived
// for the configured delay. It backs the two-layer search field, where
// the immediate input value is held by the caller and only the debounced
// value participates in the fetch key.
type Debouncer struct {
	delay  time.Duration
	commit func(string)

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration, commit func(string)) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay, commit: commit}
}

// Update schedules value for commit, discarding any pending value.
func (d *Debouncer) Update(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.commit(value)
	})
}

// Cancel discards any pending commit without firing it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
