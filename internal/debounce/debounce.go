// Package debounce implements a trailing debounce as a cancellable scheduled
// task: every trigger supersedes whatever was pending, and only the most
// recent trigger may fire once the input has been quiet for the delay.
//
// Two styles of use share one Debouncer:
//
//   - Trigger(fn) schedules fn on a timer goroutine.
//   - Next/Claim hand out tokens for event loops that schedule their own
//     timers (Bubble Tea's tea.Tick). A token is honoured only if it is
//     still the latest one when the timer message arrives.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet window used for search input.
const DefaultDelay = 300 * time.Millisecond

// Token identifies one scheduled trigger.
type Token uint64

// Debouncer holds at most one pending task.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	latest  Token
	pending bool
	timer   *time.Timer
}

// New returns a Debouncer with the given delay; non-positive uses DefaultDelay.
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Delay returns the quiet window.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Next invalidates any pending task and returns a fresh token. The caller
// arranges for Claim to be called with it after Delay.
func (d *Debouncer) Next() Token {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.nextLocked()
}

func (d *Debouncer) nextLocked() Token {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.latest++
	d.pending = true
	return d.latest
}

// Claim reports whether tok is still the pending task and, if so, consumes
// it. A token can be claimed at most once.
func (d *Debouncer) Claim(tok Token) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.pending || tok != d.latest {
		return false
	}
	d.pending = false
	d.timer = nil
	return true
}

// Trigger schedules fn to run after the delay, cancelling any pending task.
// fn runs on its own goroutine.
func (d *Debouncer) Trigger(fn func()) Token {
	d.mu.Lock()
	defer d.mu.Unlock()
	tok := d.nextLocked()
	d.timer = time.AfterFunc(d.delay, func() {
		if d.Claim(tok) {
			fn()
		}
	})
	return tok
}

// Cancel discards the pending task. It reports whether one was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	was := d.pending
	d.pending = false
	return was
}

// Pending reports whether a task is waiting to fire.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
