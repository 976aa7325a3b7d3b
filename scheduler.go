package table

import (
	"time"

	"github.com/grindlemire/go-table/internal/debug"
)

// debouncer coalesces repeated triggers into one call of fn, delivered on the
// table loop after delay has passed without another trigger.
//
// pending and timer are only touched from the loop goroutine. The timer
// goroutine never runs fn itself; it posts fire onto the loop queue.
type debouncer struct {
	name    string
	delay   time.Duration
	fn      func()
	post    func(func())
	timer   *time.Timer
	pending bool
}

func newDebouncer(name string, delay time.Duration, post func(func()), fn func()) *debouncer {
	return &debouncer{name: name, delay: delay, post: post, fn: fn}
}

// Trigger schedules fn, restarting the delay if a call is already pending.
func (d *debouncer) Trigger() {
	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.delay <= 0 {
		d.timer = nil
		d.post(d.fire)
		return
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.post(d.fire)
	})
}

// Pending reports whether a call is scheduled but has not run.
func (d *debouncer) Pending() bool {
	return d.pending
}

// Flush runs a pending call immediately.
func (d *debouncer) Flush() {
	if !d.pending {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.fire()
}

// Stop cancels a pending call.
func (d *debouncer) Stop() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
}

// fire runs fn if a call is still pending. Stale timer posts that arrive
// after a Flush or an earlier fire are dropped here.
func (d *debouncer) fire() {
	if !d.pending {
		return
	}
	d.pending = false
	debug.Log("debouncer %s fired", d.name)
	d.fn()
}
