package table

import (
	"context"
	"time"
)

// QueueUpdate enqueues a function to run on the table loop.
// Safe to call from any goroutine. Lazy-load resolutions and debounced layout
// passes arrive through here.
func (t *Table) QueueUpdate(fn func()) {
	select {
	case <-t.stopCh:
		return
	default:
	}
	select {
	case t.queue <- fn:
	case <-t.stopCh:
		// Table is closed, ignore update
	default:
		t.logger.WithField("component", "Table").Warn("event queue full, dropping update")
	}
}

// postUpdate is QueueUpdate for results that must not be lost: it waits for
// room in the queue instead of dropping fn. Only call it off the table loop.
func (t *Table) postUpdate(fn func()) {
	select {
	case t.queue <- fn:
	case <-t.stopCh:
	}
}

// NextTick runs fn after the updates that are already queued.
func (t *Table) NextTick(fn func()) {
	t.QueueUpdate(fn)
}

// Tick drains the event queue without blocking and reports how many updates
// ran. Updates queued while draining run in the same call.
func (t *Table) Tick() int {
	n := 0
	for {
		select {
		case fn := <-t.queue:
			fn()
			n++
		default:
			return n
		}
	}
}

// Flush forces any pending debounced layout pass to run now and then drains
// the queue, so callers observe committed column widths on return.
func (t *Table) Flush() {
	t.layout.Flush()
	t.Tick()
}

// Run processes queued updates until ctx is cancelled or the table is closed.
// When a batch of updates leaves the table dirty, render is called once.
func (t *Table) Run(ctx context.Context, render func()) error {
	if render != nil && t.checkAndClearDirty() {
		render()
	}

	idle := time.NewTimer(t.frameDuration)
	defer idle.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.stopCh:
			return nil
		case fn := <-t.queue:
			fn()
			// Coalesce whatever else arrived in the same frame.
			t.Tick()
		case <-idle.C:
		}

		if render != nil && t.checkAndClearDirty() {
			render()
		}
		idle.Reset(t.frameDuration)
	}
}

// Close stops pending timers and background lazy-load waiters.
// It is safe to call Close more than once.
func (t *Table) Close() {
	t.stopOnce.Do(func() {
		t.layout.Stop()
		close(t.stopCh)
	})
}
