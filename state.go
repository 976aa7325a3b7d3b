package table

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/grindlemire/go-table/internal/debug"
)

// State holds one of the table's reactive inputs: row data, container width
// or the current row key. Every change goes through Set, which marks the
// table dirty and runs the bindings that recompute tree, selection and
// layout state.
//
// Get is safe from any goroutine. Set belongs to the table loop; other
// goroutines hand their changes over with Table.QueueUpdate.
type State[T any] struct {
	mu    sync.RWMutex
	value T
	subs  []*subscriber[T]
	table *Table
}

type subscriber[T any] struct {
	id      uint64
	fn      func(T)
	removed atomic.Bool
}

// Unbind removes the binding it was returned for. Calling it twice is fine.
type Unbind func()

// NewState creates a state owned by t.
func NewState[T any](t *Table, initial T) *State[T] {
	if t == nil {
		panic("table: nil table in NewState")
	}
	return &State[T]{value: initial, table: t}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set stores v, marks the table dirty and runs the bindings in the order
// they were registered. Inside Table.Batch the bindings run when the
// outermost batch returns.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	s.subs = slices.DeleteFunc(s.subs, func(sub *subscriber[T]) bool {
		return sub.removed.Load()
	})
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	s.table.MarkDirty()

	deferred := 0
	for _, sub := range subs {
		fn := sub.fn
		if s.table.batch.enqueue(sub.id, func() { fn(v) }) {
			deferred++
			continue
		}
		fn(v)
	}
	if deferred > 0 {
		debug.Log("State.Set: deferred %d bindings", deferred)
	}
}

// Update sets the result of fn applied to the current value.
func (s *State[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Bind registers fn to run on every Set.
func (s *State[T]) Bind(fn func(T)) Unbind {
	sub := &subscriber[T]{id: s.table.bindingIDs.Add(1), fn: fn}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	s.mu.Unlock()

	return func() { sub.removed.Store(true) }
}

// batcher holds binding runs while a Batch is open. A binding triggered
// several times runs once with the last value, in first-trigger order.
type batcher struct {
	mu     sync.Mutex
	depth  int
	slot   map[uint64]int
	queued []func()
}

// enqueue reports whether run was deferred.
func (b *batcher) enqueue(id uint64, run func()) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.depth == 0 {
		return false
	}
	if i, ok := b.slot[id]; ok {
		b.queued[i] = run
		return true
	}
	if b.slot == nil {
		b.slot = make(map[uint64]int)
	}
	b.slot[id] = len(b.queued)
	b.queued = append(b.queued, run)
	return true
}

func (b *batcher) open() {
	b.mu.Lock()
	b.depth++
	b.mu.Unlock()
}

// close returns the deferred runs once the outermost batch closes.
func (b *batcher) close() []func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.depth--
	if b.depth > 0 {
		return nil
	}
	runs := b.queued
	b.slot, b.queued = nil, nil
	return runs
}

// Batch runs fn with binding execution deferred until it returns, so that
// replacing several inputs at once (new data plus a new current row key)
// normalizes the tree once. Batches nest.
func (t *Table) Batch(fn func()) {
	t.batch.open()
	defer func() {
		for _, run := range t.batch.close() {
			run()
		}
	}()
	fn()
}

// resetBatch drops any open batch. Used by tests.
func (t *Table) resetBatch() {
	t.batch.mu.Lock()
	t.batch.depth = 0
	t.batch.slot, t.batch.queued = nil, nil
	t.batch.mu.Unlock()
}
