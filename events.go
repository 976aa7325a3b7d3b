package table

import "sync"

// Events is a typed event bus. The table exposes one per emitted event
// (sort-change, expand-change, selection-change, select-all, current-change).
type Events[T any] struct {
	mu        sync.RWMutex
	listeners []*listener[T]
	table     *Table
}

type listener[T any] struct {
	fn     func(T)
	active bool
}

// NewEvents creates an event bus owned by the given table.
func NewEvents[T any](t *Table) *Events[T] {
	if t == nil {
		panic("table: nil table in NewEvents")
	}
	return &Events[T]{table: t}
}

// Emit sends an event to all listeners and marks the table dirty.
func (e *Events[T]) Emit(event T) {
	e.mu.RLock()
	listeners := make([]*listener[T], 0, len(e.listeners))
	for _, l := range e.listeners {
		if l.active {
			listeners = append(listeners, l)
		}
	}
	e.mu.RUnlock()

	for _, l := range listeners {
		l.fn(event)
	}
	e.table.MarkDirty()
}

// Subscribe adds a listener for events. The returned Unbind removes it.
func (e *Events[T]) Subscribe(fn func(T)) Unbind {
	l := &listener[T]{fn: fn, active: true}
	e.mu.Lock()
	e.listeners = append(e.listeners, l)
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		l.active = false
		e.mu.Unlock()
	}
}

// SortChangeEvent is emitted on every HandleSort, including when the new
// order is NoOrder.
type SortChangeEvent struct {
	Column *Column
	Prop   string
	Order  SortOrder
}

// ExpandChangeEvent is emitted when a tree row or an expandable row opens or
// closes.
type ExpandChangeEvent struct {
	Row      *Row
	Expanded bool
}

// CurrentChangeEvent is emitted when the highlighted row changes.
type CurrentChangeEvent struct {
	Current *Row
	Old     *Row
}

// OnSortChange subscribes to sort-change events.
func (t *Table) OnSortChange(fn func(SortChangeEvent)) Unbind {
	return t.sortChange.Subscribe(fn)
}

// OnExpandChange subscribes to expand-change events.
func (t *Table) OnExpandChange(fn func(ExpandChangeEvent)) Unbind {
	return t.expandChange.Subscribe(fn)
}

// OnSelectionChange subscribes to selection-change events. The slice is a
// copy of the selection after the change.
func (t *Table) OnSelectionChange(fn func([]*Row)) Unbind {
	return t.selectionChange.Subscribe(fn)
}

// OnSelectAll subscribes to select-all events.
func (t *Table) OnSelectAll(fn func([]*Row)) Unbind {
	return t.selectAll.Subscribe(fn)
}

// OnCurrentChange subscribes to current-change events.
func (t *Table) OnCurrentChange(fn func(CurrentChangeEvent)) Unbind {
	return t.currentChange.Subscribe(fn)
}
