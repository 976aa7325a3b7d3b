package table

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-table/internal/debug"
)

// SortState is the active sort. At most one column is sorted at a time.
type SortState struct {
	Column *Column
	Prop   string
	Order  SortOrder
}

// SortState returns the active sort.
func (t *Table) SortState() SortState {
	return t.sort
}

// HandleSort advances the sort in response to a header click. Unsortable
// columns are ignored.
//
// Clicking the sorted column moves one step along its order cycle from the
// current order; clicking a different column starts at the first step of
// that column's cycle. sort-change is emitted every time, also when the new
// order is NoOrder.
func (t *Table) HandleSort(column *Column) {
	if column == nil || column.Sortable == SortDisabled {
		return
	}

	orders := column.sortOrders()
	next := orders[0]
	if t.sort.Column == column {
		idx := slices.Index(orders, t.sort.Order)
		next = orders[(idx+1)%len(orders)]
	}

	t.userSorted = true
	t.sort = SortState{Column: column, Prop: column.Prop, Order: next}
	debug.Log("Table: sort %q -> %q", column.Prop, next)
	t.sortChange.Emit(SortChangeEvent{Column: column, Prop: column.Prop, Order: next})
}

// Sort sorts by the leaf column with the given prop and emits sort-change.
func (t *Table) Sort(prop string, order SortOrder) error {
	column := t.ColumnByProp(prop)
	if column == nil {
		return fmt.Errorf("sort by %q: %w", prop, ErrUnknownColumn)
	}
	t.userSorted = true
	t.sort = SortState{Column: column, Prop: prop, Order: order}
	t.sortChange.Emit(SortChangeEvent{Column: column, Prop: prop, Order: order})
	return nil
}

// ClearSort drops the active sort without emitting an event.
func (t *Table) ClearSort() {
	t.sort = SortState{}
	t.MarkDirty()
}

// SortedRows returns the top-level rows in display order.
func (t *Table) SortedRows() []*Row {
	return t.sortRows(t.data.Get())
}

// applyDefaultSort installs the configured default sort the first time a
// matching column is present, unless the user sorted already.
func (t *Table) applyDefaultSort() {
	def := t.cfg.defaultSort
	if def == nil || t.userSorted || t.sort.Prop != "" {
		return
	}
	column := t.ColumnByProp(def.Prop)
	if column == nil {
		return
	}
	t.sort = SortState{Column: column, Prop: def.Prop, Order: def.Order}
}

// sortRows returns rows in sorted order, or rows itself when nothing sorts
// locally. The result is a stable sort of a copy: rows that compare equal
// keep their input order.
func (t *Table) sortRows(rows []*Row) []*Row {
	s := t.sort
	if s.Order == NoOrder || s.Column == nil || s.Column.Sortable == SortCustom {
		return rows
	}
	compare := rowComparator(s.Column, s.Prop)
	if compare == nil {
		return rows
	}

	type indexed struct {
		row   *Row
		index int
	}
	items := make([]indexed, len(rows))
	for i, row := range rows {
		items[i] = indexed{row: row, index: i}
	}
	slices.SortStableFunc(items, func(a, b indexed) int {
		c := compare(a.row, a.index, b.row, b.index)
		if s.Order == Descending {
			c = -c
		}
		return c
	})

	out := make([]*Row, len(items))
	for i, item := range items {
		out[i] = item.row
	}
	return out
}

// rowComparator picks SortMethod, then SortBy, then the prop field.
func rowComparator(column *Column, prop string) func(a *Row, ai int, b *Row, bi int) int {
	if column.SortMethod != nil {
		return func(a *Row, _ int, b *Row, _ int) int {
			return column.SortMethod(a, b)
		}
	}
	keys := column.SortBy
	if len(keys) == 0 {
		if prop == "" {
			return nil
		}
		keys = []SortKey{ByField(prop)}
	}
	return func(a *Row, ai int, b *Row, bi int) int {
		for _, key := range keys {
			if c := CompareValues(key(a, ai), key(b, bi)); c != 0 {
				return c
			}
		}
		return 0
	}
}
