package table

import (
	"slices"
)

// Selection returns a copy of the selected rows in selection order.
func (t *Table) Selection() []*Row {
	return slices.Clone(t.selection)
}

// IsSelected reports whether row is selected. Rows are compared by identity.
func (t *Table) IsSelected(row *Row) bool {
	return slices.Contains(t.selection, row)
}

// ToggleRowSelection flips the selection of row and emits selection-change.
//
// Outside strict mode, selecting a row also selects all of its descendants,
// including ones the selectable predicate excludes, and deselecting removes
// all of them. Descendants come from the
// row's children field, not from the tree state. In strict mode only row
// itself changes.
func (t *Table) ToggleRowSelection(row *Row) {
	if t.IsSelected(row) {
		t.deselect(row)
	} else {
		t.selectRow(row)
	}
	t.selectionChange.Emit(t.Selection())
}

// SetRowSelection selects or deselects row. Setting the current state is a
// no-op and emits nothing.
func (t *Table) SetRowSelection(row *Row, selected bool) {
	if t.IsSelected(row) == selected {
		return
	}
	t.ToggleRowSelection(row)
}

func (t *Table) selectRow(row *Row) {
	t.selection = append(t.selection, row)
	if t.cfg.checkStrictly {
		return
	}
	t.walkChildren(row, func(child *Row, _ int) bool {
		if !t.IsSelected(child) {
			t.selection = append(t.selection, child)
		}
		return true
	})
}

func (t *Table) deselect(row *Row) {
	drop := map[*Row]bool{row: true}
	if !t.cfg.checkStrictly {
		t.walkChildren(row, func(child *Row, _ int) bool {
			drop[child] = true
			return true
		})
	}
	t.selection = slices.DeleteFunc(t.selection, func(r *Row) bool { return drop[r] })
}

// IsAllSelected reports whether every selectable row is selected. Outside
// strict mode all rows count, recursively; in strict mode only top-level
// rows do. A table with no selectable rows is never all-selected.
func (t *Table) IsAllSelected() bool {
	rows := t.selectableRows()
	if len(rows) == 0 {
		return false
	}
	for _, row := range rows {
		if !t.IsSelected(row) {
			return false
		}
	}
	return true
}

// IsIndeterminate reports whether some, but not all, selectable rows are
// selected.
func (t *Table) IsIndeterminate() bool {
	rows := t.selectableRows()
	n := 0
	for _, row := range rows {
		if t.IsSelected(row) {
			n++
		}
	}
	return n > 0 && n < len(rows)
}

// ToggleAllSelection clears the selection when everything is selected and
// otherwise replaces it with all selectable rows. select-all and then
// selection-change are emitted on every call.
func (t *Table) ToggleAllSelection() {
	if t.IsAllSelected() {
		t.selection = nil
	} else {
		t.selection = t.selectableRows()
	}
	t.selectAll.Emit(t.Selection())
	t.selectionChange.Emit(t.Selection())
}

// ClearSelection empties the selection and emits selection-change.
func (t *Table) ClearSelection() {
	t.selection = nil
	t.selectionChange.Emit([]*Row{})
}

// selectableRows collects the rows IsAllSelected and ToggleAllSelection
// consider, in source order.
func (t *Table) selectableRows() []*Row {
	var out []*Row
	var collect func(rows []*Row)
	collect = func(rows []*Row) {
		for i, row := range rows {
			if t.isSelectable(row, i) {
				out = append(out, row)
			}
			if !t.cfg.checkStrictly {
				collect(row.ChildRows(t.cfg.childrenField))
			}
		}
	}
	collect(t.data.Get())
	return out
}

func (t *Table) isSelectable(row *Row, index int) bool {
	return t.cfg.selectable == nil || t.cfg.selectable(row, index)
}

// walkChildren visits the descendants of row through its children field.
func (t *Table) walkChildren(row *Row, fn func(child *Row, index int) bool) {
	for i, child := range row.ChildRows(t.cfg.childrenField) {
		if fn(child, i) {
			t.walkChildren(child, fn)
		}
	}
}

// pruneSelection drops selected rows that are no longer in the data.
func (t *Table) pruneSelection() {
	if len(t.selection) == 0 {
		return
	}
	present := make(map[*Row]bool)
	t.walkRows(func(row *Row, _ int, _ *Row) bool {
		present[row] = true
		return true
	})
	kept := slices.DeleteFunc(slices.Clone(t.selection), func(r *Row) bool { return !present[r] })
	if len(kept) != len(t.selection) {
		t.selection = kept
		t.selectionChange.Emit(t.Selection())
	}
}
