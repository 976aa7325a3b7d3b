package table

// CurrentRow returns the highlighted row, or nil.
func (t *Table) CurrentRow() *Row {
	return t.currentRow
}

// HandleRowClick makes row current when current-row highlighting is on.
func (t *Table) HandleRowClick(row *Row) {
	if !t.cfg.highlightCurrentRow {
		return
	}
	t.setCurrentRow(row, true)
}

// SetCurrentRow makes row current. nil clears it. current-change is emitted
// only when highlighting is on.
func (t *Table) SetCurrentRow(row *Row) {
	t.setCurrentRow(row, t.cfg.highlightCurrentRow)
}

// SetCurrentRowKey makes the row with key current; "" clears it. The key is
// re-applied whenever the data changes.
func (t *Table) SetCurrentRowKey(key string) {
	t.currentRowKey.Set(key)
}

func (t *Table) applyCurrentRowKey(key string) {
	var row *Row
	if key != "" {
		row = t.findRowByKey(key)
	}
	if row == t.currentRow {
		return
	}
	t.setCurrentRow(row, t.cfg.highlightCurrentRow)
}

func (t *Table) setCurrentRow(row *Row, emit bool) {
	old := t.currentRow
	t.currentRow = row
	t.MarkDirty()
	if emit {
		t.currentChange.Emit(CurrentChangeEvent{Current: row, Old: old})
	}
}

// findRowByKey searches the tree index first and falls back to a walk of the
// data, so it also works for flat tables whose rows are keyed but were never
// normalized.
func (t *Table) findRowByKey(key string) *Row {
	if row, ok := t.rowsByKey[key]; ok {
		return row
	}
	var found *Row
	t.walkRows(func(row *Row, _ int, _ *Row) bool {
		if found == nil && t.rowKeyOf(row) == key {
			found = row
		}
		return found == nil
	})
	return found
}
