package table

// HasExpandColumn reports whether an expand-type leaf column is registered.
func (t *Table) HasExpandColumn() bool {
	for _, col := range t.leaves {
		if col.Type == ColumnExpand {
			return true
		}
	}
	return false
}

// setRowExpanded opens or closes the expand slot of a row without tree
// children. The open set is keyed by row identity so it works without a row
// key.
func (t *Table) setRowExpanded(row *Row, expanded bool) {
	if t.expandedRows[row] == expanded {
		return
	}
	if expanded {
		t.expandedRows[row] = true
	} else {
		delete(t.expandedRows, row)
	}
	t.expandChange.Emit(ExpandChangeEvent{Row: row, Expanded: expanded})
}

// pruneExpandedRows forgets open rows that are no longer in the data.
func (t *Table) pruneExpandedRows() {
	if len(t.expandedRows) == 0 {
		return
	}
	present := make(map[*Row]bool)
	t.walkRows(func(row *Row, _ int, _ *Row) bool {
		present[row] = true
		return true
	})
	for row := range t.expandedRows {
		if !present[row] {
			delete(t.expandedRows, row)
		}
	}
}
