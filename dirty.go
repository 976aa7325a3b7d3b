package table

// MarkDirty signals that the render instructions need to be rebuilt.
// Called automatically by State.Set(), Events.Emit() and every mutating
// table operation. Hosts can also call it after mutating row data in place.
func (t *Table) MarkDirty() {
	t.dirty.Store(true)
}

// IsDirty reports whether the table changed since the last render.
func (t *Table) IsDirty() bool {
	return t.dirty.Load()
}

// checkAndClearDirty returns true if dirty and clears the flag.
// Called by the loop after processing events.
func (t *Table) checkAndClearDirty() bool {
	return t.dirty.Swap(false)
}

// resetDirty clears the dirty flag without returning its value.
func (t *Table) resetDirty() {
	t.dirty.Store(false)
}
