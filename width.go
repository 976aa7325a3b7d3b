package table

import (
	"github.com/grindlemire/go-table/internal/debug"
	"github.com/grindlemire/go-table/internal/layout"
)

// CalculateColumnWidths schedules a width recalculation. Calls within the
// debounce window coalesce into one pass, which runs on the table loop.
func (t *Table) CalculateColumnWidths() {
	t.layout.Trigger()
}

// TableWidth is the container width used by the last committed pass.
func (t *Table) TableWidth() int {
	return t.tableWidth
}

// ContentWidth is the sum of resolved leaf widths. It exceeds TableWidth
// when the content scrolls horizontally.
func (t *Table) ContentWidth() int {
	return t.contentWidth
}

// HasHorizontalScroll reports whether the content overflows the container.
func (t *Table) HasHorizontalScroll() bool {
	return t.contentWidth > t.tableWidth
}

// recalculateWidths is the debounced width pass.
//
// Declared widths are summed; the remaining space is split evenly (floor
// division, the remainder stays unallocated) among flexible columns in fit
// mode, with MinFlexWidth as a floor. Without fit every flexible column gets
// MinFlexWidth.
func (t *Table) recalculateWidths() {
	container := t.containerWidth.Get()
	if container <= 0 {
		debug.Log("Table: container width %d, skipping width pass", container)
		return
	}
	t.tableWidth = container

	declared := make([]layout.Value, len(t.leaves))
	flexCount := 0
	fixedWidth := 0
	for i, col := range t.leaves {
		v, err := layout.ParseWidth(col.Width)
		if err != nil {
			t.warn("column %s: %v; treating as flexible", col, err)
		}
		declared[i] = v
		if v.IsAuto() {
			flexCount++
		} else {
			fixedWidth += v.Resolve(container, 0)
		}
	}

	remaining := container - fixedWidth
	flexWidth := MinFlexWidth
	if t.cfg.fit {
		if flexCount > 0 {
			flexWidth = max(floorDiv(remaining, flexCount), MinFlexWidth)
		} else {
			flexWidth = 0
		}
	}

	total := 0
	for i, col := range t.leaves {
		w := declared[i].Resolve(container, flexWidth)
		if declared[i].IsAuto() {
			w = max(w, layout.ParseWidthOrAuto(col.MinWidth).Resolve(container, 0))
		}
		col.realWidth = w
		total += w
	}
	t.contentWidth = total
	debug.Log("Table: widths committed (container=%d content=%d flex=%d x %d)", container, total, flexCount, flexWidth)

	t.MarkDirty()
	if cb := t.cfg.onWidthsComputed; cb != nil {
		t.NextTick(cb)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
