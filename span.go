package table

// Span is the number of rows and columns a body cell covers.
type Span struct {
	Rowspan int
	Colspan int
}

// SpanMethod decides how a body cell merges with its neighbours. It may
// return a Span, a *Span, a [2]int or []int pair of {rowspan, colspan}, or
// nil for the default {1, 1}. Cells covered by another cell's span should
// return a zero rowspan or colspan.
//
// The callback is treated as a pure function: a panic propagates to the
// caller of Body or GetCellSpan.
type SpanMethod func(row *Row, column *Column, rowIndex, columnIndex int) any

// GetCellSpan asks the span method for the cell's span.
func (t *Table) GetCellSpan(row *Row, column *Column, rowIndex, columnIndex int) Span {
	span := Span{Rowspan: 1, Colspan: 1}
	if t.cfg.spanMethod == nil {
		return span
	}

	switch v := t.cfg.spanMethod(row, column, rowIndex, columnIndex).(type) {
	case Span:
		span = v
	case *Span:
		if v != nil {
			span = *v
		}
	case [2]int:
		span = Span{Rowspan: v[0], Colspan: v[1]}
	case []int:
		if len(v) >= 2 {
			span = Span{Rowspan: v[0], Colspan: v[1]}
		}
	}
	return span
}

// ShouldHideCell reports whether a cell is merged away by another cell's
// span: true iff either value is exactly 0.
func ShouldHideCell(rowspan, colspan int) bool {
	return rowspan == 0 || colspan == 0
}

// Hidden reports whether the span hides its cell.
func (s Span) Hidden() bool {
	return ShouldHideCell(s.Rowspan, s.Colspan)
}
