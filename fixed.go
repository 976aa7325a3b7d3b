package table

import (
	"maps"
	"strconv"
	"strings"
)

// Style is a CSS-like property map, e.g. {"left": "120px"}.
type Style map[string]string

// merge returns a copy of s with other's entries applied on top.
func (s Style) merge(other Style) Style {
	out := make(Style, len(s)+len(other))
	maps.Copy(out, s)
	maps.Copy(out, other)
	return out
}

func px(n int) string {
	return strconv.Itoa(n) + "px"
}

// GetCellFixedStyle returns the sticky offset of a header or body cell.
//
// A left-fixed column is offset by the widths of the left-fixed leaves before
// its first leaf; a right-fixed column by the right-fixed leaves after its
// last leaf. Group headers are expanded into their leaves first. Header cells
// of right-fixed columns also clear the body's vertical scrollbar.
// Unfixed columns get an empty style.
func (t *Table) GetCellFixedStyle(column *Column, isHeader bool) Style {
	side := column.FixedSide()
	if side == FixedNone {
		return Style{}
	}
	start, count, ok := t.leafRange(column)
	if !ok {
		return Style{}
	}

	if side == FixedLeft {
		left := 0
		for _, leaf := range t.leaves[:start] {
			if leaf.fixed == FixedLeft {
				left += leaf.realWidth
			}
		}
		return Style{"left": px(left)}
	}

	right := 0
	for _, leaf := range t.leaves[start+count:] {
		if leaf.fixed == FixedRight {
			right += leaf.realWidth
		}
	}
	if isHeader && t.scroll.hasVertical {
		right += t.cfg.scrollbarWidth
	}
	return Style{"right": px(right)}
}

// GetCellClass returns the class list of a header or body cell: fixed-side
// markers, the is-last-column / is-first-column boundary markers on the last
// left-fixed and first right-fixed leaf, is-leaf, the column type, the
// alignment and the column's own ClassName.
func (t *Table) GetCellClass(column *Column) string {
	var classes []string

	if start, count, ok := t.leafRange(column); ok {
		switch column.FixedSide() {
		case FixedLeft:
			classes = append(classes, "is-fixed-left")
			if start+count-1 == t.lastFixedLeft() {
				classes = append(classes, "is-last-column")
			}
		case FixedRight:
			classes = append(classes, "is-fixed-right")
			if start == t.firstFixedRight() {
				classes = append(classes, "is-first-column")
			}
		}
	}

	if column.IsLeaf() {
		classes = append(classes, "is-leaf")
	}
	switch column.Type {
	case ColumnIndex:
		classes = append(classes, "is-index")
	case ColumnSelection:
		classes = append(classes, "is-selection")
	case ColumnExpand:
		classes = append(classes, "is-expand")
	}
	switch column.Align {
	case AlignCenter:
		classes = append(classes, "is-center")
	case AlignRight:
		classes = append(classes, "is-right")
	}
	if column.ClassName != "" {
		classes = append(classes, column.ClassName)
	}
	return strings.Join(classes, " ")
}

func (t *Table) lastFixedLeft() int {
	last := -1
	for i, leaf := range t.leaves {
		if leaf.fixed == FixedLeft {
			last = i
		}
	}
	return last
}

func (t *Table) firstFixedRight() int {
	for i, leaf := range t.leaves {
		if leaf.fixed == FixedRight {
			return i
		}
	}
	return -1
}
