package table

import (
	"fmt"
	"strings"
)

// FixedSide pins a column to an edge of the scrollable viewport.
type FixedSide uint8

const (
	FixedNone FixedSide = iota
	FixedLeft
	FixedRight
)

func (f FixedSide) String() string {
	switch f {
	case FixedLeft:
		return "left"
	case FixedRight:
		return "right"
	default:
		return ""
	}
}

// ParseFixedSide accepts "", "left", "right", "true" and "false".
// "true" means left.
func ParseFixedSide(s string) (FixedSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "none":
		return FixedNone, nil
	case "left", "true":
		return FixedLeft, nil
	case "right":
		return FixedRight, nil
	}
	return FixedNone, fmt.Errorf("unknown fixed side %q", s)
}

// ColumnType selects the built-in behaviour of a column.
type ColumnType uint8

const (
	ColumnNormal ColumnType = iota
	ColumnIndex
	ColumnSelection
	ColumnExpand
)

func (c ColumnType) String() string {
	switch c {
	case ColumnIndex:
		return "index"
	case ColumnSelection:
		return "selection"
	case ColumnExpand:
		return "expand"
	default:
		return "normal"
	}
}

// ParseColumnType is the inverse of ColumnType.String. Empty means normal.
func ParseColumnType(s string) (ColumnType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal", "default":
		return ColumnNormal, nil
	case "index":
		return ColumnIndex, nil
	case "selection":
		return ColumnSelection, nil
	case "expand":
		return ColumnExpand, nil
	}
	return ColumnNormal, fmt.Errorf("unknown column type %q", s)
}

// Align is the horizontal alignment of cell content.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlign accepts "", "left", "center" and "right".
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// Sortable controls whether clicking a header sorts.
type Sortable uint8

const (
	SortDisabled Sortable = iota
	SortEnabled
	// SortCustom emits sort-change but never reorders rows locally; the
	// data source is expected to sort and replace the data.
	SortCustom
)

// ParseSortable accepts "", "false", "true" and "custom".
func ParseSortable(s string) (Sortable, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false":
		return SortDisabled, nil
	case "true":
		return SortEnabled, nil
	case "custom":
		return SortCustom, nil
	}
	return SortDisabled, fmt.Errorf("unknown sortable mode %q", s)
}

// SortOrder is the direction of the active sort. NoOrder means unsorted.
type SortOrder string

const (
	NoOrder    SortOrder = ""
	Ascending  SortOrder = "ascending"
	Descending SortOrder = "descending"
)

// ParseSortOrder accepts "", "null", "ascending"/"asc" and "descending"/"desc".
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "null", "none":
		return NoOrder, nil
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	}
	return NoOrder, fmt.Errorf("unknown sort order %q", s)
}

// DefaultSortOrders is the cycle used when a column declares none.
var DefaultSortOrders = []SortOrder{Ascending, Descending, NoOrder}

// SortKey extracts the value a row is ordered by. index is the row's position
// in the unsorted input.
type SortKey func(row *Row, index int) any

// ByField returns a SortKey reading a single field.
func ByField(field string) SortKey {
	return func(row *Row, _ int) any {
		return row.Get(field)
	}
}

// Formatter renders a cell value as text.
type Formatter func(row *Row, column *Column, value any, index int) string

// Column is one table column or column group.
//
// Group columns (with Children) only contribute a header cell spanning their
// leaves; leaves render one data cell per row and resolve to exactly one
// pixel width.
type Column struct {
	// ID is assigned on registration when empty.
	ID       string
	Prop     string
	Label    string
	Width    string
	MinWidth string
	Align    Align
	Fixed    FixedSide
	Type     ColumnType

	Sortable   Sortable
	SortOrders []SortOrder
	// SortMethod compares two rows, returning <0, 0 or >0. It takes
	// precedence over SortBy and Prop. A panic propagates to the caller.
	SortMethod func(a, b *Row) int
	// SortBy lists keys compared in turn; later keys break ties.
	SortBy []SortKey

	ClassName string
	Formatter Formatter
	Children  []*Column

	// Derived by the registry on every column-set change.
	isLeaf    bool
	level     int
	colSpan   int
	rowSpan   int
	fixed     FixedSide
	realWidth int
}

// IsLeaf reports whether the column renders data cells.
func (c *Column) IsLeaf() bool { return c.isLeaf }

// Level is the header row the column is drawn in (0 = top).
func (c *Column) Level() int { return c.level }

// ColSpan is the number of leaf columns under this column (1 for a leaf).
func (c *Column) ColSpan() int { return c.colSpan }

// RowSpan is 1 for groups and stretches leaves down to the last header row.
func (c *Column) RowSpan() int { return c.rowSpan }

// RealWidth is the resolved pixel width. For a group it is the sum of its
// leaves.
func (c *Column) RealWidth() int {
	if len(c.Children) == 0 {
		return c.realWidth
	}
	w := 0
	for _, leaf := range FlattenColumns(c.Children) {
		w += leaf.realWidth
	}
	return w
}

// FixedSide is the effective fixed side: the column's own, or the one
// inherited from the nearest fixed ancestor group.
func (c *Column) FixedSide() FixedSide { return c.fixed }

func (c *Column) sortOrders() []SortOrder {
	if len(c.SortOrders) > 0 {
		return c.SortOrders
	}
	return DefaultSortOrders
}

func (c *Column) String() string {
	if c.Label != "" {
		return c.Label
	}
	if c.Prop != "" {
		return c.Prop
	}
	return c.Type.String()
}
