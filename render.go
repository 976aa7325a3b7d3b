package table

import (
	"fmt"
	"strconv"
	"strings"
)

// HeaderCell is the render instruction for one header cell.
type HeaderCell struct {
	Column  *Column
	ColSpan int
	RowSpan int
	Class   string
	Style   Style
}

// BodyCell is the render instruction for one body cell.
type BodyCell struct {
	Column *Column
	Span   Span
	// Hidden cells are covered by another cell's span and render nothing.
	Hidden  bool
	Class   string
	Style   Style
	Content string
}

// BodyRow is the render instruction for one visible row.
type BodyRow struct {
	Row   *Row
	Key   string
	Index int
	Level int
	// Indent is Level times the configured indent, in pixels.
	Indent      int
	HasChildren bool
	Expanded    bool
	Loading     bool
	Selected    bool
	Class       string
	Style       Style
	Cells       []BodyCell
}

// Header returns the header rows with spans, classes and sticky offsets.
func (t *Table) Header() [][]HeaderCell {
	out := make([][]HeaderCell, len(t.headerRows))
	for i, row := range t.headerRows {
		cells := make([]HeaderCell, len(row))
		for j, col := range row {
			cells[j] = HeaderCell{
				Column:  col,
				ColSpan: col.ColSpan(),
				RowSpan: col.RowSpan(),
				Class:   joinClasses(t.GetCellClass(col), t.headerSortClass(col)),
				Style:   t.GetCellFixedStyle(col, true),
			}
		}
		out[i] = cells
	}
	return out
}

func (t *Table) headerSortClass(col *Column) string {
	var classes []string
	if col.Sortable != SortDisabled {
		classes = append(classes, "is-sortable")
	}
	if t.sort.Column == col && t.sort.Order != NoOrder {
		classes = append(classes, string(t.sort.Order))
	}
	return strings.Join(classes, " ")
}

// Body returns the visible rows in display order with per-cell instructions.
// Span, class and style callbacks run here; a panic in one propagates.
func (t *Table) Body() []BodyRow {
	visible := t.VisibleRows()
	out := make([]BodyRow, len(visible))
	for i, vr := range visible {
		br := BodyRow{
			Row:      vr.Row,
			Key:      vr.Key,
			Index:    i,
			Level:    vr.Level,
			Indent:   vr.Level * t.cfg.indent,
			Expanded: t.IsRowExpanded(vr.Row),
			Selected: t.IsSelected(vr.Row),
			Class:    t.rowClass(vr.Row, i),
			Style:    Style{},
		}
		if node, ok := t.tree[vr.Key]; ok {
			br.HasChildren = node.HasChildren()
			br.Loading = node.Loading
		}
		if t.cfg.rowStyle != nil {
			br.Style = br.Style.merge(t.cfg.rowStyle(RowContext{Row: vr.Row, RowIndex: i}))
		}

		br.Cells = make([]BodyCell, len(t.leaves))
		for j, col := range t.leaves {
			br.Cells[j] = t.bodyCell(vr.Row, col, i, j)
		}
		out[i] = br
	}
	return out
}

func (t *Table) rowClass(row *Row, index int) string {
	var classes []string
	if t.cfg.stripe && index%2 == 1 {
		classes = append(classes, "is-striped")
	}
	if t.cfg.highlightCurrentRow && row == t.currentRow {
		classes = append(classes, "current-row")
	}
	if t.cfg.rowClassName != nil {
		classes = append(classes, t.cfg.rowClassName(RowContext{Row: row, RowIndex: index}))
	}
	return joinClasses(classes...)
}

func (t *Table) bodyCell(row *Row, col *Column, rowIndex, colIndex int) BodyCell {
	span := t.GetCellSpan(row, col, rowIndex, colIndex)
	cell := BodyCell{
		Column: col,
		Span:   span,
		Hidden: span.Hidden(),
		Class:  t.GetCellClass(col),
		Style:  t.GetCellFixedStyle(col, false),
	}
	ctx := CellContext{Row: row, Column: col, RowIndex: rowIndex, ColumnIndex: colIndex}
	if t.cfg.cellClassName != nil {
		cell.Class = joinClasses(cell.Class, t.cfg.cellClassName(ctx))
	}
	if t.cfg.cellStyle != nil {
		cell.Style = cell.Style.merge(t.cfg.cellStyle(ctx))
	}
	if !cell.Hidden {
		cell.Content = cellContent(row, col, rowIndex)
	}
	return cell
}

// cellContent renders the text of a cell. Selection and expand cells are
// drawn by the host from BodyRow state and have no text.
func cellContent(row *Row, col *Column, rowIndex int) string {
	switch col.Type {
	case ColumnIndex:
		return strconv.Itoa(rowIndex + 1)
	case ColumnSelection, ColumnExpand:
		return ""
	}
	var value any
	if col.Prop != "" {
		value = row.Get(col.Prop)
	}
	if col.Formatter != nil {
		return col.Formatter(row, col, value, rowIndex)
	}
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func joinClasses(classes ...string) string {
	var parts []string
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
