package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	table "github.com/grindlemire/go-table"
)

const (
	defaultCellPx = 8
	// cellChrome is the padding and separator tablewriter puts around a cell.
	cellChrome = 3
	treeIndent = 2
)

// cellsFor converts a pixel width into terminal cells of content.
func cellsFor(px, cellPx int) int {
	if cellPx <= 0 {
		cellPx = defaultCellPx
	}
	return max(px/cellPx-cellChrome, 1)
}

type drawer struct {
	tbl      *table.Table
	leaves   []*table.Column
	widths   []int
	paths    map[*table.Column][]*table.Column
	treeCol  int
	rowLines bool
}

func newDrawer(tbl *table.Table, cellPx int) *drawer {
	d := &drawer{
		tbl:      tbl,
		leaves:   tbl.LeafColumns(),
		paths:    make(map[*table.Column][]*table.Column),
		treeCol:  -1,
		rowLines: tbl.Border(),
	}
	d.widths = make([]int, len(d.leaves))
	for i, col := range d.leaves {
		d.widths[i] = cellsFor(col.RealWidth(), cellPx)
		if d.treeCol < 0 && col.Type == table.ColumnNormal {
			d.treeCol = i
		}
	}

	var walk func(cols []*table.Column, path []*table.Column)
	walk = func(cols []*table.Column, path []*table.Column) {
		for _, col := range cols {
			p := append(append([]*table.Column(nil), path...), col)
			if len(col.Children) == 0 {
				d.paths[col] = p
				continue
			}
			walk(col.Children, p)
		}
	}
	walk(tbl.Columns(), nil)
	return d
}

// draw writes the group header lines followed by the table itself.
func (d *drawer) draw(w io.Writer) {
	if len(d.leaves) == 0 {
		fmt.Fprintln(w, "(no columns)")
		return
	}

	depth := len(d.tbl.HeaderRows())
	if depth > 1 {
		fmt.Fprintln(w, d.borderLine())
		for level := 0; level < depth-1; level++ {
			fmt.Fprintln(w, d.groupLine(level))
		}
	}

	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetRowLine(d.rowLines)
	tw.SetHeader(d.headerCells())
	for _, br := range d.tbl.Body() {
		tw.Append(d.bodyCells(br))
	}
	tw.Render()
}

func (d *drawer) borderLine() string {
	var b strings.Builder
	b.WriteString("+")
	for _, w := range d.widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("+")
	}
	return b.String()
}

// groupLine draws header row level. Consecutive leaves under the same group
// at that level share one segment; leaves that end above it are blank.
func (d *drawer) groupLine(level int) string {
	var segments []string
	for i := 0; i < len(d.leaves); {
		group := d.columnAt(i, level)
		j := i + 1
		for group != nil && j < len(d.leaves) && d.columnAt(j, level) == group {
			j++
		}
		width := cellChrome * (j - i - 1)
		for _, w := range d.widths[i:j] {
			width += w
		}
		label := ""
		if group != nil {
			label = group.String()
		}
		segments = append(segments, fit(label, width, table.AlignCenter))
		i = j
	}
	return "| " + strings.Join(segments, " | ") + " |"
}

// columnAt returns the group at level above leaf i, or nil when the leaf's
// own header cell already covers that level.
func (d *drawer) columnAt(i, level int) *table.Column {
	path := d.paths[d.leaves[i]]
	if level >= len(path)-1 {
		return nil
	}
	return path[level]
}

func (d *drawer) headerCells() []string {
	sort := d.tbl.SortState()
	cells := make([]string, len(d.leaves))
	for i, col := range d.leaves {
		label := col.String()
		switch col.Type {
		case table.ColumnSelection:
			label = checkbox(d.tbl.IsAllSelected(), d.tbl.IsIndeterminate())
		case table.ColumnIndex:
			if col.Label == "" {
				label = "#"
			}
		case table.ColumnExpand:
			label = col.Label
		}
		if sort.Column == col {
			switch sort.Order {
			case table.Ascending:
				label += " ▲"
			case table.Descending:
				label += " ▼"
			}
		}
		cells[i] = fit(label, d.widths[i], table.AlignLeft)
	}
	return cells
}

func (d *drawer) bodyCells(br table.BodyRow) []string {
	cells := make([]string, len(br.Cells))
	for i, cell := range br.Cells {
		text := cell.Content
		switch {
		case cell.Hidden:
			text = ""
		case cell.Column.Type == table.ColumnSelection:
			text = checkbox(br.Selected, false)
		case cell.Column.Type == table.ColumnExpand:
			text = disclosure(br.Expanded, false)
		case i == d.treeCol:
			text = d.treePrefix(br) + text
		}
		if i == 0 && br.Row == d.tbl.CurrentRow() {
			text = "›" + text
		}
		cells[i] = fit(text, d.widths[i], cell.Column.Align)
	}
	return cells
}

func (d *drawer) treePrefix(br table.BodyRow) string {
	prefix := strings.Repeat(" ", br.Level*treeIndent)
	if br.HasChildren {
		return prefix + disclosure(br.Expanded, br.Loading) + " "
	}
	if br.Level > 0 {
		return prefix + "  "
	}
	return prefix
}

func checkbox(checked, partial bool) string {
	switch {
	case checked:
		return "[x]"
	case partial:
		return "[-]"
	default:
		return "[ ]"
	}
}

func disclosure(expanded, loading bool) string {
	switch {
	case loading:
		return "…"
	case expanded:
		return "▾"
	default:
		return "▸"
	}
}

// fit truncates s to width terminal cells and pads it according to align.
func fit(s string, width int, align table.Align) string {
	s = runewidth.Truncate(s, width, "…")
	switch align {
	case table.AlignRight:
		return runewidth.FillLeft(s, width)
	case table.AlignCenter:
		pad := width - runewidth.StringWidth(s)
		return runewidth.FillRight(strings.Repeat(" ", pad/2)+s, width)
	default:
		return runewidth.FillRight(s, width)
	}
}
