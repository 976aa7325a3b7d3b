package table

import (
	"slices"

	"github.com/google/uuid"

	"github.com/grindlemire/go-table/internal/debug"
)

// RegisterColumn adds a top-level column (with any children) and returns its
// position. With an index the column is inserted there, so columns mounted
// out of order can keep declaration order; an out-of-range index appends.
func (t *Table) RegisterColumn(col *Column, index ...int) int {
	assignColumnIDs(col)
	pos := len(t.columns)
	if len(index) > 0 && index[0] >= 0 && index[0] <= len(t.columns) {
		pos = index[0]
	}
	t.columns = slices.Insert(t.columns, pos, col)
	t.columnsChanged()
	return pos
}

// RegisterChildColumn adds child under parent, optionally at index, and
// returns the child's position among parent's children.
func (t *Table) RegisterChildColumn(parent, child *Column, index ...int) int {
	assignColumnIDs(child)
	pos := len(parent.Children)
	if len(index) > 0 && index[0] >= 0 && index[0] <= len(parent.Children) {
		pos = index[0]
	}
	parent.Children = slices.Insert(parent.Children, pos, child)
	t.columnsChanged()
	return pos
}

// UnregisterColumn removes the top-level column at position. Positions out of
// range are ignored.
func (t *Table) UnregisterColumn(position int) {
	if position < 0 || position >= len(t.columns) {
		return
	}
	removed := t.columns[position]
	t.columns = slices.Delete(t.columns, position, position+1)
	if t.sort.Column != nil && slices.Contains(FlattenColumns([]*Column{removed}), t.sort.Column) {
		t.sort = SortState{}
	}
	t.columnsChanged()
}

// Columns returns the registered top-level columns.
func (t *Table) Columns() []*Column {
	return slices.Clone(t.columns)
}

// LeafColumns returns the flattened leaf columns in render order.
func (t *Table) LeafColumns() []*Column {
	return t.leaves
}

// HeaderRows returns the multi-row header layout: row i holds the columns
// whose Level is i.
func (t *Table) HeaderRows() [][]*Column {
	return t.headerRows
}

// FixedLeftCount returns the number of left-fixed leaf columns.
func (t *Table) FixedLeftCount() int {
	return t.countFixed(FixedLeft)
}

// FixedRightCount returns the number of right-fixed leaf columns.
func (t *Table) FixedRightCount() int {
	return t.countFixed(FixedRight)
}

// ColumnByProp returns the first leaf column with the given prop.
func (t *Table) ColumnByProp(prop string) *Column {
	for _, col := range t.leaves {
		if col.Prop == prop {
			return col
		}
	}
	return nil
}

func (t *Table) countFixed(side FixedSide) int {
	n := 0
	for _, col := range t.leaves {
		if col.fixed == side {
			n++
		}
	}
	return n
}

// columnsChanged recomputes every derived column field and schedules a
// width pass.
func (t *Table) columnsChanged() {
	annotateColumns(t.columns, FixedNone)
	t.leaves = FlattenColumns(t.columns)
	t.leafIndex = make(map[*Column]int, len(t.leaves))
	for i, leaf := range t.leaves {
		t.leafIndex[leaf] = i
	}
	t.headerRows = ConvertToRows(t.columns)
	debug.Log("Table: %d columns, %d leaves, %d header rows", len(t.columns), len(t.leaves), len(t.headerRows))

	t.applyDefaultSort()
	t.MarkDirty()
	t.layout.Trigger()
}

// FlattenColumns returns the leaves of the column forest depth-first. A group
// contributes nothing itself; each leaf is marked as such. Flattening an
// already flat leaf list returns the same list.
func FlattenColumns(cols []*Column) []*Column {
	var result []*Column
	var flatten func(cols []*Column)
	flatten = func(cols []*Column) {
		for _, col := range cols {
			if len(col.Children) > 0 {
				flatten(col.Children)
				continue
			}
			col.isLeaf = true
			result = append(result, col)
		}
	}
	flatten(cols)
	return result
}

// ConvertToRows lays the column forest out as header rows. Each column is
// annotated with ColSpan (its leaf count) and RowSpan (1 for groups, the
// remaining depth for leaves so they reach the bottom header row).
func ConvertToRows(cols []*Column) [][]*Column {
	maxDepth := columnDepth(cols)
	rows := make([][]*Column, maxDepth)

	var visit func(col *Column, level int)
	visit = func(col *Column, level int) {
		col.level = level
		if len(col.Children) > 0 {
			span := 0
			for _, child := range col.Children {
				visit(child, level+1)
				span += child.colSpan
			}
			col.colSpan = span
			col.rowSpan = 1
			col.isLeaf = false
		} else {
			col.colSpan = 1
			col.rowSpan = maxDepth - level
			col.isLeaf = true
		}
		rows[level] = append(rows[level], col)
	}
	for _, col := range cols {
		visit(col, 0)
	}
	return rows
}

func columnDepth(cols []*Column) int {
	depth := 0
	for _, col := range cols {
		d := 1
		if len(col.Children) > 0 {
			d += columnDepth(col.Children)
		}
		depth = max(depth, d)
	}
	return depth
}

// annotateColumns propagates a group's fixed side to its descendants.
func annotateColumns(cols []*Column, inherited FixedSide) {
	for _, col := range cols {
		col.fixed = col.Fixed
		if col.fixed == FixedNone {
			col.fixed = inherited
		}
		annotateColumns(col.Children, col.fixed)
	}
}

func assignColumnIDs(col *Column) {
	if col.ID == "" {
		col.ID = uuid.NewString()
	}
	for _, child := range col.Children {
		assignColumnIDs(child)
	}
}

// leafRange returns the index of the column's first leaf and its leaf count.
func (t *Table) leafRange(col *Column) (start, count int, ok bool) {
	leaves := FlattenColumns([]*Column{col})
	if len(leaves) == 0 {
		return 0, 0, false
	}
	start, ok = t.leafIndex[leaves[0]]
	return start, len(leaves), ok
}
