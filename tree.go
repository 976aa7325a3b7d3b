package table

import (
	"fmt"

	"github.com/grindlemire/go-table/internal/debug"
)

// TreeNode is the per-row bookkeeping of hierarchical data, keyed by row key.
type TreeNode struct {
	Level    int
	Expanded bool
	// Children are the keys of the row's child rows, from the lazy cache
	// once loaded, else from the children field.
	Children []string
	Lazy     bool
	Loaded   bool
	Loading  bool
	// Parent is the parent's key, "" for top-level rows.
	Parent string
}

// HasChildren reports whether the node can be expanded.
func (n *TreeNode) HasChildren() bool {
	return len(n.Children) > 0 || (n.Lazy && !n.Loaded)
}

// TreeNode returns a copy of the node for key.
func (t *Table) TreeNode(key string) (TreeNode, bool) {
	node, ok := t.tree[key]
	if !ok {
		return TreeNode{}, false
	}
	cp := *node
	cp.Children = append([]string(nil), node.Children...)
	return cp, true
}

// RowByKey returns the row registered under key.
func (t *Table) RowByKey(key string) (*Row, bool) {
	row, ok := t.rowsByKey[key]
	return row, ok
}

// RowKey returns the row's key, or "" when it has none.
func (t *Table) RowKey(row *Row) string {
	return t.rowKeyOf(row)
}

// normalizeTree rebuilds the node map from the current data. Nodes that
// already existed keep their expansion and load state, so normalizing the
// same data again changes nothing.
func (t *Table) normalizeTree() {
	prev := t.tree
	t.tree = make(map[string]*TreeNode, len(prev))
	t.rowsByKey = make(map[string]*Row, len(prev))

	if t.cfg.rowKey == nil {
		if !t.warnedNoKey && t.hasTreeData() {
			t.warnedNoKey = true
			t.warn("tree data requires a row key; rendering rows flat")
		}
		return
	}
	t.normalizeRows(t.data.Get(), 0, "", prev)
	debug.Log("Table: normalized %d tree nodes", len(t.tree))
}

func (t *Table) normalizeRows(rows []*Row, level int, parent string, prev map[string]*TreeNode) {
	for _, row := range rows {
		key := t.rowKeyOf(row)
		if key == "" {
			t.warn("row %v has no key; tree features disabled for it", row)
			continue
		}

		_, cached := t.lazyChildren[key]
		children := t.childRowsOf(row)
		node := &TreeNode{
			Level:  level,
			Parent: parent,
			Lazy:   t.cfg.lazy && truthy(row.Get(t.cfg.hasChildrenField)),
			Loaded: cached,
		}
		if old, ok := prev[key]; ok {
			node.Expanded = old.Expanded
			node.Loading = old.Loading && !cached
		} else {
			node.Expanded = t.shouldExpand(key)
		}
		if node.Lazy && !node.Loaded {
			node.Expanded = false
		}

		node.Children = make([]string, 0, len(children))
		for _, child := range children {
			if ck := t.rowKeyOf(child); ck != "" {
				node.Children = append(node.Children, ck)
			}
		}

		t.tree[key] = node
		t.rowsByKey[key] = row
		t.normalizeRows(children, level+1, key, prev)
	}
}

func (t *Table) shouldExpand(key string) bool {
	return t.cfg.defaultExpandAll || t.cfg.expandRowKeys[key]
}

func (t *Table) hasTreeData() bool {
	for _, row := range t.data.Get() {
		if len(row.ChildRows(t.cfg.childrenField)) > 0 {
			return true
		}
		if t.cfg.lazy && truthy(row.Get(t.cfg.hasChildrenField)) {
			return true
		}
	}
	return false
}

// VisibleRow is one row of the flattened, expansion-aware row sequence.
type VisibleRow struct {
	Row   *Row
	Key   string
	Level int
}

// VisibleRows flattens the (sorted) forest: a row is visible iff it is
// top-level or all of its ancestors are expanded.
func (t *Table) VisibleRows() []VisibleRow {
	var out []VisibleRow
	t.flatten(t.data.Get(), 0, &out)
	return out
}

func (t *Table) flatten(rows []*Row, level int, out *[]VisibleRow) {
	for _, row := range t.sortRows(rows) {
		key := t.rowKeyOf(row)
		*out = append(*out, VisibleRow{Row: row, Key: key, Level: level})
		if node, ok := t.tree[key]; ok && node.Expanded {
			t.flatten(t.childRowsOf(row), level+1, out)
		}
	}
}

// IsRowExpanded reports whether a tree row or an expandable row is open.
func (t *Table) IsRowExpanded(row *Row) bool {
	if node, ok := t.tree[t.rowKeyOf(row)]; ok && node.Expanded {
		return true
	}
	return t.expandedRows[row]
}

// ToggleRowExpansion opens or closes row. Tree rows flip their node; an
// unloaded lazy row first loads its children and opens once the loader
// resolves. Rows without children toggle the expand-column state.
func (t *Table) ToggleRowExpansion(row *Row) {
	t.SetRowExpansion(row, !t.IsRowExpanded(row))
}

// SetRowExpansion opens or closes row. Setting the current state is a no-op.
func (t *Table) SetRowExpansion(row *Row, expanded bool) {
	key := t.rowKeyOf(row)
	if node, ok := t.tree[key]; ok && node.HasChildren() {
		t.setTreeExpansion(row, key, node, expanded)
		return
	}
	t.setRowExpanded(row, expanded)
}

// ToggleRowExpansionByKey is ToggleRowExpansion for a row key.
func (t *Table) ToggleRowExpansionByKey(key string) error {
	if t.cfg.rowKey == nil {
		return fmt.Errorf("toggle %q: %w", key, ErrNoRowKey)
	}
	row, ok := t.rowsByKey[key]
	if !ok {
		return fmt.Errorf("toggle %q: %w", key, ErrUnknownRow)
	}
	t.ToggleRowExpansion(row)
	return nil
}

func (t *Table) setTreeExpansion(row *Row, key string, node *TreeNode, expanded bool) {
	if expanded && node.Lazy && !node.Loaded {
		t.loadTreeNode(row, key, node)
		return
	}
	if node.Expanded == expanded {
		return
	}
	node.Expanded = expanded
	t.expandChange.Emit(ExpandChangeEvent{Row: row, Expanded: expanded})
}

// ExpandAllTreeNodes opens every tree row that has children. Lazy rows that
// have not loaded stay closed.
func (t *Table) ExpandAllTreeNodes() {
	for _, node := range t.tree {
		if len(node.Children) > 0 && !(node.Lazy && !node.Loaded) {
			node.Expanded = true
		}
	}
	t.MarkDirty()
}

// CollapseAllTreeNodes closes every tree row.
func (t *Table) CollapseAllTreeNodes() {
	for _, node := range t.tree {
		node.Expanded = false
	}
	t.MarkDirty()
}

// GetExpandedRows returns the open rows in source order, hidden ones included.
func (t *Table) GetExpandedRows() []*Row {
	var out []*Row
	t.walkRows(func(row *Row, _ int, _ *Row) bool {
		if t.IsRowExpanded(row) {
			out = append(out, row)
		}
		return true
	})
	return out
}

// GetParentKey returns the key of the row's parent, or "" for top-level rows
// and unknown keys.
func (t *Table) GetParentKey(key string) string {
	if node, ok := t.tree[key]; ok {
		return node.Parent
	}
	return ""
}

// GetAllAncestors returns the row's ancestors, nearest first. It walks the
// row data and does not depend on expansion state or row keys.
func (t *Table) GetAllAncestors(target *Row) []*Row {
	parents := make(map[*Row]*Row)
	found := false
	t.walkRows(func(row *Row, _ int, parent *Row) bool {
		parents[row] = parent
		if row == target {
			found = true
		}
		return !found
	})
	if !found {
		return nil
	}

	var out []*Row
	for p := parents[target]; p != nil; p = parents[p] {
		out = append(out, p)
	}
	return out
}

// GetAllDescendants returns every row below row, depth-first, including
// lazily loaded children. It does not depend on expansion state.
func (t *Table) GetAllDescendants(row *Row) []*Row {
	var out []*Row
	var walk func(r *Row)
	walk = func(r *Row) {
		for _, child := range t.childRowsOf(r) {
			out = append(out, child)
			walk(child)
		}
	}
	walk(row)
	return out
}
