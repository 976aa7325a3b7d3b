package table

import (
	"sync"

	"github.com/grindlemire/go-table/internal/debug"
)

// loadTreeNode moves an unloaded lazy node to loading and calls the loader.
// The expansion completes when resolve delivers the children: right away if
// the loader resolves synchronously, otherwise on the table loop. A node that
// is already loading ignores further requests. A resolution that arrives
// after SetData replaced the rows is discarded.
func (t *Table) loadTreeNode(row *Row, key string, node *TreeNode) {
	if node.Loading {
		debug.Log("Table: %s already loading", key)
		return
	}
	node.Loading = true
	gen := t.dataGen
	t.MarkDirty()

	done := make(chan []*Row, 1)
	var once sync.Once
	resolve := func(children []*Row) {
		once.Do(func() { done <- children })
	}

	debug.Log("Table: loading children of %s", key)
	t.cfg.load(row, *node, resolve)

	select {
	case children := <-done:
		t.finishLoad(key, gen, children)
	default:
		go func() {
			select {
			case children := <-done:
				t.postUpdate(func() { t.finishLoad(key, gen, children) })
			case <-t.stopCh:
			}
		}()
	}
}

// finishLoad caches the loaded children, normalizes the new subtree under
// its parent and opens the parent.
func (t *Table) finishLoad(key string, gen uint64, children []*Row) {
	if gen != t.dataGen {
		debug.Log("Table: dropping stale load of %s", key)
		return
	}
	if children == nil {
		children = []*Row{}
	}
	t.lazyChildren[key] = children

	node, ok := t.tree[key]
	if !ok {
		// The row left the data while loading.
		return
	}
	row := t.rowsByKey[key]
	node.Loading = false
	node.Loaded = true

	t.normalizeTree()

	node = t.tree[key]
	if node == nil || node.Expanded {
		return
	}
	node.Expanded = true
	debug.Log("Table: %s loaded %d children", key, len(children))
	t.expandChange.Emit(ExpandChangeEvent{Row: row, Expanded: true})
}
