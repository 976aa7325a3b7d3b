package table

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/grindlemire/go-table/internal/debug"
)

// MinFlexWidth is the narrowest width a flexible column is given.
const MinFlexWidth = 80

const (
	defaultLayoutDebounce = 100 * time.Millisecond
	defaultEventQueueSize = 256
	defaultIndent         = 16
	defaultFrameDuration  = 16 * time.Millisecond
)

// Table owns the layout and row state of one data table.
//
// All methods must be called from a single goroutine (the table loop).
// Background work such as timers and asynchronous lazy loads reaches the
// table through QueueUpdate; the host drains it with Tick, Flush or Run.
type Table struct {
	cfg    config
	logger logrus.FieldLogger

	// Reactive inputs.
	data           *State[[]*Row]
	containerWidth *State[int]
	currentRowKey  *State[string]

	// Column registry.
	columns      []*Column
	leaves       []*Column
	leafIndex    map[*Column]int
	headerRows   [][]*Column
	tableWidth   int
	contentWidth int
	layout       *debouncer

	// Sort engine.
	sort       SortState
	userSorted bool

	// Tree flattener.
	tree         map[string]*TreeNode
	rowsByKey    map[string]*Row
	lazyChildren map[string][]*Row
	warnedNoKey  bool
	// dataGen counts SetData calls. Loads started under an older value are
	// discarded when they resolve.
	dataGen uint64

	selection    []*Row
	currentRow   *Row
	expandedRows map[*Row]bool
	scroll       scrollState

	sortChange      *Events[SortChangeEvent]
	expandChange    *Events[ExpandChangeEvent]
	selectionChange *Events[[]*Row]
	selectAll       *Events[[]*Row]
	currentChange   *Events[CurrentChangeEvent]

	// Loop.
	dirty         atomic.Bool
	batch         batcher
	bindingIDs    atomic.Uint64
	queue         chan func()
	stopCh        chan struct{}
	stopOnce      sync.Once
	frameDuration time.Duration
}

// New creates a table configured by opts. Columns are added with
// RegisterColumn and rows with SetData.
func New(opts ...Option) (*Table, error) {
	t := &Table{
		cfg:           defaultConfig(),
		tree:          make(map[string]*TreeNode),
		rowsByKey:     make(map[string]*Row),
		lazyChildren:  make(map[string][]*Row),
		leafIndex:     make(map[*Column]int),
		expandedRows:  make(map[*Row]bool),
		stopCh:        make(chan struct{}),
		frameDuration: defaultFrameDuration,
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("table option: %w", err)
		}
	}
	if err := t.cfg.validate(); err != nil {
		return nil, err
	}

	t.logger = t.cfg.logger
	if t.logger == nil {
		t.logger = debug.Logger()
	}
	t.queue = make(chan func(), t.cfg.eventQueueSize)
	t.layout = newDebouncer("layout", t.cfg.layoutDebounce, t.QueueUpdate, t.recalculateWidths)

	t.sortChange = NewEvents[SortChangeEvent](t)
	t.expandChange = NewEvents[ExpandChangeEvent](t)
	t.selectionChange = NewEvents[[]*Row](t)
	t.selectAll = NewEvents[[]*Row](t)
	t.currentChange = NewEvents[CurrentChangeEvent](t)

	t.data = NewState[[]*Row](t, nil)
	t.containerWidth = NewState(t, 0)
	t.currentRowKey = NewState(t, t.cfg.currentRowKey)

	t.data.Bind(t.onDataChange)
	t.containerWidth.Bind(func(int) { t.layout.Trigger() })
	t.currentRowKey.Bind(t.applyCurrentRowKey)

	return t, nil
}

// SetData replaces the row data. Tree state is re-normalized, lazily loaded
// children are invalidated, and selected rows that are no longer present are
// dropped from the selection.
func (t *Table) SetData(rows []*Row) {
	t.lazyChildren = make(map[string][]*Row)
	t.dataGen++
	for _, node := range t.tree {
		node.Loading = false
	}
	t.data.Set(rows)
}

// Data returns the current top-level rows in source order.
func (t *Table) Data() []*Row {
	return t.data.Get()
}

// SetContainerWidth reports the pixel width available to the table. It is the
// resize signal: a debounced width recalculation follows.
func (t *Table) SetContainerWidth(px int) {
	t.containerWidth.Set(px)
}

// ContainerWidth returns the last reported container width.
func (t *Table) ContainerWidth() int {
	return t.containerWidth.Get()
}

// Border reports whether the host should draw borders between cells.
func (t *Table) Border() bool {
	return t.cfg.border
}

func (t *Table) onDataChange(rows []*Row) {
	debug.Log("Table: data changed (%d top-level rows)", len(rows))
	t.normalizeTree()
	t.pruneSelection()
	t.pruneExpandedRows()
	if key := t.currentRowKey.Get(); key != "" {
		t.applyCurrentRowKey(key)
	} else if t.currentRow != nil && !t.containsRow(t.currentRow) {
		t.setCurrentRow(nil, t.cfg.highlightCurrentRow)
	}
}

// rowKeyOf returns the row's key, or "" when no key function is configured
// or the row has no usable key.
func (t *Table) rowKeyOf(row *Row) string {
	if t.cfg.rowKey == nil || row == nil {
		return ""
	}
	return t.cfg.rowKey(row)
}

// childRowsOf prefers lazily loaded children over the children field.
func (t *Table) childRowsOf(row *Row) []*Row {
	if key := t.rowKeyOf(row); key != "" {
		if cached, ok := t.lazyChildren[key]; ok {
			return cached
		}
	}
	return row.ChildRows(t.cfg.childrenField)
}

// walkRows visits every row of the source forest depth-first, including
// lazily loaded children. Returning false from fn skips the row's subtree.
func (t *Table) walkRows(fn func(row *Row, index int, parent *Row) bool) {
	var walk func(rows []*Row, parent *Row)
	walk = func(rows []*Row, parent *Row) {
		for i, row := range rows {
			if fn(row, i, parent) {
				walk(t.childRowsOf(row), row)
			}
		}
	}
	walk(t.data.Get(), nil)
}

func (t *Table) containsRow(target *Row) bool {
	found := false
	t.walkRows(func(row *Row, _ int, _ *Row) bool {
		if row == target {
			found = true
		}
		return !found
	})
	return found
}

func (t *Table) warn(format string, args ...any) {
	t.logger.WithField("component", "Table").Warnf(format, args...)
}
