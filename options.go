package table

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Option is a functional option for configuring a Table.
type Option func(*Table) error

// LoadFunc fetches the children of a lazy row. It must eventually call
// resolve exactly once; later calls are ignored. resolve may be called
// synchronously or from any goroutine. A loader that never resolves leaves
// the row loading forever.
type LoadFunc func(row *Row, node TreeNode, resolve func(children []*Row))

// RowContext is passed to row class and style callbacks.
type RowContext struct {
	Row      *Row
	RowIndex int
}

// CellContext is passed to cell class and style callbacks.
type CellContext struct {
	Row         *Row
	Column      *Column
	RowIndex    int
	ColumnIndex int
}

// SelectableFunc reports whether a row can be selected. index is the row's
// position within its sibling list.
type SelectableFunc func(row *Row, index int) bool

// TreeProps names the row fields used for hierarchical data.
type TreeProps struct {
	Children      string
	HasChildren   string
	CheckStrictly bool
}

type config struct {
	rowKey      RowKeyFunc
	rowKeyField string

	fit    bool
	stripe bool
	border bool

	childrenField    string
	hasChildrenField string
	checkStrictly    bool
	lazy             bool
	load             LoadFunc
	defaultExpandAll bool
	expandRowKeys    map[string]bool
	indent           int

	defaultSort *SortState
	selectable  SelectableFunc
	spanMethod  SpanMethod

	rowClassName  func(RowContext) string
	rowStyle      func(RowContext) Style
	cellClassName func(CellContext) string
	cellStyle     func(CellContext) Style

	highlightCurrentRow bool
	currentRowKey       string

	scrollbarWidth   int
	layoutDebounce   time.Duration
	eventQueueSize   int
	logger           logrus.FieldLogger
	onWidthsComputed func()
}

func defaultConfig() config {
	return config{
		fit:              true,
		childrenField:    "children",
		hasChildrenField: "hasChildren",
		indent:           defaultIndent,
		layoutDebounce:   defaultLayoutDebounce,
		eventQueueSize:   defaultEventQueueSize,
	}
}

func (c *config) validate() error {
	if c.lazy && c.load == nil {
		return errors.New("lazy mode requires a load function")
	}
	return nil
}

// WithRowKey identifies rows by the value of field.
func WithRowKey(field string) Option {
	return func(t *Table) error {
		if field == "" {
			return errors.New("row key field cannot be empty")
		}
		t.cfg.rowKey = FieldKey(field)
		t.cfg.rowKeyField = field
		return nil
	}
}

// WithRowKeyFunc identifies rows by a derived key.
func WithRowKeyFunc(fn RowKeyFunc) Option {
	return func(t *Table) error {
		if fn == nil {
			return errors.New("row key func cannot be nil")
		}
		t.cfg.rowKey = fn
		t.cfg.rowKeyField = ""
		return nil
	}
}

// WithFit controls whether flexible columns stretch to fill the container.
// Default is true. With fit disabled every flexible column is MinFlexWidth
// wide and the content may overflow horizontally.
func WithFit(fit bool) Option {
	return func(t *Table) error {
		t.cfg.fit = fit
		return nil
	}
}

// WithStripe adds the is-striped class to every odd body row.
func WithStripe(stripe bool) Option {
	return func(t *Table) error {
		t.cfg.stripe = stripe
		return nil
	}
}

// WithBorder records whether the host draws vertical cell borders.
func WithBorder(border bool) Option {
	return func(t *Table) error {
		t.cfg.border = border
		return nil
	}
}

// WithTreeProps overrides the children and hasChildren field names and the
// strict selection flag. Empty names keep the defaults.
func WithTreeProps(props TreeProps) Option {
	return func(t *Table) error {
		if props.Children != "" {
			t.cfg.childrenField = props.Children
		}
		if props.HasChildren != "" {
			t.cfg.hasChildrenField = props.HasChildren
		}
		t.cfg.checkStrictly = props.CheckStrictly
		return nil
	}
}

// WithLazy enables lazy children: rows carrying the hasChildren marker get
// their children from load on first expansion.
func WithLazy(load LoadFunc) Option {
	return func(t *Table) error {
		if load == nil {
			return errors.New("lazy load function cannot be nil")
		}
		t.cfg.lazy = true
		t.cfg.load = load
		return nil
	}
}

// WithDefaultExpandAll expands every tree row when it is first seen.
func WithDefaultExpandAll(expand bool) Option {
	return func(t *Table) error {
		t.cfg.defaultExpandAll = expand
		return nil
	}
}

// WithExpandRowKeys expands the listed tree rows when they are first seen.
func WithExpandRowKeys(keys ...string) Option {
	return func(t *Table) error {
		t.cfg.expandRowKeys = make(map[string]bool, len(keys))
		for _, k := range keys {
			t.cfg.expandRowKeys[k] = true
		}
		return nil
	}
}

// WithIndent sets the per-level tree indentation in pixels. Default is 16.
func WithIndent(px int) Option {
	return func(t *Table) error {
		if px < 0 {
			return fmt.Errorf("indent cannot be negative: %d", px)
		}
		t.cfg.indent = px
		return nil
	}
}

// WithDefaultSort sorts by prop once a column with that prop is registered,
// unless the user sorted first.
func WithDefaultSort(prop string, order SortOrder) Option {
	return func(t *Table) error {
		if prop == "" {
			return errors.New("default sort prop cannot be empty")
		}
		t.cfg.defaultSort = &SortState{Prop: prop, Order: order}
		return nil
	}
}

// WithSelectable excludes rows from selection when fn returns false.
func WithSelectable(fn SelectableFunc) Option {
	return func(t *Table) error {
		t.cfg.selectable = fn
		return nil
	}
}

// WithSpanMethod installs the cell merge callback. See SpanMethod.
func WithSpanMethod(fn SpanMethod) Option {
	return func(t *Table) error {
		t.cfg.spanMethod = fn
		return nil
	}
}

// WithRowClassName adds the returned class to each body row.
func WithRowClassName(fn func(RowContext) string) Option {
	return func(t *Table) error {
		t.cfg.rowClassName = fn
		return nil
	}
}

// WithStaticRowClassName adds class to every body row.
func WithStaticRowClassName(class string) Option {
	return WithRowClassName(func(RowContext) string { return class })
}

// WithRowStyle merges the returned style into each body row.
func WithRowStyle(fn func(RowContext) Style) Option {
	return func(t *Table) error {
		t.cfg.rowStyle = fn
		return nil
	}
}

// WithCellClassName adds the returned class to each body cell.
func WithCellClassName(fn func(CellContext) string) Option {
	return func(t *Table) error {
		t.cfg.cellClassName = fn
		return nil
	}
}

// WithCellStyle merges the returned style into each body cell.
func WithCellStyle(fn func(CellContext) Style) Option {
	return func(t *Table) error {
		t.cfg.cellStyle = fn
		return nil
	}
}

// WithHighlightCurrentRow enables current-row tracking on row clicks.
func WithHighlightCurrentRow(highlight bool) Option {
	return func(t *Table) error {
		t.cfg.highlightCurrentRow = highlight
		return nil
	}
}

// WithCurrentRowKey sets the initially highlighted row by key.
func WithCurrentRowKey(key string) Option {
	return func(t *Table) error {
		t.cfg.currentRowKey = key
		return nil
	}
}

// WithScrollbarWidth sets the pixel width of the body's vertical scrollbar,
// added to right-fixed header offsets while the scrollbar is shown.
func WithScrollbarWidth(px int) Option {
	return func(t *Table) error {
		if px < 0 {
			return fmt.Errorf("scrollbar width cannot be negative: %d", px)
		}
		t.cfg.scrollbarWidth = px
		return nil
	}
}

// WithLayoutDebounce sets how long width recalculation waits for further
// column or resize changes. Default is 100ms. Zero defers to the next tick.
func WithLayoutDebounce(d time.Duration) Option {
	return func(t *Table) error {
		if d < 0 {
			return fmt.Errorf("layout debounce cannot be negative: %v", d)
		}
		t.cfg.layoutDebounce = d
		return nil
	}
}

// WithEventQueueSize sets the capacity of the update queue. Default is 256.
func WithEventQueueSize(size int) Option {
	return func(t *Table) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		t.cfg.eventQueueSize = size
		return nil
	}
}

// WithFrameRate sets how often Run wakes up to render when idle.
// Valid range is 1-240 fps.
func WithFrameRate(fps int) Option {
	return func(t *Table) error {
		if fps < 1 || fps > 240 {
			return fmt.Errorf("frame rate must be between 1 and 240 fps, got %d", fps)
		}
		t.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithLogger sends table warnings to l instead of the shared debug logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(t *Table) error {
		t.cfg.logger = l
		return nil
	}
}

// WithOnColumnWidthsCalculated runs fn on the tick after every committed
// width recalculation.
func WithOnColumnWidthsCalculated(fn func()) Option {
	return func(t *Table) error {
		t.cfg.onWidthsComputed = fn
		return nil
	}
}
