// Package fixture loads table definitions from YAML.
//
// A fixture names the table options, a nested column forest and nested row
// data:
//
//	rowKey: id
//	stripe: true
//	defaultSort: {prop: age, order: descending}
//	columns:
//	  - {prop: name, label: Name, width: 120, fixed: left}
//	  - label: Stats
//	    children:
//	      - {prop: age, label: Age, sortable: true}
//	rows:
//	  - {id: 1, name: Ann, age: 31, children: [{id: 2, name: Bo, age: 4}]}
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	table "github.com/grindlemire/go-table"
)

// ErrInvalidFixture wraps every validation failure.
var ErrInvalidFixture = errors.New("invalid fixture")

// File is a decoded fixture.
type File struct {
	RowKey              string           `yaml:"rowKey"`
	Fit                 *bool            `yaml:"fit"`
	Stripe              bool             `yaml:"stripe"`
	Border              bool             `yaml:"border"`
	Lazy                bool             `yaml:"lazy"`
	DefaultExpandAll    bool             `yaml:"defaultExpandAll"`
	ExpandRowKeys       []string         `yaml:"expandRowKeys"`
	DefaultSort         *SortSpec        `yaml:"defaultSort"`
	Tree                *TreeSpec        `yaml:"tree"`
	HighlightCurrentRow bool             `yaml:"highlightCurrentRow"`
	CurrentRowKey       string           `yaml:"currentRowKey"`
	Columns             []ColumnSpec     `yaml:"columns"`
	Rows                []map[string]any `yaml:"rows"`
}

// SortSpec is the initial sort.
type SortSpec struct {
	Prop  string `yaml:"prop"`
	Order string `yaml:"order"`
}

// TreeSpec renames the hierarchy fields.
type TreeSpec struct {
	Children      string `yaml:"children"`
	HasChildren   string `yaml:"hasChildren"`
	CheckStrictly bool   `yaml:"checkStrictly"`

	// Load is the row field the lazy loader serves children from.
	Load string `yaml:"load"`
}

// ColumnSpec mirrors table.Column with text enums. Scalars such as
// `fixed: true` or `width: 120` decode into the string fields as written.
type ColumnSpec struct {
	ID         string       `yaml:"id"`
	Prop       string       `yaml:"prop"`
	Label      string       `yaml:"label"`
	Width      string       `yaml:"width"`
	MinWidth   string       `yaml:"minWidth"`
	Align      string       `yaml:"align"`
	Fixed      string       `yaml:"fixed"`
	Type       string       `yaml:"type"`
	Sortable   string       `yaml:"sortable"`
	SortOrders []string     `yaml:"sortOrders"`
	ClassName  string       `yaml:"className"`
	Children   []ColumnSpec `yaml:"children"`
}

// Load reads and decodes the fixture at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a fixture. Unknown top-level or column keys are errors.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}
	if len(f.Columns) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidFixture)
	}
	return &f, nil
}

// ChildrenField is the row field holding nested rows.
func (f *File) ChildrenField() string {
	if f.Tree != nil && f.Tree.Children != "" {
		return f.Tree.Children
	}
	return "children"
}

// LoadField is the row field holding the children a lazy row loads.
func (f *File) LoadField() string {
	if f.Tree != nil && f.Tree.Load != "" {
		return f.Tree.Load
	}
	return "load"
}

// Loader serves lazy children from each row's load field. It resolves
// synchronously with fresh rows, so a node can be collapsed and reloaded
// after SetData.
func (f *File) Loader() table.LoadFunc {
	field, childrenField := f.LoadField(), f.ChildrenField()
	return func(row *table.Row, _ table.TreeNode, resolve func([]*table.Row)) {
		resolve(buildRows(mapsOf(row.Get(field)), childrenField))
	}
}

// Options translates the fixture settings into table options.
func (f *File) Options() ([]table.Option, error) {
	var opts []table.Option
	if f.RowKey != "" {
		opts = append(opts, table.WithRowKey(f.RowKey))
	}
	if f.Fit != nil {
		opts = append(opts, table.WithFit(*f.Fit))
	}
	opts = append(opts,
		table.WithStripe(f.Stripe),
		table.WithBorder(f.Border),
		table.WithDefaultExpandAll(f.DefaultExpandAll),
		table.WithHighlightCurrentRow(f.HighlightCurrentRow),
	)
	if len(f.ExpandRowKeys) > 0 {
		opts = append(opts, table.WithExpandRowKeys(f.ExpandRowKeys...))
	}
	if f.CurrentRowKey != "" {
		opts = append(opts, table.WithCurrentRowKey(f.CurrentRowKey))
	}
	if f.Lazy {
		opts = append(opts, table.WithLazy(f.Loader()))
	}
	if f.Tree != nil {
		opts = append(opts, table.WithTreeProps(table.TreeProps{
			Children:      f.Tree.Children,
			HasChildren:   f.Tree.HasChildren,
			CheckStrictly: f.Tree.CheckStrictly,
		}))
	}
	if f.DefaultSort != nil {
		order, err := table.ParseSortOrder(f.DefaultSort.Order)
		if err != nil {
			return nil, fmt.Errorf("%w: defaultSort: %v", ErrInvalidFixture, err)
		}
		opts = append(opts, table.WithDefaultSort(f.DefaultSort.Prop, order))
	}
	return opts, nil
}

// BuildColumns converts the column specs. Every call returns fresh columns.
func (f *File) BuildColumns() ([]*table.Column, error) {
	return buildColumns(f.Columns, "columns")
}

func buildColumns(specs []ColumnSpec, path string) ([]*table.Column, error) {
	out := make([]*table.Column, 0, len(specs))
	for i, spec := range specs {
		where := fmt.Sprintf("%s[%d]", path, i)
		col, err := buildColumn(spec, where)
		if err != nil {
			return nil, err
		}
		out = append(out, col)
	}
	return out, nil
}

func buildColumn(spec ColumnSpec, where string) (*table.Column, error) {
	col := &table.Column{
		ID:        spec.ID,
		Prop:      spec.Prop,
		Label:     spec.Label,
		Width:     spec.Width,
		MinWidth:  spec.MinWidth,
		ClassName: spec.ClassName,
	}

	var err error
	if col.Align, err = table.ParseAlign(spec.Align); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFixture, where, err)
	}
	if col.Fixed, err = table.ParseFixedSide(spec.Fixed); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFixture, where, err)
	}
	if col.Type, err = table.ParseColumnType(spec.Type); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFixture, where, err)
	}
	if col.Sortable, err = table.ParseSortable(spec.Sortable); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFixture, where, err)
	}
	for _, s := range spec.SortOrders {
		order, err := table.ParseSortOrder(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFixture, where, err)
		}
		col.SortOrders = append(col.SortOrders, order)
	}

	if len(spec.Children) > 0 {
		children, err := buildColumns(spec.Children, where+".children")
		if err != nil {
			return nil, err
		}
		col.Children = children
	}
	return col, nil
}

// BuildRows converts the row maps. Nested rows under the children field
// become []*table.Row. Every call returns fresh rows.
func (f *File) BuildRows() []*table.Row {
	return buildRows(f.Rows, f.ChildrenField())
}

func buildRows(items []map[string]any, childrenField string) []*table.Row {
	out := make([]*table.Row, 0, len(items))
	for _, item := range items {
		out = append(out, buildRow(item, childrenField))
	}
	return out
}

func buildRow(item map[string]any, childrenField string) *table.Row {
	fields := maps.Clone(item)
	if raw, ok := item[childrenField].([]any); ok {
		fields[childrenField] = buildRows(mapsOf(raw), childrenField)
	}
	return table.NewRow(fields)
}

// mapsOf keeps the mapping items of a decoded YAML sequence.
func mapsOf(v any) []map[string]any {
	raw, _ := v.([]any)
	var out []map[string]any
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Build creates a table from the fixture with extra options applied last,
// registers its columns and sets its rows.
func (f *File) Build(extra ...table.Option) (*table.Table, error) {
	opts, err := f.Options()
	if err != nil {
		return nil, err
	}
	cols, err := f.BuildColumns()
	if err != nil {
		return nil, err
	}

	t, err := table.New(append(opts, extra...)...)
	if err != nil {
		return nil, err
	}
	for _, col := range cols {
		t.RegisterColumn(col)
	}
	t.SetData(f.BuildRows())
	return t, nil
}
