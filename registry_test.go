package table

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// nestedColumns is
//
//	| A               | C |
//	| a1 | B          |   |
//	|    | b1  | b2   |   |
func nestedColumns() (all map[string]*Column, top []*Column) {
	all = map[string]*Column{
		"a1": {Prop: "a1", Label: "a1"},
		"b1": {Prop: "b1", Label: "b1"},
		"b2": {Prop: "b2", Label: "b2"},
		"c":  {Prop: "c", Label: "C"},
	}
	all["B"] = &Column{Label: "B", Children: []*Column{all["b1"], all["b2"]}}
	all["A"] = &Column{Label: "A", Children: []*Column{all["a1"], all["B"]}}
	return all, []*Column{all["A"], all["c"]}
}

func labels(cols []*Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Label
	}
	return out
}

func TestRegistry_NestedHeaderLayout(t *testing.T) {
	tbl, _ := newTestTable(t)
	all, top := nestedColumns()
	for _, col := range top {
		tbl.RegisterColumn(col)
	}

	if diff := cmp.Diff([]string{"a1", "b1", "b2", "C"}, labels(tbl.LeafColumns())); diff != "" {
		t.Errorf("LeafColumns() mismatch (-want +got):\n%s", diff)
	}

	rows := tbl.HeaderRows()
	var got [][]string
	for _, r := range rows {
		got = append(got, labels(r))
	}
	want := [][]string{{"A", "C"}, {"a1", "B"}, {"b1", "b2"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HeaderRows() mismatch (-want +got):\n%s", diff)
	}

	type span struct {
		Level, ColSpan, RowSpan int
		Leaf                    bool
	}
	wantSpans := map[string]span{
		"A":  {Level: 0, ColSpan: 3, RowSpan: 1},
		"C":  {Level: 0, ColSpan: 1, RowSpan: 3, Leaf: true},
		"a1": {Level: 1, ColSpan: 1, RowSpan: 2, Leaf: true},
		"B":  {Level: 1, ColSpan: 2, RowSpan: 1},
		"b1": {Level: 2, ColSpan: 1, RowSpan: 1, Leaf: true},
		"b2": {Level: 2, ColSpan: 1, RowSpan: 1, Leaf: true},
	}
	for name, want := range wantSpans {
		key := name
		if name == "C" {
			key = "c"
		}
		col := all[key]
		got := span{Level: col.Level(), ColSpan: col.ColSpan(), RowSpan: col.RowSpan(), Leaf: col.IsLeaf()}
		if got != want {
			t.Errorf("%s spans = %+v, want %+v", name, got, want)
		}
	}
}

func TestRegistry_HeaderCoversEveryLeafOnce(t *testing.T) {
	tbl, _ := newTestTable(t)
	_, top := nestedColumns()
	for _, col := range top {
		tbl.RegisterColumn(col)
	}

	// Every leaf column sits under exactly one cell per header row it spans.
	leaves := len(tbl.LeafColumns())
	covered := 0
	for _, r := range tbl.HeaderRows() {
		for _, col := range r {
			if col.IsLeaf() {
				covered++
			}
		}
	}
	if covered != leaves {
		t.Errorf("leaf cells = %d, want %d", covered, leaves)
	}

	top0 := 0
	for _, col := range tbl.HeaderRows()[0] {
		top0 += col.ColSpan()
	}
	if top0 != leaves {
		t.Errorf("top header row spans %d leaves, want %d", top0, leaves)
	}
}

func TestFlattenColumns_Idempotent(t *testing.T) {
	_, top := nestedColumns()
	leaves := FlattenColumns(top)
	again := FlattenColumns(leaves)

	if !slices.Equal(leaves, again) {
		t.Errorf("FlattenColumns(leaves) = %v, want %v", labels(again), labels(leaves))
	}
}

func TestRegistry_InsertAtIndex(t *testing.T) {
	type tc struct {
		index []int
		want  []string
	}

	tests := map[string]tc{
		"appends without index": {
			want: []string{"x", "y", "new"},
		},
		"inserts at front": {
			index: []int{0},
			want:  []string{"new", "x", "y"},
		},
		"inserts in the middle": {
			index: []int{1},
			want:  []string{"x", "new", "y"},
		},
		"out of range appends": {
			index: []int{10},
			want:  []string{"x", "y", "new"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tbl, _ := newTestTable(t)
			tbl.RegisterColumn(&Column{Label: "x"})
			tbl.RegisterColumn(&Column{Label: "y"})
			tbl.RegisterColumn(&Column{Label: "new"}, tt.index...)

			if diff := cmp.Diff(tt.want, labels(tbl.Columns())); diff != "" {
				t.Errorf("Columns() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegistry_RegisterChildColumn(t *testing.T) {
	tbl, _ := newTestTable(t)
	group := &Column{Label: "group"}
	tbl.RegisterColumn(group)
	tbl.RegisterChildColumn(group, &Column{Label: "b"})
	pos := tbl.RegisterChildColumn(group, &Column{Label: "a"}, 0)

	if pos != 0 {
		t.Errorf("RegisterChildColumn() = %d, want 0", pos)
	}
	if diff := cmp.Diff([]string{"a", "b"}, labels(tbl.LeafColumns())); diff != "" {
		t.Errorf("LeafColumns() mismatch (-want +got):\n%s", diff)
	}
	if group.IsLeaf() || group.ColSpan() != 2 {
		t.Errorf("group leaf=%v colspan=%d, want false 2", group.IsLeaf(), group.ColSpan())
	}
}

func TestRegistry_UnregisterColumn(t *testing.T) {
	tbl, _ := newTestTable(t)
	name := &Column{Prop: "name", Label: "name", Sortable: SortEnabled}
	tbl.RegisterColumn(&Column{Label: "first"})
	tbl.RegisterColumn(name)
	tbl.HandleSort(name)

	tbl.UnregisterColumn(1)
	tbl.UnregisterColumn(5)

	if diff := cmp.Diff([]string{"first"}, labels(tbl.LeafColumns())); diff != "" {
		t.Errorf("LeafColumns() mismatch (-want +got):\n%s", diff)
	}
	if s := tbl.SortState(); s.Column != nil || s.Order != NoOrder {
		t.Errorf("SortState() = %+v, want cleared", s)
	}
}

func TestRegistry_AssignsUniqueIDs(t *testing.T) {
	tbl, _ := newTestTable(t)
	_, top := nestedColumns()
	top[1].ID = "fixed-id"
	for _, col := range top {
		tbl.RegisterColumn(col)
	}

	seen := map[string]bool{}
	for _, r := range tbl.HeaderRows() {
		for _, col := range r {
			if col.ID == "" {
				t.Errorf("column %s has no ID", col)
			}
			if seen[col.ID] {
				t.Errorf("duplicate ID %q", col.ID)
			}
			seen[col.ID] = true
		}
	}
	if !seen["fixed-id"] {
		t.Error("declared ID was overwritten")
	}
}

func TestRegistry_FixedInheritedFromGroup(t *testing.T) {
	tbl, _ := newTestTable(t)
	inner := &Column{Label: "inner"}
	override := &Column{Label: "override", Fixed: FixedRight}
	tbl.RegisterColumn(&Column{Label: "g", Fixed: FixedLeft, Children: []*Column{inner, override}})
	tbl.RegisterColumn(&Column{Label: "plain"})

	if got := inner.FixedSide(); got != FixedLeft {
		t.Errorf("inner.FixedSide() = %v, want left", got)
	}
	if got := override.FixedSide(); got != FixedRight {
		t.Errorf("override.FixedSide() = %v, want right", got)
	}
	if tbl.FixedLeftCount() != 1 || tbl.FixedRightCount() != 1 {
		t.Errorf("fixed counts = %d/%d, want 1/1", tbl.FixedLeftCount(), tbl.FixedRightCount())
	}
}

func TestColumn_ParseEnums(t *testing.T) {
	type tc struct {
		parse   func(string) (string, error)
		input   string
		want    string
		wantErr bool
	}

	fixed := func(s string) (string, error) { v, err := ParseFixedSide(s); return v.String(), err }
	typ := func(s string) (string, error) { v, err := ParseColumnType(s); return v.String(), err }
	align := func(s string) (string, error) { v, err := ParseAlign(s); return v.String(), err }
	order := func(s string) (string, error) { v, err := ParseSortOrder(s); return string(v), err }

	tests := map[string]tc{
		"fixed true is left":   {parse: fixed, input: "true", want: "left"},
		"fixed right":          {parse: fixed, input: "Right", want: "right"},
		"fixed garbage":        {parse: fixed, input: "top", want: "", wantErr: true},
		"type selection":       {parse: typ, input: "selection", want: "selection"},
		"type empty is normal": {parse: typ, input: "", want: "normal"},
		"align center":         {parse: align, input: "center", want: "center"},
		"align garbage":        {parse: align, input: "middle", want: "left", wantErr: true},
		"order asc":            {parse: order, input: "asc", want: "ascending"},
		"order null":           {parse: order, input: "null", want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tt.parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
