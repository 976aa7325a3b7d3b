package table

import (
	"testing"
)

func TestCurrentRow_ClickRequiresHighlight(t *testing.T) {
	type tc struct {
		highlight  bool
		wantRow    bool
		wantEvents int
	}

	tests := map[string]tc{
		"highlight on": {
			highlight:  true,
			wantRow:    true,
			wantEvents: 1,
		},
		"highlight off": {
			highlight:  false,
			wantRow:    false,
			wantEvents: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tbl, _ := newTestTable(t, WithRowKey("id"), WithHighlightCurrentRow(tt.highlight))
			rows := []*Row{row(1), row(2)}
			tbl.SetData(rows)

			events := 0
			tbl.OnCurrentChange(func(CurrentChangeEvent) { events++ })
			tbl.HandleRowClick(rows[0])

			if got := tbl.CurrentRow() == rows[0]; got != tt.wantRow {
				t.Errorf("current is row 1 = %v, want %v", got, tt.wantRow)
			}
			if events != tt.wantEvents {
				t.Errorf("events = %d, want %d", events, tt.wantEvents)
			}
		})
	}
}

func TestCurrentRow_EventCarriesOldRow(t *testing.T) {
	tbl, _ := newTestTable(t, WithRowKey("id"), WithHighlightCurrentRow(true))
	rows := []*Row{row(1), row(2)}
	tbl.SetData(rows)

	var last CurrentChangeEvent
	tbl.OnCurrentChange(func(ev CurrentChangeEvent) { last = ev })
	tbl.HandleRowClick(rows[0])
	tbl.HandleRowClick(rows[1])

	if last.Current != rows[1] || last.Old != rows[0] {
		t.Errorf("event = %+v, want current 2 old 1", last)
	}
}

func TestCurrentRow_KeyFollowsData(t *testing.T) {
	tbl, _ := newTestTable(t, WithRowKey("id"), WithHighlightCurrentRow(true), WithCurrentRowKey("2"))
	tbl.SetData([]*Row{row(1), row(2)})

	if got := tbl.CurrentRow(); got == nil || got.Get("id") != 2 {
		t.Fatalf("initial CurrentRow() = %v, want row 2", got)
	}

	replacement := row(2, "name", "fresh")
	tbl.SetData([]*Row{replacement})
	if tbl.CurrentRow() != replacement {
		t.Errorf("CurrentRow() = %v, want the replacement row", tbl.CurrentRow())
	}

	tbl.SetCurrentRowKey("")
	if tbl.CurrentRow() != nil {
		t.Errorf("CurrentRow() = %v after clearing the key", tbl.CurrentRow())
	}
}

func TestCurrentRow_ClearedWhenRowLeaves(t *testing.T) {
	tbl, _ := newTestTable(t, WithRowKey("id"), WithHighlightCurrentRow(true))
	a, b := row("a"), row("b")
	tbl.SetData([]*Row{a, b})
	tbl.HandleRowClick(a)

	tbl.SetData([]*Row{b})

	if tbl.CurrentRow() != nil {
		t.Errorf("CurrentRow() = %v, want nil", tbl.CurrentRow())
	}
}

func TestScroll_SyncsHeaderHorizontally(t *testing.T) {
	tbl, _ := newTestTable(t)

	var offsets []int
	tbl.SetHeaderScroller(ScrollerFunc(func(px int) { offsets = append(offsets, px) }))

	tbl.HandleScroll(ScrollEvent{Left: 40, Top: 0})
	tbl.HandleScroll(ScrollEvent{Left: 40, Top: 300})
	tbl.HandleScroll(ScrollEvent{Left: 0, Top: 300})

	want := []int{0, 40, 0}
	if len(offsets) != len(want) {
		t.Fatalf("header offsets = %v, want %v", offsets, want)
	}
	for i := range want {
		if offsets[i] != want[i] {
			t.Errorf("offsets[%d] = %d, want %d", i, offsets[i], want[i])
		}
	}
	if tbl.ScrollTop() != 300 || tbl.ScrollLeft() != 0 {
		t.Errorf("scroll = (%d, %d), want (0, 300)", tbl.ScrollLeft(), tbl.ScrollTop())
	}
}

func TestScroll_VerticalScrollbar(t *testing.T) {
	tbl, _ := newTestTable(t)

	tbl.SetBodyMetrics(500, 200)
	if !tbl.HasVerticalScrollbar() {
		t.Error("taller content should show a scrollbar")
	}
	tbl.SetBodyMetrics(200, 200)
	if tbl.HasVerticalScrollbar() {
		t.Error("content that fits should not show a scrollbar")
	}
}

func TestExpand_RowWithoutChildren(t *testing.T) {
	tbl, _ := newTestTable(t)
	tbl.RegisterColumn(&Column{Type: ColumnExpand})
	a, b := row("a"), row("b")
	tbl.SetData([]*Row{a, b})

	var events []ExpandChangeEvent
	tbl.OnExpandChange(func(ev ExpandChangeEvent) { events = append(events, ev) })

	if !tbl.HasExpandColumn() {
		t.Fatal("HasExpandColumn() = false")
	}
	tbl.ToggleRowExpansion(b)
	if !tbl.IsRowExpanded(b) || tbl.IsRowExpanded(a) {
		t.Error("only row b should be expanded")
	}
	if rows := tbl.GetExpandedRows(); len(rows) != 1 || rows[0] != b {
		t.Errorf("GetExpandedRows() = %v, want [b]", rows)
	}

	tbl.SetData([]*Row{a})
	if tbl.IsRowExpanded(b) {
		t.Error("removed row is still expanded")
	}
	if len(events) != 1 || events[0].Row != b || !events[0].Expanded {
		t.Errorf("events = %+v, want one expand of b", events)
	}
}
