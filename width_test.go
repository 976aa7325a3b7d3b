package table

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func widthsOf(tbl *Table) []int {
	var out []int
	for _, col := range tbl.LeafColumns() {
		out = append(out, col.RealWidth())
	}
	return out
}

func TestWidth_Resolve(t *testing.T) {
	type tc struct {
		fit         bool
		container   int
		widths      []string
		minWidths   map[int]string
		want        []int
		wantContent int
		wantScroll  bool
	}

	tests := map[string]tc{
		"fit splits remaining space evenly": {
			fit:         true,
			container:   500,
			widths:      []string{"100", "", ""},
			want:        []int{100, 200, 200},
			wantContent: 500,
		},
		"fit leaves the division remainder unallocated": {
			fit:         true,
			container:   500,
			widths:      []string{"100", "", "", ""},
			want:        []int{100, 133, 133, 133},
			wantContent: 499,
		},
		"fit floors flexible columns at the minimum": {
			fit:         true,
			container:   200,
			widths:      []string{"100", "", ""},
			want:        []int{100, 80, 80},
			wantContent: 260,
			wantScroll:  true,
		},
		"fit without flexible columns": {
			fit:         true,
			container:   500,
			widths:      []string{"100", "200px"},
			want:        []int{100, 200},
			wantContent: 300,
		},
		"no fit gives flexible columns the minimum": {
			fit:         false,
			container:   1000,
			widths:      []string{"", "", "300"},
			want:        []int{80, 80, 300},
			wantContent: 460,
		},
		"percent widths resolve against the container": {
			fit:         true,
			container:   400,
			widths:      []string{"25%", ""},
			want:        []int{100, 300},
			wantContent: 400,
		},
		"min width raises a flexible column": {
			fit:         true,
			container:   300,
			widths:      []string{"100", "", ""},
			minWidths:   map[int]string{2: "120"},
			want:        []int{100, 100, 120},
			wantContent: 320,
			wantScroll:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tbl, _ := newTestTable(t, WithFit(tt.fit))
			for i, w := range tt.widths {
				tbl.RegisterColumn(&Column{Label: "c", Width: w, MinWidth: tt.minWidths[i]})
			}
			tbl.SetContainerWidth(tt.container)
			tbl.Flush()

			if diff := cmp.Diff(tt.want, widthsOf(tbl)); diff != "" {
				t.Errorf("widths mismatch (-want +got):\n%s", diff)
			}
			if got := tbl.ContentWidth(); got != tt.wantContent {
				t.Errorf("ContentWidth() = %d, want %d", got, tt.wantContent)
			}
			if got := tbl.HasHorizontalScroll(); got != tt.wantScroll {
				t.Errorf("HasHorizontalScroll() = %v, want %v", got, tt.wantScroll)
			}
		})
	}
}

func TestWidth_FitConservesContainer(t *testing.T) {
	// With enough room and a flex count that divides evenly, the leaves fill
	// the container exactly.
	for _, container := range []int{300, 600, 900, 1200} {
		tbl, _ := newTestTable(t)
		tbl.RegisterColumn(&Column{Label: "fixed", Width: "60"})
		for i := 0; i < 3; i++ {
			tbl.RegisterColumn(&Column{Label: "flex"})
		}
		tbl.SetContainerWidth(container + 60)
		tbl.Flush()

		if got := tbl.ContentWidth(); got != container+60 {
			t.Errorf("container %d: ContentWidth() = %d", container+60, got)
		}
	}
}

func TestWidth_ZeroContainerIsNoop(t *testing.T) {
	tbl, _ := newTestTable(t)
	col := &Column{Label: "c", Width: "100"}
	tbl.RegisterColumn(col)
	tbl.SetContainerWidth(0)
	tbl.Flush()

	if col.RealWidth() != 0 || tbl.TableWidth() != 0 {
		t.Errorf("width pass ran with zero container: real=%d table=%d", col.RealWidth(), tbl.TableWidth())
	}
}

func TestWidth_GroupWidthIsSumOfLeaves(t *testing.T) {
	tbl, _ := newTestTable(t)
	group := &Column{Label: "g", Children: []*Column{
		{Label: "a", Width: "40"},
		{Label: "b", Width: "60"},
	}}
	tbl.RegisterColumn(group)
	tbl.SetContainerWidth(500)
	tbl.Flush()

	if got := group.RealWidth(); got != 100 {
		t.Errorf("group.RealWidth() = %d, want 100", got)
	}
}

func TestWidth_DebouncedPassRunsOnceAndNotifies(t *testing.T) {
	var notified int
	tbl, _ := newTestTable(t,
		WithLayoutDebounce(time.Hour),
		WithOnColumnWidthsCalculated(func() { notified++ }),
	)

	tbl.RegisterColumn(&Column{Label: "a"})
	tbl.RegisterColumn(&Column{Label: "b"})
	tbl.SetContainerWidth(400)
	tbl.CalculateColumnWidths()

	if tbl.LeafColumns()[0].RealWidth() != 0 {
		t.Fatal("widths committed before the debounced pass")
	}

	tbl.Flush()

	if notified != 1 {
		t.Errorf("completion callback ran %d times, want 1", notified)
	}
	if diff := cmp.Diff([]int{200, 200}, widthsOf(tbl)); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
}

func TestWidth_InvalidDeclarationWarns(t *testing.T) {
	tbl, hook := newTestTable(t)
	tbl.RegisterColumn(&Column{Label: "bad", Width: "wide"})
	tbl.SetContainerWidth(300)
	tbl.Flush()

	if countWarnings(hook) != 1 {
		t.Errorf("warnings = %d, want 1", countWarnings(hook))
	}
	if got := tbl.LeafColumns()[0].RealWidth(); got != 300 {
		t.Errorf("RealWidth() = %d, want 300 (treated as flexible)", got)
	}
}
