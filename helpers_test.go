package table

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// newTestTable builds a table whose layout pass runs on the next Tick and
// whose warnings are captured by the returned hook.
func newTestTable(t *testing.T, opts ...Option) (*Table, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	base := []Option{WithLayoutDebounce(0), WithLogger(logger)}
	tbl, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(tbl.Close)
	return tbl, hook
}

// row builds a keyed row. kv holds alternating field names and values.
func row(id any, kv ...any) *Row {
	fields := map[string]any{"id": id}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i].(string)] = kv[i+1]
	}
	return NewRow(fields)
}

// withChildren stores children under the default children field.
func withChildren(r *Row, children ...*Row) *Row {
	r.Set("children", children)
	return r
}

func keysOf(tbl *Table, rows []*Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = tbl.RowKey(r)
	}
	return out
}

func visibleKeys(tbl *Table) []string {
	var out []string
	for _, vr := range tbl.VisibleRows() {
		out = append(out, vr.Key)
	}
	return out
}

// sampleTree is
//
//	1
//	├── 11
//	│   └── 111
//	└── 12
//	2
func sampleTree() []*Row {
	return []*Row{
		withChildren(row(1, "name", "one"),
			withChildren(row(11, "name", "one-one"), row(111, "name", "leaf")),
			row(12, "name", "one-two"),
		),
		row(2, "name", "two"),
	}
}

func countWarnings(hook *test.Hook) int {
	n := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			n++
		}
	}
	return n
}
