package table

import (
	"fmt"
	"strings"
)

// Row is a single record of table data.
//
// Rows are compared by pointer identity: two Rows with equal fields are
// still different rows for selection and current-row tracking. Nested rows
// are stored as []*Row under the table's children field.
type Row struct {
	fields map[string]any
}

// NewRow wraps fields in a Row. The map is used as-is, not copied.
func NewRow(fields map[string]any) *Row {
	if fields == nil {
		fields = make(map[string]any)
	}
	return &Row{fields: fields}
}

// Get returns the value stored under key, or nil.
func (r *Row) Get(key string) any {
	if r == nil {
		return nil
	}
	return r.fields[key]
}

// Set stores v under key. Call Table.MarkDirty after mutating rows that are
// already part of a table.
func (r *Row) Set(key string, v any) {
	r.fields[key] = v
}

// Fields returns the underlying field map.
func (r *Row) Fields() map[string]any {
	return r.fields
}

// ChildRows returns the rows stored under field. Both []*Row and []any
// holding *Row values are accepted; anything else yields nil.
func (r *Row) ChildRows(field string) []*Row {
	switch v := r.Get(field).(type) {
	case []*Row:
		return v
	case []any:
		out := make([]*Row, 0, len(v))
		for _, item := range v {
			if child, ok := item.(*Row); ok {
				out = append(out, child)
			}
		}
		return out
	default:
		return nil
	}
}

func (r *Row) String() string {
	if r == nil {
		return "<nil row>"
	}
	return fmt.Sprint(r.fields)
}

// RowKeyFunc derives a stable key for a row. An empty string means the row
// has no usable key.
type RowKeyFunc func(*Row) string

// FieldKey returns a RowKeyFunc that reads field and formats it as text.
func FieldKey(field string) RowKeyFunc {
	return func(r *Row) string {
		v := r.Get(field)
		if v == nil {
			return ""
		}
		return fmt.Sprint(v)
	}
}

// truthy follows the loose boolean convention of row data: the hasChildren
// marker can arrive as a bool, a number, or a string from decoded fixtures.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != "" && !strings.EqualFold(x, "false") && x != "0"
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}
