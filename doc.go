// Package table is a headless data table engine.
//
// It owns everything about a table except drawing it: nested column
// declarations and the multi-row header they produce, column width
// resolution, sticky column offsets, sorting, cell merging, tree data with
// lazy children, row selection, the current row and header/body scroll
// synchronization. A host registers columns, sets row data, reports the
// container width and user input, and renders the instructions returned by
// Header and Body.
//
// A Table is owned by one goroutine. Debounced width passes and asynchronous
// lazy loads are delivered through its update queue, which the host drains
// with Tick, Flush or Run:
//
//	t, _ := table.New(table.WithRowKey("id"))
//	t.RegisterColumn(&table.Column{Prop: "name", Label: "Name"})
//	t.SetData(rows)
//	t.SetContainerWidth(800)
//	t.Flush()
//	for _, row := range t.Body() { ... }
package table
