// Package layout resolves table column width declarations into pixels.
//
// A declaration is a [Value]: auto (flexible), an absolute pixel count, or a
// percentage of the container width. [ParseWidth] accepts the textual forms
// used by column definitions ("120", "120px", "25%", "").
package layout
