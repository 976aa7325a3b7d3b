// Command toytable renders YAML table fixtures in the terminal.
//
// Usage:
//
//	toytable render FILE      Render a fixture
//	toytable columns FILE     Print the header layout and resolved widths
//	toytable version          Print version information
//
// Examples:
//
//	toytable render examples/org.yaml
//	toytable render --sort age:desc --expand-all examples/org.yaml
//	toytable render --watch examples/org.yaml
//	TOYTABLE_CELL_PX=10 toytable columns examples/org.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := RootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
