package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	table "github.com/grindlemire/go-table"
)

func init() {
	params := newRenderParams()

	columnsCommand := &cobra.Command{
		Use:   "columns FILE",
		Short: "Print the header layout and resolved column widths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := buildTable(args[0], params)
			if err != nil {
				return err
			}
			defer tbl.Close()
			printColumns(cmd.OutOrStdout(), tbl, params.cellPixels())
			return nil
		},
	}
	addLayoutFlags(columnsCommand, &params)
	RootCommand.AddCommand(columnsCommand)
}

func printColumns(out io.Writer, tbl *table.Table, cellPx int) {
	tw := tablewriter.NewWriter(out)
	tw.SetHeader([]string{"Level", "Column", "Prop", "Type", "Fixed", "Span", "Width", "Cells", "Class"})
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range tbl.HeaderRows() {
		for _, col := range row {
			cells := "-"
			if col.IsLeaf() {
				cells = strconv.Itoa(cellsFor(col.RealWidth(), cellPx))
			}
			tw.Append([]string{
				strconv.Itoa(col.Level()),
				strings.Repeat("  ", col.Level()) + col.String(),
				col.Prop,
				col.Type.String(),
				col.FixedSide().String(),
				fmt.Sprintf("%dx%d", col.ColSpan(), col.RowSpan()),
				strconv.Itoa(col.RealWidth()),
				cells,
				tbl.GetCellClass(col),
			})
		}
	}
	tw.Render()

	fmt.Fprintf(out, "container %dpx, content %dpx", tbl.TableWidth(), tbl.ContentWidth())
	if tbl.HasHorizontalScroll() {
		fmt.Fprint(out, " (scrolls horizontally)")
	}
	fmt.Fprintln(out)
}
