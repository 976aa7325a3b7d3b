package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	table "github.com/grindlemire/go-table"
	"github.com/grindlemire/go-table/internal/fixture"
)

const defaultColumns = 100

type renderParams struct {
	width      int
	cellPx     int
	fit        bool
	fitSet     bool
	border     bool
	borderSet  bool
	sort       string
	expandAll  bool
	expand     []string
	selectKeys []string
	watch      bool
}

func newRenderParams() renderParams {
	return renderParams{cellPx: defaultCellPx, fit: true}
}

func init() {
	params := newRenderParams()

	renderCommand := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a table fixture",
		Long: `Render a YAML table fixture.

The table is laid out at --width pixels (by default the terminal width times
--cell-px) and drawn with one terminal cell per --cell-px pixels. With --watch
the table is redrawn when the file changes or the terminal is resized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params.fitSet = cmd.Flags().Changed("fit")
			params.borderSet = cmd.Flags().Changed("border")
			if params.watch {
				return watchFixture(cmd.Context(), args[0], params, cmd.OutOrStdout())
			}
			return renderOnce(args[0], params, cmd.OutOrStdout())
		},
	}

	addLayoutFlags(renderCommand, &params)
	renderCommand.Flags().BoolVar(&params.fit, "fit", true, "stretch flexible columns to fill the width")
	renderCommand.Flags().BoolVar(&params.border, "border", false, "draw a line between rows")
	renderCommand.Flags().StringVar(&params.sort, "sort", "", "sort by `prop[:order]` (order: asc, desc)")
	renderCommand.Flags().BoolVar(&params.expandAll, "expand-all", false, "expand every tree row")
	renderCommand.Flags().StringArrayVar(&params.expand, "expand", nil, "expand the row with `key` (repeatable)")
	renderCommand.Flags().StringArrayVar(&params.selectKeys, "select", nil, "select the row with `key` (repeatable)")
	renderCommand.Flags().BoolVar(&params.watch, "watch", false, "redraw on file change or terminal resize")
	RootCommand.AddCommand(renderCommand)
}

func addLayoutFlags(cmd *cobra.Command, params *renderParams) {
	cmd.Flags().IntVar(&params.width, "width", 0, "container width in pixels (default terminal width x cell-px)")
	cmd.Flags().IntVar(&params.cellPx, "cell-px", defaultCellPx, "pixels per terminal cell")
}

// containerWidth resolves the pixel width the table is laid out at.
func (p renderParams) containerWidth() int {
	if p.width > 0 {
		return p.width
	}
	cols, err := terminalColumns(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		cols = defaultColumns
	}
	return cols * p.cellPixels()
}

func (p renderParams) cellPixels() int {
	if p.cellPx <= 0 {
		return defaultCellPx
	}
	return p.cellPx
}

func (p renderParams) options() []table.Option {
	var opts []table.Option
	if p.fitSet {
		opts = append(opts, table.WithFit(p.fit))
	}
	if p.borderSet {
		opts = append(opts, table.WithBorder(p.border))
	}
	return opts
}

// buildTable loads the fixture and applies the command line state on top of
// it. Widths are resolved before it returns.
func buildTable(path string, p renderParams, extra ...table.Option) (*table.Table, error) {
	f, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	tbl, err := f.Build(append(p.options(), extra...)...)
	if err != nil {
		return nil, err
	}

	if err := applyRowState(tbl, p); err != nil {
		tbl.Close()
		return nil, err
	}
	tbl.SetContainerWidth(p.containerWidth())
	tbl.Flush()
	return tbl, nil
}

func applyRowState(tbl *table.Table, p renderParams) error {
	if p.sort != "" {
		prop, order, err := parseSortFlag(p.sort)
		if err != nil {
			return err
		}
		if err := tbl.Sort(prop, order); err != nil {
			return err
		}
	}
	if p.expandAll {
		tbl.ExpandAllTreeNodes()
	}
	for _, key := range p.expand {
		row, ok := tbl.RowByKey(key)
		if !ok {
			return fmt.Errorf("--expand %s: %w", key, table.ErrUnknownRow)
		}
		tbl.SetRowExpansion(row, true)
	}
	for _, key := range p.selectKeys {
		row, ok := tbl.RowByKey(key)
		if !ok {
			return fmt.Errorf("--select %s: %w", key, table.ErrUnknownRow)
		}
		tbl.SetRowSelection(row, true)
	}
	return nil
}

// parseSortFlag splits "prop[:order]". The order defaults to ascending.
func parseSortFlag(s string) (string, table.SortOrder, error) {
	prop, rawOrder, found := strings.Cut(s, ":")
	if prop == "" {
		return "", table.NoOrder, fmt.Errorf("--sort %q: missing prop", s)
	}
	if !found {
		return prop, table.Ascending, nil
	}
	order, err := table.ParseSortOrder(rawOrder)
	if err != nil {
		return "", table.NoOrder, fmt.Errorf("--sort %q: %w", s, err)
	}
	return prop, order, nil
}

func renderOnce(path string, p renderParams, out io.Writer) error {
	tbl, err := buildTable(path, p)
	if err != nil {
		return err
	}
	defer tbl.Close()

	newDrawer(tbl, p.cellPixels()).draw(out)
	return nil
}
