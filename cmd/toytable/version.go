package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func init() {
	RootCommand.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version of toytable",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout())
		},
	})
}

func printVersion(out io.Writer) {
	fmt.Fprintln(out, "Version: "+version)
	fmt.Fprintln(out, "Go Version: "+runtime.Version())
	fmt.Fprintf(out, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
