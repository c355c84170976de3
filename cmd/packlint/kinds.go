package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"craftpack/resource"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "Print the resource kind table",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tCATEGORY\tEXTENSION\tDIRECTORY")
		for _, kind := range resource.Kinds() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", kind, kind.Category(), kind.Extension(), kind.Directory())
		}
		w.Flush()
	},
}
