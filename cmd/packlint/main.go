// packlint inspects structured asset/data resource packs: it validates
// worldgen biome documents, prints the resource kind table, emits a JSON
// Schema for biome files, and serves live diagnostics to editor tooling.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
