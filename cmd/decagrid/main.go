// decagrid is a terminal spreadsheet with incremental recalculation.
package main

import (
	"os"

	"nickandperla.net/decagrid/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
