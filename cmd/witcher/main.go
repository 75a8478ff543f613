// Command witcher runs WitcherScript programs from a file, inline source,
// or an interactive read-eval loop.
package main

import (
	"fmt"
	"os"

	"github.com/rwnicholas/WitcherScript/cmd/witcher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
		os.Exit(1)
	}
}
