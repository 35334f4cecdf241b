// Command skyangle converts angles between astronomical units and runs the
// Temporal worker that serves batch conversions.
package main

import (
	"os"

	"github.com/ahrav/go-skyangle/cmd/skyangle/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
