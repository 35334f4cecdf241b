package main

import (
	"log"

	"golang.org/x/tools/go/analysis/singlechecker"
)

// main runs the analyzer standalone with the default allow-list, for use
// outside golangci-lint. Build it here, then run "rawangle ./..." from the
// repository root.
func main() {
	plugin, err := New(nil)
	if err != nil {
		log.Fatal(err)
	}
	analyzers, err := plugin.BuildAnalyzers()
	if err != nil {
		log.Fatal(err)
	}
	singlechecker.Main(analyzers[0])
}
