package main

import (
	"os"

	"github.com/jakoblorz/go-rm/internal/cli"
)

func main() {
	// Diagnostics are printed where they happen; only the status is left.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
