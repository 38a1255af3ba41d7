// Substance - balanced colour schemes from a single seed
//
// Substance derives light and dark palettes with contrast-checked text
// colours from a seed colour, a built-in preset or an image.
package main

import (
	"os"

	"github.com/jmylchreest/substance/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
