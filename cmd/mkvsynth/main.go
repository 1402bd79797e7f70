// Command mkvsynth is the mkvsynth script interpreter's entry point.
package main

import (
	"fmt"
	"os"

	"github.com/ddushkinn/mkvsynth/cmd/mkvsynth/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
