package cmd

import (
	"fmt"
	"sort"

	"github.com/ddushkinn/mkvsynth/internal/filters"
	"github.com/ddushkinn/mkvsynth/internal/interp/builtins"
	"github.com/maruel/natural"
	"github.com/spf13/cobra"
)

// filters.Registry.Names is unsorted (internal/filters/registry.go docs
// why), so list-filters sorts here the same way builtins.Registry.Names
// sorts internally.

var listBuiltinsCmd = &cobra.Command{
	Use:   "list-builtins",
	Short: "List the core built-in functions",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range builtins.DefaultRegistry.Names() {
			fmt.Println(name)
		}
	},
}

var listFiltersCmd = &cobra.Command{
	Use:   "list-filters",
	Short: "List the available filter functions",
	Run: func(cmd *cobra.Command, args []string) {
		names := filters.DefaultRegistry.Names()
		sort.Sort(natural.StringSlice(names))
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listBuiltinsCmd)
	rootCmd.AddCommand(listFiltersCmd)
}
