package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "corridor",
	Short: "generate constrained multi-layer corridor mazes",
	Long: `corridor builds a deterministic, multi-layer corridor/maze grid from a
wave-function-collapse solver over a small tile vocabulary:
	- shape a per-generation mask from ridged, domain-warped noise,
	- solve each layer independently under that mask,
	- weld the resulting regions into one connected network per layer,
	- write the result to a binary file.`,
}

// Execute adds all child commands to RootCmd and runs it. Called once from
// main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
