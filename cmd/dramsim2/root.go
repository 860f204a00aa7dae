// Package main provides the command-line interface for dramsim2.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dramsim2",
	Short: "dramsim2 drives a JEDEC DDR-class memory system from a trace.",
	Long: `dramsim2 drives a JEDEC DDR-class memory system from a trace. ` +
		`It selects a device INI and a system INI describing the channel ` +
		`topology and timing, replays a trace file of reads and writes ` +
		`against it, and reports per-rank energy and access-latency stats.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
