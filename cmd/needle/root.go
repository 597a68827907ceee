package main

import (
	"github.com/spf13/cobra"
)

var (
	noColor bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "needle",
	Short: "Needle - exact substring search benchmark lab",
	Long: `Needle benchmarks exact substring search algorithms against each other.

It runs interchangeable matching engines (naive, KMP, Rabin-Karp, Boyer-Moore,
a Sunday/Raita hybrid, regexp2, and optionally Hyperscan) over YAML test cases,
times them under a fixed warm-up + repeated-trial protocol, and can grade a
heuristic selector's predictions against the measured winners.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
