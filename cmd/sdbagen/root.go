package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sdbagen",
	Short: "sdbagen builds a semi-deterministic Büchi automaton from a VWAA fixture",
	Long:  "sdbagen runs the breakpoint construction over a JSON-described VWAA and nondeterministic-prefix skeleton, for hand inspection of the result.",
}

// Execute runs the root command, printing any error and exiting with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug-level construction logging")
}
