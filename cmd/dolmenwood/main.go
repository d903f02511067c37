// Package main is the entry point for the dolmenwood CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dolmenwood",
	Short: "Dolmenwood random encounter engine",
	Long: `Dolmenwood resolves wandering encounters for tabletop play: it rolls
on weighted lookup tables, follows table references recursively, and
produces a fully detailed encounter from region-aware table sets.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(encounterCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(loadCmd)
}
