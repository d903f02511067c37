package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xavierbriand/dolmenwood-sub001/internal/repositories/tables"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Inspect the loaded lookup tables",
}

var tablesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every table with its die and row count",
	RunE:  runTablesList,
}

var tablesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every table for gaps, overlaps and dangling references",
	RunE:  runTablesValidate,
}

func init() {
	tablesCmd.AddCommand(tablesListCmd)
	tablesCmd.AddCommand(tablesValidateCmd)
}

func runTablesList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	list, err := a.tableRepo.List(context.Background())
	if err != nil {
		return err
	}

	for _, table := range list.Tables {
		fmt.Printf("%-40s %-6s %d rows\n", table.Name, table.Die, len(table.Rows))
	}
	return nil
}

// runTablesValidate re-validates coverage and additionally checks that
// every reference points at something that exists. The YAML loader
// already rejects bad coverage; this catches dangling names across the
// whole data set, which only a full scan can see.
func runTablesValidate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx := context.Background()
	list, err := a.tableRepo.List(ctx)
	if err != nil {
		return err
	}

	var problems int
	for _, table := range list.Tables {
		if err := tables.ValidateCoverage(table); err != nil {
			fmt.Printf("FAIL %s: %v\n", table.Name, err)
			problems++
		}
	}

	problems += validateReferences(ctx, a)

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	fmt.Printf("%d tables OK\n", len(list.Tables))
	return nil
}
