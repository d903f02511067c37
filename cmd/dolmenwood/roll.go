package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xavierbriand/dolmenwood-sub001/internal/orchestrators/encounter"
)

var (
	rollSeed    uint64
	rollSession string
)

var rollCmd = &cobra.Command{
	Use:   "roll <notation>",
	Short: "Roll an ad-hoc dice expression",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoll,
}

func init() {
	rollCmd.Flags().Uint64Var(&rollSeed, "seed", 0, "seed for deterministic rolls")
	rollCmd.Flags().StringVar(&rollSession, "session", "", "session ID for history recording")
}

func runRoll(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	output, err := a.service.RollDice(context.Background(), &encounter.RollDiceInput{
		Notation:  args[0],
		Source:    newSource(rollSeed),
		SessionID: rollSession,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s = %d\n", output.Notation, output.Total)
	return nil
}
