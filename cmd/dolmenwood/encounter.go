package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xavierbriand/dolmenwood-sub001/internal/entities"
	"github.com/xavierbriand/dolmenwood-sub001/internal/orchestrators/encounter"
	"github.com/xavierbriand/dolmenwood-sub001/internal/pkg/rng"
)

var (
	encounterTable   string
	encounterRegion  string
	encounterNight   bool
	encounterOffroad bool
	encounterCamping bool
	encounterSeed    uint64
	encounterForce   bool
	encounterJSON    bool
	encounterSession string
)

var encounterCmd = &cobra.Command{
	Use:   "encounter",
	Short: "Check for and resolve a wandering encounter",
	Long: `Roll the encounter check for the current travel circumstances and, if
one happens (or --force is given), resolve it from the named table.`,
	RunE: runEncounter,
}

func init() {
	encounterCmd.Flags().StringVar(&encounterTable, "table", "", "root table to resolve (required)")
	encounterCmd.Flags().StringVar(&encounterRegion, "region", "", "region for table fallback")
	encounterCmd.Flags().BoolVar(&encounterNight, "night", false, "night-time travel")
	encounterCmd.Flags().BoolVar(&encounterOffroad, "offroad", false, "travelling off-road")
	encounterCmd.Flags().BoolVar(&encounterCamping, "camping", false, "party is camped")
	encounterCmd.Flags().Uint64Var(&encounterSeed, "seed", 0, "seed for deterministic rolls")
	encounterCmd.Flags().BoolVar(&encounterForce, "force", false, "skip the encounter check")
	encounterCmd.Flags().BoolVar(&encounterJSON, "json", false, "emit the encounter as JSON")
	encounterCmd.Flags().StringVar(&encounterSession, "session", "", "session ID for history recording")
	_ = encounterCmd.MarkFlagRequired("table")
}

func newSource(seed uint64) rng.Source {
	if seed != 0 {
		return rng.NewSeeded(seed)
	}
	return rng.NewSystem()
}

func generationContext() entities.GenerationContext {
	gctx := entities.GenerationContext{
		RegionID: encounterRegion,
		Time:     entities.Day,
		Terrain:  entities.Road,
		Camping:  encounterCamping,
	}
	if encounterNight {
		gctx.Time = entities.Night
	}
	if encounterOffroad {
		gctx.Terrain = entities.OffRoad
	}
	return gctx
}

func runEncounter(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx := context.Background()
	src := newSource(encounterSeed)
	gctx := generationContext()

	if !encounterForce {
		check, err := a.service.Check(ctx, &encounter.CheckInput{
			Context: gctx,
			Source:  src,
		})
		if err != nil {
			return err
		}
		if !check.Triggered {
			fmt.Printf("No encounter (rolled %d, needed %d or less)\n", check.Roll, check.Chance)
			return nil
		}
	}

	output, err := a.service.Resolve(ctx, &encounter.ResolveInput{
		TableName: encounterTable,
		Context:   gctx,
		Source:    src,
		SessionID: encounterSession,
	})
	if err != nil {
		return err
	}

	if encounterJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output.Encounter)
	}

	printEncounter(output.Encounter)
	return nil
}

func printEncounter(enc *entities.Encounter) {
	fmt.Printf("%s: %s\n", strings.ToUpper(string(enc.Type)), enc.Summary)

	d := enc.Details
	if d.Creature == nil {
		return
	}

	if d.Headcount > 0 {
		fmt.Printf("  Number:   %d\n", d.Headcount)
	}
	fmt.Printf("  Reaction: %s\n", d.Reaction)
	fmt.Printf("  Distance: %d yards\n", d.Distance)
	if d.Surprise {
		fmt.Println("  The party is surprised!")
	}
	if d.Creature.HitDice != "" {
		fmt.Printf("  HD %s, AC %d, ML %d\n", d.Creature.HitDice, d.Creature.ArmourClass, d.Creature.Morale)
	}
	for _, atk := range d.Creature.Attacks {
		fmt.Printf("  Attack:   %s +%d (%s)\n", atk.Name, atk.Bonus, atk.Damage)
	}
}
