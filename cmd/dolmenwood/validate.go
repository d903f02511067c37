package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/xavierbriand/dolmenwood-sub001/internal/entities"
)

// validateReferences checks every table row that points at another
// table or a creature. A table reference is satisfied by an exact
// match or by any region-qualified variant, since the resolver may
// reach either at run time.
func validateReferences(ctx context.Context, a *app) int {
	tableList, err := a.tableRepo.List(ctx)
	if err != nil {
		fmt.Printf("FAIL listing tables: %v\n", err)
		return 1
	}
	creatureList, err := a.creatureRepo.List(ctx)
	if err != nil {
		fmt.Printf("FAIL listing creatures: %v\n", err)
		return 1
	}

	tableNames := make(map[string]struct{}, len(tableList.Tables))
	for _, table := range tableList.Tables {
		tableNames[table.Name] = struct{}{}
	}
	creatureNames := make(map[string]struct{}, len(creatureList.Creatures))
	for _, creature := range creatureList.Creatures {
		creatureNames[creature.Name] = struct{}{}
	}

	hasTableVariant := func(ref string) bool {
		if _, ok := tableNames[ref]; ok {
			return true
		}
		for name := range tableNames {
			if strings.HasPrefix(name, ref+" - ") {
				return true
			}
		}
		return false
	}

	var problems int
	for _, table := range tableList.Tables {
		for _, row := range table.Rows {
			switch row.Type {
			case entities.TypeTable:
				if !hasTableVariant(row.Ref) {
					fmt.Printf("FAIL %s [%d,%d]: no table named %q in any region\n",
						table.Name, row.Min, row.Max, row.Ref)
					problems++
				}
			case entities.TypeCreature:
				if _, ok := creatureNames[row.Ref]; !ok {
					fmt.Printf("FAIL %s [%d,%d]: no creature named %q\n",
						table.Name, row.Min, row.Max, row.Ref)
					problems++
				}
			}
		}
	}

	return problems
}
