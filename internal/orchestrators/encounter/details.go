package encounter

import (
	"fmt"

	"github.com/xavierbriand/dolmenwood-sub001/internal/dice"
	"github.com/xavierbriand/dolmenwood-sub001/internal/entities"
	"github.com/xavierbriand/dolmenwood-sub001/internal/pkg/rng"
)

// Reaction bands for the classic 2d6 reaction roll.
const (
	ReactionHostile    = "hostile"
	ReactionUnfriendly = "unfriendly"
	ReactionNeutral    = "neutral"
	ReactionFriendly   = "friendly"
	ReactionHelpful    = "helpful"
)

var (
	reactionDie = dice.Expression{Count: 2, Sides: 6}
	distanceDie = dice.Expression{Count: 2, Sides: 6}
	surpriseDie = dice.Expression{Count: 1, Sides: 6}
	checkDie    = dice.Expression{Count: 1, Sides: 6}
)

// Encountered parties spotted while camping are already on top of the
// camp.
const campDistanceYards = 10

// reactionBand maps a 2d6 roll to its band.
func reactionBand(roll int) string {
	switch {
	case roll <= 2:
		return ReactionHostile
	case roll <= 5:
		return ReactionUnfriendly
	case roll <= 8:
		return ReactionNeutral
	case roll <= 11:
		return ReactionFriendly
	default:
		return ReactionHelpful
	}
}

// encounterChance returns the 1d6 threshold for an encounter happening
// under the given travel circumstances: 1-in-6 on the road or in camp,
// 2-in-6 off-road.
func encounterChance(gctx entities.GenerationContext) int {
	if gctx.Camping {
		return 1
	}
	if gctx.Terrain == entities.OffRoad {
		return 2
	}
	return 1
}

// rollCreatureDetails fills in the trimmings of a creature sighting.
// Draw order is fixed: headcount (when the statblock declares a
// number-appearing die), reaction, distance (skipped in camp), then
// surprise.
func rollCreatureDetails(creature *entities.CreatureDefinition, gctx entities.GenerationContext, src rng.Source) (entities.EncounterDetails, error) {
	details := entities.EncounterDetails{Creature: creature}

	if creature.NumberAppearing != "" {
		expr, err := dice.Parse(creature.NumberAppearing)
		if err != nil {
			return details, err
		}
		details.Headcount = expr.Roll(src)
	}

	details.Reaction = reactionBand(reactionDie.Roll(src))

	if gctx.Camping {
		details.Distance = campDistanceYards
	} else {
		yardsPerStep := 10
		if gctx.Terrain == entities.Road {
			yardsPerStep = 20
		}
		details.Distance = distanceDie.Roll(src) * yardsPerStep
	}

	details.Surprise = surpriseDie.Roll(src) <= 2

	return details, nil
}

// creatureSummary renders the one-line description of a sighting.
func creatureSummary(creature *entities.CreatureDefinition, details entities.EncounterDetails) string {
	if details.Headcount > 1 {
		return fmt.Sprintf("%s ×%d", creature.Name, details.Headcount)
	}
	return creature.Name
}
