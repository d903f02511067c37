package encounter

import (
	"github.com/xavierbriand/dolmenwood-sub001/internal/entities"
	"github.com/xavierbriand/dolmenwood-sub001/internal/pkg/rng"
)

// ResolveInput defines the request for resolving an encounter table
type ResolveInput struct {
	// TableName is the root table to resolve
	TableName string

	// Context carries region, time of day, terrain and camping state
	Context entities.GenerationContext

	// Source supplies every random draw for this resolution
	Source rng.Source

	// SessionID, when set together with a configured history repository,
	// records the outcome to the session's log
	SessionID string

	// SessionContext groups history records; defaults to "encounters"
	SessionContext string
}

// ResolveOutput defines the response for resolving an encounter table
type ResolveOutput struct {
	Encounter *entities.Encounter
}

// CheckInput defines the request for an encounter check
type CheckInput struct {
	Context entities.GenerationContext
	Source  rng.Source
}

// CheckOutput defines the response for an encounter check
type CheckOutput struct {
	// Triggered reports whether an encounter happens
	Triggered bool

	// Roll is the 1d6 result
	Roll int

	// Chance is the threshold in six (roll <= chance triggers)
	Chance int
}

// RollDiceInput defines the request for an ad-hoc dice roll
type RollDiceInput struct {
	Notation string
	Source   rng.Source

	// SessionID and SessionContext behave as on ResolveInput
	SessionID      string
	SessionContext string
}

// RollDiceOutput defines the response for an ad-hoc dice roll
type RollDiceOutput struct {
	Notation string
	Total    int
}
