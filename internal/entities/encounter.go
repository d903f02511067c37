package entities

import "time"

// EncounterDetails holds the optional trimmings of a terminal result.
// Which fields are set depends on the encounter type: creature
// encounters carry the statblock and the reaction/distance rolls,
// other terminal types usually carry nothing beyond the summary.
type EncounterDetails struct {
	Creature  *CreatureDefinition `json:"creature,omitempty"`
	Headcount int                 `json:"headcount,omitempty"`
	Activity  string              `json:"activity,omitempty"`
	Reaction  string              `json:"reaction,omitempty"`
	Distance  int                 `json:"distance,omitempty"` // yards
	Surprise  bool                `json:"surprise,omitempty"`
	Treasure  string              `json:"treasure,omitempty"`
}

// Encounter is the final structured output of a resolution.
type Encounter struct {
	ID       string           `json:"id"`
	Type     ResultType       `json:"type"`
	Summary  string           `json:"summary"`
	Details  EncounterDetails `json:"details"`
	RolledAt time.Time        `json:"rolled_at"`
}
