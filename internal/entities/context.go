package entities

// TimeOfDay narrows encounter tables to day or night variants.
type TimeOfDay string

// Times of day.
const (
	Day   TimeOfDay = "day"
	Night TimeOfDay = "night"
)

// Terrain is the party's travel situation.
type Terrain string

// Terrain kinds.
const (
	Road    Terrain = "road"
	OffRoad Terrain = "offroad"
)

// GenerationContext carries the circumstances of an encounter lookup.
// It is passed through recursive resolution unchanged; the resolver
// uses only RegionID (for region-qualified table fallback) and the
// travel fields (for detail rolls and encounter checks).
type GenerationContext struct {
	RegionID string    `json:"region_id"`
	Time     TimeOfDay `json:"time"`
	Terrain  Terrain   `json:"terrain"`
	Camping  bool      `json:"camping"`
}
