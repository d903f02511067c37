// Package entities provides core data structures for the encounter engine.
package entities

// ResultType tags what a table row resolves to.
type ResultType string

// Result types a RangeEntry may carry. TypeTable routes into another
// table; everything else is terminal.
const (
	TypeTable     ResultType = "table"
	TypeCreature  ResultType = "creature"
	TypeLair      ResultType = "lair"
	TypeHazard    ResultType = "hazard"
	TypeStructure ResultType = "structure"
	TypeSpoor     ResultType = "spoor"
	TypeEvent     ResultType = "event"
)

// Terminal reports whether the result type ends resolution.
func (t ResultType) Terminal() bool {
	return t != TypeTable
}

// LookupTable is a named, ordered set of roll ranges mapping a die
// result to an outcome.
type LookupTable struct {
	Name string       `json:"name" yaml:"name"`
	Die  string       `json:"die" yaml:"die"` // dice notation, e.g. "1d12"
	Rows []RangeEntry `json:"rows" yaml:"rows"`
}

// RangeEntry is one row of a LookupTable. Min and Max are inclusive;
// rows are expected to tile the die's roll domain without gaps or
// overlaps.
type RangeEntry struct {
	Min  int        `json:"min" yaml:"min"`
	Max  int        `json:"max" yaml:"max"`
	Type ResultType `json:"type" yaml:"type"`
	Ref  string     `json:"ref" yaml:"ref"`
}

// Width returns the number of roll values the entry covers, used as
// its selection weight.
func (e RangeEntry) Width() int {
	return e.Max - e.Min + 1
}
