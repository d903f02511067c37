// Package selection implements weighted random selection over ordered
// entries.
package selection

import (
	"github.com/xavierbriand/dolmenwood-sub001/internal/errors"
	"github.com/xavierbriand/dolmenwood-sub001/internal/pkg/rng"
)

// Weighted pairs a non-negative integer weight with a value.
type Weighted[T any] struct {
	Weight int
	Value  T
}

// Pick selects one entry in proportion to its weight, consuming a
// single draw from src. It walks entries in order accumulating weight
// and returns the first entry whose cumulative weight strictly exceeds
// the scaled draw, so selection is deterministic for a fixed draw and
// independent of how weights are grouped. Zero-weight entries are never
// selected.
func Pick[T any](entries []Weighted[T], src rng.Source) (T, error) {
	var zero T

	if len(entries) == 0 {
		return zero, errors.EmptyTable("cannot select from zero entries")
	}

	total := 0
	for _, e := range entries {
		if e.Weight < 0 {
			return zero, errors.InvalidArgumentf("entry weight must not be negative, got %d", e.Weight)
		}
		total += e.Weight
	}
	if total == 0 {
		return zero, errors.EmptyTable("all entries have zero weight")
	}

	scaled := src.Next() * float64(total)
	cumulative := 0
	for _, e := range entries {
		cumulative += e.Weight
		if float64(cumulative) > scaled {
			return e.Value, nil
		}
	}

	// Unreachable: the draw is < 1 so scaled < total, and the final
	// cumulative weight equals total.
	return entries[len(entries)-1].Value, nil
}
