// Package rng provides the randomness capability for the encounter engine.
//
// The engine never owns or seeds randomness itself: every operation that
// rolls takes a Source, so callers control determinism. A single Source
// is safe for sequential reuse but not for overlapping concurrent draws;
// give each concurrent resolution its own.
package rng

import "math/rand"

// Source produces uniform values in [0, 1).
type Source interface {
	Next() float64
}

type seeded struct {
	r *rand.Rand
}

// NewSeeded returns a Source backed by a seeded generator. The same
// seed always yields the same draw sequence.
func NewSeeded(seed uint64) Source {
	return &seeded{r: rand.New(rand.NewSource(int64(seed)))}
}

func (s *seeded) Next() float64 {
	return s.r.Float64()
}

type system struct{}

// NewSystem returns a Source drawing from the process-wide generator.
func NewSystem() Source {
	return system{}
}

func (system) Next() float64 {
	return rand.Float64()
}

// Sequence is a deterministic Source for tests. It replays the given
// values in order, wrapping around when exhausted, and counts how many
// draws were consumed.
type Sequence struct {
	values []float64
	draws  int
}

// NewSequence creates a Sequence replaying the given values.
func NewSequence(values ...float64) *Sequence {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &Sequence{values: values}
}

// Next returns the next scripted value.
func (s *Sequence) Next() float64 {
	v := s.values[s.draws%len(s.values)]
	s.draws++
	return v
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int {
	return s.draws
}
