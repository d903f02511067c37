// Package dice implements dice notation parsing and rolling.
//
// Notation follows the usual NdS+M shorthand: an optional count, a
// literal "d", the die size, and an optional signed modifier. "1d6",
// "2d4+1", "d8" and "3d6-2" are all valid. Parsing is case-insensitive
// and ignores surrounding whitespace.
package dice

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/xavierbriand/dolmenwood-sub001/internal/errors"
	"github.com/xavierbriand/dolmenwood-sub001/internal/pkg/rng"
)

var notationRegex = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)

// Expression is a parsed dice expression. It is stateless: the same
// Expression can be rolled any number of times.
type Expression struct {
	Count    int
	Sides    int
	Modifier int
}

// New builds an Expression directly. Count may be 0 (the roll is then
// just the modifier); Sides must be at least 1.
func New(count, sides, modifier int) (Expression, error) {
	if count < 0 {
		return Expression{}, errors.InvalidNotationf("dice count must not be negative, got %d", count)
	}
	if sides < 1 {
		return Expression{}, errors.InvalidNotationf("die must have at least 1 side, got %d", sides)
	}
	return Expression{Count: count, Sides: sides, Modifier: modifier}, nil
}

// Parse parses dice notation into an Expression. An omitted count
// defaults to 1.
func Parse(text string) (Expression, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	matches := notationRegex.FindStringSubmatch(normalized)
	if matches == nil {
		return Expression{}, errors.InvalidNotationf("invalid dice notation: %q (expected format: NdS+M)", text)
	}

	count := 1
	if matches[1] != "" {
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			return Expression{}, errors.InvalidNotationf("invalid dice count in notation: %q", text)
		}
		count = n
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return Expression{}, errors.InvalidNotationf("invalid die size in notation: %q", text)
	}

	modifier := 0
	if matches[3] != "" {
		m, err := strconv.Atoi(matches[3])
		if err != nil {
			return Expression{}, errors.InvalidNotationf("invalid modifier in notation: %q", text)
		}
		modifier = m
	}

	return New(count, sides, modifier)
}

// Roll draws Count samples from src, maps each to [1, Sides], and
// returns the sum plus the modifier. It consumes exactly Count draws
// from src, in order.
func (e Expression) Roll(src rng.Source) int {
	total := e.Modifier
	for i := 0; i < e.Count; i++ {
		total += int(math.Floor(src.Next()*float64(e.Sides))) + 1
	}
	return total
}

// Min returns the lowest possible roll.
func (e Expression) Min() int {
	return e.Count + e.Modifier
}

// Max returns the highest possible roll.
func (e Expression) Max() int {
	return e.Count*e.Sides + e.Modifier
}

// String renders the expression back to canonical notation.
func (e Expression) String() string {
	s := fmt.Sprintf("%dd%d", e.Count, e.Sides)
	if e.Modifier != 0 {
		s += fmt.Sprintf("%+d", e.Modifier)
	}
	return s
}
