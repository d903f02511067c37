// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/xavierbriand/dolmenwood-sub001/internal/entities"
)

// LookupTableBuilder provides a fluent interface for building test LookupTable instances
type LookupTableBuilder struct {
	table *entities.LookupTable
}

// NewLookupTableBuilder creates a new builder with minimal defaults
func NewLookupTableBuilder(name string) *LookupTableBuilder {
	return &LookupTableBuilder{
		table: &entities.LookupTable{
			Name: name,
			Die:  "1d6",
		},
	}
}

// WithDie sets the table's die notation
func (b *LookupTableBuilder) WithDie(die string) *LookupTableBuilder {
	b.table.Die = die
	return b
}

// WithRow appends a row covering [min,max]
func (b *LookupTableBuilder) WithRow(min, max int, resultType entities.ResultType, ref string) *LookupTableBuilder {
	b.table.Rows = append(b.table.Rows, entities.RangeEntry{
		Min:  min,
		Max:  max,
		Type: resultType,
		Ref:  ref,
	})
	return b
}

// WithSingleRow makes the whole roll domain resolve to one outcome
func (b *LookupTableBuilder) WithSingleRow(resultType entities.ResultType, ref string) *LookupTableBuilder {
	b.table.Rows = []entities.RangeEntry{
		{Min: 1, Max: 6, Type: resultType, Ref: ref},
	}
	return b
}

// Build returns the built table
func (b *LookupTableBuilder) Build() *entities.LookupTable {
	return b.table
}
