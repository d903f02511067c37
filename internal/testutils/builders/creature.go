package builders

import (
	"github.com/xavierbriand/dolmenwood-sub001/internal/entities"
)

// CreatureBuilder provides a fluent interface for building test CreatureDefinition instances
type CreatureBuilder struct {
	creature *entities.CreatureDefinition
}

// NewCreatureBuilder creates a new builder with minimal defaults
func NewCreatureBuilder(name string) *CreatureBuilder {
	return &CreatureBuilder{
		creature: &entities.CreatureDefinition{
			Name:    name,
			Kind:    "animal",
			HitDice: "2d8",
			Morale:  7,
		},
	}
}

// WithNumberAppearing sets the number-appearing die notation
func (b *CreatureBuilder) WithNumberAppearing(notation string) *CreatureBuilder {
	b.creature.NumberAppearing = notation
	return b
}

// WithAttack appends an attack line
func (b *CreatureBuilder) WithAttack(name string, bonus int, damage string) *CreatureBuilder {
	b.creature.Attacks = append(b.creature.Attacks, entities.Attack{
		Name:   name,
		Bonus:  bonus,
		Damage: damage,
	})
	return b
}

// WithMorale sets the morale score
func (b *CreatureBuilder) WithMorale(morale int) *CreatureBuilder {
	b.creature.Morale = morale
	return b
}

// Build returns the built creature
func (b *CreatureBuilder) Build() *entities.CreatureDefinition {
	return b.creature
}
