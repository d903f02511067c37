// Package creatures provides repository interfaces and types for
// creature statblocks.
package creatures

import (
	"context"

	"github.com/xavierbriand/dolmenwood-sub001/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=creaturesmock github.com/xavierbriand/dolmenwood-sub001/internal/repositories/creatures Repository

// GetInput contains parameters for retrieving a creature
type GetInput struct {
	Name string
}

// GetOutput contains the result of retrieving a creature
type GetOutput struct {
	Creature *entities.CreatureDefinition
}

// ListOutput contains the result of listing creatures
type ListOutput struct {
	Creatures []*entities.CreatureDefinition
}

// Repository defines the read port the resolver depends on. A miss is
// reported as a CREATURE_NOT_FOUND error carrying the requested name.
type Repository interface {
	// GetByName retrieves a creature by its exact name
	GetByName(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns all known creatures, ordered by name
	List(ctx context.Context) (*ListOutput, error)
}

// Writer is the write port used by data loading.
type Writer interface {
	// Save stores or replaces a creature under its name
	Save(ctx context.Context, creature *entities.CreatureDefinition) error
}
