// Package tables provides repository interfaces and types for encounter
// lookup tables.
package tables

import (
	"context"

	"github.com/xavierbriand/dolmenwood-sub001/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=tablesmock github.com/xavierbriand/dolmenwood-sub001/internal/repositories/tables Repository

// GetInput contains parameters for retrieving a table
type GetInput struct {
	Name string
}

// GetOutput contains the result of retrieving a table
type GetOutput struct {
	Table *entities.LookupTable
}

// ListOutput contains the result of listing tables
type ListOutput struct {
	Tables []*entities.LookupTable
}

// Repository defines the read port the resolver depends on. A miss is
// reported as a TABLE_NOT_FOUND error carrying the requested name.
type Repository interface {
	// GetByName retrieves a table by its exact name
	GetByName(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns all known tables, ordered by name
	List(ctx context.Context) (*ListOutput, error)
}

// Writer is the write port used by data loading. Only storage-backed
// implementations support it; flat-file repositories are read-only.
type Writer interface {
	// Save stores or replaces a table under its name
	Save(ctx context.Context, table *entities.LookupTable) error
}
