// Package history provides repository interface and types for per-session
// encounter history.
package history

import (
	"context"
	"time"

	"github.com/xavierbriand/dolmenwood-sub001/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=historymock github.com/xavierbriand/dolmenwood-sub001/internal/repositories/history Repository

// RecordKind distinguishes what a history record captures.
type RecordKind string

// Record kinds.
const (
	KindEncounter RecordKind = "encounter"
	KindRoll      RecordKind = "roll"
)

// Record is one resolved encounter or ad-hoc roll in a session's log.
type Record struct {
	// Unique identifier for this record within the session
	RecordID string `json:"record_id"`

	Kind RecordKind `json:"kind"`

	// Human-readable one-liner, e.g. "3 Wolves, hostile, 40 yards"
	Summary string `json:"summary"`

	// Set when Kind is KindEncounter
	Encounter *entities.Encounter `json:"encounter,omitempty"`

	// Set when Kind is KindRoll
	Notation string `json:"notation,omitempty"`
	Total    int    `json:"total,omitempty"`
}

// Session groups records by owning game session and context
// (e.g. "travel_day_3", "camp_watch_2").
type Session struct {
	SessionID string    `json:"session_id"`
	Context   string    `json:"context"`
	Records   []Record  `json:"records"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateInput contains parameters for creating a history session
type CreateInput struct {
	SessionID string
	Context   string
	Records   []Record
	TTL       time.Duration // how long the session should live
}

// CreateOutput contains the result of creating a history session
type CreateOutput struct {
	Session *Session
}

// GetInput contains parameters for retrieving a history session
type GetInput struct {
	SessionID string
	Context   string
}

// GetOutput contains the result of retrieving a history session
type GetOutput struct {
	Session *Session
}

// DeleteInput contains parameters for deleting a history session
type DeleteInput struct {
	SessionID string
	Context   string
}

// DeleteOutput contains the result of deleting a history session
type DeleteOutput struct {
	RecordsDeleted int
}

// Repository defines the interface for history storage operations
type Repository interface {
	// Create stores a new session with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by session ID and context
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces an existing session (used for appending records)
	Update(ctx context.Context, session *Session) error
}
