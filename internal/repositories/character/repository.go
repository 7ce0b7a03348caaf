// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/CraneCD/dnd-55e-character-sheet/internal/repositories/character Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/entities/dnd5e"
)

// Record is a stored character. Name is the store key; ID is assigned on
// first save and kept across later saves of the same name.
type Record struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	SavedAt  time.Time       `json:"saved_at"`
	Snapshot *dnd5e.Snapshot `json:"snapshot"`
}

// Repository defines the interface for character persistence
type Repository interface {
	// GetAll retrieves every stored character ordered by name. Records that
	// cannot be decoded are skipped; Check reports them.
	// Returns errors.Internal for storage failures
	GetAll(ctx context.Context, input GetAllInput) (*GetAllOutput, error)

	// Get retrieves a character by name
	// Returns errors.InvalidArgument for empty names
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.DataLoss if the stored record cannot be decoded
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Upsert creates or replaces the character stored under the entity's ID
	// Returns errors.InvalidArgument for a nil entity, a non-character
	// entity, an empty ID or a nil snapshot
	// Returns errors.Internal for storage failures
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)

	// Delete deletes a character by name
	// Returns errors.InvalidArgument for empty names
	// Returns errors.NotFound if character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Check scans every stored record and the name index for damage:
	// undecodable records, records missing from the index and index entries
	// without a record. With Repair set the damage is removed.
	// Returns errors.Internal for storage failures
	Check(ctx context.Context, input CheckInput) (*CheckOutput, error)
}

// GetAllInput defines the input for listing characters
type GetAllInput struct{}

// GetAllOutput defines the output for listing characters
type GetAllOutput struct {
	Records []*Record
}

// GetInput defines the input for getting a character
type GetInput struct {
	Name string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Record *Record
}

// UpsertInput defines the input for saving a character. The entity's ID is
// the store name.
type UpsertInput struct {
	Entity   core.Entity
	Snapshot *dnd5e.Snapshot
}

// UpsertOutput defines the output for saving a character
type UpsertOutput struct {
	Record  *Record
	Created bool
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// CheckInput defines the input for checking the store
type CheckInput struct {
	Repair bool
}

// CheckOutput lists the damaged names found by a check, each sorted
type CheckOutput struct {
	Checked   int
	Corrupted []string // record cannot be decoded
	Unindexed []string // record exists but is not in the name index
	Dangling  []string // name index entry without a record
	Repaired  bool
}
