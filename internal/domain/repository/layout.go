package repository

import (
	"context"

	"github.com/bnema/bsptile/internal/domain/entity"
)

// LayoutRepository persists layout snapshots.
type LayoutRepository interface {
	// Save inserts or replaces a snapshot by ID.
	Save(ctx context.Context, snap *entity.LayoutSnapshot) error

	// Get returns a snapshot by ID, or nil if none exists.
	Get(ctx context.Context, id entity.SnapshotID) (*entity.LayoutSnapshot, error)

	// GetByName returns the most recent snapshot with the given name, or nil.
	GetByName(ctx context.Context, name string) (*entity.LayoutSnapshot, error)

	// List returns all snapshots, newest first.
	List(ctx context.Context) ([]*entity.LayoutSnapshot, error)

	// Delete removes a snapshot. Deleting a missing snapshot is not an error.
	Delete(ctx context.Context, id entity.SnapshotID) error

	// Prune keeps the newest keep unnamed snapshots and deletes the rest.
	// Returns the number of deleted rows.
	Prune(ctx context.Context, keep int) (int64, error)
}
