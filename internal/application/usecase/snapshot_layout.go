package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bnema/bsptile/internal/domain/bsp"
	"github.com/bnema/bsptile/internal/domain/entity"
	"github.com/bnema/bsptile/internal/domain/repository"
	"github.com/bnema/bsptile/internal/logging"
)

// ErrSnapshotNotFound is returned when no stored layout matches.
var ErrSnapshotNotFound = errors.New("layout snapshot not found")

// CaptureLayout snapshots every desktop of the set.
func CaptureLayout(set *bsp.DesktopSet, screen entity.Screen, name string) *entity.LayoutSnapshot {
	snap := &entity.LayoutSnapshot{
		Version:  entity.LayoutSnapshotVersion,
		ID:       entity.SnapshotID(uuid.NewString()),
		Name:     name,
		Screen:   screen,
		Desktops: make([]entity.DesktopSnapshot, 0, len(set.Desktops)),
		SavedAt:  time.Now(),
	}
	for _, d := range set.Desktops {
		snap.Desktops = append(snap.Desktops, set.Arena.Snapshot(d))
	}
	return snap
}

// SnapshotLayoutUseCase saves, lists, restores and prunes layout snapshots.
type SnapshotLayoutUseCase struct {
	repo    repository.LayoutRepository
	maxKept int
}

// NewSnapshotLayoutUseCase creates a new SnapshotLayoutUseCase.
// maxKept bounds unnamed (autosaved) snapshots; 0 keeps them all.
func NewSnapshotLayoutUseCase(repo repository.LayoutRepository, maxKept int) *SnapshotLayoutUseCase {
	return &SnapshotLayoutUseCase{repo: repo, maxKept: maxKept}
}

// Save stores a snapshot, filling in a missing ID or timestamp, and prunes
// old unnamed snapshots.
func (uc *SnapshotLayoutUseCase) Save(ctx context.Context, snap *entity.LayoutSnapshot) error {
	log := logging.FromContext(ctx)

	if snap == nil {
		return fmt.Errorf("snapshot required")
	}
	if snap.Version != entity.LayoutSnapshotVersion {
		return fmt.Errorf("unsupported snapshot version %d", snap.Version)
	}
	if snap.ID == "" {
		snap.ID = entity.SnapshotID(uuid.NewString())
	}
	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now()
	}

	log.Debug().
		Str("snapshot_id", string(snap.ID)).
		Str("name", snap.Name).
		Int("desktops", len(snap.Desktops)).
		Int("windows", snap.WindowCount()).
		Msg("saving layout snapshot")

	if err := uc.repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save layout snapshot: %w", err)
	}

	if uc.maxKept > 0 && snap.Name == "" {
		deleted, err := uc.repo.Prune(ctx, uc.maxKept)
		if err != nil {
			// The snapshot itself is stored.
			log.Warn().Err(err).Msg("failed to prune layout snapshots")
		} else if deleted > 0 {
			log.Debug().Int64("deleted", deleted).Msg("pruned layout snapshots")
		}
	}
	return nil
}

// List returns every stored snapshot, newest first.
func (uc *SnapshotLayoutUseCase) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	snaps, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list layout snapshots: %w", err)
	}
	return snaps, nil
}

// Load finds a snapshot by ID, then by name.
func (uc *SnapshotLayoutUseCase) Load(ctx context.Context, ref string) (*entity.LayoutSnapshot, error) {
	if ref == "" {
		return nil, fmt.Errorf("snapshot id or name required")
	}
	snap, err := uc.repo.Get(ctx, entity.SnapshotID(ref))
	if err != nil {
		return nil, fmt.Errorf("get layout snapshot: %w", err)
	}
	if snap != nil {
		return snap, nil
	}
	snap, err = uc.repo.GetByName(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("get layout snapshot by name: %w", err)
	}
	if snap == nil {
		return nil, fmt.Errorf("%q: %w", ref, ErrSnapshotNotFound)
	}
	return snap, nil
}

// Restore rebuilds every desktop of the set from snap. Desktops missing
// from the snapshot are emptied. On error the set is left untouched.
func (uc *SnapshotLayoutUseCase) Restore(ctx context.Context, set *bsp.DesktopSet, snap *entity.LayoutSnapshot) error {
	log := logging.FromContext(ctx)

	if snap == nil {
		return fmt.Errorf("snapshot required")
	}
	if len(snap.Desktops) > len(set.Desktops) {
		return fmt.Errorf("snapshot has %d desktops, only %d configured", len(snap.Desktops), len(set.Desktops))
	}

	built := make([]*bsp.Desktop, len(set.Desktops))
	release := func() {
		for _, d := range built {
			if d != nil {
				set.Arena.Destroy(d)
			}
		}
	}
	for _, ds := range snap.Desktops {
		if ds.Index < 0 || ds.Index >= len(built) || built[ds.Index] != nil {
			release()
			return fmt.Errorf("snapshot desktop index %d: %w", ds.Index, bsp.ErrNoDesktop)
		}
		d, err := set.Arena.Restore(ds)
		if err != nil {
			release()
			return err
		}
		built[ds.Index] = d
	}

	for i, d := range built {
		if d == nil {
			old := set.Desktops[i]
			d = bsp.NewDesktop(i, old.Name, old.Layout)
		}
		if err := set.Replace(d); err != nil {
			return err
		}
	}

	log.Info().
		Str("snapshot_id", string(snap.ID)).
		Int("windows", snap.WindowCount()).
		Msg("layout restored")
	return nil
}

// Delete removes a snapshot by ID.
func (uc *SnapshotLayoutUseCase) Delete(ctx context.Context, id entity.SnapshotID) error {
	if id == "" {
		return fmt.Errorf("snapshot id required")
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete layout snapshot: %w", err)
	}
	return nil
}
