package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/bsptile/internal/domain/entity"
	"github.com/bnema/bsptile/internal/domain/repository"
	"github.com/bnema/bsptile/internal/logging"
)

const (
	upsertSnapshotSQL = `
INSERT INTO layout_snapshots (id, name, version, desktop_count, window_count, snapshot_json, saved_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    version = excluded.version,
    desktop_count = excluded.desktop_count,
    window_count = excluded.window_count,
    snapshot_json = excluded.snapshot_json,
    saved_at = excluded.saved_at`

	getSnapshotSQL = `SELECT snapshot_json FROM layout_snapshots WHERE id = ?`

	getSnapshotByNameSQL = `
SELECT snapshot_json FROM layout_snapshots
WHERE name = ?
ORDER BY saved_at DESC, rowid DESC
LIMIT 1`

	listSnapshotsSQL = `SELECT snapshot_json FROM layout_snapshots ORDER BY saved_at DESC, rowid DESC`

	deleteSnapshotSQL = `DELETE FROM layout_snapshots WHERE id = ?`

	pruneSnapshotsSQL = `
DELETE FROM layout_snapshots
WHERE name = '' AND id NOT IN (
    SELECT id FROM layout_snapshots
    WHERE name = ''
    ORDER BY saved_at DESC, rowid DESC
    LIMIT ?
)`
)

type layoutSnapshotRepo struct {
	db *sql.DB
}

// NewLayoutSnapshotRepository creates a layout repository backed by db.
func NewLayoutSnapshotRepository(db *sql.DB) repository.LayoutRepository {
	return &layoutSnapshotRepo{db: db}
}

func (r *layoutSnapshotRepo) Save(ctx context.Context, snap *entity.LayoutSnapshot) error {
	log := logging.FromContext(ctx)
	if snap == nil {
		return errors.New("layout snapshot cannot be nil")
	}
	if snap.ID == "" {
		return errors.New("layout snapshot id cannot be empty")
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal layout snapshot: %w", err)
	}

	log.Debug().
		Str("snapshot_id", string(snap.ID)).
		Int("bytes", len(data)).
		Msg("storing layout snapshot")

	_, err = r.db.ExecContext(ctx, upsertSnapshotSQL,
		string(snap.ID),
		snap.Name,
		snap.Version,
		len(snap.Desktops),
		snap.WindowCount(),
		string(data),
		snap.SavedAt.UnixNano(),
	)
	return err
}

func (r *layoutSnapshotRepo) Get(ctx context.Context, id entity.SnapshotID) (*entity.LayoutSnapshot, error) {
	return r.queryOne(ctx, getSnapshotSQL, string(id))
}

func (r *layoutSnapshotRepo) GetByName(ctx context.Context, name string) (*entity.LayoutSnapshot, error) {
	if name == "" {
		return nil, nil
	}
	return r.queryOne(ctx, getSnapshotByNameSQL, name)
}

func (r *layoutSnapshotRepo) queryOne(ctx context.Context, query string, arg any) (*entity.LayoutSnapshot, error) {
	var data string
	if err := r.db.QueryRowContext(ctx, query, arg).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return decodeSnapshot(data)
}

func (r *layoutSnapshotRepo) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, listSnapshotsSQL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var snaps []*entity.LayoutSnapshot
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		snap, err := decodeSnapshot(data)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

func (r *layoutSnapshotRepo) Delete(ctx context.Context, id entity.SnapshotID) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("snapshot_id", string(id)).Msg("deleting layout snapshot")
	_, err := r.db.ExecContext(ctx, deleteSnapshotSQL, string(id))
	return err
}

func (r *layoutSnapshotRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := r.db.ExecContext(ctx, pruneSnapshotsSQL, keep)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func decodeSnapshot(data string) (*entity.LayoutSnapshot, error) {
	var snap entity.LayoutSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("unmarshal layout snapshot: %w", err)
	}
	return &snap, nil
}
