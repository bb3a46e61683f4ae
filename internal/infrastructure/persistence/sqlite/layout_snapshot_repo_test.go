package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bsptile/internal/domain/entity"
	"github.com/bnema/bsptile/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/bsptile/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "bsptile.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

var baseTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func testSnapshot(id, name string, offset time.Duration) *entity.LayoutSnapshot {
	return &entity.LayoutSnapshot{
		Version: entity.LayoutSnapshotVersion,
		ID:      entity.SnapshotID(id),
		Name:    name,
		Screen:  entity.Screen{Width: 1920, Height: 1080},
		Desktops: []entity.DesktopSnapshot{
			{
				Index:  0,
				Name:   "1",
				Layout: entity.LayoutMaster,
				Count:  2,
				Root: &entity.NodeSnapshot{
					Rect:   entity.Rectangle{X: 10, Y: 10, Width: 1900, Height: 1060},
					First:  &entity.NodeSnapshot{Window: 0xa00001, Rect: entity.Rectangle{X: 10, Y: 10, Width: 945, Height: 1060}},
					Second: &entity.NodeSnapshot{Window: 0xa00002, Rect: entity.Rectangle{X: 965, Y: 10, Width: 945, Height: 1060}},
				},
			},
			{Index: 1, Name: "2", Layout: entity.LayoutDefault},
		},
		SavedAt: baseTime.Add(offset),
	}
}

func TestMigrations_Applied(t *testing.T) {
	db := openTestDB(t)

	version, err := sqlite.GetMigrationStatus(testCtx(), db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestLayoutSnapshotRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewLayoutSnapshotRepository(openTestDB(t))

	snap := testSnapshot("snap-1", "work", 0)
	require.NoError(t, repo.Save(ctx, snap))

	got, err := repo.Get(ctx, "snap-1")
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	byName, err := repo.GetByName(ctx, "work")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, snap.ID, byName.ID)

	snap.Desktops[0].Layout = entity.LayoutGrid
	require.NoError(t, repo.Save(ctx, snap))
	got, err = repo.Get(ctx, "snap-1")
	require.NoError(t, err)
	assert.Equal(t, entity.LayoutGrid, got.Desktops[0].Layout)

	require.NoError(t, repo.Delete(ctx, "snap-1"))
	got, err = repo.Get(ctx, "snap-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Delete(ctx, "snap-1"), "deleting a missing snapshot is not an error")
}

func TestLayoutSnapshotRepository_MissingReturnsNil(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewLayoutSnapshotRepository(openTestDB(t))

	got, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetByName(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLayoutSnapshotRepository_ListNewestFirst(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewLayoutSnapshotRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, testSnapshot("old", "", 0)))
	require.NoError(t, repo.Save(ctx, testSnapshot("new", "", 2*time.Minute)))
	require.NoError(t, repo.Save(ctx, testSnapshot("mid", "", time.Minute)))

	snaps, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 3)
	assert.Equal(t, entity.SnapshotID("new"), snaps[0].ID)
	assert.Equal(t, entity.SnapshotID("mid"), snaps[1].ID)
	assert.Equal(t, entity.SnapshotID("old"), snaps[2].ID)
}

func TestLayoutSnapshotRepository_GetByNamePicksNewest(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewLayoutSnapshotRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, testSnapshot("a", "coding", 0)))
	require.NoError(t, repo.Save(ctx, testSnapshot("b", "coding", time.Hour)))

	got, err := repo.GetByName(ctx, "coding")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.SnapshotID("b"), got.ID)
}

func TestLayoutSnapshotRepository_PruneKeepsNamed(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewLayoutSnapshotRepository(openTestDB(t))

	for i := range 5 {
		require.NoError(t, repo.Save(ctx, testSnapshot(fmt.Sprintf("auto-%d", i), "", time.Duration(i)*time.Minute)))
	}
	require.NoError(t, repo.Save(ctx, testSnapshot("named", "keep-me", -time.Hour)))

	deleted, err := repo.Prune(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	snaps, err := repo.List(ctx)
	require.NoError(t, err)
	var ids []entity.SnapshotID
	for _, s := range snaps {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []entity.SnapshotID{"auto-4", "auto-3", "named"}, ids)
}

func TestLayoutSnapshotRepository_SaveRejectsEmptyID(t *testing.T) {
	repo := sqlite.NewLayoutSnapshotRepository(openTestDB(t))
	assert.Error(t, repo.Save(testCtx(), testSnapshot("", "", 0)))
	assert.Error(t, repo.Save(testCtx(), nil))
}
