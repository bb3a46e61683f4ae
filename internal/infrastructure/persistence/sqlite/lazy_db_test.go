package sqlite_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bsptile/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	assert.False(t, lazy.IsInitialized())
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_ReturnsSameConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	var wg sync.WaitGroup
	results := make(chan any, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			results <- db
		}()
	}
	wg.Wait()
	close(results)

	first := <-results
	for db := range results {
		assert.Same(t, first, db)
	}
	assert.True(t, lazy.IsInitialized())
}

func TestLazyDB_EmptyPathFails(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())
	assert.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}

func TestLazyLayoutRepository_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })
	repo := sqlite.NewLazyLayoutRepository(lazy)

	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Save(ctx, testSnapshot("x", "", 0)))
	assert.True(t, lazy.IsInitialized())

	snaps, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, snaps, 1)
}
