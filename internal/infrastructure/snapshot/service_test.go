package snapshot

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ncruces/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bsptile/internal/application/port/mocks"
	"github.com/bnema/bsptile/internal/application/usecase"
	"github.com/bnema/bsptile/internal/domain/entity"
	repomocks "github.com/bnema/bsptile/internal/domain/repository/mocks"
)

func newLayout() *entity.LayoutSnapshot {
	return &entity.LayoutSnapshot{
		Version:  entity.LayoutSnapshotVersion,
		ID:       "autosave-1",
		Screen:   entity.Screen{Width: 1920, Height: 1080},
		Desktops: []entity.DesktopSnapshot{{Index: 0, Name: "1"}},
		SavedAt:  time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestService(t *testing.T, snap *entity.LayoutSnapshot, intervalMs int) (*Service, *repomocks.MockLayoutRepository) {
	repo := repomocks.NewMockLayoutRepository(t)
	provider := mocks.NewMockLayoutProvider(t)
	provider.EXPECT().CurrentLayout().Return(snap).Maybe()
	svc := NewService(usecase.NewSnapshotLayoutUseCase(repo, 0), provider, intervalMs)
	svc.retryDelay = time.Millisecond
	return svc, repo
}

func TestService_SaveNow_SkipsWhenClean(t *testing.T) {
	svc, _ := newTestService(t, newLayout(), 0)

	require.NoError(t, svc.SaveNow(context.Background()))
}

func TestService_SaveNow_SavesDirtyLayout(t *testing.T) {
	svc, repo := newTestService(t, newLayout(), 3_600_000)
	repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.LayoutSnapshot")).Return(nil).Once()

	svc.MarkDirty()
	require.True(t, svc.Dirty())
	require.NoError(t, svc.SaveNow(context.Background()))
	assert.False(t, svc.Dirty())

	require.NoError(t, svc.SaveNow(context.Background()), "second save is a no-op")
}

func TestService_SaveSnapshot_RetriesBusyDatabase(t *testing.T) {
	svc, repo := newTestService(t, newLayout(), 0)
	calls := 0
	repo.EXPECT().
		Save(mock.Anything, mock.AnythingOfType("*entity.LayoutSnapshot")).
		RunAndReturn(func(_ context.Context, _ *entity.LayoutSnapshot) error {
			calls++
			if calls == 1 {
				return fmt.Errorf("insert layout snapshot: %w", sqlite3.BUSY)
			}
			return nil
		})
	svc.dirty = true

	require.NoError(t, svc.saveSnapshot(context.Background()))
	assert.Equal(t, 2, calls)
	assert.False(t, svc.dirty)
}

func TestService_SaveSnapshot_RetriesOnlyOnce(t *testing.T) {
	svc, repo := newTestService(t, newLayout(), 0)
	repo.EXPECT().
		Save(mock.Anything, mock.Anything).
		Return(fmt.Errorf("insert layout snapshot: %w", sqlite3.LOCKED)).
		Times(2)
	svc.dirty = true

	err := svc.saveSnapshot(context.Background())
	require.ErrorIs(t, err, sqlite3.LOCKED)
	assert.True(t, svc.dirty)
}

func TestIsBusy(t *testing.T) {
	assert.True(t, isBusy(fmt.Errorf("save: %w", sqlite3.BUSY)))
	assert.True(t, isBusy(fmt.Errorf("save: %w", sqlite3.LOCKED)))
	assert.False(t, isBusy(errors.New("database is locked")), "message text is not a driver code")
	assert.False(t, isBusy(fmt.Errorf("save: %w", sqlite3.IOERR)))
}

func TestService_SaveSnapshot_KeepsDirtyOnFailure(t *testing.T) {
	svc, repo := newTestService(t, newLayout(), 0)
	diskErr := errors.New("disk I/O error")
	repo.EXPECT().Save(mock.Anything, mock.Anything).Return(diskErr).Once()
	svc.dirty = true

	err := svc.saveSnapshot(context.Background())
	require.ErrorIs(t, err, diskErr)
	assert.True(t, svc.dirty)
}

func TestService_SaveSnapshot_NothingManaged(t *testing.T) {
	svc, _ := newTestService(t, nil, 0)
	svc.dirty = true

	require.NoError(t, svc.saveSnapshot(context.Background()))
}

func TestService_MarkDirty_Debounces(t *testing.T) {
	svc, repo := newTestService(t, newLayout(), 50)
	var saves atomic.Int32
	repo.EXPECT().
		Save(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *entity.LayoutSnapshot) error {
			saves.Add(1)
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	svc.MarkDirty()
	svc.MarkDirty()
	svc.MarkDirty()

	assert.Eventually(t, func() bool { return saves.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, svc.Stop(context.Background()))
	assert.Equal(t, int32(1), saves.Load())
}
