package bsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bsptile/internal/domain/entity"
)

func TestSnapshotRestore_PreservesShapeAndRects(t *testing.T) {
	a := newTestArena(t)
	d := buildDesktop(t, a, winA, winB, winC, winD)
	mapFloating(t, a, d, winF)
	require.NoError(t, a.HorizontalResize(a.FindNode(d.Root, winB), entity.ResizeGrow))

	snap := a.Snapshot(d)
	assert.Equal(t, 5, snap.Count)
	assert.Equal(t, 5, snap.Root.WindowCount())

	b := newTestArena(t)
	restored, err := b.Restore(snap)
	require.NoError(t, err)
	require.NoError(t, b.Validate(restored))

	assert.Equal(t, snap, b.Snapshot(restored))
	assert.Equal(t, rects(a, d), rects(b, restored))
	assert.True(t, b.IsFloating(b.FindNode(restored.Root, winF)))
}

func TestRestore_EmptyDesktop(t *testing.T) {
	a := newTestArena(t)

	d, err := a.Restore(entity.DesktopSnapshot{Index: 3, Name: "4", Layout: entity.LayoutStack})
	require.NoError(t, err)
	assert.True(t, d.Empty())
	assert.Equal(t, entity.LayoutStack, d.Layout)
	assert.Equal(t, 3, d.Index)
}

func TestRestore_RejectsMalformedSnapshot(t *testing.T) {
	a := newTestArena(t)
	snap := entity.DesktopSnapshot{
		Root: &entity.NodeSnapshot{
			First: &entity.NodeSnapshot{Window: winA},
		},
	}

	_, err := a.Restore(snap)
	assert.Error(t, err)
	assert.Equal(t, 0, a.Len())
}

func TestRestore_ArenaFullReleasesPartialTree(t *testing.T) {
	a := newTestArena(t)
	d := buildDesktop(t, a, winA, winB, winC)
	snap := a.Snapshot(d)

	b := newTestArena(t, func(o *Options) { o.MaxNodes = 3 })
	_, err := b.Restore(snap)
	assert.ErrorIs(t, err, ErrArenaFull)
	assert.Equal(t, 0, b.Len())
}
