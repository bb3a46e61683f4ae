package bsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bsptile/internal/domain/entity"
)

func TestApplyLayout_StackAndBack(t *testing.T) {
	a := newTestArena(t)
	d := buildDesktop(t, a, winA, winB)
	split := rects(a, d)
	usable := testScreen.Usable(10)

	require.NoError(t, a.ApplyLayout(d, entity.LayoutStack, testScreen, entity.NoWindow))
	assert.Equal(t, entity.LayoutStack, d.Layout)
	assert.Equal(t, usable, rectOf(a, d, winA))
	assert.Equal(t, usable, rectOf(a, d, winB))

	require.NoError(t, a.ApplyLayout(d, entity.LayoutDefault, testScreen, entity.NoWindow))
	assert.Equal(t, split, rects(a, d))
	require.NoError(t, a.Validate(d))
}

func TestApplyLayout_DefaultWithBar(t *testing.T) {
	a := newTestArena(t)
	d := buildDesktop(t, a, winA, winB)
	screen := entity.Screen{Width: 1920, Height: 1080, BarHeight: 27}

	require.NoError(t, a.ApplyLayout(d, entity.LayoutDefault, screen, entity.NoWindow))
	assert.Equal(t, entity.Rectangle{X: 10, Y: 37, Width: 1900, Height: 1033}, a.Rect(d.Root))
	assert.Equal(t, entity.Rectangle{X: 10, Y: 37, Width: 945, Height: 1033}, rectOf(a, d, winA))
}

func TestApplyLayout_Master(t *testing.T) {
	tests := []struct {
		name   string
		master entity.WindowID
		want   map[entity.WindowID]entity.Rectangle
	}{
		{
			name:   "master is a direct child of the root",
			master: winB,
			want: map[entity.WindowID]entity.Rectangle{
				winB: {X: 10, Y: 10, Width: 1420, Height: 1060},
				winA: {X: 1440, Y: 10, Width: 470, Height: 525},
				winC: {X: 1440, Y: 545, Width: 470, Height: 525},
			},
		},
		{
			name:   "master is nested",
			master: winA,
			want: map[entity.WindowID]entity.Rectangle{
				winA: {X: 10, Y: 10, Width: 1420, Height: 1060},
				winC: {X: 1440, Y: 10, Width: 470, Height: 525},
				winB: {X: 1440, Y: 545, Width: 470, Height: 525},
			},
		},
		{
			name:   "unknown window falls back to the left leaf",
			master: winE,
			want: map[entity.WindowID]entity.Rectangle{
				winA: {X: 10, Y: 10, Width: 1420, Height: 1060},
				winC: {X: 1440, Y: 10, Width: 470, Height: 525},
				winB: {X: 1440, Y: 545, Width: 470, Height: 525},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestArena(t, func(o *Options) { o.MasterRatio = 0.75 })
			d := buildDesktop(t, a, winA, winB, winC)

			require.NoError(t, a.ApplyLayout(d, entity.LayoutMaster, testScreen, tt.master))
			for win, want := range tt.want {
				assert.Equal(t, want, rectOf(a, d, win), "window %s", win)
			}
			assert.Equal(t, NoNode, a.FindMaster(d.Root))
			assert.Equal(t, entity.LayoutMaster, d.Layout)
			require.NoError(t, a.Validate(d))
		})
	}
}

func TestApplyLayout_MasterSingleWindow(t *testing.T) {
	a := newTestArena(t)
	d := buildDesktop(t, a, winA)

	require.NoError(t, a.ApplyLayout(d, entity.LayoutMaster, testScreen, winA))
	assert.Equal(t, testScreen.Usable(10), a.Rect(d.Root))
}

func TestApplyLayout_Grid(t *testing.T) {
	a := newTestArena(t)
	d := buildDesktop(t, a, winA, winB, winC, winD)

	require.NoError(t, a.ApplyLayout(d, entity.LayoutGrid, testScreen, entity.NoWindow))

	// Leaves in pre-order are A, D, C, B.
	assert.Equal(t, entity.Rectangle{X: 10, Y: 10, Width: 945, Height: 525}, rectOf(a, d, winA))
	assert.Equal(t, entity.Rectangle{X: 965, Y: 10, Width: 945, Height: 525}, rectOf(a, d, winD))
	assert.Equal(t, entity.Rectangle{X: 10, Y: 545, Width: 945, Height: 525}, rectOf(a, d, winC))
	assert.Equal(t, entity.Rectangle{X: 965, Y: 545, Width: 945, Height: 525}, rectOf(a, d, winB))

	a.Walk(d.Root, func(id NodeID) bool {
		if a.IsInternal(id) {
			assert.True(t, a.Rect(id).Contains(a.Rect(a.First(id))))
			assert.True(t, a.Rect(id).Contains(a.Rect(a.Second(id))))
		}
		return true
	})
}

func TestApplyLayout_GridUnevenRows(t *testing.T) {
	a := newTestArena(t)
	d := buildDesktop(t, a, winA, winB, winC, winD, winE)

	require.NoError(t, a.ApplyLayout(d, entity.LayoutGrid, testScreen, entity.NoWindow))

	leaves := a.Leaves(d.Root)
	require.Len(t, leaves, 5)
	assert.Equal(t, entity.Rectangle{X: 10, Y: 10, Width: 626, Height: 525}, a.Rect(leaves[0]))
	// The last column absorbs the rounding remainder.
	assert.Equal(t, entity.Rectangle{X: 1282, Y: 10, Width: 628, Height: 525}, a.Rect(leaves[2]))
	assert.Equal(t, entity.Rectangle{X: 646, Y: 545, Width: 626, Height: 525}, a.Rect(leaves[4]))
}

func TestApplyLayout_EmptyDesktopRecordsMode(t *testing.T) {
	a := newTestArena(t)
	d := NewDesktop(0, "1", entity.LayoutDefault)

	require.NoError(t, a.ApplyLayout(d, entity.LayoutGrid, testScreen, entity.NoWindow))
	assert.Equal(t, entity.LayoutGrid, d.Layout)

	assert.Error(t, a.ApplyLayout(d, entity.LayoutMode(42), testScreen, entity.NoWindow))
}

func TestHorizontalResize(t *testing.T) {
	t.Run("grow first child of root", func(t *testing.T) {
		a := newTestArena(t)
		d := buildDesktop(t, a, winA, winB)

		require.NoError(t, a.HorizontalResize(a.FindNode(d.Root, winA), entity.ResizeGrow))
		assert.Equal(t, entity.Rectangle{X: 10, Y: 10, Width: 950, Height: 1060}, rectOf(a, d, winA))
		assert.Equal(t, entity.Rectangle{X: 970, Y: 10, Width: 940, Height: 1060}, rectOf(a, d, winB))
		require.NoError(t, a.Validate(d))
	})

	t.Run("grow second child of root", func(t *testing.T) {
		a := newTestArena(t)
		d := buildDesktop(t, a, winA, winB)

		require.NoError(t, a.HorizontalResize(a.FindNode(d.Root, winB), entity.ResizeGrow))
		assert.Equal(t, entity.Rectangle{X: 10, Y: 10, Width: 940, Height: 1060}, rectOf(a, d, winA))
		assert.Equal(t, entity.Rectangle{X: 960, Y: 10, Width: 950, Height: 1060}, rectOf(a, d, winB))
		require.NoError(t, a.Validate(d))
	})

	t.Run("shrink first child of root", func(t *testing.T) {
		a := newTestArena(t)
		d := buildDesktop(t, a, winA, winB)

		require.NoError(t, a.HorizontalResize(a.FindNode(d.Root, winA), entity.ResizeShrink))
		assert.Equal(t, entity.Rectangle{X: 10, Y: 10, Width: 940, Height: 1060}, rectOf(a, d, winA))
		assert.Equal(t, entity.Rectangle{X: 960, Y: 10, Width: 950, Height: 1060}, rectOf(a, d, winB))
	})

	t.Run("nested node moves the top level boundary", func(t *testing.T) {
		a := newTestArena(t)
		d := buildDesktop(t, a, winA, winB, winC)

		require.NoError(t, a.HorizontalResize(a.FindNode(d.Root, winC), entity.ResizeGrow))
		assert.Equal(t, entity.Rectangle{X: 10, Y: 10, Width: 950, Height: 525}, rectOf(a, d, winA))
		assert.Equal(t, entity.Rectangle{X: 10, Y: 545, Width: 950, Height: 525}, rectOf(a, d, winC))
		assert.Equal(t, entity.Rectangle{X: 970, Y: 10, Width: 940, Height: 1060}, rectOf(a, d, winB))
		require.NoError(t, a.Validate(d))
	})

	t.Run("sole window has nothing to resize", func(t *testing.T) {
		a := newTestArena(t)
		d := buildDesktop(t, a, winA)

		assert.ErrorIs(t, a.HorizontalResize(d.Root, entity.ResizeGrow), ErrNothingToResize)
	})

	t.Run("internal node is rejected", func(t *testing.T) {
		a := newTestArena(t)
		d := buildDesktop(t, a, winA, winB, winC)

		assert.ErrorIs(t, a.HorizontalResize(a.Parent(a.FindNode(d.Root, winA)), entity.ResizeGrow), ErrNotExternal)
	})

	t.Run("counterpart too small", func(t *testing.T) {
		a := newTestArena(t)
		d := NewDesktop(0, "1", entity.LayoutDefault)
		tiny := entity.Screen{Width: 50, Height: 20}
		for _, w := range []entity.WindowID{winA, winB} {
			id, err := a.NewNode(entity.NewClient(w))
			require.NoError(t, err)
			require.NoError(t, a.Insert(d, id, tiny))
		}
		require.NoError(t, a.ApplyLayout(d, entity.LayoutDefault, tiny, entity.NoWindow))
		before := rects(a, d)

		assert.ErrorIs(t, a.HorizontalResize(a.FindNode(d.Root, winA), entity.ResizeGrow), ErrNothingToResize)
		assert.Equal(t, before, rects(a, d))
	})
}

func TestResizeSubtree_RecomputesFromParentRect(t *testing.T) {
	a := newTestArena(t)
	d := buildDesktop(t, a, winA, winB, winC)

	a.SetRect(d.Root, entity.Rectangle{X: 10, Y: 10, Width: 1000, Height: 600})
	a.ResizeSubtree(d.Root)

	assert.Equal(t, entity.Rectangle{X: 10, Y: 10, Width: 495, Height: 295}, rectOf(a, d, winA))
	assert.Equal(t, entity.Rectangle{X: 10, Y: 315, Width: 495, Height: 295}, rectOf(a, d, winC))
	assert.Equal(t, entity.Rectangle{X: 515, Y: 10, Width: 495, Height: 600}, rectOf(a, d, winB))

	// Leaves have nothing to recompute.
	before := rects(a, d)
	a.ResizeSubtree(a.FindNode(d.Root, winB))
	a.ResizeSubtree(NoNode)
	assert.Equal(t, before, rects(a, d))
}
