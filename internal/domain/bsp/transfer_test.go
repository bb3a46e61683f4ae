package bsp

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bsptile/internal/domain/entity"
)

func TestMove_ToEmptyDesktop(t *testing.T) {
	a := newTestArena(t)
	src := buildDesktop(t, a, winA, winB)
	dst := NewDesktop(1, "2", entity.LayoutDefault)

	id, err := a.Move(src, dst, winA, testScreen)
	require.NoError(t, err)

	assert.Equal(t, id, dst.Root)
	assert.Equal(t, KindRoot, a.Kind(id))
	assert.Equal(t, testScreen.Usable(10), a.Rect(id))
	assert.Equal(t, 1, src.Count)
	assert.Equal(t, 1, dst.Count)
	assert.False(t, a.ClientExists(src.Root, winA))
	require.NoError(t, a.Validate(src))
	require.NoError(t, a.Validate(dst))
}

func TestMove_ToSingleClientRoot(t *testing.T) {
	a := newTestArena(t)
	src := buildDesktop(t, a, winA, winB)
	dst := NewDesktop(1, "2", entity.LayoutDefault)
	mapWindow(t, a, dst, winC)

	_, err := a.Move(src, dst, winB, testScreen)
	require.NoError(t, err)

	assert.Equal(t, entity.Rectangle{X: 10, Y: 10, Width: 945, Height: 1060}, rectOf(a, dst, winC))
	assert.Equal(t, entity.Rectangle{X: 965, Y: 10, Width: 945, Height: 1060}, rectOf(a, dst, winB))
	assert.Equal(t, 2, dst.Count)
	require.NoError(t, a.Validate(dst))
}

func TestMove_ToStructuredDesktopSplitsLeftLeaf(t *testing.T) {
	a := newTestArena(t)
	src := buildDesktop(t, a, winA)
	dst := buildDesktop(t, a, winB, winC)

	_, err := a.Move(src, dst, winA, testScreen)
	require.NoError(t, err)

	assert.True(t, src.Empty())
	assert.Equal(t, 0, src.Count)
	assert.Equal(t, 3, dst.Count)
	assert.Equal(t, entity.Rectangle{X: 10, Y: 10, Width: 945, Height: 525}, rectOf(a, dst, winB))
	assert.Equal(t, entity.Rectangle{X: 10, Y: 545, Width: 945, Height: 525}, rectOf(a, dst, winA))
	require.NoError(t, a.Validate(dst))
}

func TestMove_FloatingStaysFloating(t *testing.T) {
	a := newTestArena(t)
	src := buildDesktop(t, a, winA)
	mapFloating(t, a, src, winF)
	dst := buildDesktop(t, a, winB)

	id, err := a.Move(src, dst, winF, testScreen)
	require.NoError(t, err)

	assert.True(t, a.IsFloating(id))
	assert.Equal(t, dst.Root, a.Parent(id))
	assert.Len(t, a.Leaves(dst.Root), 1)
	require.NoError(t, a.Validate(src))
	require.NoError(t, a.Validate(dst))
}

func TestMove_SameDesktopIsNoop(t *testing.T) {
	a := newTestArena(t)
	d := buildDesktop(t, a, winA, winB)
	before := rects(a, d)

	_, err := a.Move(d, d, winA, testScreen)
	require.NoError(t, err)
	assert.Equal(t, before, rects(a, d))
	assert.Equal(t, 2, d.Count)
}

func TestMove_UnknownWindow(t *testing.T) {
	a := newTestArena(t)
	src := buildDesktop(t, a, winA)
	dst := NewDesktop(1, "2", entity.LayoutDefault)

	_, err := a.Move(src, dst, winE, testScreen)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransfer_RequiresDetachedNode(t *testing.T) {
	a := newTestArena(t)
	src := buildDesktop(t, a, winA, winB)
	dst := NewDesktop(1, "2", entity.LayoutDefault)

	err := a.Transfer(a.FindNode(src.Root, winA), dst, testScreen)
	assert.ErrorIs(t, err, ErrNotDetached)
	assert.True(t, dst.Empty())
}

func TestUnlink_KeepsClient(t *testing.T) {
	a := newTestArena(t)
	d := buildDesktop(t, a, winA, winB, winC)
	id := a.FindNode(d.Root, winB)

	require.NoError(t, a.Unlink(d, id))
	require.NoError(t, a.Validate(d))

	assert.Equal(t, NoNode, a.Parent(id))
	assert.Equal(t, winB, a.Client(id).Window)
	assert.Equal(t, 2, d.Count)
	assert.False(t, a.ClientExists(d.Root, winB))
}

// Random map/unmap/move sequences must keep every invariant and the total count.
func TestTreeInvariants_RandomOperations(t *testing.T) {
	a := newTestArena(t)
	desktops := []*Desktop{
		NewDesktop(0, "1", entity.LayoutDefault),
		NewDesktop(1, "2", entity.LayoutDefault),
		NewDesktop(2, "3", entity.LayoutDefault),
	}
	rng := rand.New(rand.NewSource(42))
	managed := map[entity.WindowID]*Desktop{}
	next := entity.WindowID(1)

	for step := 0; step < 500; step++ {
		d := desktops[rng.Intn(len(desktops))]
		op := rng.Intn(10)
		switch {
		case len(managed) == 0 || (op < 4 && d.Count < 8):
			win := next
			next++
			state := entity.StateNormal
			if rng.Intn(6) == 0 {
				state = entity.StateFloating
			}
			id, err := a.NewNode(&entity.Client{Window: win, State: state})
			require.NoError(t, err)
			require.NoError(t, a.Insert(d, id, testScreen))
			managed[win] = d
		case op < 7 || d.Count >= 8:
			win, owner := pick(rng, managed)
			require.NoError(t, a.DeleteNode(owner, a.FindNode(owner.Root, win)), "step %d", step)
			delete(managed, win)
		default:
			win, owner := pick(rng, managed)
			_, err := a.Move(owner, d, win, testScreen)
			require.NoError(t, err, "step %d", step)
			managed[win] = d
		}
		total := 0
		for _, desk := range desktops {
			require.NoError(t, a.ApplyLayout(desk, entity.LayoutDefault, testScreen, entity.NoWindow))
			require.NoError(t, a.Validate(desk), "step %d desktop %d\n%s", step, desk.Index, a.Dump(desk.Root))
			total += desk.Count
		}
		require.Equal(t, len(managed), total, "step %d", step)
	}
}

func pick(rng *rand.Rand, managed map[entity.WindowID]*Desktop) (entity.WindowID, *Desktop) {
	wins := make([]entity.WindowID, 0, len(managed))
	for w := range managed {
		wins = append(wins, w)
	}
	slices.Sort(wins)
	w := wins[rng.Intn(len(wins))]
	return w, managed[w]
}

func TestMove_DropsFocusOfMovedClient(t *testing.T) {
	a := newTestArena(t)
	src := buildDesktop(t, a, winA, winB)
	dst := buildDesktop(t, a, winC)
	a.SetFocused(a.FindNode(src.Root, winA), true)
	a.SetFocused(a.FindNode(dst.Root, winC), true)

	id, err := a.Move(src, dst, winA, testScreen)
	require.NoError(t, err)

	var focused []entity.WindowID
	a.Walk(dst.Root, func(n NodeID) bool {
		if a.IsFocused(n) {
			focused = append(focused, a.Client(n).Window)
		}
		return true
	})
	assert.Equal(t, []entity.WindowID{winC}, focused)
	assert.False(t, a.IsFocused(id))
	assert.Greater(t, a.MapOrder(id), a.MapOrder(a.FindNode(dst.Root, winC)))
}

func TestMapOrder_FollowsClientThroughSplitsAndCollapse(t *testing.T) {
	a := newTestArena(t)
	d := buildDesktop(t, a, winA, winB, winC)

	orderA := a.MapOrder(a.FindNode(d.Root, winA))
	orderB := a.MapOrder(a.FindNode(d.Root, winB))
	orderC := a.MapOrder(a.FindNode(d.Root, winC))
	assert.Less(t, orderA, orderB)
	assert.Less(t, orderB, orderC)

	// C split A's leaf; removing C collapses A back into the parent slot.
	unmapWindow(t, a, d, winC)
	assert.Equal(t, orderA, a.MapOrder(a.FindNode(d.Root, winA)))
	assert.Equal(t, orderB, a.MapOrder(a.FindNode(d.Root, winB)))
	assert.Zero(t, a.MapOrder(NoNode))
}
