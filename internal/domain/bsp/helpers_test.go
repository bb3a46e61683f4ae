package bsp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/bsptile/internal/domain/entity"
)

var testScreen = entity.Screen{Width: 1920, Height: 1080}

func newTestArena(t *testing.T, mutate ...func(*Options)) *Arena {
	t.Helper()
	opts := DefaultOptions()
	for _, m := range mutate {
		m(&opts)
	}
	return NewArena(opts)
}

// mapWindow inserts a tiled client the way the window manager does on map:
// insert, then re-apply the desktop layout.
func mapWindow(t *testing.T, a *Arena, d *Desktop, win entity.WindowID) {
	t.Helper()
	id, err := a.NewNode(entity.NewClient(win))
	require.NoError(t, err)
	require.NoError(t, a.Insert(d, id, testScreen))
	require.NoError(t, a.ApplyLayout(d, d.Layout, testScreen, entity.NoWindow))
	require.NoError(t, a.Validate(d))
}

func mapFloating(t *testing.T, a *Arena, d *Desktop, win entity.WindowID) NodeID {
	t.Helper()
	id, err := a.NewNode(&entity.Client{Window: win, State: entity.StateFloating})
	require.NoError(t, err)
	require.NoError(t, a.InsertFloating(d, id))
	require.NoError(t, a.Validate(d))
	return id
}

func unmapWindow(t *testing.T, a *Arena, d *Desktop, win entity.WindowID) {
	t.Helper()
	id := a.FindNode(d.Root, win)
	require.NotEqual(t, NoNode, id, "window %d not found", win)
	require.NoError(t, a.DeleteNode(d, id))
	require.NoError(t, a.Validate(d))
}

func rectOf(a *Arena, d *Desktop, win entity.WindowID) entity.Rectangle {
	return a.Rect(a.FindNode(d.Root, win))
}

func rects(a *Arena, d *Desktop) map[entity.WindowID]entity.Rectangle {
	out := make(map[entity.WindowID]entity.Rectangle)
	a.Walk(d.Root, func(id NodeID) bool {
		if c := a.Client(id); c != nil {
			out[c.Window] = a.Rect(id)
		}
		return true
	})
	return out
}

// buildDesktop maps the windows in order on a fresh DEFAULT desktop.
func buildDesktop(t *testing.T, a *Arena, wins ...entity.WindowID) *Desktop {
	t.Helper()
	d := NewDesktop(0, "1", entity.LayoutDefault)
	for _, w := range wins {
		mapWindow(t, a, d, w)
	}
	return d
}
