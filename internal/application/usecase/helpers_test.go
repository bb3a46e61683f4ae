package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/bsptile/internal/domain/bsp"
	"github.com/bnema/bsptile/internal/domain/entity"
	"github.com/bnema/bsptile/internal/logging"
)

const (
	winA entity.WindowID = 0xa00001
	winB entity.WindowID = 0xa00002
	winC entity.WindowID = 0xa00003
	winF entity.WindowID = 0xa0000f
)

var testScreen = entity.Screen{Width: 1920, Height: 1080}

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestSet(desktops int) *bsp.DesktopSet {
	names := make([]string, desktops)
	return bsp.NewDesktopSet(bsp.NewArena(bsp.DefaultOptions()), names, entity.LayoutDefault)
}

// seed maps windows straight into the arena, bypassing the placer.
func seed(t *testing.T, set *bsp.DesktopSet, desktop int, wins ...entity.WindowID) *bsp.Desktop {
	t.Helper()
	d, err := set.Desktop(desktop)
	require.NoError(t, err)
	for _, w := range wins {
		id, err := set.Arena.NewNode(entity.NewClient(w))
		require.NoError(t, err)
		require.NoError(t, set.Arena.Insert(d, id, testScreen))
	}
	require.NoError(t, set.Arena.ApplyLayout(d, d.Layout, testScreen, entity.NoWindow))
	return d
}

func seedFloating(t *testing.T, set *bsp.DesktopSet, desktop int, win entity.WindowID) {
	t.Helper()
	d, err := set.Desktop(desktop)
	require.NoError(t, err)
	id, err := set.Arena.NewNode(&entity.Client{Window: win, State: entity.StateFloating})
	require.NoError(t, err)
	require.NoError(t, set.Arena.InsertFloating(d, id))
}

var (
	leftHalf  = entity.Rectangle{X: 10, Y: 10, Width: 945, Height: 1060}
	rightHalf = entity.Rectangle{X: 965, Y: 10, Width: 945, Height: 1060}
	fullArea  = entity.Rectangle{X: 10, Y: 10, Width: 1900, Height: 1060}
)
