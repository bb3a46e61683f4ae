package x11

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/bsptile/internal/application/port"
	"github.com/bnema/bsptile/internal/domain/entity"
	"github.com/bnema/bsptile/internal/logging"
)

const (
	windowTypeDock = "_NET_WM_WINDOW_TYPE_DOCK"

	// Concurrent property requests while scanning the window tree.
	queryLimit = 8
)

var floatingTypes = []string{
	"_NET_WM_WINDOW_TYPE_DIALOG",
	"_NET_WM_WINDOW_TYPE_UTILITY",
	"_NET_WM_WINDOW_TYPE_SPLASH",
	"_NET_WM_WINDOW_TYPE_TOOLBAR",
	"_NET_WM_WINDOW_TYPE_MENU",
}

// Display reads the screen size, dock bars and the EWMH client list.
type Display struct {
	conn *Conn
}

var _ port.Display = (*Display)(nil)

// NewDisplay creates a Display on conn.
func NewDisplay(conn *Conn) *Display {
	return &Display{conn: conn}
}

// Screen returns the root screen size and the height of a top dock bar.
func (d *Display) Screen(ctx context.Context) (entity.Screen, error) {
	if err := ctx.Err(); err != nil {
		return entity.Screen{}, err
	}
	info := d.conn.X.Screen()
	screen := entity.Screen{Width: info.WidthInPixels, Height: info.HeightInPixels}

	docks, err := d.dockGeometries(ctx)
	if err != nil {
		// A missing bar only costs screen space.
		logging.FromContext(ctx).Warn().Err(err).Msg("dock detection failed, assuming no bar")
		return screen, nil
	}
	screen.BarHeight = barHeight(docks, screen.Height)
	return screen, nil
}

// dockGeometries lists the geometry of every top-level dock window.
func (d *Display) dockGeometries(ctx context.Context) ([]entity.Rectangle, error) {
	X := d.conn.X
	tree, err := xproto.QueryTree(X.Conn(), X.RootWin()).Reply()
	if err != nil {
		return nil, fmt.Errorf("query root window tree: %w", err)
	}

	var (
		mu    sync.Mutex
		docks []entity.Rectangle
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(queryLimit)
	for _, child := range tree.Children {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			types, err := ewmh.WmWindowTypeGet(X, child)
			if err != nil || !slices.Contains(types, windowTypeDock) {
				return nil
			}
			geom, err := xwindow.New(X, child).Geometry()
			if err != nil {
				return nil
			}
			mu.Lock()
			docks = append(docks, entity.Rectangle{
				X:      int16(geom.X()),
				Y:      int16(geom.Y()),
				Width:  uint16(geom.Width()),
				Height: uint16(geom.Height()),
			})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docks, nil
}

// barHeight returns the tallest dock anchored at the top edge. Docks taller
// than half the screen are side panels, not bars.
func barHeight(docks []entity.Rectangle, screenHeight uint16) uint16 {
	var h uint16
	for _, dock := range docks {
		if dock.Y != 0 || dock.Height > screenHeight/2 {
			continue
		}
		h = max(h, dock.Height)
	}
	return h
}

// WindowUnderPointer descends from the root along the pointer until it meets
// a managed client. Returns entity.NoWindow when the pointer is over none.
func (d *Display) WindowUnderPointer(ctx context.Context) (entity.WindowID, error) {
	if err := ctx.Err(); err != nil {
		return entity.NoWindow, err
	}
	X := d.conn.X
	clients, err := ewmh.ClientListGet(X)
	if err != nil {
		return entity.NoWindow, fmt.Errorf("read client list: %w", err)
	}
	managed := make(map[xproto.Window]bool, len(clients))
	for _, w := range clients {
		managed[w] = true
	}

	cur := X.RootWin()
	for cur != 0 {
		if managed[cur] {
			return entity.WindowID(cur), nil
		}
		reply, err := xproto.QueryPointer(X.Conn(), cur).Reply()
		if err != nil {
			return entity.NoWindow, fmt.Errorf("query pointer: %w", err)
		}
		cur = reply.Child
	}
	return entity.NoWindow, nil
}

// ManagedWindows returns _NET_CLIENT_LIST in mapping order.
func (d *Display) ManagedWindows(ctx context.Context) ([]entity.WindowID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clients, err := ewmh.ClientListGet(d.conn.X)
	if err != nil {
		return nil, fmt.Errorf("read client list: %w", err)
	}
	wins := make([]entity.WindowID, 0, len(clients))
	for _, w := range clients {
		wins = append(wins, entity.WindowID(w))
	}
	return wins, nil
}

// WindowStates classifies each window as floating or tiled from its EWMH
// type and WM_TRANSIENT_FOR hint.
func (d *Display) WindowStates(ctx context.Context, wins []entity.WindowID) (map[entity.WindowID]entity.ClientState, error) {
	X := d.conn.X
	states := make(map[entity.WindowID]entity.ClientState, len(wins))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(queryLimit)
	for _, win := range wins {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			types, _ := ewmh.WmWindowTypeGet(X, xproto.Window(win))
			transient, err := icccm.WmTransientForGet(X, xproto.Window(win))
			state := classify(types, err == nil && transient != 0)
			mu.Lock()
			states[win] = state
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return states, nil
}

func classify(types []string, transient bool) entity.ClientState {
	if transient {
		return entity.StateFloating
	}
	for _, t := range types {
		if slices.Contains(floatingTypes, t) {
			return entity.StateFloating
		}
	}
	return entity.StateNormal
}
