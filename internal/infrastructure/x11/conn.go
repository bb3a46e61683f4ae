// Package x11 places windows and reads screen state over an X11 connection.
package x11

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgbutil"

	"github.com/bnema/bsptile/internal/logging"
)

// Conn wraps an xgbutil connection shared by the Placer and Display adapters.
type Conn struct {
	X *xgbutil.XUtil
}

// Connect opens a connection to display. An empty display uses $DISPLAY.
func Connect(ctx context.Context, display string) (*Conn, error) {
	x, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("connect to X display %q: %w", display, err)
	}
	logging.FromContext(ctx).Debug().
		Str("display", display).
		Uint32("root", uint32(x.RootWin())).
		Msg("connected to X server")
	return &Conn{X: x}, nil
}

// Close closes the X connection.
func (c *Conn) Close() {
	if c == nil || c.X == nil {
		return
	}
	c.X.Conn().Close()
}
