package x11

import (
	"context"
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/bnema/bsptile/internal/application/port"
	"github.com/bnema/bsptile/internal/domain/entity"
)

// Placer moves, stacks, maps and unmaps client windows.
type Placer struct {
	conn *Conn
}

var _ port.Placer = (*Placer)(nil)

// NewPlacer creates a Placer on conn.
func NewPlacer(conn *Conn) *Placer {
	return &Placer{conn: conn}
}

// Tile sets the window geometry to rect.
func (p *Placer) Tile(ctx context.Context, win entity.WindowID, rect entity.Rectangle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mask, values := geometryValues(rect)
	if err := xproto.ConfigureWindowChecked(p.conn.X.Conn(), xproto.Window(win), mask, values).Check(); err != nil {
		return fmt.Errorf("configure window %s: %w", win, err)
	}
	return nil
}

// Raise puts the window on top of its siblings.
func (p *Placer) Raise(ctx context.Context, win entity.WindowID) error {
	return p.restack(ctx, win, xproto.StackModeAbove)
}

// Lower puts the window below its siblings.
func (p *Placer) Lower(ctx context.Context, win entity.WindowID) error {
	return p.restack(ctx, win, xproto.StackModeBelow)
}

func (p *Placer) restack(ctx context.Context, win entity.WindowID, mode uint32) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := xproto.ConfigureWindowChecked(
		p.conn.X.Conn(),
		xproto.Window(win),
		xproto.ConfigWindowStackMode,
		[]uint32{mode},
	).Check()
	if err != nil {
		return fmt.Errorf("restack window %s: %w", win, err)
	}
	return nil
}

// Hide unmaps the window.
func (p *Placer) Hide(ctx context.Context, win entity.WindowID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := xproto.UnmapWindowChecked(p.conn.X.Conn(), xproto.Window(win)).Check(); err != nil {
		return fmt.Errorf("unmap window %s: %w", win, err)
	}
	return nil
}

// Show maps the window.
func (p *Placer) Show(ctx context.Context, win entity.WindowID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := xproto.MapWindowChecked(p.conn.X.Conn(), xproto.Window(win)).Check(); err != nil {
		return fmt.Errorf("map window %s: %w", win, err)
	}
	return nil
}

// geometryValues builds a ConfigureWindow request for rect. Positions are
// sign-extended as the protocol expects INT16 in a CARD32 slot.
func geometryValues(rect entity.Rectangle) (uint16, []uint32) {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	return mask, []uint32{
		uint32(int32(rect.X)),
		uint32(int32(rect.Y)),
		uint32(max(rect.Width, 1)),
		uint32(max(rect.Height, 1)),
	}
}
