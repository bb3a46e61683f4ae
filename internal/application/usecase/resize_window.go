package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/bsptile/internal/application/port"
	"github.com/bnema/bsptile/internal/domain/bsp"
	"github.com/bnema/bsptile/internal/domain/entity"
	"github.com/bnema/bsptile/internal/logging"
)

// ErrLayoutNotResizable is returned when the focused desktop is not tiled
// with the default layout.
var ErrLayoutNotResizable = errors.New("layout does not support resizing")

// ResizeWindowUseCase grows or shrinks a tiled client by one step.
type ResizeWindowUseCase struct {
	set     *bsp.DesktopSet
	display port.Display
	render  *RenderDesktopUseCase
}

// NewResizeWindowUseCase creates a new ResizeWindowUseCase.
func NewResizeWindowUseCase(set *bsp.DesktopSet, display port.Display, render *RenderDesktopUseCase) *ResizeWindowUseCase {
	return &ResizeWindowUseCase{set: set, display: display, render: render}
}

// ResizeWindowInput contains parameters for a resize step.
type ResizeWindowInput struct {
	Kind entity.ResizeKind
	// Window overrides the target. NoWindow targets the focused client,
	// falling back to the window under the pointer.
	Window entity.WindowID
}

// ResizeWindowOutput reports the resized client.
type ResizeWindowOutput struct {
	Window entity.WindowID
	Rect   entity.Rectangle
}

// Execute moves the top-level boundary of the focused desktop one step
// in favor of (grow) or against (shrink) the target client.
func (uc *ResizeWindowUseCase) Execute(ctx context.Context, input ResizeWindowInput) (*ResizeWindowOutput, error) {
	log := logging.FromContext(ctx)

	d := uc.set.Focused()
	if d.Empty() {
		return nil, bsp.ErrEmptyDesktop
	}
	if d.Layout != entity.LayoutDefault {
		return nil, fmt.Errorf("resize on %s desktop: %w", d.Layout, ErrLayoutNotResizable)
	}

	a := uc.set.Arena
	win := input.Window
	if win == entity.NoWindow {
		win = focusedWindow(a, d)
	}
	if win == entity.NoWindow {
		pointed, err := uc.display.WindowUnderPointer(ctx)
		if err != nil {
			return nil, fmt.Errorf("query pointer: %w", err)
		}
		win = pointed
	}
	id := a.FindNode(d.Root, win)
	if id == bsp.NoNode {
		return nil, fmt.Errorf("resize %s: %w", win, bsp.ErrNotFound)
	}

	if err := a.HorizontalResize(id, input.Kind); err != nil {
		return nil, fmt.Errorf("resize %s: %w", win, err)
	}
	log.Debug().
		Str("window", win.String()).
		Str("kind", input.Kind.String()).
		Str("rect", a.Rect(id).String()).
		Msg("window resized")

	if err := uc.render.Render(ctx, a, d); err != nil {
		return nil, err
	}
	return &ResizeWindowOutput{Window: win, Rect: a.Rect(id)}, nil
}
