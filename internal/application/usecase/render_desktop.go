package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/bnema/bsptile/internal/application/port"
	"github.com/bnema/bsptile/internal/domain/bsp"
	"github.com/bnema/bsptile/internal/domain/entity"
	"github.com/bnema/bsptile/internal/logging"
)

// RenderDesktopUseCase pushes the geometry computed for a desktop to the placer.
type RenderDesktopUseCase struct {
	placer port.Placer
}

// NewRenderDesktopUseCase creates a new RenderDesktopUseCase.
func NewRenderDesktopUseCase(placer port.Placer) *RenderDesktopUseCase {
	return &RenderDesktopUseCase{placer: placer}
}

// Render walks the tree in pre-order. Tiled clients are moved to their
// rectangle and lowered; floating and fullscreen clients are raised.
// On a STACK desktop every tiled client shares one rectangle, so they are
// raised in map order instead, leaving the last-mapped one on top, and the
// floating clients are raised after them.
// The first failing placer call stops the walk.
func (uc *RenderDesktopUseCase) Render(ctx context.Context, a *bsp.Arena, d *bsp.Desktop) error {
	log := logging.FromContext(ctx)
	stacked := d.Layout == entity.LayoutStack

	var (
		err      error
		tiled    []bsp.NodeID
		above    []entity.WindowID
		rendered int
	)
	a.Walk(d.Root, func(id bsp.NodeID) bool {
		c := a.Client(id)
		if c == nil {
			return true
		}
		switch {
		case a.IsFloating(id) || !c.Tiled():
			if stacked {
				above = append(above, c.Window)
				rendered++
				return true
			}
			if raiseErr := uc.placer.Raise(ctx, c.Window); raiseErr != nil {
				err = fmt.Errorf("raise %s: %w", c.Window, raiseErr)
			}
		default:
			rect := a.Rect(id)
			if tileErr := uc.placer.Tile(ctx, c.Window, rect); tileErr != nil {
				err = fmt.Errorf("tile %s to %s: %w", c.Window, rect, tileErr)
			} else if stacked {
				tiled = append(tiled, id)
			} else if lowerErr := uc.placer.Lower(ctx, c.Window); lowerErr != nil {
				err = fmt.Errorf("lower %s: %w", c.Window, lowerErr)
			}
		}
		if err != nil {
			return false
		}
		rendered++
		return true
	})

	if err == nil && stacked {
		slices.SortFunc(tiled, func(x, y bsp.NodeID) int {
			return cmp.Compare(a.MapOrder(x), a.MapOrder(y))
		})
		order := make([]entity.WindowID, 0, len(tiled)+len(above))
		for _, id := range tiled {
			order = append(order, a.Client(id).Window)
		}
		for _, w := range append(order, above...) {
			if raiseErr := uc.placer.Raise(ctx, w); raiseErr != nil {
				err = fmt.Errorf("raise %s: %w", w, raiseErr)
				break
			}
		}
	}
	if err != nil {
		log.Error().Err(err).Int("desktop", d.Index).Msg("render aborted")
		return fmt.Errorf("render desktop %d: %w", d.Index, err)
	}

	log.Debug().Int("desktop", d.Index).Int("clients", rendered).Msg("desktop rendered")
	return nil
}

// Hide unmaps every client of the desktop.
func (uc *RenderDesktopUseCase) Hide(ctx context.Context, a *bsp.Arena, d *bsp.Desktop) error {
	return uc.each(ctx, a, d, "hide", uc.placer.Hide)
}

// Show maps every client of the desktop.
func (uc *RenderDesktopUseCase) Show(ctx context.Context, a *bsp.Arena, d *bsp.Desktop) error {
	return uc.each(ctx, a, d, "show", uc.placer.Show)
}

func (uc *RenderDesktopUseCase) each(
	ctx context.Context,
	a *bsp.Arena,
	d *bsp.Desktop,
	op string,
	fn func(context.Context, entity.WindowID) error,
) error {
	for _, c := range a.Stack(d) {
		if err := fn(ctx, c.Window); err != nil {
			return fmt.Errorf("%s %s on desktop %d: %w", op, c.Window, d.Index, err)
		}
	}
	return nil
}
