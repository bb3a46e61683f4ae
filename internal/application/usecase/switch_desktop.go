package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/bsptile/internal/application/port"
	"github.com/bnema/bsptile/internal/domain/bsp"
	"github.com/bnema/bsptile/internal/logging"
)

// SwitchDesktopUseCase changes the visible desktop.
type SwitchDesktopUseCase struct {
	set     *bsp.DesktopSet
	display port.Display
	render  *RenderDesktopUseCase
}

// NewSwitchDesktopUseCase creates a new SwitchDesktopUseCase.
func NewSwitchDesktopUseCase(set *bsp.DesktopSet, display port.Display, render *RenderDesktopUseCase) *SwitchDesktopUseCase {
	return &SwitchDesktopUseCase{set: set, display: display, render: render}
}

// Execute hides the clients of the current desktop, then lays out, shows
// and renders the target one. Switching to the current desktop is a no-op.
func (uc *SwitchDesktopUseCase) Execute(ctx context.Context, index int) error {
	log := logging.FromContext(ctx)

	next, err := uc.set.Desktop(index)
	if err != nil {
		return err
	}
	prev := uc.set.Focused()
	if next == prev {
		return nil
	}

	a := uc.set.Arena
	if prev != nil {
		if err := uc.render.Hide(ctx, a, prev); err != nil {
			return err
		}
	}
	uc.set.Current = index
	log.Info().Int("desktop", index).Str("name", next.Name).Msg("desktop switched")

	if next.Empty() {
		return nil
	}
	screen, err := uc.display.Screen(ctx)
	if err != nil {
		return fmt.Errorf("query screen: %w", err)
	}
	if err := relayout(ctx, a, next, screen); err != nil {
		return err
	}
	if err := uc.render.Show(ctx, a, next); err != nil {
		return err
	}
	return uc.render.Render(ctx, a, next)
}
