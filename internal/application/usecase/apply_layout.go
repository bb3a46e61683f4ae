package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/bsptile/internal/application/port"
	"github.com/bnema/bsptile/internal/domain/bsp"
	"github.com/bnema/bsptile/internal/domain/entity"
	"github.com/bnema/bsptile/internal/logging"
)

// ApplyLayoutUseCase switches the layout mode of a desktop.
type ApplyLayoutUseCase struct {
	set     *bsp.DesktopSet
	display port.Display
	render  *RenderDesktopUseCase
}

// NewApplyLayoutUseCase creates a new ApplyLayoutUseCase.
func NewApplyLayoutUseCase(set *bsp.DesktopSet, display port.Display, render *RenderDesktopUseCase) *ApplyLayoutUseCase {
	return &ApplyLayoutUseCase{set: set, display: display, render: render}
}

// ApplyLayoutInput contains parameters for a layout switch.
type ApplyLayoutInput struct {
	Desktop int // FocusedDesktop for the visible one
	Mode    entity.LayoutMode
	// Master picks the master client for LayoutMaster. NoWindow uses the
	// focused client, then the leftmost one.
	Master entity.WindowID
}

// Execute recomputes every rectangle of the desktop for the requested mode
// and renders it when it is visible.
func (uc *ApplyLayoutUseCase) Execute(ctx context.Context, input ApplyLayoutInput) error {
	log := logging.FromContext(ctx)

	d, err := resolveDesktop(uc.set, input.Desktop)
	if err != nil {
		return err
	}
	screen, err := uc.display.Screen(ctx)
	if err != nil {
		return fmt.Errorf("query screen: %w", err)
	}

	a := uc.set.Arena
	master := input.Master
	if master == entity.NoWindow {
		master = focusedWindow(a, d)
	}
	if err := a.ApplyLayout(d, input.Mode, screen, master); err != nil {
		return fmt.Errorf("apply layout on desktop %d: %w", d.Index, err)
	}

	log.Info().Int("desktop", d.Index).Str("layout", input.Mode.String()).Int("count", d.Count).Msg("layout applied")

	if d.Empty() || d != uc.set.Focused() {
		return nil
	}
	return uc.render.Render(ctx, a, d)
}
