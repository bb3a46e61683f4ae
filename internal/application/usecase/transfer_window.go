package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/bsptile/internal/application/port"
	"github.com/bnema/bsptile/internal/domain/bsp"
	"github.com/bnema/bsptile/internal/domain/entity"
	"github.com/bnema/bsptile/internal/logging"
)

// TransferWindowUseCase moves a client to another desktop.
type TransferWindowUseCase struct {
	set     *bsp.DesktopSet
	display port.Display
	placer  port.Placer
	render  *RenderDesktopUseCase
}

// NewTransferWindowUseCase creates a new TransferWindowUseCase.
func NewTransferWindowUseCase(
	set *bsp.DesktopSet,
	display port.Display,
	placer port.Placer,
	render *RenderDesktopUseCase,
) *TransferWindowUseCase {
	return &TransferWindowUseCase{
		set:     set,
		display: display,
		placer:  placer,
		render:  render,
	}
}

// TransferWindowInput contains parameters for a transfer.
type TransferWindowInput struct {
	Window  entity.WindowID
	Desktop int
}

// TransferWindowOutput reports the source and destination desktops.
type TransferWindowOutput struct {
	From  int
	To    int
	Moved bool
}

// Execute hides the window if it leaves the visible desktop, moves it
// between trees, and re-lays out both desktops.
func (uc *TransferWindowUseCase) Execute(ctx context.Context, input TransferWindowInput) (*TransferWindowOutput, error) {
	log := logging.FromContext(ctx)

	src, _ := uc.set.Locate(input.Window)
	if src == nil {
		return nil, fmt.Errorf("transfer %s: %w", input.Window, bsp.ErrNotFound)
	}
	dst, err := resolveDesktop(uc.set, input.Desktop)
	if err != nil {
		return nil, fmt.Errorf("transfer %s: %w", input.Window, err)
	}
	out := &TransferWindowOutput{From: src.Index, To: dst.Index}
	if src == dst {
		return out, nil
	}

	screen, err := uc.display.Screen(ctx)
	if err != nil {
		return nil, fmt.Errorf("query screen: %w", err)
	}
	focused := uc.set.Focused()
	if dst != focused {
		if err := uc.placer.Hide(ctx, input.Window); err != nil {
			return nil, fmt.Errorf("hide %s: %w", input.Window, err)
		}
	}

	a := uc.set.Arena
	if _, err := a.Move(src, dst, input.Window, screen); err != nil {
		return nil, fmt.Errorf("transfer %s to desktop %d: %w", input.Window, dst.Index, err)
	}
	out.Moved = true
	log.Info().
		Str("window", input.Window.String()).
		Int("from", src.Index).
		Int("to", dst.Index).
		Msg("window transferred")

	for _, d := range []*bsp.Desktop{src, dst} {
		if d.Empty() {
			continue
		}
		if err := relayout(ctx, a, d, screen); err != nil {
			return nil, err
		}
	}

	if dst == focused {
		if err := uc.placer.Show(ctx, input.Window); err != nil {
			return nil, fmt.Errorf("show %s: %w", input.Window, err)
		}
		if err := uc.render.Render(ctx, a, dst); err != nil {
			return nil, err
		}
	}
	if src == focused && !src.Empty() {
		if err := uc.render.Render(ctx, a, src); err != nil {
			return nil, err
		}
	}
	return out, nil
}
