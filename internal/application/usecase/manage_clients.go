package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/bsptile/internal/application/port"
	"github.com/bnema/bsptile/internal/domain/bsp"
	"github.com/bnema/bsptile/internal/domain/entity"
	"github.com/bnema/bsptile/internal/logging"
)

// FocusedDesktop selects the desktop currently shown on screen.
const FocusedDesktop = -1

// ManageWindowsUseCase handles mapping, unmapping and focusing client windows.
type ManageWindowsUseCase struct {
	set     *bsp.DesktopSet
	display port.Display
	render  *RenderDesktopUseCase
}

// NewManageWindowsUseCase creates a new ManageWindowsUseCase.
func NewManageWindowsUseCase(
	set *bsp.DesktopSet,
	display port.Display,
	render *RenderDesktopUseCase,
) *ManageWindowsUseCase {
	return &ManageWindowsUseCase{
		set:     set,
		display: display,
		render:  render,
	}
}

// MapWindowInput contains parameters for managing a new window.
type MapWindowInput struct {
	Window entity.WindowID
	State  entity.ClientState
}

// MapWindowOutput describes where the window was placed.
type MapWindowOutput struct {
	Node           bsp.NodeID
	Desktop        int
	AlreadyManaged bool
}

// Map inserts the window into the focused desktop, re-applies the desktop
// layout and renders it.
func (uc *ManageWindowsUseCase) Map(ctx context.Context, input MapWindowInput) (*MapWindowOutput, error) {
	log := logging.FromContext(ctx)

	if input.Window == entity.NoWindow {
		return nil, fmt.Errorf("window id required")
	}
	if d, id := uc.set.Locate(input.Window); d != nil {
		return &MapWindowOutput{Node: id, Desktop: d.Index, AlreadyManaged: true}, nil
	}

	d := uc.set.Focused()
	if d == nil {
		return nil, fmt.Errorf("map %s: %w", input.Window, bsp.ErrNoDesktop)
	}
	screen, err := uc.display.Screen(ctx)
	if err != nil {
		return nil, fmt.Errorf("query screen: %w", err)
	}

	a := uc.set.Arena
	id, err := a.NewNode(&entity.Client{Window: input.Window, State: input.State})
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", input.Window, err)
	}
	if err := a.Insert(d, id, screen); err != nil {
		a.FreeTree(id)
		return nil, fmt.Errorf("map %s: %w", input.Window, err)
	}

	log.Debug().
		Str("window", input.Window.String()).
		Str("state", input.State.String()).
		Int("desktop", d.Index).
		Int("count", d.Count).
		Msg("window mapped")

	if err := relayout(ctx, a, d, screen); err != nil {
		return nil, err
	}
	if err := uc.render.Render(ctx, a, d); err != nil {
		return nil, err
	}
	return &MapWindowOutput{Node: id, Desktop: d.Index}, nil
}

// UnmapWindowOutput reports whether the window was managed.
type UnmapWindowOutput struct {
	Found   bool
	Desktop int
}

// Unmap removes the window from whichever desktop manages it.
// An unknown window is not an error.
func (uc *ManageWindowsUseCase) Unmap(ctx context.Context, win entity.WindowID) (*UnmapWindowOutput, error) {
	log := logging.FromContext(ctx)

	d, id := uc.set.Locate(win)
	if d == nil {
		log.Debug().Str("window", win.String()).Msg("unmap of unmanaged window ignored")
		return &UnmapWindowOutput{}, nil
	}

	a := uc.set.Arena
	if err := a.DeleteNode(d, id); err != nil {
		return nil, fmt.Errorf("unmap %s: %w", win, err)
	}
	log.Debug().Str("window", win.String()).Int("desktop", d.Index).Int("count", d.Count).Msg("window unmapped")

	out := &UnmapWindowOutput{Found: true, Desktop: d.Index}
	if d.Empty() {
		return out, nil
	}
	screen, err := uc.display.Screen(ctx)
	if err != nil {
		return nil, fmt.Errorf("query screen: %w", err)
	}
	if err := relayout(ctx, a, d, screen); err != nil {
		return nil, err
	}
	if d == uc.set.Focused() {
		if err := uc.render.Render(ctx, a, d); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// IsManaged reports whether any desktop manages win.
func (uc *ManageWindowsUseCase) IsManaged(win entity.WindowID) bool {
	d, _ := uc.set.Locate(win)
	return d != nil
}

// ClientList returns the clients of a desktop in tree order.
func (uc *ManageWindowsUseCase) ClientList(desktop int) ([]entity.Client, error) {
	d, err := resolveDesktop(uc.set, desktop)
	if err != nil {
		return nil, err
	}
	return uc.set.Arena.Stack(d), nil
}

// Focus marks win as the focused client of its desktop.
func (uc *ManageWindowsUseCase) Focus(ctx context.Context, win entity.WindowID) error {
	d, id := uc.set.Locate(win)
	if d == nil {
		return fmt.Errorf("focus %s: %w", win, bsp.ErrNotFound)
	}
	a := uc.set.Arena
	a.Walk(d.Root, func(n bsp.NodeID) bool {
		a.SetFocused(n, false)
		return true
	})
	a.SetFocused(id, true)
	logging.FromContext(ctx).Debug().Str("window", win.String()).Int("desktop", d.Index).Msg("focus changed")
	return nil
}

// ToggleFloating moves win between the tiled tree and the floating layer.
func (uc *ManageWindowsUseCase) ToggleFloating(ctx context.Context, win entity.WindowID) error {
	d, id := uc.set.Locate(win)
	if d == nil {
		return fmt.Errorf("toggle floating %s: %w", win, bsp.ErrNotFound)
	}
	screen, err := uc.display.Screen(ctx)
	if err != nil {
		return fmt.Errorf("query screen: %w", err)
	}

	a := uc.set.Arena
	floating := a.Client(id).State != entity.StateFloating
	if err := a.SetFloating(d, id, floating, screen); err != nil {
		return fmt.Errorf("toggle floating %s: %w", win, err)
	}
	if err := relayout(ctx, a, d, screen); err != nil {
		return err
	}
	if d != uc.set.Focused() {
		return nil
	}
	return uc.render.Render(ctx, a, d)
}

// relayout re-applies the desktop's current layout, using the focused
// client as master.
func relayout(ctx context.Context, a *bsp.Arena, d *bsp.Desktop, screen entity.Screen) error {
	if err := a.ApplyLayout(d, d.Layout, screen, focusedWindow(a, d)); err != nil {
		return fmt.Errorf("apply %s layout on desktop %d: %w", d.Layout, d.Index, err)
	}
	if e := logging.FromContext(ctx).Trace(); e.Enabled() {
		e.Int("desktop", d.Index).Msg("tree\n" + a.Dump(d.Root))
	}
	return nil
}

// focusedWindow returns the focused client of d, or entity.NoWindow.
func focusedWindow(a *bsp.Arena, d *bsp.Desktop) entity.WindowID {
	win := entity.NoWindow
	a.Walk(d.Root, func(id bsp.NodeID) bool {
		if a.IsFocused(id) {
			if c := a.Client(id); c != nil {
				win = c.Window
				return false
			}
		}
		return true
	})
	return win
}

func resolveDesktop(set *bsp.DesktopSet, index int) (*bsp.Desktop, error) {
	if index == FocusedDesktop {
		if d := set.Focused(); d != nil {
			return d, nil
		}
		return nil, bsp.ErrNoDesktop
	}
	return set.Desktop(index)
}

