package port

import (
	"context"

	"github.com/bnema/bsptile/internal/domain/entity"
)

// Placer applies placement decisions to real windows.
// Implemented by the display server adapter.
type Placer interface {
	// Tile moves and resizes a window to the given rectangle.
	Tile(ctx context.Context, win entity.WindowID, rect entity.Rectangle) error

	// Raise puts a window on top of its siblings.
	Raise(ctx context.Context, win entity.WindowID) error

	// Lower puts a window below its siblings.
	Lower(ctx context.Context, win entity.WindowID) error

	// Hide unmaps a window without forgetting it.
	Hide(ctx context.Context, win entity.WindowID) error

	// Show maps a previously hidden window.
	Show(ctx context.Context, win entity.WindowID) error
}
