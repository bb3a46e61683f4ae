package port

import (
	"context"

	"github.com/bnema/bsptile/internal/domain/entity"
)

// Display answers questions about the screen and its windows.
type Display interface {
	// Screen returns the screen size and the height of any dock bar.
	Screen(ctx context.Context) (entity.Screen, error)

	// WindowUnderPointer returns the window below the pointer,
	// or entity.NoWindow when the pointer is over the root window.
	WindowUnderPointer(ctx context.Context) (entity.WindowID, error)

	// ManagedWindows returns the top-level client windows in mapping order.
	ManagedWindows(ctx context.Context) ([]entity.WindowID, error)
}
