package port

import "github.com/bnema/bsptile/internal/domain/entity"

// LayoutProvider provides the current desktop trees for autosave.
type LayoutProvider interface {
	// CurrentLayout captures every desktop. Returns nil when nothing is managed.
	CurrentLayout() *entity.LayoutSnapshot
}
