package snapshot

import (
	"sync"

	"github.com/bnema/bsptile/internal/application/port"
	"github.com/bnema/bsptile/internal/application/usecase"
	"github.com/bnema/bsptile/internal/domain/bsp"
	"github.com/bnema/bsptile/internal/domain/entity"
)

// Tracker holds the last layout captured on the engine goroutine so the
// autosave timer never reads a tree that is being changed.
type Tracker struct {
	mu     sync.Mutex
	latest *entity.LayoutSnapshot
}

var _ port.LayoutProvider = (*Tracker)(nil)

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Capture snapshots every desktop of set. A set managing no clients clears
// the tracked layout.
func (t *Tracker) Capture(set *bsp.DesktopSet, screen entity.Screen) {
	var snap *entity.LayoutSnapshot
	if set.Total() > 0 {
		snap = usecase.CaptureLayout(set, screen, "")
	}
	t.mu.Lock()
	t.latest = snap
	t.mu.Unlock()
}

// CurrentLayout implements port.LayoutProvider.
func (t *Tracker) CurrentLayout() *entity.LayoutSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest
}
