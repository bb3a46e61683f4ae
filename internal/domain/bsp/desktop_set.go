package bsp

import (
	"fmt"
	"strconv"

	"github.com/bnema/bsptile/internal/domain/entity"
)

// DesktopSet is the fixed list of desktops sharing one arena.
// Current is the index of the desktop shown on screen.
type DesktopSet struct {
	Arena    *Arena
	Desktops []*Desktop
	Current  int
}

// NewDesktopSet creates one empty desktop per name. Empty names are
// replaced by the 1-based desktop number.
func NewDesktopSet(a *Arena, names []string, mode entity.LayoutMode) *DesktopSet {
	s := &DesktopSet{Arena: a, Desktops: make([]*Desktop, len(names))}
	for i, name := range names {
		if name == "" {
			name = strconv.Itoa(i + 1)
		}
		s.Desktops[i] = NewDesktop(i, name, mode)
	}
	return s
}

// Focused returns the current desktop.
func (s *DesktopSet) Focused() *Desktop {
	if s.Current < 0 || s.Current >= len(s.Desktops) {
		return nil
	}
	return s.Desktops[s.Current]
}

// Desktop returns the desktop at index i.
func (s *DesktopSet) Desktop(i int) (*Desktop, error) {
	if i < 0 || i >= len(s.Desktops) {
		return nil, fmt.Errorf("desktop %d of %d: %w", i, len(s.Desktops), ErrNoDesktop)
	}
	return s.Desktops[i], nil
}

// Locate finds the desktop managing win and the node holding it.
// It returns (nil, NoNode) when no desktop manages win.
func (s *DesktopSet) Locate(win entity.WindowID) (*Desktop, NodeID) {
	for _, d := range s.Desktops {
		if id := s.Arena.FindNode(d.Root, win); id != NoNode {
			return d, id
		}
	}
	return nil, NoNode
}

// Replace swaps the desktop at d.Index for d, releasing the previous tree.
func (s *DesktopSet) Replace(d *Desktop) error {
	old, err := s.Desktop(d.Index)
	if err != nil {
		return err
	}
	if old != d {
		s.Arena.Destroy(old)
	}
	s.Desktops[d.Index] = d
	return nil
}

// Total returns the number of clients managed across all desktops.
func (s *DesktopSet) Total() int {
	total := 0
	for _, d := range s.Desktops {
		total += d.Count
	}
	return total
}
