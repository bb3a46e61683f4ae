package bsp

import (
	"fmt"
	"math"

	"github.com/bnema/bsptile/internal/domain/entity"
)

// ApplyLayout records mode on the desktop and recomputes every tiled
// rectangle for it. master names the window that receives the master share
// in LayoutMaster; when it is not a tiled window of the desktop the leftmost
// leaf is used instead. Floating nodes keep their rectangles.
func (a *Arena) ApplyLayout(d *Desktop, mode entity.LayoutMode, screen entity.Screen, master entity.WindowID) error {
	if mode > entity.LayoutGrid {
		return fmt.Errorf("apply layout: unknown mode %d", mode)
	}
	d.Layout = mode
	if d.Empty() {
		return nil
	}
	usable := screen.Usable(a.opts.Gap)

	switch mode {
	case entity.LayoutMaster:
		a.masterLayout(d.Root, screen, master)
	case entity.LayoutStack:
		a.walkTiled(d.Root, func(id NodeID) bool {
			a.nodes[id].rect = usable
			return true
		})
	case entity.LayoutGrid:
		a.gridLayout(d.Root, usable)
	default:
		a.nodes[d.Root].rect = usable
		a.ResizeSubtree(d.Root)
	}
	return nil
}

// masterLayout gives the master leaf MasterRatio of the screen width and
// stacks everything else top to bottom in the remaining column.
func (a *Arena) masterLayout(root NodeID, screen entity.Screen, win entity.WindowID) {
	gap := a.opts.Gap
	if a.IsLeaf(root) {
		a.nodes[root].rect = screen.Usable(gap)
		return
	}

	m := a.FindNode(root, win)
	if m == NoNode || a.IsFloating(m) {
		m = a.FindLeftLeaf(root)
	}
	if m == NoNode {
		return
	}

	masterW := uint16(float64(screen.Width) * a.opts.MasterRatio)
	restW := uint16(float64(screen.Width) * (1 - a.opts.MasterRatio))
	top := int16(screen.BarHeight + gap)
	height := sat(screen.Height, 2*gap+screen.BarHeight)

	a.nodes[m].master = true
	a.nodes[m].rect = entity.Rectangle{X: int16(gap), Y: top, Width: sat(masterW, 2*gap), Height: height}
	a.nodes[root].rect = entity.Rectangle{X: int16(masterW), Y: top, Width: sat(restW, gap), Height: height}
	a.applyMaster(root)
	a.nodes[m].master = false
}

func (a *Arena) applyMaster(parent NodeID) {
	s := a.splitOf(parent)
	if s == nil {
		return
	}
	pr := a.nodes[parent].rect
	switch {
	case a.nodes[s.first].master:
		a.nodes[s.second].rect = pr
	case a.nodes[s.second].master:
		a.nodes[s.first].rect = pr
	default:
		a.nodes[s.first].rect, a.nodes[s.second].rect = pr.SplitVertical(a.opts.Gap)
	}
	a.applyMaster(s.first)
	a.applyMaster(s.second)
}

// gridLayout places the tiled leaves in pre-order on a near-square grid of
// ceil(sqrt(n)) columns. The last column and row absorb rounding. Internal
// nodes take the bounding box of their children.
func (a *Arena) gridLayout(root NodeID, usable entity.Rectangle) {
	leaves := a.Leaves(root)
	n := len(leaves)
	if n == 0 {
		return
	}
	gap := int(a.opts.Gap)
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := (n + cols - 1) / cols
	cellW := max(0, (int(usable.Width)-gap*(cols-1))/cols)
	cellH := max(0, (int(usable.Height)-gap*(rows-1))/rows)

	for i, id := range leaves {
		col, row := i%cols, i/cols
		x := int(usable.X) + col*(cellW+gap)
		y := int(usable.Y) + row*(cellH+gap)
		w, h := cellW, cellH
		if col == cols-1 {
			w = max(0, int(usable.X)+int(usable.Width)-x)
		}
		if row == rows-1 {
			h = max(0, int(usable.Y)+int(usable.Height)-y)
		}
		a.nodes[id].rect = entity.Rectangle{X: int16(x), Y: int16(y), Width: uint16(w), Height: uint16(h)}
	}
	a.boundInternal(root)
}

func (a *Arena) boundInternal(id NodeID) entity.Rectangle {
	s := a.splitOf(id)
	if s == nil {
		return a.nodes[id].rect
	}
	r := a.boundInternal(s.first).Union(a.boundInternal(s.second))
	a.nodes[id].rect = r
	return r
}

func sat(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}
