package bsp

import "github.com/bnema/bsptile/internal/domain/entity"

// Desktop is one virtual desktop: a tree root plus its counters.
type Desktop struct {
	Index  int
	Name   string
	Root   NodeID // NoNode when the desktop is empty
	Count  int    // managed clients, floating included
	Layout entity.LayoutMode

	stack []entity.Client
}

// NewDesktop creates an empty desktop.
func NewDesktop(index int, name string, layout entity.LayoutMode) *Desktop {
	return &Desktop{
		Index:  index,
		Name:   name,
		Root:   NoNode,
		Layout: layout,
	}
}

// Empty reports whether the desktop has no tree.
func (d *Desktop) Empty() bool {
	return d == nil || d.Root == NoNode
}

// Destroy releases the desktop's tree.
func (a *Arena) Destroy(d *Desktop) {
	a.FreeTree(d.Root)
	d.Root = NoNode
	d.Count = 0
	d.stack = nil
}

// owns reports whether id is reachable from d's root.
func (a *Arena) owns(d *Desktop, id NodeID) bool {
	if d.Empty() || a.get(id) == nil {
		return false
	}
	return a.FindTreeRoot(id) == d.Root
}
