package bsp

import "github.com/bnema/bsptile/internal/domain/entity"

// Transfer attaches a node previously removed with Unlink to the destination
// desktop and increments its count.
//
// An empty destination adopts the node as root covering the usable area. A
// destination whose root holds a single client has its root split; a
// structured destination has its leftmost leaf split. Floating clients stay
// floating.
func (a *Arena) Transfer(id NodeID, dst *Desktop, screen entity.Screen) error {
	if err := a.checkDetached(id); err != nil {
		return err
	}
	return a.Insert(dst, id, screen)
}

// Move unlinks win from src and transfers it to dst. It returns the node
// holding the client on dst. Moving to the same desktop is a no-op.
func (a *Arena) Move(src, dst *Desktop, win entity.WindowID, screen entity.Screen) (NodeID, error) {
	id := a.FindNode(src.Root, win)
	if id == NoNode {
		return NoNode, ErrNotFound
	}
	if src == dst {
		return id, nil
	}
	// A tiled transfer into a populated desktop allocates one node.
	if !dst.Empty() && a.Client(id).State != entity.StateFloating && !a.canAlloc(1) {
		return NoNode, ErrArenaFull
	}
	if err := a.Unlink(src, id); err != nil {
		return NoNode, err
	}
	if err := a.Transfer(id, dst, screen); err != nil {
		return NoNode, err
	}
	return id, nil
}
