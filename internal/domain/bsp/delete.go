package bsp

import "github.com/bnema/bsptile/internal/domain/entity"

// DeleteNode removes a leaf and its client from the desktop.
//
// The sole window of a desktop empties it. Otherwise the parent collapses:
// a leaf sibling's client moves up into the parent, or an internal sibling's
// children are promoted into the parent and re-split. Floating nodes are
// handed to DeleteFloating.
func (a *Arena) DeleteNode(d *Desktop, id NodeID) error {
	if !a.owns(d, id) {
		return ErrNotFound
	}
	if a.IsFloating(id) {
		return a.DeleteFloating(d, id)
	}
	if a.Client(id) == nil {
		return ErrNotExternal
	}
	if err := a.cut(d, "delete", id); err != nil {
		return err
	}
	a.release(id)
	d.Count--
	return nil
}

// DeleteFloating detaches a floating node from its anchor and frees it.
// The tree shape is untouched.
func (a *Arena) DeleteFloating(d *Desktop, id NodeID) error {
	if !a.owns(d, id) {
		return ErrNotFound
	}
	c := a.Client(id)
	switch {
	case a.IsFloating(id):
		a.unanchor(id)
	case id == d.Root && c != nil && c.State == entity.StateFloating:
		if err := a.cut(d, "delete floating", id); err != nil {
			return err
		}
	default:
		return ErrNotFloating
	}
	a.release(id)
	d.Count--
	return nil
}

// Unlink removes id from the desktop with the same collapse rules as
// DeleteNode but keeps the node and its client alive, detached from any tree.
// The detached node loses focus; focus belongs to a desktop.
func (a *Arena) Unlink(d *Desktop, id NodeID) error {
	if !a.owns(d, id) {
		return ErrNotFound
	}
	if a.IsFloating(id) {
		a.unanchor(id)
	} else {
		if a.Client(id) == nil {
			return ErrNotExternal
		}
		if err := a.cut(d, "unlink", id); err != nil {
			return err
		}
	}
	a.nodes[id].focused = false
	d.Count--
	return nil
}

// SetFloating moves a client between the tiled tree and the floating slots.
func (a *Arena) SetFloating(d *Desktop, id NodeID, floating bool, screen entity.Screen) error {
	if !a.owns(d, id) {
		return ErrNotFound
	}
	c := a.Client(id)
	if c == nil {
		return ErrNotExternal
	}
	if (c.State == entity.StateFloating) == floating {
		return nil
	}
	if !floating && !a.canAlloc(1) {
		return ErrArenaFull
	}
	if err := a.Unlink(d, id); err != nil {
		return err
	}
	if floating {
		c.State = entity.StateFloating
	} else {
		c.State = entity.StateNormal
	}
	return a.Insert(d, id, screen)
}

// FreeTree releases every node under root, floating ones included.
func (a *Arena) FreeTree(root NodeID) {
	n := a.get(root)
	if n == nil {
		return
	}
	switch b := n.body.(type) {
	case *leaf:
		for _, f := range b.floating {
			a.FreeTree(f)
		}
	case *split:
		a.FreeTree(b.first)
		a.FreeTree(b.second)
	}
	a.release(root)
}

// cut removes the tiled leaf id from d's tree without freeing it.
func (a *Arena) cut(d *Desktop, op string, id NodeID) error {
	n := a.get(id)
	l, ok := n.body.(*leaf)
	if !ok {
		return ErrNotExternal
	}

	if id == d.Root {
		orphans := l.floating
		l.floating = nil
		n.root = false
		d.Root = NoNode
		a.reanchor(d, orphans)
		return nil
	}

	p := n.parent
	s := a.splitOf(p)
	if s == nil {
		return inconsistent(op, id, "parent %d is not an internal node", p)
	}
	sib := s.first
	switch id {
	case s.first:
		sib = s.second
	case s.second:
	default:
		return inconsistent(op, id, "not a child of its parent %d", p)
	}
	sn := a.get(sib)
	if sn == nil {
		return inconsistent(op, id, "sibling %d is missing", sib)
	}

	orphans := l.floating
	l.floating = nil
	pn := a.get(p)
	switch sb := sn.body.(type) {
	case *leaf:
		// The parent keeps its rectangle and slot and takes the sibling's client.
		pn.body = &leaf{client: sb.client, floating: sb.floating, mapped: sb.mapped}
		pn.focused = sn.focused
		for _, f := range sb.floating {
			a.nodes[f].parent = p
		}
		a.release(sib)
	case *split:
		pn.body = &split{first: sb.first, second: sb.second}
		a.nodes[sb.first].parent = p
		a.nodes[sb.second].parent = p
		a.release(sib)
		a.ResizeSubtree(p)
	}
	n.parent = NoNode
	a.reanchor(d, orphans)
	return nil
}

// reanchor reattaches floating nodes whose anchor went away. When the tiled
// tree is gone the first of them becomes the root.
func (a *Arena) reanchor(d *Desktop, orphans []NodeID) {
	if len(orphans) == 0 {
		return
	}
	if d.Empty() {
		head := a.get(orphans[0])
		head.parent = NoNode
		head.root = true
		d.Root = orphans[0]
		orphans = orphans[1:]
	}
	anchor := a.FindLeftLeaf(d.Root)
	if anchor == NoNode {
		anchor = d.Root
	}
	for _, f := range orphans {
		a.anchor(anchor, f)
	}
}

func (a *Arena) unanchor(id NodeID) {
	n := a.get(id)
	if l := a.leafOf(n.parent); l != nil {
		for i, f := range l.floating {
			if f == id {
				l.floating = append(l.floating[:i], l.floating[i+1:]...)
				break
			}
		}
	}
	n.parent = NoNode
}

func (a *Arena) canAlloc(k int) bool {
	return a.opts.MaxNodes <= 0 || a.live+k <= a.opts.MaxNodes
}
