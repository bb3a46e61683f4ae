package bsp

import "github.com/bnema/bsptile/internal/domain/entity"

// InsertNode turns the leaf into an internal node. The leaf's client moves
// into a fresh first child and newNode becomes the second child; the leaf's
// rectangle is split along its longer axis.
//
// The first child is allocated before anything is touched, so ErrArenaFull
// leaves the tree as it was.
func (a *Arena) InsertNode(leafID, newNode NodeID) error {
	if err := a.checkDetached(newNode); err != nil {
		return err
	}
	if leafID == newNode {
		return ErrNotDetached
	}
	l := a.leafOf(leafID)
	if l == nil || l.client == nil || l.client.State == entity.StateFloating || a.IsFloating(leafID) {
		return ErrNotExternal
	}
	client, floating, mapped := l.client, l.floating, l.mapped
	focused := a.nodes[leafID].focused

	firstID, err := a.alloc(node{
		parent:  leafID,
		body:    &leaf{client: client, floating: floating, mapped: mapped},
		focused: focused,
	})
	if err != nil {
		return err
	}

	n := a.get(leafID)
	first, second := n.rect.Split(a.opts.Gap)
	n.body = &split{first: firstID, second: newNode}
	n.focused = false
	a.nodes[firstID].rect = first
	for _, f := range floating {
		a.nodes[f].parent = firstID
	}

	nn := a.get(newNode)
	nn.parent = leafID
	nn.root = false
	nn.rect = second
	return nil
}

// Insert adds a detached node to the desktop and bumps its count.
// An empty desktop adopts the node as root with the usable screen area;
// otherwise the leftmost leaf is split. Floating clients are routed to
// InsertFloating.
func (a *Arena) Insert(d *Desktop, id NodeID, screen entity.Screen) error {
	if err := a.checkDetached(id); err != nil {
		return err
	}
	if c := a.Client(id); c.State == entity.StateFloating {
		return a.InsertFloating(d, id)
	}
	a.stamp(id)

	if d.Empty() {
		n := a.nodes[id]
		n.root = true
		n.rect = screen.Usable(a.opts.Gap)
		a.nodes[id] = n
		d.Root = id
		d.Count++
		return nil
	}

	target := a.FindLeftLeaf(d.Root)
	if target == NoNode {
		// Only a floating root is left: the tiled node takes over the root
		// and the floating one hangs off it.
		a.promoteOverFloatingRoot(d, id, screen)
		d.Count++
		return nil
	}
	if err := a.InsertNode(target, id); err != nil {
		return err
	}
	d.Count++
	return nil
}

// InsertFloating anchors a floating node to the desktop's leftmost leaf.
// Floating nodes never take part in the partition. On an empty desktop the
// node becomes the root.
func (a *Arena) InsertFloating(d *Desktop, id NodeID) error {
	if err := a.checkDetached(id); err != nil {
		return err
	}
	if c := a.Client(id); c.State != entity.StateFloating {
		return ErrNotFloating
	}
	a.stamp(id)
	if d.Empty() {
		a.nodes[id].root = true
		d.Root = id
		d.Count++
		return nil
	}
	anchor := a.FindLeftLeaf(d.Root)
	if anchor == NoNode {
		anchor = d.Root
	}
	a.anchor(anchor, id)
	d.Count++
	return nil
}

func (a *Arena) promoteOverFloatingRoot(d *Desktop, id NodeID, screen entity.Screen) {
	old := d.Root
	oldLeaf := a.leafOf(old)
	orphans := oldLeaf.floating
	oldLeaf.floating = nil
	a.nodes[old].root = false

	n := a.get(id)
	n.root = true
	n.rect = screen.Usable(a.opts.Gap)
	d.Root = id

	a.anchor(id, old)
	for _, f := range orphans {
		a.anchor(id, f)
	}
}

func (a *Arena) anchor(anchorID, id NodeID) {
	l := a.leafOf(anchorID)
	l.floating = append(l.floating, id)
	n := a.get(id)
	n.parent = anchorID
	n.root = false
}

// checkDetached verifies id is a free-standing leaf with a client.
func (a *Arena) checkDetached(id NodeID) error {
	n := a.get(id)
	if n == nil {
		return ErrNotFound
	}
	l, ok := n.body.(*leaf)
	if !ok {
		return ErrNotExternal
	}
	if l.client == nil {
		return ErrNoClient
	}
	if n.parent != NoNode || n.root {
		return ErrNotDetached
	}
	return nil
}
