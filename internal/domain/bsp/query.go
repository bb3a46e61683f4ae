package bsp

import "github.com/bnema/bsptile/internal/domain/entity"

// Walk visits every node under root in pre-order: the node, the floating
// windows anchored to it, then the first and second subtrees.
// Returning false from fn stops the walk.
func (a *Arena) Walk(root NodeID, fn func(NodeID) bool) {
	a.walk(root, fn)
}

func (a *Arena) walk(id NodeID, fn func(NodeID) bool) bool {
	n := a.get(id)
	if n == nil {
		return true
	}
	if !fn(id) {
		return false
	}
	switch b := n.body.(type) {
	case *leaf:
		for _, f := range b.floating {
			if !a.walk(f, fn) {
				return false
			}
		}
	case *split:
		if !a.walk(b.first, fn) {
			return false
		}
		return a.walk(b.second, fn)
	}
	return true
}

// WalkTiled is Walk without the floating attachments.
func (a *Arena) WalkTiled(root NodeID, fn func(NodeID) bool) {
	a.walkTiled(root, fn)
}

func (a *Arena) walkTiled(id NodeID, fn func(NodeID) bool) bool {
	n := a.get(id)
	if n == nil {
		return true
	}
	if !fn(id) {
		return false
	}
	if s, ok := n.body.(*split); ok {
		if !a.walkTiled(s.first, fn) {
			return false
		}
		return a.walkTiled(s.second, fn)
	}
	return true
}

// FindNode returns the first node under root holding win, or NoNode.
func (a *Arena) FindNode(root NodeID, win entity.WindowID) NodeID {
	found := NoNode
	a.walk(root, func(id NodeID) bool {
		if c := a.Client(id); c != nil && c.Window == win {
			found = id
			return false
		}
		return true
	})
	return found
}

// FindClient returns the first client under root with window win, or nil.
func (a *Arena) FindClient(root NodeID, win entity.WindowID) *entity.Client {
	return a.Client(a.FindNode(root, win))
}

// ClientExists reports whether win is managed in the tree under root.
func (a *Arena) ClientExists(root NodeID, win entity.WindowID) bool {
	return a.FindNode(root, win) != NoNode
}

// FindLeftLeaf returns the first leaf in pre-order that holds a tiled client.
// It is the default insertion point. A tree whose only leaf is a floating
// root has no left leaf.
func (a *Arena) FindLeftLeaf(root NodeID) NodeID {
	found := NoNode
	a.walkTiled(root, func(id NodeID) bool {
		if c := a.Client(id); c != nil && c.State != entity.StateFloating {
			found = id
			return false
		}
		return true
	})
	return found
}

// FindTreeRoot follows parent links up from id.
func (a *Arena) FindTreeRoot(id NodeID) NodeID {
	n := a.get(id)
	if n == nil {
		return NoNode
	}
	for n.parent != NoNode {
		id = n.parent
		if n = a.get(id); n == nil {
			return NoNode
		}
	}
	return id
}

// FindMaster returns the node currently flagged master, or NoNode.
func (a *Arena) FindMaster(root NodeID) NodeID {
	found := NoNode
	a.walkTiled(root, func(id NodeID) bool {
		if a.nodes[id].master {
			found = id
			return false
		}
		return true
	})
	return found
}

// Sibling returns the other child of id's parent along with its kind.
// Floating nodes and roots have no sibling.
func (a *Arena) Sibling(id NodeID) (NodeID, Kind) {
	n := a.get(id)
	if n == nil {
		return NoNode, KindNone
	}
	s := a.splitOf(n.parent)
	if s == nil {
		return NoNode, KindNone
	}
	sib := s.first
	if sib == id {
		sib = s.second
	}
	return sib, a.Kind(sib)
}

// HasSibling reports whether id has a sibling.
func (a *Arena) HasSibling(id NodeID) bool {
	sib, _ := a.Sibling(id)
	return sib != NoNode
}

// IsSiblingExternal reports whether id's sibling is a leaf.
func (a *Arena) IsSiblingExternal(id NodeID) bool {
	_, k := a.Sibling(id)
	return k == KindExternal
}

// IsSiblingInternal reports whether id's sibling is a subtree.
func (a *Arena) IsSiblingInternal(id NodeID) bool {
	_, k := a.Sibling(id)
	return k == KindInternal
}

// ExternalSibling returns id's sibling when it is a leaf, NoNode otherwise.
func (a *Arena) ExternalSibling(id NodeID) NodeID {
	if sib, k := a.Sibling(id); k == KindExternal {
		return sib
	}
	return NoNode
}

// InternalSibling returns id's sibling when it is a subtree, NoNode otherwise.
func (a *Arena) InternalSibling(id NodeID) NodeID {
	if sib, k := a.Sibling(id); k == KindInternal {
		return sib
	}
	return NoNode
}

// HasExternalChildren reports whether both children of id are leaves.
func (a *Arena) HasExternalChildren(id NodeID) bool {
	s := a.splitOf(id)
	return s != nil && a.Kind(s.first) == KindExternal && a.Kind(s.second) == KindExternal
}

// HasSingleExternalChild reports whether exactly one child of id is a leaf.
func (a *Arena) HasSingleExternalChild(id NodeID) bool {
	s := a.splitOf(id)
	if s == nil {
		return false
	}
	return (a.Kind(s.first) == KindExternal) != (a.Kind(s.second) == KindExternal)
}

// IsParentInternal reports whether id hangs below a non-root internal node.
func (a *Arena) IsParentInternal(id NodeID) bool {
	return a.Kind(a.Parent(id)) == KindInternal
}

// InSubtree reports whether id is sub or one of its descendants.
func (a *Arena) InSubtree(sub, id NodeID) bool {
	if a.get(sub) == nil {
		return false
	}
	for cur := id; cur != NoNode; cur = a.Parent(cur) {
		if cur == sub {
			return true
		}
	}
	return false
}

// InLeftSubtree reports whether id lives under root's first child.
func (a *Arena) InLeftSubtree(root, id NodeID) bool {
	return a.InSubtree(a.First(root), id)
}

// InRightSubtree reports whether id lives under root's second child.
func (a *Arena) InRightSubtree(root, id NodeID) bool {
	return a.InSubtree(a.Second(root), id)
}

// Level returns the depth of the tiled tree under root; an empty tree is 0.
func (a *Arena) Level(root NodeID) int {
	s := a.splitOf(root)
	if s == nil {
		if a.get(root) == nil {
			return 0
		}
		return 1
	}
	return 1 + max(a.Level(s.first), a.Level(s.second))
}

// Leaves returns the tiled leaves under root in pre-order.
func (a *Arena) Leaves(root NodeID) []NodeID {
	var out []NodeID
	a.walkTiled(root, func(id NodeID) bool {
		if c := a.Client(id); c != nil && c.State != entity.StateFloating {
			out = append(out, id)
		}
		return true
	})
	return out
}

// ClientCount returns the number of client-bearing nodes under root, floating included.
func (a *Arena) ClientCount(root NodeID) int {
	count := 0
	a.walk(root, func(id NodeID) bool {
		if a.Client(id) != nil {
			count++
		}
		return true
	})
	return count
}
