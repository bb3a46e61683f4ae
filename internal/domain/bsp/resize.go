package bsp

import "github.com/bnema/bsptile/internal/domain/entity"

// ResizeSubtree recomputes the children of parent from its rectangle with
// the longer-axis split rule and recurses into internal children.
func (a *Arena) ResizeSubtree(parent NodeID) {
	n := a.get(parent)
	if n == nil {
		return
	}
	s, ok := n.body.(*split)
	if !ok {
		return
	}
	first, second := n.rect.Split(a.opts.Gap)
	a.nodes[s.first].rect = first
	a.nodes[s.second].rect = second
	a.ResizeSubtree(s.first)
	a.ResizeSubtree(s.second)
}

// HorizontalResize moves the boundary between the root's two subtrees by one
// ResizeStep so that the subtree holding id grows or shrinks. The other
// subtree gives or takes the same amount, so the root's total is unchanged.
// Internal subtrees are re-split afterwards.
//
// The boundary moves along the root's split axis, which is horizontal on
// landscape screens.
func (a *Arena) HorizontalResize(id NodeID, kind entity.ResizeKind) error {
	n := a.get(id)
	if n == nil {
		return ErrNotFound
	}
	if !a.IsLeaf(id) || a.IsFloating(id) {
		return ErrNotExternal
	}
	if n.parent == NoNode {
		return ErrNothingToResize
	}
	root := a.FindTreeRoot(id)
	rs := a.splitOf(root)
	if rs == nil {
		return inconsistent("resize", root, "root of a parented node has no children")
	}

	delta := int(a.opts.ResizeStep)
	if !a.InSubtree(rs.first, id) {
		delta = -delta
	}
	if kind == entity.ResizeShrink {
		delta = -delta
	}
	return a.moveBoundary(rs.first, rs.second, a.nodes[root].rect.Wide(), delta)
}

// moveBoundary grows first by delta pixels at the expense of second.
// A negative delta grows second.
func (a *Arena) moveBoundary(first, second NodeID, wide bool, delta int) error {
	f, s := &a.nodes[first].rect, &a.nodes[second].rect
	fdim, sdim := &f.Height, &s.Height
	spos := &s.Y
	if wide {
		fdim, sdim = &f.Width, &s.Width
		spos = &s.X
	}

	shrinking := int(*sdim)
	if delta < 0 {
		shrinking = int(*fdim)
	}
	if shrinking <= abs(delta)+int(a.opts.Gap) {
		return ErrNothingToResize
	}

	*fdim = uint16(int(*fdim) + delta)
	*sdim = uint16(int(*sdim) - delta)
	*spos = int16(int(*spos) + delta)

	a.ResizeSubtree(first)
	a.ResizeSubtree(second)
	return nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
