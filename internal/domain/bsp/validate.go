package bsp

import "github.com/bnema/bsptile/internal/domain/entity"

// Validate checks the structural invariants of d's tree: binary shape,
// parent links, a single root, no leftover master flag and the client count.
// Desktops in LayoutDefault are also checked for rectangle partitioning.
// Violations are returned as *InconsistencyError.
func (a *Arena) Validate(d *Desktop) error {
	if d.Empty() {
		if d.Count != 0 {
			return inconsistent("validate", NoNode, "empty desktop counts %d clients", d.Count)
		}
		return nil
	}
	root := a.get(d.Root)
	if root == nil {
		return inconsistent("validate", d.Root, "root handle is dead")
	}
	if !root.root || root.parent != NoNode {
		return inconsistent("validate", d.Root, "root is not flagged root or has a parent")
	}

	v := validator{a: a, seen: make(map[NodeID]bool), partition: d.Layout == entity.LayoutDefault}
	if err := v.check(d.Root); err != nil {
		return err
	}
	if v.clients != d.Count {
		return inconsistent("validate", d.Root, "count is %d but tree holds %d clients", d.Count, v.clients)
	}
	return nil
}

type validator struct {
	a         *Arena
	seen      map[NodeID]bool
	partition bool
	clients   int
}

func (v *validator) check(id NodeID) error {
	if v.seen[id] {
		return inconsistent("validate", id, "node reached twice")
	}
	v.seen[id] = true
	n := v.a.get(id)
	if n.master {
		return inconsistent("validate", id, "master flag left set")
	}

	switch b := n.body.(type) {
	case *leaf:
		if b.client == nil {
			return inconsistent("validate", id, "leaf without client")
		}
		v.clients++
		for _, f := range b.floating {
			fn := v.a.get(f)
			if fn == nil {
				return inconsistent("validate", id, "floating node %d is dead", f)
			}
			if fn.parent != id || fn.root {
				return inconsistent("validate", f, "floating node not anchored to %d", id)
			}
			if fl, ok := fn.body.(*leaf); !ok || len(fl.floating) > 0 {
				return inconsistent("validate", f, "floating node is not a plain leaf")
			}
			if err := v.check(f); err != nil {
				return err
			}
		}
	case *split:
		for _, c := range []NodeID{b.first, b.second} {
			cn := v.a.get(c)
			if cn == nil {
				return inconsistent("validate", id, "child %d is dead", c)
			}
			if cn.parent != id {
				return inconsistent("validate", c, "parent is %d, want %d", cn.parent, id)
			}
			if cn.root {
				return inconsistent("validate", c, "non-root node flagged root")
			}
		}
		if v.partition && !partitions(n.rect, v.a.nodes[b.first].rect, v.a.nodes[b.second].rect, v.a.opts.Gap) {
			return inconsistent("validate", id, "children %s %s do not partition %s",
				v.a.nodes[b.first].rect, v.a.nodes[b.second].rect, n.rect)
		}
		if err := v.check(b.first); err != nil {
			return err
		}
		return v.check(b.second)
	default:
		return inconsistent("validate", id, "node has no body")
	}
	return nil
}

// partitions reports whether f and s split p along one axis with gap between them.
func partitions(p, f, s entity.Rectangle, gap uint16) bool {
	horizontal := f.Y == p.Y && s.Y == p.Y && f.Height == p.Height && s.Height == p.Height &&
		f.X == p.X && int(s.X) == int(f.X)+int(f.Width)+int(gap) &&
		int(f.Width)+int(s.Width)+int(gap) == int(p.Width)
	vertical := f.X == p.X && s.X == p.X && f.Width == p.Width && s.Width == p.Width &&
		f.Y == p.Y && int(s.Y) == int(f.Y)+int(f.Height)+int(gap) &&
		int(f.Height)+int(s.Height)+int(gap) == int(p.Height)
	if horizontal || vertical {
		return true
	}
	// Saturated splits of areas thinner than the gap.
	wf, ws := p.Split(gap)
	return f == wf && s == ws
}
