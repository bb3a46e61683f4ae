package bsp

import (
	"errors"
	"fmt"

	"github.com/bnema/bsptile/internal/domain/entity"
)

// Snapshot captures d's tree.
func (a *Arena) Snapshot(d *Desktop) entity.DesktopSnapshot {
	return entity.DesktopSnapshot{
		Index:  d.Index,
		Name:   d.Name,
		Layout: d.Layout,
		Count:  d.Count,
		Root:   a.snapshotNode(d.Root),
	}
}

func (a *Arena) snapshotNode(id NodeID) *entity.NodeSnapshot {
	n := a.get(id)
	if n == nil {
		return nil
	}
	snap := &entity.NodeSnapshot{Rect: n.rect}
	switch b := n.body.(type) {
	case *leaf:
		if b.client != nil {
			snap.Window = b.client.Window
			snap.State = b.client.State
		}
		for _, f := range b.floating {
			snap.Floating = append(snap.Floating, a.snapshotNode(f))
		}
	case *split:
		snap.First = a.snapshotNode(b.first)
		snap.Second = a.snapshotNode(b.second)
	}
	return snap
}

// Restore rebuilds a desktop from a snapshot. Nothing is kept in the arena
// when restoring fails.
func (a *Arena) Restore(s entity.DesktopSnapshot) (*Desktop, error) {
	d := NewDesktop(s.Index, s.Name, s.Layout)
	if s.Root == nil {
		return d, nil
	}
	root, err := a.InitRoot()
	if err != nil {
		return nil, err
	}
	if err := a.restoreInto(root, s.Root); err != nil {
		a.FreeTree(root)
		return nil, fmt.Errorf("restore desktop %d: %w", s.Index, err)
	}
	d.Root = root
	d.Count = a.ClientCount(root)
	return d, nil
}

func (a *Arena) restoreInto(id NodeID, s *entity.NodeSnapshot) error {
	a.nodes[id].rect = s.Rect
	if s.IsLeaf() {
		if s.Window == entity.NoWindow {
			return errors.New("leaf without window")
		}
		a.nodes[id].body = &leaf{client: &entity.Client{Window: s.Window, State: s.State}}
		a.stamp(id)
		for _, fs := range s.Floating {
			if fs == nil || fs.Window == entity.NoWindow {
				return errors.New("floating entry without window")
			}
			fid, err := a.alloc(node{
				parent: NoNode,
				rect:   fs.Rect,
				body:   &leaf{client: &entity.Client{Window: fs.Window, State: entity.StateFloating}},
			})
			if err != nil {
				return err
			}
			a.stamp(fid)
			a.anchor(id, fid)
		}
		return nil
	}
	if s.First == nil || s.Second == nil {
		return errors.New("split with a single child")
	}

	first, err := a.alloc(node{parent: id, body: &leaf{}})
	if err != nil {
		return err
	}
	second, err := a.alloc(node{parent: id, body: &leaf{}})
	if err != nil {
		a.release(first)
		return err
	}
	a.nodes[id].body = &split{first: first, second: second}
	if err := a.restoreInto(first, s.First); err != nil {
		return err
	}
	return a.restoreInto(second, s.Second)
}
