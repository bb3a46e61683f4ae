package entity

import "time"

// LayoutSnapshotVersion is the current schema version for layout snapshots.
// Increment when making breaking changes to the serialization format.
const LayoutSnapshotVersion = 1

// SnapshotID uniquely identifies a saved layout.
type SnapshotID string

// LayoutSnapshot captures every desktop tree at one point in time.
// This is serialized to JSON and stored in the database.
type LayoutSnapshot struct {
	Version  int               `json:"version"`
	ID       SnapshotID        `json:"id"`
	Name     string            `json:"name"`
	Screen   Screen            `json:"screen"`
	Desktops []DesktopSnapshot `json:"desktops"`
	SavedAt  time.Time         `json:"saved_at"`
}

// DesktopSnapshot captures one desktop.
type DesktopSnapshot struct {
	Index  int           `json:"index"`
	Name   string        `json:"name"`
	Layout LayoutMode    `json:"layout"`
	Count  int           `json:"count"`
	Root   *NodeSnapshot `json:"root,omitempty"` // nil for an empty desktop
}

// NodeSnapshot captures a node in a desktop tree.
type NodeSnapshot struct {
	Rect     Rectangle       `json:"rect"`
	Window   WindowID        `json:"window,omitempty"` // set for leaves only
	State    ClientState     `json:"state,omitempty"`
	First    *NodeSnapshot   `json:"first,omitempty"`
	Second   *NodeSnapshot   `json:"second,omitempty"`
	Floating []*NodeSnapshot `json:"floating,omitempty"`
}

// IsLeaf reports whether the snapshot node holds a client.
func (n *NodeSnapshot) IsLeaf() bool {
	return n != nil && n.First == nil && n.Second == nil
}

// WindowCount returns the number of clients captured under n, floating included.
func (n *NodeSnapshot) WindowCount() int {
	if n == nil {
		return 0
	}
	count := 0
	if n.IsLeaf() {
		count = 1
	}
	for _, f := range n.Floating {
		count += f.WindowCount()
	}
	return count + n.First.WindowCount() + n.Second.WindowCount()
}

// WindowCount returns the number of clients captured across all desktops.
func (s *LayoutSnapshot) WindowCount() int {
	if s == nil {
		return 0
	}
	total := 0
	for i := range s.Desktops {
		total += s.Desktops[i].Root.WindowCount()
	}
	return total
}
