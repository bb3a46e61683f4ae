// Package bsp implements the binary space partition trees that place windows
// on each desktop.
//
// Nodes live in an Arena and are addressed by NodeID handles. A node body is
// either a leaf (one client plus any floating windows anchored to it) or a
// split (exactly two children), so a node can never carry a client and
// children at the same time. The arena is not safe for concurrent use; the
// window manager serializes all calls into it.
package bsp

import (
	"github.com/bnema/bsptile/internal/domain/entity"
)

// NodeID addresses a node inside an Arena.
type NodeID int32

// NoNode is the null handle.
const NoNode NodeID = -1

// Kind is the structural role of a node.
type Kind uint8

const (
	KindNone Kind = iota
	KindRoot
	KindInternal
	KindExternal
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindInternal:
		return "internal"
	case KindExternal:
		return "external"
	default:
		return "none"
	}
}

type body interface{ isBody() }

type leaf struct {
	client   *entity.Client
	floating []NodeID

	// mapped orders clients by the time they joined a desktop.
	mapped uint64
}

type split struct {
	first, second NodeID
}

func (*leaf) isBody()  {}
func (*split) isBody() {}

type node struct {
	live    bool
	root    bool
	body    body
	rect    entity.Rectangle
	parent  NodeID
	master  bool
	focused bool
}

// Options tunes tree geometry.
type Options struct {
	// Gap is the pixel gap between siblings and around the usable area.
	Gap uint16
	// ResizeStep is the pixel delta of one interactive resize.
	ResizeStep uint16
	// MasterRatio is the share of the screen width given to the master window.
	MasterRatio float64
	// MaxNodes caps the number of live nodes. Zero means unlimited.
	MaxNodes int
}

// DefaultOptions returns the stock geometry settings.
func DefaultOptions() Options {
	return Options{
		Gap:         10,
		ResizeStep:  5,
		MasterRatio: 0.70,
	}
}

// Arena owns the nodes of every desktop tree.
type Arena struct {
	opts  Options
	nodes []node
	free  []NodeID
	live  int
	seq   uint64
}

// NewArena creates an empty arena.
func NewArena(opts Options) *Arena {
	if opts.MasterRatio <= 0 || opts.MasterRatio >= 1 {
		opts.MasterRatio = DefaultOptions().MasterRatio
	}
	if opts.ResizeStep == 0 {
		opts.ResizeStep = DefaultOptions().ResizeStep
	}
	return &Arena{opts: opts}
}

// Options returns the geometry settings in effect.
func (a *Arena) Options() Options {
	return a.opts
}

// Len returns the number of live nodes.
func (a *Arena) Len() int {
	return a.live
}

// alloc stores n and returns its handle. Pointers obtained through get are
// invalid after alloc returns.
func (a *Arena) alloc(n node) (NodeID, error) {
	if a.opts.MaxNodes > 0 && a.live >= a.opts.MaxNodes {
		return NoNode, ErrArenaFull
	}
	n.live = true
	a.live++
	if k := len(a.free); k > 0 {
		id := a.free[k-1]
		a.free = a.free[:k-1]
		a.nodes[id] = n
		return id, nil
	}
	a.nodes = append(a.nodes, n)
	return NodeID(len(a.nodes) - 1), nil
}

func (a *Arena) release(id NodeID) {
	if a.get(id) == nil {
		return
	}
	a.nodes[id] = node{parent: NoNode}
	a.free = append(a.free, id)
	a.live--
}

func (a *Arena) get(id NodeID) *node {
	if id < 0 || int(id) >= len(a.nodes) || !a.nodes[id].live {
		return nil
	}
	return &a.nodes[id]
}

// NewNode creates a detached leaf owning c.
func (a *Arena) NewNode(c *entity.Client) (NodeID, error) {
	if c == nil {
		return NoNode, ErrNoClient
	}
	return a.alloc(node{parent: NoNode, body: &leaf{client: c}})
}

// InitRoot creates an empty root node. It is filled by Restore or by adopting a client with SetClient.
func (a *Arena) InitRoot() (NodeID, error) {
	return a.alloc(node{root: true, parent: NoNode, body: &leaf{}})
}

// SetClient places c into an empty leaf.
func (a *Arena) SetClient(id NodeID, c *entity.Client) error {
	n := a.get(id)
	if n == nil {
		return ErrNotFound
	}
	l, ok := n.body.(*leaf)
	if !ok {
		return ErrNotExternal
	}
	if c == nil {
		return ErrNoClient
	}
	l.client = c
	a.stamp(id)
	return nil
}

// Kind returns the structural role of id, KindNone for a dead handle.
func (a *Arena) Kind(id NodeID) Kind {
	n := a.get(id)
	switch {
	case n == nil:
		return KindNone
	case n.root:
		return KindRoot
	default:
		if _, ok := n.body.(*split); ok {
			return KindInternal
		}
		return KindExternal
	}
}

// IsLeaf reports whether id holds a client slot rather than children.
func (a *Arena) IsLeaf(id NodeID) bool {
	n := a.get(id)
	if n == nil {
		return false
	}
	_, ok := n.body.(*leaf)
	return ok
}

// IsInternal reports whether id has two children.
func (a *Arena) IsInternal(id NodeID) bool {
	n := a.get(id)
	if n == nil {
		return false
	}
	_, ok := n.body.(*split)
	return ok
}

// IsFloating reports whether id is anchored in a leaf's floating slot.
func (a *Arena) IsFloating(id NodeID) bool {
	n := a.get(id)
	if n == nil {
		return false
	}
	return a.IsLeaf(n.parent)
}

// MapOrder returns the insertion sequence of the client held by id. Later
// inserts and transfers get higher values; zero means never inserted.
func (a *Arena) MapOrder(id NodeID) uint64 {
	if l := a.leafOf(id); l != nil {
		return l.mapped
	}
	return 0
}

func (a *Arena) stamp(id NodeID) {
	if l := a.leafOf(id); l != nil {
		a.seq++
		l.mapped = a.seq
	}
}

// Client returns the client held by id, nil for internal nodes.
func (a *Arena) Client(id NodeID) *entity.Client {
	n := a.get(id)
	if n == nil {
		return nil
	}
	if l, ok := n.body.(*leaf); ok {
		return l.client
	}
	return nil
}

// Rect returns the rectangle of id.
func (a *Arena) Rect(id NodeID) entity.Rectangle {
	if n := a.get(id); n != nil {
		return n.rect
	}
	return entity.Rectangle{}
}

// SetRect overrides the rectangle of id. Layout passes overwrite it.
func (a *Arena) SetRect(id NodeID, r entity.Rectangle) {
	if n := a.get(id); n != nil {
		n.rect = r
	}
}

// Parent returns the parent handle of id.
func (a *Arena) Parent(id NodeID) NodeID {
	if n := a.get(id); n != nil {
		return n.parent
	}
	return NoNode
}

// First returns the first child of an internal node.
func (a *Arena) First(id NodeID) NodeID {
	if s := a.splitOf(id); s != nil {
		return s.first
	}
	return NoNode
}

// Second returns the second child of an internal node.
func (a *Arena) Second(id NodeID) NodeID {
	if s := a.splitOf(id); s != nil {
		return s.second
	}
	return NoNode
}

// Floating returns the floating nodes anchored to a leaf.
func (a *Arena) Floating(id NodeID) []NodeID {
	if l := a.leafOf(id); l != nil && len(l.floating) > 0 {
		out := make([]NodeID, len(l.floating))
		copy(out, l.floating)
		return out
	}
	return nil
}

// IsMaster reports the transient master flag.
func (a *Arena) IsMaster(id NodeID) bool {
	n := a.get(id)
	return n != nil && n.master
}

// IsFocused reports the focus flag.
func (a *Arena) IsFocused(id NodeID) bool {
	n := a.get(id)
	return n != nil && n.focused
}

// SetFocused sets the focus flag of id.
func (a *Arena) SetFocused(id NodeID, focused bool) {
	if n := a.get(id); n != nil {
		n.focused = focused
	}
}

func (a *Arena) splitOf(id NodeID) *split {
	if n := a.get(id); n != nil {
		if s, ok := n.body.(*split); ok {
			return s
		}
	}
	return nil
}

func (a *Arena) leafOf(id NodeID) *leaf {
	if n := a.get(id); n != nil {
		if l, ok := n.body.(*leaf); ok {
			return l
		}
	}
	return nil
}
