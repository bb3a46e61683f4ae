package bsp

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a handle does not address a live node of the desktop.
	ErrNotFound = errors.New("node not found")
	// ErrNoClient is returned when a node is created without a client.
	ErrNoClient = errors.New("node has no client")
	// ErrNotExternal is returned when a leaf was expected.
	ErrNotExternal = errors.New("node is not an external node")
	// ErrNotFloating is returned by floating-only operations on tiled nodes.
	ErrNotFloating = errors.New("node is not floating")
	// ErrNotDetached is returned when a node must be unlinked first.
	ErrNotDetached = errors.New("node is still attached to a tree")
	// ErrArenaFull is returned when the arena refuses to allocate another node.
	ErrArenaFull = errors.New("node arena is full")
	// ErrEmptyDesktop is returned when an operation needs at least one client.
	ErrEmptyDesktop = errors.New("desktop is empty")
	// ErrNoDesktop is returned for a desktop index outside the set.
	ErrNoDesktop = errors.New("no such desktop")
	// ErrNothingToResize is returned when a resize step has no counterpart to take space from.
	ErrNothingToResize = errors.New("nothing to resize")
	// ErrInconsistent marks a broken tree; it is always wrapped in an *InconsistencyError.
	ErrInconsistent = errors.New("tree is inconsistent")
)

// InconsistencyError reports a violated tree invariant.
// These indicate a bug in the engine, never bad input.
type InconsistencyError struct {
	Op     string
	Node   NodeID
	Detail string
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("%s: node %d: %s", e.Op, e.Node, e.Detail)
}

func (e *InconsistencyError) Unwrap() error {
	return ErrInconsistent
}

func inconsistent(op string, id NodeID, format string, args ...any) error {
	return &InconsistencyError{Op: op, Node: id, Detail: fmt.Sprintf(format, args...)}
}
