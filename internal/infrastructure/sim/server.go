// Package sim is an in-memory display server. It implements the Placer and
// Display ports so the engine can run without X11.
package sim

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/bsptile/internal/application/port"
	"github.com/bnema/bsptile/internal/domain/entity"
)

// EventOp is a request the engine sent to the server.
type EventOp string

const (
	EventTile  EventOp = "tile"
	EventRaise EventOp = "raise"
	EventLower EventOp = "lower"
	EventHide  EventOp = "hide"
	EventShow  EventOp = "show"
)

// Event records one placement request.
type Event struct {
	Op     EventOp          `json:"op"`
	Window entity.WindowID  `json:"window"`
	Rect   entity.Rectangle `json:"rect,omitzero"`
}

func (e Event) String() string {
	if e.Op == EventTile {
		return fmt.Sprintf("%s %s %s", e.Op, e.Window, e.Rect)
	}
	return fmt.Sprintf("%s %s", e.Op, e.Window)
}

// Window is the server-side state of one window.
type Window struct {
	Rect   entity.Rectangle
	Mapped bool
}

// Server keeps window geometry, visibility and stacking order in memory.
type Server struct {
	mu      sync.Mutex
	screen  entity.Screen
	pointer entity.WindowID
	windows map[entity.WindowID]*Window
	clients []entity.WindowID // creation order
	stack   []entity.WindowID // bottom to top
	events  []Event
	failOn  map[entity.WindowID]error
}

var (
	_ port.Placer  = (*Server)(nil)
	_ port.Display = (*Server)(nil)
)

// NewServer creates a server for screen with no windows.
func NewServer(screen entity.Screen) *Server {
	return &Server{
		screen:  screen,
		windows: make(map[entity.WindowID]*Window),
		failOn:  make(map[entity.WindowID]error),
	}
}

// Create registers a mapped window at the top of the stack.
func (s *Server) Create(win entity.WindowID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window(win)
}

// Destroy forgets a window.
func (s *Server) Destroy(win entity.WindowID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, win)
	s.clients = slices.DeleteFunc(s.clients, func(w entity.WindowID) bool { return w == win })
	s.stack = slices.DeleteFunc(s.stack, func(w entity.WindowID) bool { return w == win })
	if s.pointer == win {
		s.pointer = entity.NoWindow
	}
}

// window returns the state of win. A window the server has not seen yet is
// assumed to have been mapped by its client. Must hold s.mu.
func (s *Server) window(win entity.WindowID) *Window {
	w, ok := s.windows[win]
	if !ok {
		w = &Window{Mapped: true}
		s.windows[win] = w
		s.clients = append(s.clients, win)
		s.stack = append(s.stack, win)
	}
	return w
}

// FailOn makes every request for win return err. A nil err clears it.
func (s *Server) FailOn(win entity.WindowID, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failOn, win)
		return
	}
	s.failOn[win] = err
}

func (s *Server) record(ctx context.Context, ev Event) (*Window, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.failOn[ev.Window]; err != nil {
		return nil, fmt.Errorf("%s %s: %w", ev.Op, ev.Window, err)
	}
	s.events = append(s.events, ev)
	return s.window(ev.Window), nil
}

// Tile implements port.Placer.
func (s *Server) Tile(ctx context.Context, win entity.WindowID, rect entity.Rectangle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := s.record(ctx, Event{Op: EventTile, Window: win, Rect: rect})
	if err != nil {
		return err
	}
	w.Rect = rect
	return nil
}

// Raise implements port.Placer.
func (s *Server) Raise(ctx context.Context, win entity.WindowID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.record(ctx, Event{Op: EventRaise, Window: win}); err != nil {
		return err
	}
	s.stack = append(slices.DeleteFunc(s.stack, func(w entity.WindowID) bool { return w == win }), win)
	return nil
}

// Lower implements port.Placer.
func (s *Server) Lower(ctx context.Context, win entity.WindowID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.record(ctx, Event{Op: EventLower, Window: win}); err != nil {
		return err
	}
	rest := slices.DeleteFunc(s.stack, func(w entity.WindowID) bool { return w == win })
	s.stack = append([]entity.WindowID{win}, rest...)
	return nil
}

// Hide implements port.Placer.
func (s *Server) Hide(ctx context.Context, win entity.WindowID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := s.record(ctx, Event{Op: EventHide, Window: win})
	if err != nil {
		return err
	}
	w.Mapped = false
	return nil
}

// Show implements port.Placer.
func (s *Server) Show(ctx context.Context, win entity.WindowID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := s.record(ctx, Event{Op: EventShow, Window: win})
	if err != nil {
		return err
	}
	w.Mapped = true
	return nil
}

// Screen implements port.Display.
func (s *Server) Screen(ctx context.Context) (entity.Screen, error) {
	if err := ctx.Err(); err != nil {
		return entity.Screen{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen, nil
}

// SetScreen changes the reported screen, as after a resolution change.
func (s *Server) SetScreen(screen entity.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen = screen
}

// WindowUnderPointer implements port.Display.
func (s *Server) WindowUnderPointer(ctx context.Context) (entity.WindowID, error) {
	if err := ctx.Err(); err != nil {
		return entity.NoWindow, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pointer, nil
}

// SetPointer moves the pointer over win.
func (s *Server) SetPointer(win entity.WindowID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pointer = win
}

// ManagedWindows implements port.Display.
func (s *Server) ManagedWindows(ctx context.Context) ([]entity.WindowID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.clients), nil
}

// Window returns a copy of the state of win.
func (s *Server) Window(win entity.WindowID) (Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[win]
	if !ok {
		return Window{}, false
	}
	return *w, true
}

// Stacking returns the windows from bottom to top.
func (s *Server) Stacking() []entity.WindowID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.stack)
}

// Events returns every request received so far.
func (s *Server) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.events)
}

// ResetEvents clears the request log.
func (s *Server) ResetEvents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}
