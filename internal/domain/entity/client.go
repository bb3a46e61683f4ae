package entity

import "fmt"

// WindowID is an opaque handle assigned by the display server.
type WindowID uint32

// NoWindow is the null window handle.
const NoWindow WindowID = 0

func (w WindowID) String() string {
	return fmt.Sprintf("0x%x", uint32(w))
}

// ClientState controls whether a client takes part in tiling.
type ClientState uint8

const (
	StateNormal ClientState = iota
	StateFloating
	StateFullscreen
)

func (s ClientState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateFloating:
		return "floating"
	case StateFullscreen:
		return "fullscreen"
	default:
		return "unknown"
	}
}

// ParseClientState converts a config or scenario string into a ClientState.
func ParseClientState(s string) (ClientState, error) {
	switch s {
	case "", "normal":
		return StateNormal, nil
	case "floating":
		return StateFloating, nil
	case "fullscreen":
		return StateFullscreen, nil
	default:
		return StateNormal, fmt.Errorf("unknown client state %q", s)
	}
}

// Client is one managed window.
type Client struct {
	Window WindowID
	State  ClientState
}

// NewClient creates a tiled client for a window.
func NewClient(w WindowID) *Client {
	return &Client{Window: w, State: StateNormal}
}

// Tiled reports whether the client's rectangle comes from the tree.
func (c *Client) Tiled() bool {
	return c != nil && c.State == StateNormal
}
