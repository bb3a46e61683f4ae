package entity

import (
	"fmt"
	"strings"
)

// LayoutMode selects how a desktop's tree is turned into rectangles.
type LayoutMode uint8

const (
	LayoutDefault LayoutMode = iota
	LayoutMaster
	LayoutStack
	LayoutGrid
)

// LayoutModes lists every selectable mode in display order.
var LayoutModes = []LayoutMode{LayoutDefault, LayoutMaster, LayoutStack, LayoutGrid}

func (m LayoutMode) String() string {
	switch m {
	case LayoutDefault:
		return "default"
	case LayoutMaster:
		return "master"
	case LayoutStack:
		return "stack"
	case LayoutGrid:
		return "grid"
	default:
		return fmt.Sprintf("layout(%d)", uint8(m))
	}
}

// ParseLayoutMode accepts the lowercase mode names used in config files.
func ParseLayoutMode(s string) (LayoutMode, error) {
	for _, m := range LayoutModes {
		if strings.EqualFold(strings.TrimSpace(s), m.String()) {
			return m, nil
		}
	}
	return LayoutDefault, fmt.Errorf("unknown layout mode %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (m LayoutMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *LayoutMode) UnmarshalText(b []byte) error {
	parsed, err := ParseLayoutMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ResizeKind is the direction of an interactive resize step.
type ResizeKind uint8

const (
	ResizeGrow ResizeKind = iota
	ResizeShrink
)

func (k ResizeKind) String() string {
	if k == ResizeShrink {
		return "shrink"
	}
	return "grow"
}

// ParseResizeKind accepts "grow" or "shrink".
func ParseResizeKind(s string) (ResizeKind, error) {
	switch strings.ToLower(s) {
	case "grow":
		return ResizeGrow, nil
	case "shrink":
		return ResizeShrink, nil
	default:
		return ResizeGrow, fmt.Errorf("unknown resize kind %q", s)
	}
}
