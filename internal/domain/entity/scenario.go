package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ScenarioOp names one step of a scripted window session.
type ScenarioOp string

const (
	OpMap      ScenarioOp = "map"
	OpUnmap    ScenarioOp = "unmap"
	OpFocus    ScenarioOp = "focus"
	OpFloat    ScenarioOp = "float"
	OpLayout   ScenarioOp = "layout"
	OpResize   ScenarioOp = "resize"
	OpTransfer ScenarioOp = "transfer"
	OpSwitch   ScenarioOp = "switch"
	OpExpect   ScenarioOp = "expect"
)

// Scenario is a scripted sequence of window events replayed against the
// tree engine without a display server.
type Scenario struct {
	Name     string            `toml:"name" json:"name"`
	Screen   Screen            `toml:"screen" json:"screen"`
	Desktops ScenarioDesktops  `toml:"desktops" json:"desktops"`
	Steps    []ScenarioStep    `toml:"steps" json:"steps"`
	Windows  map[string]string `toml:"windows,omitempty" json:"windows,omitempty"` // name -> description
}

// ScenarioDesktops sets up the desktops before the first step.
type ScenarioDesktops struct {
	Count  int        `toml:"count" json:"count"`
	Names  []string   `toml:"names" json:"names"`
	Layout LayoutMode `toml:"layout" json:"layout"`
}

// ScenarioStep is one event. Window refers to a client by a name local to
// the scenario. Desktop and Count are optional.
type ScenarioStep struct {
	Op      ScenarioOp `toml:"op" json:"op"`
	Window  string     `toml:"window,omitempty" json:"window,omitempty"`
	State   string     `toml:"state,omitempty" json:"state,omitempty"`
	Layout  string     `toml:"layout,omitempty" json:"layout,omitempty"`
	Resize  string     `toml:"resize,omitempty" json:"resize,omitempty"`
	Desktop *int       `toml:"desktop,omitempty" json:"desktop,omitempty"`
	Rect    []int      `toml:"rect,omitempty" json:"rect,omitempty"` // x, y, width, height
	Count   *int       `toml:"count,omitempty" json:"count,omitempty"`
}

func (s ScenarioStep) String() string {
	parts := []string{string(s.Op)}
	if s.Window != "" {
		parts = append(parts, s.Window)
	}
	if s.Layout != "" {
		parts = append(parts, s.Layout)
	}
	if s.Resize != "" {
		parts = append(parts, s.Resize)
	}
	if s.Desktop != nil {
		parts = append(parts, fmt.Sprintf("desktop=%d", *s.Desktop))
	}
	return strings.Join(parts, " ")
}

// ExpectedRect returns the rectangle an expect step asserts, if any.
func (s ScenarioStep) ExpectedRect() (Rectangle, bool) {
	if len(s.Rect) != 4 {
		return Rectangle{}, false
	}
	return Rectangle{
		X:      int16(s.Rect[0]),
		Y:      int16(s.Rect[1]),
		Width:  uint16(s.Rect[2]),
		Height: uint16(s.Rect[3]),
	}, true
}

// Validate checks the screen, desktop count and every step's required fields.
// All problems are reported together.
func (sc *Scenario) Validate() error {
	var errs []error
	if sc.Screen.Width == 0 || sc.Screen.Height == 0 {
		errs = append(errs, errors.New("screen width and height are required"))
	}
	if sc.Desktops.Count < 0 {
		errs = append(errs, errors.New("desktops.count must be non-negative"))
	}
	for i, step := range sc.Steps {
		if err := step.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

func (s ScenarioStep) validate() error {
	needWindow := func() error {
		if s.Window == "" {
			return fmt.Errorf("%s requires window", s.Op)
		}
		return nil
	}
	needDesktop := func() error {
		if s.Desktop == nil {
			return fmt.Errorf("%s requires desktop", s.Op)
		}
		return nil
	}

	switch s.Op {
	case OpMap:
		if err := needWindow(); err != nil {
			return err
		}
		_, err := ParseClientState(s.State)
		return err
	case OpUnmap, OpFocus, OpFloat:
		return needWindow()
	case OpLayout:
		_, err := ParseLayoutMode(s.Layout)
		return err
	case OpResize:
		_, err := ParseResizeKind(s.Resize)
		return err
	case OpTransfer:
		if err := needWindow(); err != nil {
			return err
		}
		return needDesktop()
	case OpSwitch:
		return needDesktop()
	case OpExpect:
		if s.Count == nil && len(s.Rect) == 0 {
			return errors.New("expect requires rect or count")
		}
		if len(s.Rect) > 0 {
			if len(s.Rect) != 4 {
				return fmt.Errorf("expect rect needs 4 values, got %d", len(s.Rect))
			}
			return needWindow()
		}
		return nil
	default:
		return fmt.Errorf("unknown op %q", s.Op)
	}
}
