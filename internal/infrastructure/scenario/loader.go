// Package scenario reads scripted window sessions from TOML files.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/bsptile/internal/domain/entity"
)

// Load reads and validates the scenario at path. A scenario without a name
// is named after its file.
func Load(path string) (*entity.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	sc, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Parse decodes a scenario, fills in the desktop defaults and validates it.
// Unknown keys are rejected so typos in step fields do not pass silently.
func Parse(r io.Reader) (*entity.Scenario, error) {
	sc := &entity.Scenario{}
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(sc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown keys:\n%s", strict.String())
		}
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	applyDefaults(sc)
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return sc, nil
}

// applyDefaults sizes the desktop list from the names when no count is
// given, and pads the names to the count.
func applyDefaults(sc *entity.Scenario) {
	d := &sc.Desktops
	if d.Count < 0 {
		return
	}
	if d.Count == 0 {
		d.Count = max(len(d.Names), 1)
	}
	for len(d.Names) < d.Count {
		d.Names = append(d.Names, "")
	}
	if len(d.Names) > d.Count {
		d.Names = d.Names[:d.Count]
	}
}
