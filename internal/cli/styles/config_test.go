package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bsptile/internal/cli/styles"
)

func TestConfigRenderer_RenderPaths(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderPaths([]styles.PathEntry{
		{Label: "Config", Path: "/tmp/bsptile/config.toml", Icon: styles.IconConfig},
		{Label: "Database", Path: "", Icon: styles.IconFolder},
	})
	require.Contains(t, out, "config.toml")
	assert.Contains(t, out, "Database")
	assert.Contains(t, out, "(not set)")
}

func TestConfigRenderer_Messages(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderSchemaWritten("/tmp/schema.json"), "schema.json")
	assert.Contains(t, r.RenderError(errors.New("bad gap")), "bad gap")
	assert.Contains(t, r.RenderReloaded(12, "grid", 4), "grid")
	assert.Contains(t, r.RenderWatching("/tmp/config.toml"), "/tmp/config.toml")
}
