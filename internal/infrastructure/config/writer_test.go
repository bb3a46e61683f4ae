package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered_SortedAndReadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Layout.Gap = 6
	cfg.Desktops.Names = []string{"web", "code"}

	require.NoError(t, WriteConfigOrdered(cfg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var tables []string
	for _, line := range strings.Split(string(content), "\n") {
		if m := tableHeader.FindStringSubmatch(line); m != nil {
			tables = append(tables, m[1])
		}
	}
	assert.Equal(t, []string{"database", "desktops", "layout", "logging", "snapshots"}, tables)

	back, err := ReadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, back.Layout.Gap)
	assert.Equal(t, []string{"web", "code"}, back.Desktops.Names)
	assert.Equal(t, cfg.Logging, back.Logging)
	assert.Equal(t, cfg.Snapshots, back.Snapshots)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestReadConfigFile_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[layout]\ngutter = 3\n"), 0o644))

	_, err := ReadConfigFile(path)
	assert.Error(t, err)
}

func TestSortTOMLTables(t *testing.T) {
	in := "top = 1\n[z]\nx = 1\n[a]\ny = 2\n"

	assert.Equal(t, "top = 1\n\n[a]\ny = 2\n\n[z]\nx = 1\n", sortTOMLTables(in))
	assert.Equal(t, "", sortTOMLTables(""))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)
	require.True(t, json.Valid(data))

	s := string(data)
	assert.Contains(t, s, schemaID)
	assert.Contains(t, s, `"master_ratio"`)
	assert.Contains(t, s, `"snapshots"`)
}

func TestGenerateSchemaFile(t *testing.T) {
	dir := isolateXDG(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config", "bsptile"), 0o755))

	path, err := GenerateSchemaFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config", "bsptile", "config.schema.json"), path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
