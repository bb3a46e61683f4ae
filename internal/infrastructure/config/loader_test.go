package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	return dir
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	dir := isolateXDG(t)
	path := filepath.Join(dir, "bsptile", "config.toml")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	_, err = os.Stat(path)
	require.NoError(t, err, "default config should be written")

	cfg := mgr.Get()
	assert.Equal(t, 10, cfg.Layout.Gap)
	assert.Equal(t, "default", cfg.Layout.DefaultMode)
	assert.InDelta(t, 0.7, cfg.Layout.MasterRatio, 1e-9)
	assert.Equal(t, 10, cfg.Desktops.Count)
	assert.Equal(t, filepath.Join(dir, "data", "bsptile", "bsptile.sqlite"), cfg.Database.Path)
	assert.Equal(t, path, mgr.GetConfigFile())
}

func TestLoad_ReadsFileAndEnvironment(t *testing.T) {
	dir := isolateXDG(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[layout]
gap = 4
default_mode = "GRID"

[desktops]
count = 3
names = [" web ", "code"]
`), 0o644))
	t.Setenv("BSPTILE_LOG_LEVEL", "debug")
	t.Setenv("BSPTILE_SNAPSHOTS_MAX_KEPT", "5")

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 4, cfg.Layout.Gap)
	assert.Equal(t, "grid", cfg.Layout.DefaultMode)
	assert.Equal(t, 3, cfg.Desktops.Count)
	assert.Equal(t, []string{"web", "code", ""}, cfg.DesktopNames())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Snapshots.MaxKept)
	assert.Equal(t, 5, cfg.Layout.ResizeStep, "unset keys keep their default")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	dir := isolateXDG(t)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[layout]\ngap = 900\nmaster_ratio = 1.5\n"), 0o644))

	mgr, err := NewManagerForFile(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.gap")
	assert.Contains(t, err.Error(), "layout.master_ratio")
}

func TestGet_ReturnsCopy(t *testing.T) {
	dir := isolateXDG(t)
	mgr, err := NewManagerForFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Layout.Gap = 99
	cfg.Desktops.Names = append(cfg.Desktops.Names, "x")

	fresh := mgr.Get()
	assert.Equal(t, 10, fresh.Layout.Gap)
	assert.Empty(t, fresh.Desktops.Names)
}

func TestSetDefaults_CoversSchemaKeys(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	var keys []string
	for _, k := range NewSchemaProvider().GetSchema() {
		keys = append(keys, k.Key)
	}
	assert.ElementsMatch(t, mgr.viper.AllKeys(), keys)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.DefaultMode = " Master "
	cfg.Logging.Level = "WARN"
	cfg.Logging.Format = "text"

	normalizeConfig(cfg)

	assert.Equal(t, "master", cfg.Layout.DefaultMode)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	cfg.Layout.DefaultMode = ""
	normalizeConfig(cfg)
	assert.Equal(t, "default", cfg.Layout.DefaultMode)
}
