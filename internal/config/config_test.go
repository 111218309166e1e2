package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "pantry.db", cfg.Store.Path)
	assert.Equal(t, "recipes.yaml", cfg.Recipes.CatalogPath)
	assert.Equal(t, "substitutions.yaml", cfg.Recipes.SubstitutionsPath)
	assert.InDelta(t, 0.6, cfg.Scoring.Threshold, 0.001)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
store:
  driver: memory
recipes:
  catalog_path: /data/recipes.yaml
scoring:
  threshold: 0.8
expiry:
  shelf_life_days:
    Tomato: 10
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "/data/recipes.yaml", cfg.Recipes.CatalogPath)
	assert.InDelta(t, 0.8, cfg.Scoring.Threshold, 0.001)
	assert.Equal(t, 10, cfg.Expiry.ShelfLifeDays["Tomato"])
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	// Defaults still apply for unset values
	assert.Equal(t, "substitutions.yaml", cfg.Recipes.SubstitutionsPath)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
store:
  driver: sqlite
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	t.Setenv("PANTRY_STORE_DRIVER", "memory")
	t.Setenv("PANTRY_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("PANTRY_STORE_PATH", "/tmp/other.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.Store.Path)
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

func validConfig() *Config {
	return &Config{
		Store:   StoreConfig{Driver: "sqlite", Path: "pantry.db"},
		Scoring: ScoringConfig{Threshold: 0.6},
	}
}

func TestValidateOK(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.Store = StoreConfig{Driver: "memory"}
	assert.NoError(t, cfg.Validate())
}

func TestValidateUnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Driver = "postgres"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store driver")
}

func TestValidateSQLiteRequiresPath(t *testing.T) {
	cfg := validConfig()
	cfg.Store.Path = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "store.path")
}

func TestValidateNegativeThreshold(t *testing.T) {
	cfg := validConfig()
	cfg.Scoring.Threshold = -0.1

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "scoring.threshold")
}

func TestValidateNegativeShelfLife(t *testing.T) {
	cfg := validConfig()
	cfg.Expiry.ShelfLifeDays = map[string]int{"Tomato": -1}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "shelf_life_days")
}
