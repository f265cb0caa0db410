package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ContentRegistry_Go/internal/content"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		cfg := defaultsForTest(t)

		assert.Equal(t, ".", cfg.ContentDir)
		assert.Empty(t, cfg.ContentSource)
		assert.False(t, cfg.ContentStrict)
		assert.Equal(t, content.BuildingFileName, cfg.BuildingFile)
		assert.Equal(t, content.ResourcesFileName, cfg.ResourcesFile)
		assert.Equal(t, content.ComponentsFileName, cfg.ComponentsFile)
		assert.Equal(t, content.FoodsFileName, cfg.FoodsFile)
		assert.Equal(t, content.CropsFileName, cfg.CropsFile)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "content-registry", cfg.ServiceName)
		assert.Empty(t, cfg.MetricsFile)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("CONTENT_DIR", dir)
		t.Setenv("CONTENT_STRICT", "true")
		t.Setenv("CONTENT_FOODS_FILE", "meals.json")
		t.Setenv("CONTENT_BUILDING_FILE", "building.json")
		t.Setenv("CONTENT_RESOURCES_FILE", "resources.json")
		t.Setenv("CONTENT_COMPONENTS_FILE", "components.json")
		t.Setenv("CONTENT_CROPS_FILE", "crops.json")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("SERVICE_NAME", "content-registry")
		t.Setenv("VERSION", "1.2.3")
		t.Setenv("CONTENT_SOURCE", "")
		t.Setenv("METRICS_FILE", "/tmp/content.prom")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, dir, cfg.ContentDir)
		assert.True(t, cfg.ContentStrict)
		assert.Equal(t, "meals.json", cfg.FoodsFile)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, "1.2.3", cfg.Version)
		assert.Equal(t, "/tmp/content.prom", cfg.MetricsFile)
	})

	t.Run("rejects invalid strict flag", func(t *testing.T) {
		t.Setenv("CONTENT_STRICT", "maybe")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse environment")
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := defaultsForTest(t)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := defaultsForTest(t)
		cfg.LogLevel = "verbose"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid LOG_LEVEL")
	})

	t.Run("invalid log format", func(t *testing.T) {
		cfg := defaultsForTest(t)
		cfg.LogFormat = "xml"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid LOG_FORMAT")
	})

	t.Run("empty file name", func(t *testing.T) {
		cfg := defaultsForTest(t)
		cfg.CropsFile = "  "

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CONTENT_CROPS_FILE")
	})
}

func TestWarnings(t *testing.T) {
	t.Run("missing content dir", func(t *testing.T) {
		cfg := defaultsForTest(t)
		cfg.ContentDir = filepath.Join(t.TempDir(), "nope")

		warnings := cfg.Warnings()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "does not exist")
	})

	t.Run("missing dir is fine with a source", func(t *testing.T) {
		cfg := defaultsForTest(t)
		cfg.ContentDir = filepath.Join(t.TempDir(), "nope")
		cfg.ContentSource = "./testdata"

		assert.Empty(t, cfg.Warnings())
	})

	t.Run("source into an existing directory", func(t *testing.T) {
		cfg := defaultsForTest(t)
		cfg.ContentSource = "./testdata"

		warnings := cfg.Warnings()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "replace same-named files")
		assert.Contains(t, warnings[0], `"."`)
	})

	t.Run("source into a symlinked directory", func(t *testing.T) {
		link := filepath.Join(t.TempDir(), "content")
		require.NoError(t, os.Symlink(t.TempDir(), link))

		cfg := defaultsForTest(t)
		cfg.ContentDir = link
		cfg.ContentSource = "./testdata"

		assert.Empty(t, cfg.Warnings())
	})

	t.Run("strict outside dev", func(t *testing.T) {
		cfg := defaultsForTest(t)
		cfg.ContentDir = t.TempDir()
		cfg.ContentStrict = true
		cfg.Environment = "prod"

		warnings := cfg.Warnings()
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "CONTENT_STRICT")
	})
}

func TestResolvePath(t *testing.T) {
	cfg := &Config{ContentDir: "data"}

	assert.Equal(t, filepath.Join("data", "crops.json"), cfg.ResolvePath("crops.json"))

	abs := filepath.Join(t.TempDir(), "crops.json")
	assert.Equal(t, abs, cfg.ResolvePath(abs))
}

func TestIsDevelopment(t *testing.T) {
	assert.True(t, (&Config{Environment: "dev"}).IsDevelopment())
	assert.True(t, (&Config{Environment: "development"}).IsDevelopment())
	assert.False(t, (&Config{Environment: "prod"}).IsDevelopment())
}
