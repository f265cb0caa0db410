package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleContentDir = "../../configs/content"

func TestRegistry(t *testing.T) {
	r := newCommandRegistry()

	names := make([]string, 0)
	for _, cmd := range r.List() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"bench", "dump", "fetch", "validate"}, names)

	cmd, ok := r.Get("validate")
	require.True(t, ok)
	assert.IsType(t, &ValidateCommand{}, cmd)

	_, ok = r.Get("migrate")
	assert.False(t, ok)

	var buf bytes.Buffer
	r.PrintHelp(&buf)
	assert.Contains(t, buf.String(), "Usage: devtool <command>")
	assert.Contains(t, buf.String(), "  dump      Print the loaded records")
}

func TestLoggerConfig(t *testing.T) {
	cfg := loggerConfig()

	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "devtool", cfg.ServiceName)
	assert.Equal(t, "dev", cfg.Environment)
	assert.False(t, cfg.AddSource)
}

func TestContentDirArg(t *testing.T) {
	assert.Equal(t, ".", contentDirArg(nil, 0))
	assert.Equal(t, ".", contentDirArg([]string{"food", ""}, 1))
	assert.Equal(t, "data", contentDirArg([]string{"food", "data"}, 1))
}

func TestValidateCommand(t *testing.T) {
	t.Run("sample content is valid", func(t *testing.T) {
		assert.NoError(t, (&ValidateCommand{}).Run([]string{sampleContentDir}))
	})

	t.Run("missing and invalid files fail", func(t *testing.T) {
		dir := t.TempDir()
		copySample(t, dir)
		require.NoError(t, os.Remove(filepath.Join(dir, "foods.json")))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "crops.json"),
			[]byte(`[{"id":"potato","name":"Potato"}]`), 0644))

		err := (&ValidateCommand{}).Run([]string{dir})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 of 5 content files failed validation")
	})
}

func TestDumpCommand(t *testing.T) {
	t.Run("prints records sorted by id", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := &DumpCommand{out: &buf}
		require.NoError(t, cmd.Run([]string{"crops", sampleContentDir}))

		var got []map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "potato", got[0]["id"])
		assert.Equal(t, float64(600), got[0]["growTime"])
		assert.Equal(t, "wheat", got[1]["id"])
	})

	t.Run("unknown category", func(t *testing.T) {
		err := (&DumpCommand{out: &bytes.Buffer{}}).Run([]string{"vehicles"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown category")
	})

	t.Run("failed category is reported", func(t *testing.T) {
		err := (&DumpCommand{out: &bytes.Buffer{}}).Run([]string{"food", t.TempDir()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "foods.json")
	})

	t.Run("missing argument", func(t *testing.T) {
		assert.Error(t, (&DumpCommand{}).Run(nil))
	})
}

func TestFetchCommand(t *testing.T) {
	assert.Error(t, (&FetchCommand{}).Run([]string{"only-source"}))

	dst := filepath.Join(t.TempDir(), "content")
	require.NoError(t, (&FetchCommand{}).Run([]string{sampleContentDir, dst}))

	_, err := os.Stat(filepath.Join(dst, "building.json"))
	assert.NoError(t, err)
}

func TestBenchCommand_UnknownSubcommand(t *testing.T) {
	err := (&BenchCommand{}).Run([]string{"explode"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown subcommand")
}

func copySample(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(sampleContentDir)
	require.NoError(t, err)
	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(sampleContentDir, entry.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, entry.Name()), data, 0644))
	}
}
