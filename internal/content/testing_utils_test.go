package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeContent writes a content file into dir and returns its path
func writeContent(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

// copyTestdata copies the sample content files into a fresh temp dir
func copyTestdata(t *testing.T, skip ...string) string {
	t.Helper()

	dir := t.TempDir()
	entries, err := os.ReadDir("testdata")
	require.NoError(t, err)

	for _, entry := range entries {
		if contains(skip, entry.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join("testdata", entry.Name()))
		require.NoError(t, err)
		writeContent(t, dir, entry.Name(), string(data))
	}
	return dir
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
