package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupResult(t *testing.T) {
	assert.Equal(t, "hit", LookupResult(true))
	assert.Equal(t, "miss", LookupResult(false))
}

func TestWriteTextfile(t *testing.T) {
	RecordsLoaded.WithLabelValues("crop").Set(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(RecordsLoaded.WithLabelValues("crop")))

	path := filepath.Join(t.TempDir(), "content.prom")
	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `content_records_loaded{category="crop"} 3`)
}

func TestWriteTextfile_BadPath(t *testing.T) {
	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "content.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write metrics textfile")
}
