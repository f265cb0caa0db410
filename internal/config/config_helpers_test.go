package config

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/require"
)

// defaultsForTest parses the envDefault tags against an empty environment.
func defaultsForTest(t *testing.T) *Config {
	t.Helper()

	cfg := &Config{}
	err := env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}})
	require.NoError(t, err)
	return cfg
}
