package config

import (
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"MAXPLUS_TOLERANCE", "MAXPLUS_PRECISION", "MAXPLUS_LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1e-9, c.Tolerance)
	assert.Equal(t, 6, c.Precision)
	assert.Equal(t, "info", c.LogLevel)

	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, lvl)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAXPLUS_TOLERANCE", "0.001")
	t.Setenv("MAXPLUS_PRECISION", "-1")
	t.Setenv("MAXPLUS_LOG_LEVEL", "debug")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.001, c.Tolerance)
	assert.Equal(t, -1, c.Precision)

	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"unparsable tolerance", "MAXPLUS_TOLERANCE", "tiny"},
		{"negative tolerance", "MAXPLUS_TOLERANCE", "-1"},
		{"precision too large", "MAXPLUS_PRECISION", "40"},
		{"unknown level", "MAXPLUS_LOG_LEVEL", "chatty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}
