package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebok-dev/sebok/internal/config"
)

func TestParseBool(t *testing.T) {
	for _, token := range []string{"True", "true", "1"} {
		got, err := config.ParseBool(token)
		require.NoError(t, err, token)
		assert.True(t, got, token)
	}

	for _, token := range []string{"False", "false", "0"} {
		got, err := config.ParseBool(token)
		require.NoError(t, err, token)
		assert.False(t, got, token)
	}
}

func TestParseBool_RejectsLooseTokens(t *testing.T) {
	for _, token := range []string{"", "yes", "no", "TRUE", "FALSE", "t", "on", "2"} {
		_, err := config.ParseBool(token)
		assert.Error(t, err, token)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "sv_SE", cfg.SEB.Locale)
	assert.Equal(t, "false", cfg.SEB.Brief)
	assert.Equal(t, 8080, cfg.App.Port)
}
