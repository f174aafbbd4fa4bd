package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("DEFAULTS", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		require.Equal(t, ":8080", cfg.Server.Address)
		require.Equal(t, 0.2, cfg.Contract.Sigma)
		require.Equal(t, 50, cfg.Contract.Steps)
		require.Equal(t, 12, cfg.Contract.Order)
		require.Equal(t, 100000, cfg.Contract.Paths)
	})

	t.Run("FILE_OVERRIDES", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		raw := "server:\n  address: \":9090\"\ncontract:\n  sigma: 0.35\n  paths: 5000\n"
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, ":9090", cfg.Server.Address)
		require.Equal(t, 0.35, cfg.Contract.Sigma)
		require.Equal(t, 5000, cfg.Contract.Paths)
		// Untouched fields keep their defaults.
		require.Equal(t, 40.0, cfg.Contract.Strike)
	})

	t.Run("INVALID_VALUES", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		raw := "contract:\n  sigma: -0.1\n"
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})

	t.Run("MISSING_FILE", func(t *testing.T) {
		_, err := LoadConfig("does-not-exist.yaml")
		require.Error(t, err)
	})
}

func TestConfigParams(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	p := cfg.Params()
	require.Equal(t, 0.2, p.Sigma)
	require.Equal(t, 40.0, p.Strike)
	require.Equal(t, 36.0, p.Spot)
	require.Equal(t, 50, p.Steps)
}
