package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/b-harvest/evm-network-profiles/config"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "networks.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadMissingFile(t *testing.T) {
	settings, err := config.Read(filepath.Join(t.TempDir(), "networks.toml"))
	require.NoError(t, err)
	require.Equal(t, config.DefaultSettings(), settings)
}

func TestReadOverrides(t *testing.T) {
	path := writeSettings(t, `
[solidity]
version = "0.8.20"
optimizer = false

[local]
url = "http://localhost:7545"

[simulated]
mining_interval_ms = 1000
`)

	settings, err := config.Read(path)
	require.NoError(t, err)
	require.Equal(t, "0.8.20", settings.Solidity.Version)
	require.False(t, settings.Solidity.OptimizerEnabled)
	require.Equal(t, "http://localhost:7545", settings.LocalURL)
	require.Equal(t, time.Second, settings.MiningInterval)

	// untouched keys keep their defaults
	require.Equal(t, "./contracts", settings.Paths.Sources)
	require.Equal(t, "./artifacts", settings.Paths.Artifacts)

	cfg, err := config.Build(config.Env{}, settings)
	require.NoError(t, err)
	url, _ := cfg.Networks[config.NetworkLocalExternal].Endpoint.URL()
	require.Equal(t, "http://localhost:7545", url)
	require.Equal(t, time.Second, cfg.Networks[config.NetworkSimulated].Mining.Interval)
}

func TestReadInvalid(t *testing.T) {
	for _, content := range []string{
		"[solidity]\nversion = 10\n",
		"[solidity]\noptimizer = \"yes\"\n",
		"[simulated]\nmining_interval_ms = 0\n",
		"[simulated]\nmining_interval_ms = 10000000000000\n",
		"[simulated\n",
	} {
		_, err := config.Read(writeSettings(t, content))
		require.Error(t, err, content)
	}
}
