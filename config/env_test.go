package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/b-harvest/evm-network-profiles/config"
)

func clearEnv(t *testing.T) {
	t.Helper()

	// empty values count as unset
	t.Setenv("CHAIN_ID", "")
	t.Setenv("ETHRPC", "")
	t.Setenv("ETHERSCAN_API", "")
}

func writeDotenv(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEnvUnset(t *testing.T) {
	clearEnv(t)

	env, err := config.LoadEnv("", nil)
	require.NoError(t, err)
	require.Equal(t, config.Env{}, env)

	cfg, err := config.Build(env, config.DefaultSettings())
	require.NoError(t, err)
	require.Equal(t, uint64(888), cfg.Networks[config.NetworkSimulated].ChainID)
	require.Len(t, cfg.Networks[config.NetworkSimulated].Accounts, 3)

	_, ok := cfg.Networks[config.NetworkPublicTest].Endpoint.URL()
	require.False(t, ok)
}

func TestLoadEnvFromProcess(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHAIN_ID", "1337")
	t.Setenv("ETHRPC", "https://rpc.example.org")
	t.Setenv("ETHERSCAN_API", "ABC")

	env, err := config.LoadEnv("", nil)
	require.NoError(t, err)
	require.Equal(t, config.Env{
		ChainID:         "1337",
		EthRPC:          "https://rpc.example.org",
		EtherscanAPIKey: "ABC",
	}, env)

	cfg, err := config.Build(env, config.DefaultSettings())
	require.NoError(t, err)
	require.Equal(t, uint64(1337), cfg.Networks[config.NetworkSimulated].ChainID)
	require.Equal(t, uint64(1337), cfg.Networks[config.NetworkLocalExternal].ChainID)
}

func TestLoadEnvDotenv(t *testing.T) {
	clearEnv(t)
	path := writeDotenv(t, "CHAIN_ID=4242\nETHERSCAN_API=FROMFILE\n")

	env, err := config.LoadEnv(path, nil)
	require.NoError(t, err)
	require.Equal(t, "4242", env.ChainID)
	require.Equal(t, "FROMFILE", env.EtherscanAPIKey)
	require.Empty(t, env.EthRPC)
}

func TestLoadEnvProcessWinsOverDotenv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHAIN_ID", "7")
	path := writeDotenv(t, "CHAIN_ID=4242\n")

	env, err := config.LoadEnv(path, nil)
	require.NoError(t, err)
	require.Equal(t, "7", env.ChainID)
}

func TestLoadEnvMissingDotenv(t *testing.T) {
	clearEnv(t)

	_, err := config.LoadEnv(filepath.Join(t.TempDir(), ".env"), nil)
	require.NoError(t, err)
}

func TestLoadEnvFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHAIN_ID", "7")

	fs := config.EnvFlagSet()
	require.NoError(t, fs.Parse([]string{"--chain-id", "99", "--eth-rpc", "http://node:8545"}))

	env, err := config.LoadEnv("", fs)
	require.NoError(t, err)
	require.Equal(t, "99", env.ChainID)
	require.Equal(t, "http://node:8545", env.EthRPC)
}

func TestLoadEnvUnchangedFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("CHAIN_ID", "7")

	fs := config.EnvFlagSet()
	require.NoError(t, fs.Parse(nil))

	env, err := config.LoadEnv("", fs)
	require.NoError(t, err)
	require.Equal(t, "7", env.ChainID)
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	dotenv := writeDotenv(t, "CHAIN_ID=31337\nETHRPC=https://rpc.example.org\n")

	cfg, err := config.Load(dotenv, filepath.Join(t.TempDir(), "networks.toml"))
	require.NoError(t, err)
	require.Equal(t, uint64(31337), cfg.Networks[config.NetworkSimulated].ChainID)

	url, err := cfg.Networks[config.NetworkPublicTest].Endpoint.Require()
	require.NoError(t, err)
	require.Equal(t, "https://rpc.example.org", url)
}
