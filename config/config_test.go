package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/b-harvest/evm-network-profiles/config"
)

func build(t *testing.T, env config.Env) *config.Config {
	t.Helper()

	cfg, err := config.Build(env, config.DefaultSettings())
	require.NoError(t, err)
	return cfg
}

func TestBuildDefaults(t *testing.T) {
	cfg := build(t, config.Env{})

	require.Equal(t, []string{config.NetworkLocalExternal, config.NetworkPublicTest, config.NetworkSimulated}, cfg.NetworkNames())
	require.Equal(t, "0.8.10", cfg.Solidity.Version)
	require.True(t, cfg.Solidity.OptimizerEnabled)
	require.Equal(t, "./contracts", cfg.Paths.Sources)
	require.Equal(t, "./artifacts", cfg.Paths.Artifacts)

	sim, err := cfg.Network(config.NetworkSimulated)
	require.NoError(t, err)
	require.Equal(t, uint64(888), sim.ChainID)
	require.True(t, sim.Endpoint.Embedded())
	require.Len(t, sim.Accounts, 3)
	for _, acc := range sim.Accounts {
		require.Equal(t, "100000000000000000000000000", acc.Balance.String())
	}
	require.NotNil(t, sim.Mining)
	require.Equal(t, 3000*time.Millisecond, sim.Mining.Interval)

	local, err := cfg.Network(config.NetworkLocalExternal)
	require.NoError(t, err)
	require.Equal(t, uint64(888), local.ChainID)
	url, ok := local.Endpoint.URL()
	require.True(t, ok)
	require.Equal(t, "http://127.0.0.1:8545", url)
	require.Empty(t, local.Accounts)
	require.Nil(t, local.Mining)
}

func TestBuildChainIDOverride(t *testing.T) {
	cfg := build(t, config.Env{ChainID: "1337"})

	require.Equal(t, uint64(1337), cfg.Networks[config.NetworkSimulated].ChainID)
	require.Equal(t, uint64(1337), cfg.Networks[config.NetworkLocalExternal].ChainID)
	require.False(t, cfg.Networks[config.NetworkPublicTest].HasChainID())
}

func TestBuildInvalidChainID(t *testing.T) {
	_, err := config.Build(config.Env{ChainID: "mainnet"}, config.DefaultSettings())
	require.ErrorIs(t, err, config.ErrInvalidChainID)
}

func TestBuildKeysShared(t *testing.T) {
	cfg := build(t, config.Env{EthRPC: "https://rpc.example.org"})

	expected := config.PrivateKeys()
	for _, name := range cfg.NetworkNames() {
		require.Equal(t, expected, cfg.Networks[name].Keys(), name)
	}
}

func TestBuildMiningOnlySimulated(t *testing.T) {
	cfg := build(t, config.Env{})

	require.NotNil(t, cfg.Networks[config.NetworkSimulated].Mining)
	require.Nil(t, cfg.Networks[config.NetworkLocalExternal].Mining)
	require.Nil(t, cfg.Networks[config.NetworkPublicTest].Mining)
}

func TestBuildPublicTestWithoutURL(t *testing.T) {
	cfg := build(t, config.Env{})

	public, err := cfg.Network(config.NetworkPublicTest)
	require.NoError(t, err)

	_, ok := public.Endpoint.URL()
	require.False(t, ok)

	_, err = public.Endpoint.Require()
	require.ErrorIs(t, err, config.ErrMissingEndpoint)
}

func TestBuildPublicTestURL(t *testing.T) {
	cfg := build(t, config.Env{EthRPC: "https://goerli.example.org"})

	url, err := cfg.Networks[config.NetworkPublicTest].Endpoint.Require()
	require.NoError(t, err)
	require.Equal(t, "https://goerli.example.org", url)
}

func TestEtherscan(t *testing.T) {
	_, err := build(t, config.Env{}).Etherscan.Require()
	require.ErrorIs(t, err, config.ErrMissingAPIKey)

	key, err := build(t, config.Env{EtherscanAPIKey: "KEY"}).Etherscan.Require()
	require.NoError(t, err)
	require.Equal(t, "KEY", key)
}

func TestUnknownNetwork(t *testing.T) {
	_, err := build(t, config.Env{}).Network("mainnet")
	require.ErrorIs(t, err, config.ErrUnknownNetwork)
}

func TestProfileAccount(t *testing.T) {
	cfg := build(t, config.Env{})

	for _, name := range cfg.NetworkNames() {
		acc, ok := cfg.Networks[name].Account(2)
		require.True(t, ok)
		require.Equal(t, config.PrivateKeys()[2], acc.PrivateKey)

		_, ok = cfg.Networks[name].Account(3)
		require.False(t, ok)
	}
}

func TestEmbeddedEndpointRequire(t *testing.T) {
	_, err := config.EmbeddedEndpoint().Require()
	require.ErrorIs(t, err, config.ErrEmbeddedNetwork)
}
