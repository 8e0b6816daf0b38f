package config

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownNetwork = errors.New("unknown network")
	ErrMissingAPIKey  = errors.New("etherscan api key is not configured")
)

// Config is the resolved configuration handed to the compile and deploy
// toolchain. It is built once at startup and never modified.
type Config struct {
	Solidity  SolidityConfig
	Networks  map[string]NetworkProfile
	Etherscan EtherscanConfig
	Paths     PathsConfig
}

type SolidityConfig struct {
	Version          string
	OptimizerEnabled bool
}

type PathsConfig struct {
	Sources   string
	Artifacts string
}

// EtherscanConfig holds the source verification credential.
type EtherscanConfig struct {
	APIKey string
}

// Require returns the API key or ErrMissingAPIKey.
func (e EtherscanConfig) Require() (string, error) {
	if e.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	return e.APIKey, nil
}

// Build resolves the network profiles from the environment and settings.
// Only a malformed chain id fails; missing URLs and keys are reported when the
// profile is used.
func Build(env Env, settings Settings) (*Config, error) {
	chainID, err := ResolveChainID(env.ChainID)
	if err != nil {
		return nil, fmt.Errorf("resolve chain id: %w", err)
	}

	networks := map[string]NetworkProfile{
		NetworkSimulated:     simulatedProfile(chainID, settings.MiningInterval),
		NetworkLocalExternal: localExternalProfile(chainID, settings.LocalURL),
		NetworkPublicTest:    publicTestProfile(env.EthRPC),
	}

	return &Config{
		Solidity:  settings.Solidity,
		Networks:  networks,
		Etherscan: EtherscanConfig{APIKey: env.EtherscanAPIKey},
		Paths:     settings.Paths,
	}, nil
}

// Load reads the environment, the optional dotenv file and the settings file,
// and builds the configuration.
func Load(dotenvPath, settingsPath string) (*Config, error) {
	env, err := LoadEnv(dotenvPath, nil)
	if err != nil {
		return nil, err
	}

	settings, err := Read(settingsPath)
	if err != nil {
		return nil, err
	}

	return Build(env, settings)
}

// Network returns the named profile.
func (c *Config) Network(name string) (NetworkProfile, error) {
	p, ok := c.Networks[name]
	if !ok {
		return NetworkProfile{}, fmt.Errorf("%w: %s", ErrUnknownNetwork, name)
	}
	return p, nil
}

// NetworkNames returns the profile names in sorted order.
func (c *Config) NetworkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
