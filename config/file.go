package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pelletier/go-toml"
)

var DefaultConfigPath = "networks.toml"

const (
	DefaultSolidityVersion = "0.8.10"
	DefaultLocalURL        = "http://127.0.0.1:8545"
	DefaultMiningInterval  = 3 * time.Second
)

// Settings are the static parts of the configuration. They can be changed
// through the settings file, e.g.
//
//	[solidity]
//	version = "0.8.10"
//	optimizer = true
//
//	[paths]
//	sources = "./contracts"
//	artifacts = "./artifacts"
//
//	[local]
//	url = "http://127.0.0.1:8545"
//
//	[simulated]
//	mining_interval_ms = 3000
type Settings struct {
	Solidity       SolidityConfig
	Paths          PathsConfig
	LocalURL       string
	MiningInterval time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		Solidity: SolidityConfig{
			Version:          DefaultSolidityVersion,
			OptimizerEnabled: true,
		},
		Paths: PathsConfig{
			Sources:   "./contracts",
			Artifacts: "./artifacts",
		},
		LocalURL:       DefaultLocalURL,
		MiningInterval: DefaultMiningInterval,
	}
}

// Read reads the settings file at path on top of DefaultSettings. A missing
// file yields the defaults.
func Read(path string) (Settings, error) {
	settings := DefaultSettings()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return settings, nil
	}

	tree, err := toml.LoadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("load %s: %w", path, err)
	}

	if err := apply(tree, &settings); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return settings, nil
}

func apply(tree *toml.Tree, s *Settings) error {
	var err error
	if err = setString(tree, "solidity.version", &s.Solidity.Version); err != nil {
		return err
	}
	if err = setBool(tree, "solidity.optimizer", &s.Solidity.OptimizerEnabled); err != nil {
		return err
	}
	if err = setString(tree, "paths.sources", &s.Paths.Sources); err != nil {
		return err
	}
	if err = setString(tree, "paths.artifacts", &s.Paths.Artifacts); err != nil {
		return err
	}
	if err = setString(tree, "local.url", &s.LocalURL); err != nil {
		return err
	}

	if !tree.Has("simulated.mining_interval_ms") {
		return nil
	}
	ms, ok := tree.Get("simulated.mining_interval_ms").(int64)
	if !ok || ms <= 0 || ms > math.MaxInt64/int64(time.Millisecond) {
		return fmt.Errorf("simulated.mining_interval_ms must be a positive integer of at most %d", math.MaxInt64/int64(time.Millisecond))
	}
	s.MiningInterval = time.Duration(ms) * time.Millisecond
	return nil
}

func setString(tree *toml.Tree, key string, dst *string) error {
	if !tree.Has(key) {
		return nil
	}
	v, ok := tree.Get(key).(string)
	if !ok {
		return fmt.Errorf("%s must be a string", key)
	}
	*dst = v
	return nil
}

func setBool(tree *toml.Tree, key string, dst *bool) error {
	if !tree.Has(key) {
		return nil
	}
	v, ok := tree.Get(key).(bool)
	if !ok {
		return fmt.Errorf("%s must be a boolean", key)
	}
	*dst = v
	return nil
}
