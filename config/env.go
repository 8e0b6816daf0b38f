package config

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultDotenvPath is read on startup when it exists.
const DefaultDotenvPath = ".env"

// Environment keys. Viper upper-cases them when looking up the process
// environment, so they match CHAIN_ID, ETHRPC and ETHERSCAN_API.
const (
	EnvChainID      = "chain_id"
	EnvEthRPC       = "ethrpc"
	EnvEtherscanAPI = "etherscan_api"
)

// Flags that override the environment.
const (
	FlagChainID = "chain-id"
	FlagEthRPC  = "eth-rpc"
)

// Env holds the raw environment inputs. Empty means unset.
type Env struct {
	ChainID         string
	EthRPC          string
	EtherscanAPIKey string
}

// EnvFlagSet returns the flags that can override the environment.
func EnvFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("", pflag.ContinueOnError)

	fs.String(FlagChainID, "", "Chain id of the simulated and local-external networks (overrides $CHAIN_ID)")
	fs.String(FlagEthRPC, "", "RPC endpoint of the public-test network (overrides $ETHRPC)")

	return fs
}

// LoadEnv reads the environment inputs. Values from the dotenv file are used
// only when the process environment does not set them, and flags in fs win
// over both. fs may be nil.
func LoadEnv(dotenvPath string, fs *pflag.FlagSet) (Env, error) {
	v := viper.New()
	v.AutomaticEnv()

	if dotenvPath != "" {
		if _, err := os.Stat(dotenvPath); err == nil {
			v.SetConfigFile(dotenvPath)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return Env{}, fmt.Errorf("read %s: %w", dotenvPath, err)
			}
		} else if !os.IsNotExist(err) {
			return Env{}, err
		}
	}

	if fs != nil {
		if f := fs.Lookup(FlagChainID); f != nil {
			if err := v.BindPFlag(EnvChainID, f); err != nil {
				return Env{}, err
			}
		}
		if f := fs.Lookup(FlagEthRPC); f != nil {
			if err := v.BindPFlag(EnvEthRPC, f); err != nil {
				return Env{}, err
			}
		}
	}

	return Env{
		ChainID:         v.GetString(EnvChainID),
		EthRPC:          v.GetString(EnvEthRPC),
		EtherscanAPIKey: v.GetString(EnvEtherscanAPI),
	}, nil
}
