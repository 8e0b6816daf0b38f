package codec

import (
	"encoding/json"
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/b-harvest/evm-network-profiles/config"
)

// Output formats understood by Marshal.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Document is the shape of the configuration read by the deployment toolchain.
type Document struct {
	Solidity  Solidity           `json:"solidity"`
	Networks  map[string]Network `json:"networks"`
	Etherscan Etherscan          `json:"etherscan"`
	Paths     Paths              `json:"paths"`
}

type Solidity struct {
	Version  string           `json:"version"`
	Settings SoliditySettings `json:"settings"`
}

type SoliditySettings struct {
	Optimizer Optimizer `json:"optimizer"`
}

type Optimizer struct {
	Enabled bool `json:"enabled"`
}

type Network struct {
	ChainID  uint64  `json:"chainId,omitempty"`
	URL      string  `json:"url,omitempty"`
	Accounts any     `json:"accounts"`
	Mining   *Mining `json:"mining,omitempty"`
}

// Account balances are strings since they overflow float64 precision.
type Account struct {
	PrivateKey string `json:"privateKey"`
	Balance    string `json:"balance"`
}

type Mining struct {
	// Interval in milliseconds.
	Interval int64 `json:"interval"`
}

type Etherscan struct {
	APIKey string `json:"apiKey,omitempty"`
}

type Paths struct {
	Sources   string `json:"sources"`
	Artifacts string `json:"artifacts"`
}

// NewDocument converts the resolved configuration into its exported form.
func NewDocument(cfg *config.Config) Document {
	doc := Document{
		Solidity: Solidity{
			Version: cfg.Solidity.Version,
			Settings: SoliditySettings{
				Optimizer: Optimizer{Enabled: cfg.Solidity.OptimizerEnabled},
			},
		},
		Networks:  make(map[string]Network, len(cfg.Networks)),
		Etherscan: Etherscan{APIKey: cfg.Etherscan.APIKey},
		Paths: Paths{
			Sources:   cfg.Paths.Sources,
			Artifacts: cfg.Paths.Artifacts,
		},
	}

	for name, p := range cfg.Networks {
		n := Network{ChainID: p.ChainID}
		if url, ok := p.Endpoint.URL(); ok {
			n.URL = url
		}

		if len(p.Accounts) > 0 {
			accounts := make([]Account, 0, len(p.Accounts))
			for _, acc := range p.Accounts {
				accounts = append(accounts, Account{
					PrivateKey: acc.PrivateKey,
					Balance:    acc.Balance.String(),
				})
			}
			n.Accounts = accounts
		} else {
			n.Accounts = p.Keys()
		}

		if p.Mining != nil {
			n.Mining = &Mining{Interval: p.Mining.Interval.Milliseconds()}
		}
		doc.Networks[name] = n
	}

	return doc
}

// Marshal encodes the configuration in the given format.
func Marshal(cfg *config.Config, format string) ([]byte, error) {
	doc := NewDocument(cfg)

	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
