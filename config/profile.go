package config

import (
	"time"
)

// Network names understood by the deployment toolchain.
const (
	NetworkSimulated     = "simulated"
	NetworkLocalExternal = "local-external"
	NetworkPublicTest    = "public-test"
)

// MiningConfig makes the simulated chain produce a block on every interval,
// empty or not.
type MiningConfig struct {
	Interval time.Duration
}

// NetworkProfile is everything the toolchain needs to deploy to one network.
type NetworkProfile struct {
	Name string
	// ChainID is zero when the network's own identifier is trusted.
	ChainID  uint64
	Endpoint Endpoint
	// Accounts are funded by the embedded simulator at genesis.
	Accounts []AccountFixture
	// PrivateKeys are used against remote nodes which keep their own balances.
	PrivateKeys []string
	Mining      *MiningConfig
}

func (p NetworkProfile) HasChainID() bool {
	return p.ChainID != 0
}

// Keys returns the ordered signing keys of the profile regardless of whether
// they come with balances.
func (p NetworkProfile) Keys() []string {
	if len(p.Accounts) > 0 {
		keys := make([]string, 0, len(p.Accounts))
		for _, acc := range p.Accounts {
			keys = append(keys, acc.PrivateKey)
		}
		return keys
	}

	keys := make([]string, len(p.PrivateKeys))
	copy(keys, p.PrivateKeys)
	return keys
}

// Account returns the fixture at the given position, e.g. 0 for val0.
func (p NetworkProfile) Account(i int) (AccountFixture, bool) {
	keys := p.Keys()
	if i < 0 || i >= len(keys) {
		return AccountFixture{}, false
	}
	if len(p.Accounts) > 0 {
		return p.Accounts[i], true
	}
	return AccountFixture{PrivateKey: keys[i]}, true
}

func simulatedProfile(chainID uint64, interval time.Duration) NetworkProfile {
	return NetworkProfile{
		Name:     NetworkSimulated,
		ChainID:  chainID,
		Endpoint: EmbeddedEndpoint(),
		Accounts: TestAccounts(),
		Mining:   &MiningConfig{Interval: interval},
	}
}

func localExternalProfile(chainID uint64, url string) NetworkProfile {
	return NetworkProfile{
		Name:        NetworkLocalExternal,
		ChainID:     chainID,
		Endpoint:    RemoteEndpoint(url),
		PrivateKeys: PrivateKeys(),
	}
}

func publicTestProfile(url string) NetworkProfile {
	return NetworkProfile{
		Name:        NetworkPublicTest,
		Endpoint:    RemoteEndpoint(url),
		PrivateKeys: PrivateKeys(),
	}
}
