// Package simchain runs the simulated network profile in process.
package simchain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/eth/ethconfig"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/node"
	"github.com/ethereum/go-ethereum/params"
	"github.com/rs/zerolog"

	"github.com/b-harvest/evm-network-profiles/config"
)

var (
	ErrNotEmbedded = errors.New("network profile is not embedded")
	ErrNoMining    = errors.New("network profile has no mining interval")
)

// Backend is a simulated chain funded with the profile accounts.
type Backend struct {
	profile config.NetworkProfile
	chainID *big.Int
	sim     *simulated.Backend
	logger  zerolog.Logger

	mtx sync.Mutex
}

// New starts a simulated chain for the given embedded profile.
func New(profile config.NetworkProfile, logger zerolog.Logger) (*Backend, error) {
	if !profile.Endpoint.Embedded() {
		return nil, fmt.Errorf("%s: %w", profile.Name, ErrNotEmbedded)
	}

	alloc := make(gethtypes.GenesisAlloc, len(profile.Accounts))
	for i, acc := range profile.Accounts {
		addr, err := acc.Address()
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
		alloc[addr] = gethtypes.Account{Balance: new(big.Int).Set(acc.Balance)}
	}

	chainID := new(big.Int).SetUint64(profile.ChainID)
	sim := simulated.NewBackend(alloc, func(_ *node.Config, ethConf *ethconfig.Config) {
		chainConfig := *params.AllDevChainProtocolChanges
		chainConfig.ChainID = chainID
		ethConf.Genesis.Config = &chainConfig
		ethConf.NetworkId = profile.ChainID
	})

	return &Backend{
		profile: profile,
		chainID: chainID,
		sim:     sim,
		logger:  logger.With().Str("network", profile.Name).Logger(),
	}, nil
}

// Client returns a client connected to the simulated chain.
func (b *Backend) Client() simulated.Client {
	return b.sim.Client()
}

func (b *Backend) ChainID() *big.Int {
	return new(big.Int).Set(b.chainID)
}

// Commit seals the pending transactions into a new block, which may be empty.
func (b *Backend) Commit() common.Hash {
	b.mtx.Lock()
	defer b.mtx.Unlock()

	return b.sim.Commit()
}

// Run produces a block on every mining interval until ctx is done.
func (b *Backend) Run(ctx context.Context) error {
	if b.profile.Mining == nil || b.profile.Mining.Interval <= 0 {
		return ErrNoMining
	}

	ticker := time.NewTicker(b.profile.Mining.Interval)
	defer ticker.Stop()

	b.logger.Info().Dur("interval", b.profile.Mining.Interval).Msg("block production started")

	for {
		select {
		case <-ctx.Done():
			b.logger.Info().Msg("block production stopped")
			return nil
		case <-ticker.C:
			hash := b.Commit()
			b.logger.Debug().Str("hash", hash.Hex()).Msg("block committed")
		}
	}
}

func (b *Backend) Close() error {
	return b.sim.Close()
}
