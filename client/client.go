package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	ethrpc "github.com/ethereum/go-ethereum/rpc"

	"github.com/b-harvest/evm-network-profiles/config"
)

var (
	DefaultRPCTimeout = 5 * time.Second

	ErrChainIDMismatch = errors.New("remote chain id does not match the network profile")
)

// Client is a connection to the node behind a remote network profile.
type Client struct {
	Profile config.NetworkProfile
	RPC     *ethrpc.Client
	ETH     *ethclient.Client
}

// NewClient dials the profile endpoint. It fails with config.ErrMissingEndpoint
// when the profile has no URL.
func NewClient(ctx context.Context, profile config.NetworkProfile) (*Client, error) {
	url, err := profile.Endpoint.Require()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", profile.Name, err)
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultRPCTimeout)
	defer cancel()

	rpcClient, err := ethrpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}

	return NewClientWithRPC(profile, rpcClient), nil
}

// NewClientWithRPC wraps an already connected RPC client.
func NewClientWithRPC(profile config.NetworkProfile, rpcClient *ethrpc.Client) *Client {
	return &Client{
		Profile: profile,
		RPC:     rpcClient,
		ETH:     ethclient.NewClient(rpcClient),
	}
}

// ChainID returns the chain id the profile signs with. Profiles without a
// fixed chain id use the one reported by the node; the others must match it.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultRPCTimeout)
	defer cancel()

	remote, err := c.ETH.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chain id: %w", err)
	}

	if !c.Profile.HasChainID() {
		return remote, nil
	}

	if !remote.IsUint64() || remote.Uint64() != c.Profile.ChainID {
		return nil, fmt.Errorf("%w: %s expects %d, node reports %s",
			ErrChainIDMismatch, c.Profile.Name, c.Profile.ChainID, remote)
	}
	return remote, nil
}

// GetETHClient returns the typed ethereum client.
func (c *Client) GetETHClient() *ethclient.Client {
	return c.ETH
}

// Stop closes the underlying connection.
func (c *Client) Stop() {
	c.RPC.Close()
}
