package tx

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var DefaultPollInterval = 500 * time.Millisecond

// Backend is the part of an ethereum client needed to deploy contracts. It is
// satisfied by ethclient.Client and the simulated chain client.
type Backend interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*gethtypes.Header, error)
	SendTransaction(ctx context.Context, tx *gethtypes.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*gethtypes.Receipt, error)
}

// Transaction is an object that has common fields when signing transaction.
type Transaction struct {
	Backend  Backend
	ChainID  *big.Int
	GasLimit uint64
}

// NewTransaction returns new Transaction object.
func NewTransaction(backend Backend, chainID *big.Int, gasLimit uint64) *Transaction {
	return &Transaction{
		Backend:  backend,
		ChainID:  chainID,
		GasLimit: gasLimit,
	}
}

// SignDeploy signs a contract creation transaction. The chain id is part of
// the signature so the transaction cannot be replayed on another network.
func (t *Transaction) SignDeploy(ctx context.Context, key *ecdsa.PrivateKey, nonce uint64, bytecode []byte) (*gethtypes.Transaction, error) {
	head, err := t.Backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("get head: %w", err)
	}

	var unsignedTx *gethtypes.Transaction
	if head.BaseFee != nil {
		tip, err := t.Backend.SuggestGasTipCap(ctx)
		if err != nil {
			return nil, fmt.Errorf("suggest gas tip: %w", err)
		}
		feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

		unsignedTx = gethtypes.NewTx(&gethtypes.DynamicFeeTx{
			ChainID:   t.ChainID,
			Nonce:     nonce,
			GasTipCap: tip,
			GasFeeCap: feeCap,
			Gas:       t.GasLimit,
			Data:      bytecode,
		})
	} else {
		gasPrice, err := t.Backend.SuggestGasPrice(ctx)
		if err != nil {
			return nil, fmt.Errorf("suggest gas price: %w", err)
		}

		unsignedTx = gethtypes.NewTx(&gethtypes.LegacyTx{
			Nonce:    nonce,
			GasPrice: gasPrice,
			Gas:      t.GasLimit,
			Data:     bytecode,
		})
	}

	return gethtypes.SignTx(unsignedTx, gethtypes.LatestSignerForChainID(t.ChainID), key)
}

// Deploy signs a contract creation with the next nonce of key and submits it.
// It returns the submitted transaction and the address the contract will have.
func (t *Transaction) Deploy(ctx context.Context, key *ecdsa.PrivateKey, bytecode []byte) (*gethtypes.Transaction, common.Address, error) {
	from := crypto.PubkeyToAddress(key.PublicKey)

	nonce, err := t.Backend.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("get nonce of %s: %w", from, err)
	}

	signedTx, err := t.SignDeploy(ctx, key, nonce, bytecode)
	if err != nil {
		return nil, common.Address{}, fmt.Errorf("sign: %w", err)
	}

	if err := t.Backend.SendTransaction(ctx, signedTx); err != nil {
		return nil, common.Address{}, fmt.Errorf("send: %w", err)
	}

	return signedTx, crypto.CreateAddress(from, nonce), nil
}

// WaitReceipt polls for the receipt of the transaction until ctx is done.
// Lookup errors other than ethereum.NotFound are retried too since nodes may
// still be indexing the block.
func (t *Transaction) WaitReceipt(ctx context.Context, hash common.Hash) (*gethtypes.Receipt, error) {
	ticker := time.NewTicker(DefaultPollInterval)
	defer ticker.Stop()

	var lastErr error
	for {
		receipt, err := t.Backend.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			lastErr = err
		}

		select {
		case <-ctx.Done():
			if lastErr != nil {
				return nil, fmt.Errorf("%w: %v", ctx.Err(), lastErr)
			}
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
