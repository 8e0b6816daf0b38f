package config

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// FixtureBalance is the starting balance of every test account, large enough
// to never run dry during a session.
const FixtureBalance = "100000000000000000000000000"

// Publicly known test keys. Never use them outside of test networks.
var fixtureKeys = [...]string{
	// val0 0xfac5EC50BdfbB803f5cFc9BF0A0C2f52aDE5b6dd
	"0x06e48d48a55cc6843acb2c3c23431480ec42fca02683f4d8d3d471372e5317ee",
	// val1 0x02fa1b44e2EF8436e6f35D5F56607769c658c225
	"0x4faf826f3d3a5fa60103392446a72dea01145c6158c6dd29f6faab9ec9917a1b",
	// val2 0xd8f468c1B719cc2d50eB1E3A55cFcb60e23758CD
	"0x11f746395f0dd459eff05d1bc557b81c3f7ebb1338a8cc9d36966d0bb2dcea21",
}

// AccountFixture is a test account the simulated network funds at genesis.
type AccountFixture struct {
	PrivateKey string
	Balance    *big.Int
}

// ECDSA parses the fixture private key.
func (a AccountFixture) ECDSA() (*ecdsa.PrivateKey, error) {
	bz, err := hexutil.Decode(a.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	return crypto.ToECDSA(bz)
}

// Address returns the account address derived from the private key.
func (a AccountFixture) Address() (common.Address, error) {
	key, err := a.ECDSA()
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

// TestAccounts returns the three validator fixtures in order. The result is a
// fresh copy on every call.
func TestAccounts() []AccountFixture {
	balance, _ := new(big.Int).SetString(FixtureBalance, 10)

	accounts := make([]AccountFixture, 0, len(fixtureKeys))
	for _, key := range fixtureKeys {
		accounts = append(accounts, AccountFixture{
			PrivateKey: key,
			Balance:    new(big.Int).Set(balance),
		})
	}
	return accounts
}

// PrivateKeys returns the fixture keys in the same order as TestAccounts.
func PrivateKeys() []string {
	keys := make([]string, len(fixtureKeys))
	copy(keys, fixtureKeys[:])
	return keys
}
