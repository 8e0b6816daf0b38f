package cmd

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/b-harvest/evm-network-profiles/config"
)

// AccountDispenser hands out the profile signing keys by position, wrapping
// around after the last one.
type AccountDispenser struct {
	profile config.NetworkProfile
	n       int
	i       int
}

func NewAccountDispenser(profile config.NetworkProfile, start int) (*AccountDispenser, error) {
	n := len(profile.Keys())
	if start < 0 || start >= n {
		return nil, fmt.Errorf("account index %d out of range [0, %d)", start, n)
	}
	return &AccountDispenser{
		profile: profile,
		n:       n,
		i:       start,
	}, nil
}

// Next returns the key at the current position and advances.
func (d *AccountDispenser) Next() (*ecdsa.PrivateKey, error) {
	acc, ok := d.profile.Account(d.i)
	if !ok {
		return nil, fmt.Errorf("account index %d out of range [0, %d)", d.i, d.n)
	}
	key, err := acc.ECDSA()
	if err != nil {
		return nil, fmt.Errorf("account %d: %w", d.i, err)
	}

	d.i++
	if d.i >= d.n {
		d.i = 0
	}
	return key, nil
}
