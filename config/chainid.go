package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultChainID is used by the simulated and local-external networks when no
// override is supplied.
const DefaultChainID uint64 = 888

var ErrInvalidChainID = errors.New("invalid chain id")

// ResolveChainID returns the chain id for the given override. An empty override
// yields DefaultChainID.
func ResolveChainID(override string) (uint64, error) {
	override = strings.TrimSpace(override)
	if override == "" {
		return DefaultChainID, nil
	}

	id, err := strconv.ParseUint(override, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidChainID, override)
	}
	if id == 0 {
		return 0, fmt.Errorf("%w: must be positive", ErrInvalidChainID)
	}

	return id, nil
}
