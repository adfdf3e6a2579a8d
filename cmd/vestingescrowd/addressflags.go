package main

import (
	"encoding/hex"
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

// parseAddress decodes a hex-encoded 32-byte address, the CLI's only
// supported wallet/mint/authority encoding. Key derivation and
// signature formats belong to the host runtime and are out of scope.
func parseAddress(s string) (types.Address, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return types.Address{}, fmt.Errorf("invalid hex address %q: %w", s, err)
	}
	return types.AddressFromBytes(b)
}

// parseAmount parses a base-10 unsigned integer token amount.
func parseAmount(s string) (sdkmath.Int, error) {
	amt, ok := sdkmath.NewIntFromString(s)
	if !ok || amt.IsNegative() {
		return sdkmath.Int{}, fmt.Errorf("invalid amount %q", s)
	}
	return amt, nil
}
