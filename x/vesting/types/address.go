package types

import "encoding/hex"

// Address is the opaque 32-byte identifier the spec calls a "wallet",
// "mint" or authority key. The core never interprets its bytes (key
// derivation and signature verification are host-runtime concerns);
// it only needs equality, a zero check, and a stable textual form for
// logging and events.
type Address [32]byte

// ZeroAddress is the all-zero sentinel no wallet, mint, or authority
// may legally equal.
var ZeroAddress = Address{}

// IsZero reports whether a is the all-zero address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// String renders a as lowercase hex, the way the teacher pack renders
// opaque on-chain identifiers it does not otherwise need to parse.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// AddressFromBytes copies b into a fixed-width Address. It errors if b
// is not exactly 32 bytes.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != len(a) {
		return a, ErrInvalidAddressLength.Wrapf("expected %d bytes, got %d", len(a), len(b))
	}
	copy(a[:], b)
	return a, nil
}
