package types

import sdkmath "cosmossdk.io/math"

// Clock is the keeper's only source of wall-clock time. Production
// wiring reads the host runtime's block/cluster clock; tests and the
// CLI supply a fixed or steppable value.
type Clock interface {
	Now() int64
}

// TokenLedger is the keeper's view of the token program: balance
// transfers between opaque accounts, and the account metadata needed
// to enforce mint and ownership invariants before moving funds.
type TokenLedger interface {
	// Transfer moves amount from the from account to the to account.
	// Implementations must reject insufficient-balance transfers with
	// an error rather than partially applying them.
	Transfer(from, to Address, amount sdkmath.Int) error

	// BalanceOf returns the current balance of a token account.
	BalanceOf(account Address) (sdkmath.Int, error)

	// MintOf returns the mint a token account was opened for.
	MintOf(account Address) (Address, error)

	// OwnerOf returns the wallet that controls a token account.
	OwnerOf(account Address) (Address, error)
}

// AssociatedAccountDeriver computes the canonical token account for a
// (wallet, mint) pair, the way the host runtime's associated-token-
// account program does. release_to_recipient and batch_release refuse
// to pay out to any destination that doesn't match this derivation.
type AssociatedAccountDeriver interface {
	Derive(owner, mint Address) Address
}
