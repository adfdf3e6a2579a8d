package types

import sdkmath "cosmossdk.io/math"

// RecipientEntry is one slot of the bounded, insertion-ordered
// recipient list. Once appended an entry is never reordered or
// deleted: Revoked is set (monotonically, never cleared) by
// RevokeRecipient, and ReleasedAmount is advanced only by the release
// engine. MonthlyAmount and FinalAmount are cached at insertion and
// are immutable afterward.
//
// The keeper holds these entries in a Go slice whose length it caps at
// MaxRecipients; Revoked is a plain bool, not a numeric flag.
type RecipientEntry struct {
	Wallet         Address
	Allocation     sdkmath.Int
	ReleasedAmount sdkmath.Int
	Revoked        bool
	MonthlyAmount  sdkmath.Int
	FinalAmount    sdkmath.Int
}

// NewRecipientEntry computes the cached monthly/final split for an
// allocation and returns a fresh, unreleased entry. The identity
// 11*MonthlyAmount + FinalAmount == Allocation holds by construction.
func NewRecipientEntry(wallet Address, allocation sdkmath.Int) RecipientEntry {
	monthly := allocation.QuoRaw(DurationMonths)
	final := allocation.Sub(monthly.MulRaw(DurationMonths - 1))
	return RecipientEntry{
		Wallet:         wallet,
		Allocation:     allocation,
		ReleasedAmount: sdkmath.ZeroInt(),
		MonthlyAmount:  monthly,
		FinalAmount:    final,
	}
}
