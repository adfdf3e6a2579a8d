package types

import sdkmath "cosmossdk.io/math"

// Msg is satisfied by every request type the keeper dispatches.
// ValidateBasic performs only stateless, self-contained checks; every
// check that depends on the current ScheduleState or recipient list
// lives in the keeper method itself.
type Msg interface {
	ValidateBasic() error
}

// MsgInitializeSchedule creates the singleton ScheduleState. Legal
// exactly once, before any recipient is added.
type MsgInitializeSchedule struct {
	Admin       Address
	Mint        Address
	Distributor Address
	StartTS     int64
	TotalSupply sdkmath.Int
}

func (m *MsgInitializeSchedule) ValidateBasic() error {
	if m.Admin.IsZero() || m.Mint.IsZero() || m.Distributor.IsZero() {
		return ErrZeroOrEqualKey
	}
	if m.Admin == m.Distributor {
		return ErrZeroOrEqualKey.Wrap("admin and distributor must differ")
	}
	if m.StartTS <= 0 {
		return ErrInvalidStartTimestamp
	}
	if !m.TotalSupply.IsPositive() {
		return ErrZeroTotalSupply
	}
	return nil
}

// MsgAddRecipients appends one or more recipients to the bounded
// list. Signed by the admin. Sealing is explicit: the caller passes
// Seal true on the call that closes the list.
type MsgAddRecipients struct {
	Admin   Address
	Wallets []Address
	Amounts []sdkmath.Int
	Seal    bool
}

func (m *MsgAddRecipients) ValidateBasic() error {
	if m.Admin.IsZero() {
		return ErrZeroOrEqualKey
	}
	if len(m.Wallets) == 0 {
		return ErrBatchEmpty
	}
	if len(m.Wallets) != len(m.Amounts) {
		return ErrDestinationCountMismatch
	}
	for i, w := range m.Wallets {
		if w.IsZero() {
			return ErrZeroWallet
		}
		if !m.Amounts[i].IsPositive() {
			return ErrZeroAllocation
		}
	}
	return nil
}

// MsgDepositTokens funds the vault from the admin's token account.
type MsgDepositTokens struct {
	Admin         Address
	SourceAccount Address
	Amount        sdkmath.Int
}

func (m *MsgDepositTokens) ValidateBasic() error {
	if m.Admin.IsZero() || m.SourceAccount.IsZero() {
		return ErrZeroOrEqualKey
	}
	if !m.Amount.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

// MsgSetDistributor rotates the distributor authority. Signed by the
// admin.
type MsgSetDistributor struct {
	Admin          Address
	NewDistributor Address
}

func (m *MsgSetDistributor) ValidateBasic() error {
	if m.Admin.IsZero() || m.NewDistributor.IsZero() {
		return ErrZeroOrEqualKey
	}
	return nil
}

// MsgPause halts release operations. Signed by the admin.
type MsgPause struct {
	Admin Address
}

func (m *MsgPause) ValidateBasic() error {
	if m.Admin.IsZero() {
		return ErrZeroOrEqualKey
	}
	return nil
}

// MsgUnpause resumes release operations. Signed by the admin.
type MsgUnpause struct {
	Admin Address
}

func (m *MsgUnpause) ValidateBasic() error {
	if m.Admin.IsZero() {
		return ErrZeroOrEqualKey
	}
	return nil
}

// MsgRevokeRecipient marks a recipient revoked, stopping all further
// releases to that wallet. Signed by the admin.
type MsgRevokeRecipient struct {
	Admin  Address
	Wallet Address
}

func (m *MsgRevokeRecipient) ValidateBasic() error {
	if m.Admin.IsZero() || m.Wallet.IsZero() {
		return ErrZeroOrEqualKey
	}
	return nil
}

// MsgReleaseToRecipient pays out the currently releasable amount for
// a single wallet. Signed by the distributor.
type MsgReleaseToRecipient struct {
	Distributor        Address
	Wallet             Address
	DestinationAccount Address
}

func (m *MsgReleaseToRecipient) ValidateBasic() error {
	if m.Distributor.IsZero() || m.Wallet.IsZero() || m.DestinationAccount.IsZero() {
		return ErrZeroOrEqualKey
	}
	return nil
}

// MsgBatchRelease pays out the releasable amount for up to
// MaxBatchSize wallets in one call. Wallets and DestinationAccounts
// are parallel arrays, matched by index. Signed by the distributor.
type MsgBatchRelease struct {
	Distributor         Address
	Wallets             []Address
	DestinationAccounts []Address
}

func (m *MsgBatchRelease) ValidateBasic() error {
	if m.Distributor.IsZero() {
		return ErrZeroOrEqualKey
	}
	if len(m.Wallets) == 0 {
		return ErrBatchEmpty
	}
	if len(m.Wallets) > MaxBatchSize {
		return ErrBatchTooLarge
	}
	if len(m.Wallets) != len(m.DestinationAccounts) {
		return ErrDestinationCountMismatch
	}
	for _, w := range m.Wallets {
		if w.IsZero() {
			return ErrZeroWallet
		}
	}
	for _, d := range m.DestinationAccounts {
		if d.IsZero() {
			return ErrZeroOrEqualKey
		}
	}
	return nil
}

// MsgEmitVestingQuote computes and emits, without transferring funds,
// the current vested/released/releasable figures for a wallet. Legal
// for any caller; pre-seal is explicitly permitted (see DESIGN.md).
type MsgEmitVestingQuote struct {
	Wallet Address
}

func (m *MsgEmitVestingQuote) ValidateBasic() error {
	if m.Wallet.IsZero() {
		return ErrZeroWallet
	}
	return nil
}

// MsgAdminWithdraw moves funds out of the vault back to the admin,
// outside the per-recipient release path. QueryID is an opaque
// caller-supplied correlation token, echoed verbatim in the resulting
// AdminWithdrawn event; the keeper never interprets it.
type MsgAdminWithdraw struct {
	Admin              Address
	DestinationAccount Address
	Amount             sdkmath.Int
	QueryID            string
}

func (m *MsgAdminWithdraw) ValidateBasic() error {
	if m.Admin.IsZero() || m.DestinationAccount.IsZero() {
		return ErrZeroOrEqualKey
	}
	if !m.Amount.IsPositive() {
		return ErrZeroAmount
	}
	return nil
}

// MsgSweepDustAfterEnd withdraws whatever remains in the vault once
// the schedule has fully ended and every non-revoked recipient has
// received their full allocation. A zero-amount sweep is legal.
type MsgSweepDustAfterEnd struct {
	Admin              Address
	DestinationAccount Address
}

func (m *MsgSweepDustAfterEnd) ValidateBasic() error {
	if m.Admin.IsZero() || m.DestinationAccount.IsZero() {
		return ErrZeroOrEqualKey
	}
	return nil
}

var (
	_ Msg = &MsgInitializeSchedule{}
	_ Msg = &MsgAddRecipients{}
	_ Msg = &MsgDepositTokens{}
	_ Msg = &MsgSetDistributor{}
	_ Msg = &MsgPause{}
	_ Msg = &MsgUnpause{}
	_ Msg = &MsgRevokeRecipient{}
	_ Msg = &MsgReleaseToRecipient{}
	_ Msg = &MsgBatchRelease{}
	_ Msg = &MsgEmitVestingQuote{}
	_ Msg = &MsgAdminWithdraw{}
	_ Msg = &MsgSweepDustAfterEnd{}
)
