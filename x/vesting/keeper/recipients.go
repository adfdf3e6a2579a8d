package keeper

import (
	sdkmath "cosmossdk.io/math"

	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

// AddRecipients appends one or more recipients in input order. It
// rejects a zero wallet, a zero allocation, a duplicate against the
// existing list or within this call's own batch, and any append past
// the 35-entry capacity. The running sum of allocations must stay
// <= total_supply after every append; if Seal is requested it must
// equal total_supply exactly. Sealing is irreversible.
func (k *Keeper) AddRecipients(msg *types.MsgAddRecipients) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if msg.Admin != k.state.Admin {
		return types.ErrWrongAdmin
	}
	if k.state.Sealed {
		return types.ErrAlreadySealed
	}
	if len(k.recipients)+len(msg.Wallets) > types.MaxRecipients {
		return types.ErrRecipientListFull
	}

	seenThisBatch := make(map[types.Address]bool, len(msg.Wallets))
	for _, wallet := range msg.Wallets {
		if k.index.Contains(wallet) || seenThisBatch[wallet] {
			return types.ErrDuplicateWallet
		}
		seenThisBatch[wallet] = true
	}

	sum := sdkmath.ZeroInt()
	for _, e := range k.recipients {
		sum = sum.Add(e.Allocation)
	}
	for _, amt := range msg.Amounts {
		sum = sum.Add(amt)
	}
	if sum.GT(k.state.TotalSupply) {
		return types.ErrAllocationOverflow
	}
	if msg.Seal && !sum.Equal(k.state.TotalSupply) {
		return types.ErrSealSumMismatch
	}

	for i, wallet := range msg.Wallets {
		entry := types.NewRecipientEntry(wallet, msg.Amounts[i])
		k.index.Record(wallet, len(k.recipients))
		k.recipients = append(k.recipients, entry)
	}
	k.state.RecipientCount = len(k.recipients)

	if msg.Seal {
		k.state.Sealed = true
	}

	k.events.EmitRecipientsAdded(types.RecipientsAdded{
		CountAdded: len(msg.Wallets),
		NewTotal:   sum,
		Sealed:     k.state.Sealed,
	})
	return nil
}

// RevokeRecipient stops all further releases to wallet, including any
// amount already vested but not yet released. Admin-signed.
// Revocation is monotonic: revoking an already-revoked recipient
// fails rather than silently succeeding.
func (k *Keeper) RevokeRecipient(msg *types.MsgRevokeRecipient) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if msg.Admin != k.state.Admin {
		return types.ErrWrongAdmin
	}
	entry := k.findRecipient(msg.Wallet)
	if entry == nil {
		return types.ErrRecipientNotFound
	}
	if entry.Revoked {
		return types.ErrRecipientRevoked
	}
	entry.Revoked = true
	k.events.EmitRecipientRevoked(types.RecipientRevoked{Wallet: msg.Wallet})
	return nil
}
