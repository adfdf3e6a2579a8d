package keeper

import (
	"github.com/tokenize-x/vesting-escrow/internal/accrual"
	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

// EmitVestingQuote computes and emits, without transferring funds,
// the current month index, vested amount, released amount, and
// releasable amount for wallet. It requires neither a sealed schedule
// nor the distributor's signature — it is a read-only UX parity
// check. Before the schedule starts it fails with types.ErrBeforeStart.
func (k *Keeper) EmitVestingQuote(msg *types.MsgEmitVestingQuote) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	entry := k.findRecipient(msg.Wallet)
	if entry == nil {
		return types.ErrRecipientNotFound
	}

	now := k.clock.Now()
	idx, err := k.monthIndex(now)
	if err != nil {
		return err
	}
	vested, err := accrual.Vested(entry.MonthlyAmount, entry.FinalAmount, idx)
	if err != nil {
		return err
	}
	releasable, err := accrual.Releasable(vested, entry.ReleasedAmount)
	if err != nil {
		return err
	}

	k.events.EmitVestingQuote(types.VestingQuote{
		Wallet:     msg.Wallet,
		MonthIndex: idx,
		Vested:     vested,
		Released:   entry.ReleasedAmount,
		Releasable: releasable,
	})
	return nil
}
