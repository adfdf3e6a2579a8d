package keeper

import (
	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

func (k *Keeper) vaultAddress() types.Address {
	return types.VaultAddress(types.ScheduleStateAddress())
}

// DepositTokens funds the vault. Admin-signed, legal only strictly
// before start_ts: post-start deposits are rejected so the exact-
// funding gate checked by the first release remains a reliable
// signal.
func (k *Keeper) DepositTokens(msg *types.MsgDepositTokens) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if msg.Admin != k.state.Admin {
		return types.ErrWrongAdmin
	}
	now := k.clock.Now()
	if now >= k.state.StartTS {
		return types.ErrAfterStart
	}

	vault := k.vaultAddress()
	balanceBefore, err := k.ledger.BalanceOf(vault)
	if err != nil {
		return err
	}
	if balanceBefore.Add(msg.Amount).GT(k.state.TotalSupply) {
		return types.ErrOverDeposit
	}
	if err := k.ledger.Transfer(msg.SourceAccount, vault, msg.Amount); err != nil {
		return err
	}

	k.events.EmitTokensDeposited(types.TokensDeposited{Amount: msg.Amount})
	return nil
}

// AdminWithdraw moves funds out of the vault back to the admin, a
// deliberate escape hatch available at any time. It may leave the
// schedule under-funded and therefore permanently unable to release;
// the core does not forbid this (see DESIGN.md).
func (k *Keeper) AdminWithdraw(msg *types.MsgAdminWithdraw) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if msg.Admin != k.state.Admin {
		return types.ErrWrongAdmin
	}

	vault := k.vaultAddress()
	balance, err := k.ledger.BalanceOf(vault)
	if err != nil {
		return err
	}
	if msg.Amount.GT(balance) {
		return types.ErrInsufficientForWithdraw
	}
	if err := k.ledger.Transfer(vault, msg.DestinationAccount, msg.Amount); err != nil {
		return err
	}

	k.events.EmitAdminWithdrawn(types.AdminWithdrawn{
		Admin:   msg.Admin,
		Amount:  msg.Amount,
		QueryID: msg.QueryID,
	})
	return nil
}

// SweepDustAfterEnd withdraws whatever remains in the vault once
// vesting has fully ended and every non-revoked recipient has
// received their complete allocation. A zero-amount sweep is legal
// and still emits an event.
func (k *Keeper) SweepDustAfterEnd(msg *types.MsgSweepDustAfterEnd) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if msg.Admin != k.state.Admin {
		return types.ErrWrongAdmin
	}
	now := k.clock.Now()
	if !k.ended(now) {
		return types.ErrNotYetEnded
	}
	for _, e := range k.recipients {
		if e.Revoked {
			continue
		}
		if !e.ReleasedAmount.Equal(e.Allocation) {
			return types.ErrOutstandingAllocs
		}
	}

	vault := k.vaultAddress()
	balance, err := k.ledger.BalanceOf(vault)
	if err != nil {
		return err
	}
	if balance.IsPositive() {
		if err := k.ledger.Transfer(vault, msg.DestinationAccount, balance); err != nil {
			return err
		}
	}

	k.events.EmitDustSwept(types.DustSwept{Amount: balance})
	return nil
}
