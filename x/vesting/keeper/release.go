package keeper

import (
	sdkmath "cosmossdk.io/math"

	"github.com/tokenize-x/vesting-escrow/internal/accrual"
	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

// releasePreconditions checks everything common to a single release
// and each item of a batch release, except the exact-funding gate
// (which callers evaluate once, against the pre-batch balance) and
// the per-recipient accrual math.
func (k *Keeper) releasePreconditions(distributor types.Address) error {
	if distributor != k.state.Distributor {
		return types.ErrWrongDistributor
	}
	if !k.state.Sealed {
		return types.ErrNotSealed
	}
	if k.state.Paused {
		return types.ErrPaused
	}
	now := k.clock.Now()
	if now < k.state.StartTS {
		return types.ErrBeforeStart
	}
	return nil
}

// validateDestination confirms destination is the canonical
// associated account of (wallet, mint) and that its owner and mint
// both match, re-deriving rather than trusting the caller-supplied
// account.
func (k *Keeper) validateDestination(wallet, destination types.Address) error {
	want := k.deriver.Derive(wallet, k.state.Mint)
	if destination != want {
		return types.ErrWrongAssociatedAcc
	}
	owner, err := k.ledger.OwnerOf(destination)
	if err != nil {
		return err
	}
	if owner != wallet {
		return types.ErrWrongAccountOwner
	}
	mint, err := k.ledger.MintOf(destination)
	if err != nil {
		return err
	}
	if mint != k.state.Mint {
		return types.ErrWrongMint
	}
	return nil
}

// releaseAmount computes the currently releasable amount for entry as
// of now, given the schedule's start timestamp.
func (k *Keeper) releaseAmount(entry *types.RecipientEntry, now int64) (sdkmath.Int, int, error) {
	idx, err := k.monthIndex(now)
	if err != nil {
		return sdkmath.Int{}, 0, err
	}
	vested, err := accrual.Vested(entry.MonthlyAmount, entry.FinalAmount, idx)
	if err != nil {
		return sdkmath.Int{}, idx, err
	}
	r, err := accrual.Releasable(vested, entry.ReleasedAmount)
	if err != nil {
		return sdkmath.Int{}, idx, err
	}
	return r, idx, nil
}

// ReleaseToRecipient pays out wallet's currently releasable amount to
// destination, or silently no-ops for a revoked recipient or a
// recipient with nothing releasable. Distributor-signed.
func (k *Keeper) ReleaseToRecipient(msg *types.MsgReleaseToRecipient) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.releasePreconditions(msg.Distributor); err != nil {
		return err
	}
	if err := k.validateDestination(msg.Wallet, msg.DestinationAccount); err != nil {
		return err
	}

	vault := k.vaultAddress()
	vaultBalance, err := k.ledger.BalanceOf(vault)
	if err != nil {
		return err
	}
	if k.state.ReleasedSupply.IsZero() && !vaultBalance.Equal(k.state.TotalSupply) {
		return types.ErrVaultNotExactlyFunded
	}

	entry := k.findRecipient(msg.Wallet)
	if entry == nil {
		return types.ErrRecipientNotFound
	}
	if entry.Revoked {
		return nil
	}

	now := k.clock.Now()
	r, idx, err := k.releaseAmount(entry, now)
	if err != nil {
		return err
	}
	if r.IsZero() {
		return nil
	}
	if r.GT(vaultBalance) {
		return types.ErrInsufficientVault
	}

	if err := k.ledger.Transfer(vault, msg.DestinationAccount, r); err != nil {
		return err
	}
	entry.ReleasedAmount = entry.ReleasedAmount.Add(r)
	k.state.ReleasedSupply = k.state.ReleasedSupply.Add(r)

	k.events.EmitTokensReleased(types.TokensReleased{
		Wallet:        msg.Wallet,
		MonthIndex:    idx,
		Amount:        r,
		Allocation:    entry.Allocation,
		ReleasedTotal: entry.ReleasedAmount,
	})
	return nil
}

// BatchRelease releases up to MaxBatchSize wallets in one call. The
// vault balance is read once at entry and tracked in a local shadow
// as each item succeeds; revoked recipients and recipients with
// nothing releasable skip silently without affecting the shadow
// balance or emitting an event.
func (k *Keeper) BatchRelease(msg *types.MsgBatchRelease) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if err := k.releasePreconditions(msg.Distributor); err != nil {
		return err
	}

	vault := k.vaultAddress()
	shadowBalance, err := k.ledger.BalanceOf(vault)
	if err != nil {
		return err
	}
	if k.state.ReleasedSupply.IsZero() && !shadowBalance.Equal(k.state.TotalSupply) {
		return types.ErrVaultNotExactlyFunded
	}

	now := k.clock.Now()
	for i, wallet := range msg.Wallets {
		destination := msg.DestinationAccounts[i]
		if err := k.validateDestination(wallet, destination); err != nil {
			return err
		}

		entry := k.findRecipient(wallet)
		if entry == nil {
			return types.ErrRecipientNotFound
		}
		if entry.Revoked {
			continue
		}

		r, idx, err := k.releaseAmount(entry, now)
		if err != nil {
			return err
		}
		if r.IsZero() {
			continue
		}
		if r.GT(shadowBalance) {
			return types.ErrInsufficientVault
		}

		if err := k.ledger.Transfer(vault, destination, r); err != nil {
			return err
		}
		shadowBalance = shadowBalance.Sub(r)
		entry.ReleasedAmount = entry.ReleasedAmount.Add(r)
		k.state.ReleasedSupply = k.state.ReleasedSupply.Add(r)

		k.events.EmitTokensReleasedBatchItem(types.TokensReleasedBatchItem{
			Wallet:        wallet,
			MonthIndex:    idx,
			Amount:        r,
			Allocation:    entry.Allocation,
			ReleasedTotal: entry.ReleasedAmount,
		})
	}
	return nil
}
