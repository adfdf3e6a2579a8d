package keeper

import (
	sdkerrors "cosmossdk.io/errors"

	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

// unsafeDistributorAddresses returns the set of addresses a
// distributor may never equal: the three program-owned derivations,
// the admin, and the zero address.
func unsafeDistributorAddresses(admin types.Address) []types.Address {
	scheduleState := types.ScheduleStateAddress()
	return []types.Address{
		admin,
		types.ZeroAddress,
		scheduleState,
		types.RecipientsAddress(scheduleState),
		types.VaultAddress(scheduleState),
	}
}

func validateDistributor(admin, distributor types.Address) error {
	if distributor.IsZero() {
		return types.ErrZeroOrEqualKey
	}
	for _, unsafe := range unsafeDistributorAddresses(admin) {
		if distributor == unsafe {
			return types.ErrDistributorUnsafe
		}
	}
	return nil
}

// InitializeSchedule creates the singleton ScheduleState. Legal
// exactly once: a second call always fails because the keeper already
// holds a non-zero mint.
func (k *Keeper) InitializeSchedule(msg *types.MsgInitializeSchedule) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if !k.state.Mint.IsZero() {
		return sdkerrors.Wrap(types.ErrAlreadySealed, "schedule already initialized")
	}
	if msg.TotalSupply.IsNil() || !msg.TotalSupply.IsPositive() {
		return types.ErrZeroTotalSupply
	}
	if err := validateDistributor(msg.Admin, msg.Distributor); err != nil {
		return err
	}

	k.state = types.NewScheduleState(msg.Mint, msg.Admin, msg.Distributor, msg.StartTS, msg.TotalSupply)
	k.recipients = nil
	k.index = newWalletIndex()

	k.events.EmitScheduleInitialized(types.ScheduleInitialized{
		Mint:        msg.Mint,
		Admin:       msg.Admin,
		Distributor: msg.Distributor,
		StartTS:     msg.StartTS,
		TotalSupply: msg.TotalSupply,
	})
	k.logger.Info("schedule initialized", "start_ts", msg.StartTS, "total_supply", msg.TotalSupply.String())
	return nil
}

// SetDistributor rotates the distributor authority. Admin-signed,
// legal in any lifecycle state.
func (k *Keeper) SetDistributor(msg *types.MsgSetDistributor) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if msg.Admin != k.state.Admin {
		return types.ErrWrongAdmin
	}
	if err := validateDistributor(k.state.Admin, msg.NewDistributor); err != nil {
		return err
	}

	old := k.state.Distributor
	k.state.Distributor = msg.NewDistributor
	k.events.EmitDistributorSet(types.DistributorSet{OldDistributor: old, NewDistributor: msg.NewDistributor})
	return nil
}

// Pause halts release operations. Admin-signed.
func (k *Keeper) Pause(msg *types.MsgPause) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if msg.Admin != k.state.Admin {
		return types.ErrWrongAdmin
	}
	if k.state.Paused {
		return types.ErrAlreadyPaused
	}
	k.state.Paused = true
	k.events.EmitSchedulePaused(types.SchedulePaused{})
	return nil
}

// Unpause resumes release operations. Admin-signed.
func (k *Keeper) Unpause(msg *types.MsgUnpause) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if msg.Admin != k.state.Admin {
		return types.ErrWrongAdmin
	}
	if !k.state.Paused {
		return types.ErrNotPaused
	}
	k.state.Paused = false
	k.events.EmitScheduleUnpaused(types.ScheduleUnpaused{})
	return nil
}
