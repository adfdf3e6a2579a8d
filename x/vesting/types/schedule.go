package types

import (
	sdkmath "cosmossdk.io/math"
)

// ScheduleState is the singleton aggregate for the deployment: the
// token mint, the two authorities, the start/duration of the vesting
// calendar, the running totals, and the lifecycle flags. There is
// exactly one ScheduleState per program instance.
type ScheduleState struct {
	Mint            Address
	Admin           Address
	Distributor     Address
	StartTS         int64
	DurationMonths  int
	Paused          bool
	TotalSupply     sdkmath.Int
	ReleasedSupply  sdkmath.Int
	RecipientCount  int
	Sealed          bool
}

// NewScheduleState builds a zero-valued, unsealed, unpaused schedule
// with the given configuration. Callers should validate the fields
// with Keeper.InitializeSchedule rather than constructing a
// ScheduleState directly in production code paths.
func NewScheduleState(mint, admin, distributor Address, startTS int64, totalSupply sdkmath.Int) ScheduleState {
	return ScheduleState{
		Mint:           mint,
		Admin:          admin,
		Distributor:    distributor,
		StartTS:        startTS,
		DurationMonths: DurationMonths,
		TotalSupply:    totalSupply,
		ReleasedSupply: sdkmath.ZeroInt(),
	}
}
