package types

import sdkmath "cosmossdk.io/math"

// Events are emitted, never consumed, by the core. Serialization and
// delivery to a host-level event log are out of scope; the core only
// needs an EventSink to hand a typed value to.

// ScheduleInitialized is emitted once by InitializeSchedule.
type ScheduleInitialized struct {
	Mint        Address
	Admin       Address
	Distributor Address
	StartTS     int64
	TotalSupply sdkmath.Int
}

// RecipientsAdded is emitted once per AddRecipients call.
type RecipientsAdded struct {
	CountAdded int
	NewTotal   sdkmath.Int
	Sealed     bool
}

// TokensDeposited is emitted once per DepositTokens call.
type TokensDeposited struct {
	Amount sdkmath.Int
}

// DistributorSet is emitted when the distributor authority changes.
type DistributorSet struct {
	OldDistributor Address
	NewDistributor Address
}

// SchedulePaused is emitted by Pause.
type SchedulePaused struct{}

// ScheduleUnpaused is emitted by Unpause.
type ScheduleUnpaused struct{}

// RecipientRevoked is emitted by RevokeRecipient.
type RecipientRevoked struct {
	Wallet Address
}

// TokensReleased is emitted by a non-trivial single-recipient release.
type TokensReleased struct {
	Wallet        Address
	MonthIndex    int
	Amount        sdkmath.Int
	Allocation    sdkmath.Int
	ReleasedTotal sdkmath.Int
}

// TokensReleasedBatchItem is emitted per non-trivial transfer within a
// batch release, in wallet-array order.
type TokensReleasedBatchItem struct {
	Wallet        Address
	MonthIndex    int
	Amount        sdkmath.Int
	Allocation    sdkmath.Int
	ReleasedTotal sdkmath.Int
}

// VestingQuote is emitted by EmitVestingQuote.
type VestingQuote struct {
	Wallet     Address
	MonthIndex int
	Vested     sdkmath.Int
	Released   sdkmath.Int
	Releasable sdkmath.Int
}

// AdminWithdrawn is emitted by AdminWithdraw, echoing the caller's
// opaque correlation token.
type AdminWithdrawn struct {
	Admin   Address
	Amount  sdkmath.Int
	QueryID string
}

// DustSwept is emitted by SweepDustAfterEnd. A zero-amount sweep is
// legal and still emits an event.
type DustSwept struct {
	Amount sdkmath.Int
}

// EventSink receives every event the core emits. The reference
// implementation used by tests and the CLI (testutil/vestingtest)
// simply appends to a slice; a real deployment hands these to the
// host runtime's event log.
type EventSink interface {
	EmitScheduleInitialized(ScheduleInitialized)
	EmitRecipientsAdded(RecipientsAdded)
	EmitTokensDeposited(TokensDeposited)
	EmitDistributorSet(DistributorSet)
	EmitSchedulePaused(SchedulePaused)
	EmitScheduleUnpaused(ScheduleUnpaused)
	EmitRecipientRevoked(RecipientRevoked)
	EmitTokensReleased(TokensReleased)
	EmitTokensReleasedBatchItem(TokensReleasedBatchItem)
	EmitVestingQuote(VestingQuote)
	EmitAdminWithdrawn(AdminWithdrawn)
	EmitDustSwept(DustSwept)
}
