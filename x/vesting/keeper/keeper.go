package keeper

import (
	"cosmossdk.io/log"

	"github.com/tokenize-x/vesting-escrow/internal/calendar"
	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

// Keeper holds the complete in-memory state of one vesting-escrow
// deployment: the singleton ScheduleState, the bounded recipient
// list, a secondary index for O(1) duplicate-wallet detection, and
// the four collaborator interfaces the core never implements itself.
//
// Unlike the teacher's KV-store-backed Keeper, this one is a plain
// struct: the spec's program state is small (one schedule plus at
// most 35 recipients) and the host runtime, not this package, owns
// durable storage. NewKeeper's signature otherwise mirrors the
// teacher's constructor shape — collaborators first, state last.
type Keeper struct {
	logger log.Logger

	clock   types.Clock
	ledger  types.TokenLedger
	deriver types.AssociatedAccountDeriver
	events  types.EventSink

	state      types.ScheduleState
	recipients []types.RecipientEntry
	index      *walletIndex
}

// NewKeeper wires a Keeper against its four collaborators. The
// returned Keeper has no ScheduleState until InitializeSchedule is
// called.
func NewKeeper(
	logger log.Logger,
	clock types.Clock,
	ledger types.TokenLedger,
	deriver types.AssociatedAccountDeriver,
	events types.EventSink,
) *Keeper {
	return &Keeper{
		logger:  logger.With("module", "x/"+types.ModuleName),
		clock:   clock,
		ledger:  ledger,
		deriver: deriver,
		events:  events,
		index:   newWalletIndex(),
	}
}

// Restore reconstructs a Keeper from previously persisted state, the
// way a host runtime rehydrates the aggregate before dispatching the
// next operation against it. The wallet index is rebuilt from the
// recipient list rather than trusting any serialized copy of it.
func Restore(
	logger log.Logger,
	clock types.Clock,
	ledger types.TokenLedger,
	deriver types.AssociatedAccountDeriver,
	events types.EventSink,
	state types.ScheduleState,
	recipients []types.RecipientEntry,
) *Keeper {
	k := NewKeeper(logger, clock, ledger, deriver, events)
	k.state = state
	k.recipients = append([]types.RecipientEntry(nil), recipients...)
	for i, e := range k.recipients {
		k.index.Record(e.Wallet, i)
	}
	return k
}

// State returns a copy of the current ScheduleState.
func (k *Keeper) State() types.ScheduleState {
	return k.state
}

// Recipients returns the current recipient list in insertion order.
// The returned slice is a copy; mutating it does not affect keeper
// state.
func (k *Keeper) Recipients() []types.RecipientEntry {
	out := make([]types.RecipientEntry, len(k.recipients))
	copy(out, k.recipients)
	return out
}

// findRecipient returns a pointer into the keeper's authoritative
// slice, or nil if wallet is not present. The index is consulted
// first so a miss or a hit both cost O(1); the slice remains the
// single source of truth and is never reordered.
func (k *Keeper) findRecipient(wallet types.Address) *types.RecipientEntry {
	i, ok := k.index.Lookup(wallet)
	if !ok {
		return nil
	}
	return &k.recipients[i]
}

// ended reports whether the schedule has passed its final monthly
// boundary.
func (k *Keeper) ended(now int64) bool {
	return calendar.IsAfterVestingEnd(now, k.state.StartTS)
}

// monthIndex returns the current accrual month index for the
// schedule. It returns types.ErrBeforeStart if now precedes the start
// timestamp, matching calendar.MonthIndex's own domain error.
func (k *Keeper) monthIndex(now int64) (int, error) {
	if now < k.state.StartTS {
		return 0, types.ErrBeforeStart
	}
	return calendar.MonthIndex(now, k.state.StartTS)
}
