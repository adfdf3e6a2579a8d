// Package vestingtest provides in-memory reference implementations of
// the vesting keeper's collaborator interfaces, the way
// testutil/simapp wires a full application for the rest of the pack:
// a test only needs to build a Harness and drive the keeper directly,
// with no host runtime in the loop.
package vestingtest

import (
	"fmt"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"

	"github.com/tokenize-x/vesting-escrow/x/vesting/keeper"
	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

// FixedClock is a Clock collaborator whose value the test controls
// directly by mutation; there is no background ticking.
type FixedClock struct {
	now int64
}

// NewFixedClock returns a FixedClock initialized to now.
func NewFixedClock(now int64) *FixedClock { return &FixedClock{now: now} }

// Now implements types.Clock.
func (c *FixedClock) Now() int64 { return c.now }

// Set moves the clock to ts.
func (c *FixedClock) Set(ts int64) { c.now = ts }

// Advance moves the clock forward by seconds.
func (c *FixedClock) Advance(seconds int64) { c.now += seconds }

// tokenAccount is the in-memory state of one token account: its
// mint, its owner wallet, and its balance.
type tokenAccount struct {
	mint    types.Address
	owner   types.Address
	balance sdkmath.Int
}

// Ledger is an in-memory TokenLedger. Accounts are opened implicitly
// by OpenAccount; Transfer fails on an unknown account or an
// insufficient balance rather than creating one on the fly, the way a
// real token program would reject a transfer from an account that
// was never initialized.
type Ledger struct {
	accounts map[types.Address]*tokenAccount
}

// NewLedger returns an empty in-memory token ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[types.Address]*tokenAccount)}
}

// OpenAccount registers a token account for owner under mint with the
// given starting balance. Calling it twice on the same account resets
// the balance.
func (l *Ledger) OpenAccount(account, owner, mint types.Address, balance sdkmath.Int) {
	l.accounts[account] = &tokenAccount{mint: mint, owner: owner, balance: balance}
}

// Transfer implements types.TokenLedger.
func (l *Ledger) Transfer(from, to types.Address, amount sdkmath.Int) error {
	src, ok := l.accounts[from]
	if !ok {
		return fmt.Errorf("vestingtest: unknown source account %s", from)
	}
	dst, ok := l.accounts[to]
	if !ok {
		return fmt.Errorf("vestingtest: unknown destination account %s", to)
	}
	if src.balance.LT(amount) {
		return fmt.Errorf("vestingtest: insufficient balance in %s", from)
	}
	src.balance = src.balance.Sub(amount)
	dst.balance = dst.balance.Add(amount)
	return nil
}

// BalanceOf implements types.TokenLedger.
func (l *Ledger) BalanceOf(account types.Address) (sdkmath.Int, error) {
	acc, ok := l.accounts[account]
	if !ok {
		return sdkmath.ZeroInt(), nil
	}
	return acc.balance, nil
}

// MintOf implements types.TokenLedger.
func (l *Ledger) MintOf(account types.Address) (types.Address, error) {
	acc, ok := l.accounts[account]
	if !ok {
		return types.Address{}, fmt.Errorf("vestingtest: unknown account %s", account)
	}
	return acc.mint, nil
}

// AccountRecord is the exported, serializable view of one ledger
// account, used by the CLI to snapshot and restore ledger state
// across invocations.
type AccountRecord struct {
	Account types.Address
	Mint    types.Address
	Owner   types.Address
	Balance sdkmath.Int
}

// Accounts returns every open account, in no particular order.
func (l *Ledger) Accounts() []AccountRecord {
	out := make([]AccountRecord, 0, len(l.accounts))
	for addr, acc := range l.accounts {
		out = append(out, AccountRecord{Account: addr, Mint: acc.mint, Owner: acc.owner, Balance: acc.balance})
	}
	return out
}

// OwnerOf implements types.TokenLedger.
func (l *Ledger) OwnerOf(account types.Address) (types.Address, error) {
	acc, ok := l.accounts[account]
	if !ok {
		return types.Address{}, fmt.Errorf("vestingtest: unknown account %s", account)
	}
	return acc.owner, nil
}

// AssociatedAccountDeriver is an in-memory AssociatedAccountDeriver.
// It derives the same way types.DeriveAddress does, tagged so that
// the result can never collide with a ScheduleState/Recipients/Vault
// derivation.
type AssociatedAccountDeriver struct{}

// NewAssociatedAccountDeriver returns a deterministic
// AssociatedAccountDeriver.
func NewAssociatedAccountDeriver() AssociatedAccountDeriver { return AssociatedAccountDeriver{} }

// Derive implements types.AssociatedAccountDeriver.
func (AssociatedAccountDeriver) Derive(owner, mint types.Address) types.Address {
	return types.DeriveAddress("associated_account", owner[:], mint[:])
}

// EventLog is an in-memory EventSink that simply records everything
// emitted, in emission order, for assertions in tests.
type EventLog struct {
	Events []any
}

// NewEventLog returns an empty EventLog.
func NewEventLog() *EventLog { return &EventLog{} }

func (l *EventLog) EmitScheduleInitialized(e types.ScheduleInitialized) { l.Events = append(l.Events, e) }
func (l *EventLog) EmitRecipientsAdded(e types.RecipientsAdded)         { l.Events = append(l.Events, e) }
func (l *EventLog) EmitTokensDeposited(e types.TokensDeposited)         { l.Events = append(l.Events, e) }
func (l *EventLog) EmitDistributorSet(e types.DistributorSet)           { l.Events = append(l.Events, e) }
func (l *EventLog) EmitSchedulePaused(e types.SchedulePaused)           { l.Events = append(l.Events, e) }
func (l *EventLog) EmitScheduleUnpaused(e types.ScheduleUnpaused)       { l.Events = append(l.Events, e) }
func (l *EventLog) EmitRecipientRevoked(e types.RecipientRevoked)       { l.Events = append(l.Events, e) }
func (l *EventLog) EmitTokensReleased(e types.TokensReleased)           { l.Events = append(l.Events, e) }
func (l *EventLog) EmitTokensReleasedBatchItem(e types.TokensReleasedBatchItem) {
	l.Events = append(l.Events, e)
}
func (l *EventLog) EmitVestingQuote(e types.VestingQuote)     { l.Events = append(l.Events, e) }
func (l *EventLog) EmitAdminWithdrawn(e types.AdminWithdrawn) { l.Events = append(l.Events, e) }
func (l *EventLog) EmitDustSwept(e types.DustSwept)           { l.Events = append(l.Events, e) }

// Harness bundles a Keeper with its in-memory collaborators so a test
// can drive the state machine and still reach into the ledger, clock,
// and event log for assertions.
type Harness struct {
	Keeper  *keeper.Keeper
	Clock   *FixedClock
	Ledger  *Ledger
	Deriver AssociatedAccountDeriver
	Events  *EventLog
}

// NewHarness builds a Keeper wired to fresh in-memory collaborators,
// with the clock initialized to now.
func NewHarness(now int64) *Harness {
	clock := NewFixedClock(now)
	ledger := NewLedger()
	deriver := NewAssociatedAccountDeriver()
	events := NewEventLog()
	k := keeper.NewKeeper(log.NewNopLogger(), clock, ledger, deriver, events)
	return &Harness{Keeper: k, Clock: clock, Ledger: ledger, Deriver: deriver, Events: events}
}

// AssociatedAccountFor derives and opens (with zero balance, unless
// seeded separately) the canonical token account for wallet under
// mint, returning its address so a test can fund or inspect it.
func (h *Harness) AssociatedAccountFor(wallet, mint types.Address) types.Address {
	account := h.Deriver.Derive(wallet, mint)
	h.Ledger.OpenAccount(account, wallet, mint, sdkmath.ZeroInt())
	return account
}

// OpenVault opens the schedule's vault token account, owned by the
// ScheduleState derivation itself, with the given starting balance.
// Production deployments have the host runtime do this as part of
// account creation; tests call it explicitly as setup.
func (h *Harness) OpenVault(mint types.Address, balance sdkmath.Int) types.Address {
	scheduleState := types.ScheduleStateAddress()
	vault := types.VaultAddress(scheduleState)
	h.Ledger.OpenAccount(vault, scheduleState, mint, balance)
	return vault
}

// OpenAdminAccount opens a token account for admin under mint, the
// source deposits and withdrawals move funds to and from.
func (h *Harness) OpenAdminAccount(admin, mint types.Address, balance sdkmath.Int) types.Address {
	h.Ledger.OpenAccount(admin, admin, mint, balance)
	return admin
}
