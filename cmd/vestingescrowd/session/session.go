// Package session persists the CLI's demo state — the ScheduleState,
// the recipient list, and every open token account — between
// vestingescrowd invocations, so a sequence of commands can build up
// a schedule the way a real distributor would over many transactions.
// This is a convenience for exercising the core from a shell; a real
// deployment's durable state lives entirely in the host runtime.
package session

import (
	"encoding/json"
	"os"

	"cosmossdk.io/log"

	"github.com/tokenize-x/vesting-escrow/testutil/vestingtest"
	"github.com/tokenize-x/vesting-escrow/x/vesting/keeper"
	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

// Snapshot is the on-disk representation of one session.
type Snapshot struct {
	Now        int64                       `json:"now"`
	Schedule   types.ScheduleState         `json:"schedule"`
	Recipients []types.RecipientEntry      `json:"recipients"`
	Accounts   []vestingtest.AccountRecord `json:"accounts"`
}

// Load reads a Snapshot from path. A missing file yields a zero-value
// Snapshot rather than an error, so the first command in a session
// (typically schedule init) does not need a pre-existing file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Snapshot{}, nil
	}
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Save writes snap to path as indented JSON.
func Save(path string, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Session bundles a rehydrated Keeper with the collaborators the CLI
// needs direct access to (the clock, to advance or report wall time,
// and the ledger, to snapshot afterward).
type Session struct {
	Keeper  *keeper.Keeper
	Clock   *vestingtest.FixedClock
	Ledger  *vestingtest.Ledger
	Deriver vestingtest.AssociatedAccountDeriver
	Events  *vestingtest.EventLog
}

// Open rehydrates a Session from snap.
func Open(snap *Snapshot) *Session {
	clock := vestingtest.NewFixedClock(snap.Now)
	ledger := vestingtest.NewLedger()
	for _, a := range snap.Accounts {
		ledger.OpenAccount(a.Account, a.Owner, a.Mint, a.Balance)
	}
	deriver := vestingtest.NewAssociatedAccountDeriver()
	events := vestingtest.NewEventLog()

	k := keeper.Restore(log.NewNopLogger(), clock, ledger, deriver, events, snap.Schedule, snap.Recipients)
	return &Session{Keeper: k, Clock: clock, Ledger: ledger, Deriver: deriver, Events: events}
}

// Snapshot captures the Session's current state for persistence.
func (s *Session) Snapshot() *Snapshot {
	return &Snapshot{
		Now:        s.Clock.Now(),
		Schedule:   s.Keeper.State(),
		Recipients: s.Keeper.Recipients(),
		Accounts:   s.Ledger.Accounts(),
	}
}
