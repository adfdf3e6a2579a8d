package keeper

import (
	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

// MsgServer is the thin dispatch layer the host runtime's invocation
// surface calls into: one method per operation in the invocation
// surface, each doing nothing but routing to the matching Keeper
// method. It carries no state of its own.
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServer returns a new instance of the MsgServer.
func NewMsgServer(keeper *Keeper) MsgServer {
	return MsgServer{keeper: keeper}
}

func (ms MsgServer) InitializeSchedule(msg *types.MsgInitializeSchedule) error {
	return ms.keeper.InitializeSchedule(msg)
}

func (ms MsgServer) AddRecipients(msg *types.MsgAddRecipients) error {
	return ms.keeper.AddRecipients(msg)
}

func (ms MsgServer) DepositTokens(msg *types.MsgDepositTokens) error {
	return ms.keeper.DepositTokens(msg)
}

func (ms MsgServer) SetDistributor(msg *types.MsgSetDistributor) error {
	return ms.keeper.SetDistributor(msg)
}

func (ms MsgServer) Pause(msg *types.MsgPause) error {
	return ms.keeper.Pause(msg)
}

func (ms MsgServer) Unpause(msg *types.MsgUnpause) error {
	return ms.keeper.Unpause(msg)
}

func (ms MsgServer) RevokeRecipient(msg *types.MsgRevokeRecipient) error {
	return ms.keeper.RevokeRecipient(msg)
}

func (ms MsgServer) ReleaseToRecipient(msg *types.MsgReleaseToRecipient) error {
	return ms.keeper.ReleaseToRecipient(msg)
}

func (ms MsgServer) BatchRelease(msg *types.MsgBatchRelease) error {
	return ms.keeper.BatchRelease(msg)
}

func (ms MsgServer) EmitVestingQuote(msg *types.MsgEmitVestingQuote) error {
	return ms.keeper.EmitVestingQuote(msg)
}

func (ms MsgServer) AdminWithdraw(msg *types.MsgAdminWithdraw) error {
	return ms.keeper.AdminWithdraw(msg)
}

func (ms MsgServer) SweepDustAfterEnd(msg *types.MsgSweepDustAfterEnd) error {
	return ms.keeper.SweepDustAfterEnd(msg)
}
