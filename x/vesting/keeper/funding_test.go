package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

func TestDepositTokens(t *testing.T) {
	h, admin, mint, _ := initializedHarness(t, sdkmath.NewInt(1_000))
	vault := h.OpenVault(mint, sdkmath.ZeroInt())
	source := h.OpenAdminAccount(admin, mint, sdkmath.NewInt(1_000))

	require.NoError(t, h.Keeper.DepositTokens(&types.MsgDepositTokens{
		Admin: admin, SourceAccount: source, Amount: sdkmath.NewInt(400),
	}))
	balance, err := h.Ledger.BalanceOf(vault)
	require.NoError(t, err)
	require.True(t, balance.Equal(sdkmath.NewInt(400)))

	err = h.Keeper.DepositTokens(&types.MsgDepositTokens{
		Admin: admin, SourceAccount: source, Amount: sdkmath.NewInt(700),
	})
	require.ErrorIs(t, err, types.ErrOverDeposit)
}

func TestDepositTokensRejectsAfterStart(t *testing.T) {
	h, admin, mint, _ := initializedHarness(t, sdkmath.NewInt(1_000))
	h.OpenVault(mint, sdkmath.ZeroInt())
	source := h.OpenAdminAccount(admin, mint, sdkmath.NewInt(1_000))

	h.Clock.Set(startTS)
	err := h.Keeper.DepositTokens(&types.MsgDepositTokens{
		Admin: admin, SourceAccount: source, Amount: sdkmath.NewInt(10),
	})
	require.ErrorIs(t, err, types.ErrAfterStart)
}

func TestAdminWithdraw(t *testing.T) {
	h, admin, mint, _ := initializedHarness(t, sdkmath.NewInt(1_000))
	vault := h.OpenVault(mint, sdkmath.NewInt(500))
	destination := h.OpenAdminAccount(admin, mint, sdkmath.ZeroInt())

	err := h.Keeper.AdminWithdraw(&types.MsgAdminWithdraw{
		Admin: admin, DestinationAccount: destination, Amount: sdkmath.NewInt(600), QueryID: "q-1",
	})
	require.ErrorIs(t, err, types.ErrInsufficientForWithdraw)

	require.NoError(t, h.Keeper.AdminWithdraw(&types.MsgAdminWithdraw{
		Admin: admin, DestinationAccount: destination, Amount: sdkmath.NewInt(500), QueryID: "q-2",
	}))
	balance, err := h.Ledger.BalanceOf(vault)
	require.NoError(t, err)
	require.True(t, balance.IsZero())
}

func TestSweepDustAfterEnd(t *testing.T) {
	h, admin, mint, _ := initializedHarness(t, sdkmath.NewInt(100))
	wallet := addr(10)
	require.NoError(t, h.Keeper.AddRecipients(&types.MsgAddRecipients{
		Admin: admin, Wallets: []types.Address{wallet}, Amounts: []sdkmath.Int{sdkmath.NewInt(100)}, Seal: true,
	}))

	destination := h.OpenAdminAccount(admin, mint, sdkmath.ZeroInt())

	err := h.Keeper.SweepDustAfterEnd(&types.MsgSweepDustAfterEnd{Admin: admin, DestinationAccount: destination})
	require.ErrorIs(t, err, types.ErrNotYetEnded)

	h.OpenVault(mint, sdkmath.NewInt(3))
	h.Clock.Set(startTS + 400*24*60*60)
	err = h.Keeper.SweepDustAfterEnd(&types.MsgSweepDustAfterEnd{Admin: admin, DestinationAccount: destination})
	require.ErrorIs(t, err, types.ErrOutstandingAllocs)

	require.NoError(t, h.Keeper.RevokeRecipient(&types.MsgRevokeRecipient{Admin: admin, Wallet: wallet}))
	require.NoError(t, h.Keeper.SweepDustAfterEnd(&types.MsgSweepDustAfterEnd{Admin: admin, DestinationAccount: destination}))

	balance, err := h.Ledger.BalanceOf(destination)
	require.NoError(t, err)
	require.True(t, balance.Equal(sdkmath.NewInt(3)))
}

// TestSweepDustAfterEndUnsealed covers a schedule that was initialized
// and funded by mistake but never sealed with any recipients, then
// abandoned: sweeping is legal once start_ts is long past regardless
// of sealed state, matching the ground-truth is_after_vesting_end
// check, which never consults sealed.
func TestSweepDustAfterEndUnsealed(t *testing.T) {
	h, admin, mint, _ := initializedHarness(t, sdkmath.NewInt(100))
	destination := h.OpenAdminAccount(admin, mint, sdkmath.ZeroInt())
	h.OpenVault(mint, sdkmath.NewInt(7))

	h.Clock.Set(startTS + 400*24*60*60)
	require.NoError(t, h.Keeper.SweepDustAfterEnd(&types.MsgSweepDustAfterEnd{Admin: admin, DestinationAccount: destination}))

	balance, err := h.Ledger.BalanceOf(destination)
	require.NoError(t, err)
	require.True(t, balance.Equal(sdkmath.NewInt(7)))
}
