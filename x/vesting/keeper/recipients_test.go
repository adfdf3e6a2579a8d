package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/vesting-escrow/testutil/vestingtest"
	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

func initializedHarness(t *testing.T, totalSupply sdkmath.Int) (*vestingtest.Harness, types.Address, types.Address, types.Address) {
	t.Helper()
	h := vestingtest.NewHarness(startTS - 1000)
	admin, mint, distributor := addr(1), addr(2), addr(3)
	require.NoError(t, h.Keeper.InitializeSchedule(&types.MsgInitializeSchedule{
		Admin: admin, Mint: mint, Distributor: distributor,
		StartTS: startTS, TotalSupply: totalSupply,
	}))
	return h, admin, mint, distributor
}

func TestAddRecipients(t *testing.T) {
	h, admin, _, _ := initializedHarness(t, sdkmath.NewInt(240))

	walletA, walletB := addr(10), addr(11)
	err := h.Keeper.AddRecipients(&types.MsgAddRecipients{
		Admin:   admin,
		Wallets: []types.Address{walletA, walletB},
		Amounts: []sdkmath.Int{sdkmath.NewInt(120), sdkmath.NewInt(120)},
		Seal:    true,
	})
	require.NoError(t, err)

	state := h.Keeper.State()
	require.True(t, state.Sealed)
	require.Equal(t, 2, state.RecipientCount)

	recipients := h.Keeper.Recipients()
	require.Len(t, recipients, 2)
	for _, r := range recipients {
		require.True(t, r.MonthlyAmount.MulRaw(11).Add(r.FinalAmount).Equal(r.Allocation))
	}
}

func TestAddRecipientsRejectsDuplicate(t *testing.T) {
	h, admin, _, _ := initializedHarness(t, sdkmath.NewInt(240))
	wallet := addr(10)

	require.NoError(t, h.Keeper.AddRecipients(&types.MsgAddRecipients{
		Admin: admin, Wallets: []types.Address{wallet}, Amounts: []sdkmath.Int{sdkmath.NewInt(100)},
	}))
	err := h.Keeper.AddRecipients(&types.MsgAddRecipients{
		Admin: admin, Wallets: []types.Address{wallet}, Amounts: []sdkmath.Int{sdkmath.NewInt(10)},
	})
	require.ErrorIs(t, err, types.ErrDuplicateWallet)

	err = h.Keeper.AddRecipients(&types.MsgAddRecipients{
		Admin:   admin,
		Wallets: []types.Address{addr(20), addr(20)},
		Amounts: []sdkmath.Int{sdkmath.NewInt(10), sdkmath.NewInt(10)},
	})
	require.ErrorIs(t, err, types.ErrDuplicateWallet)
}

func TestAddRecipientsSealRequiresExactSum(t *testing.T) {
	h, admin, _, _ := initializedHarness(t, sdkmath.NewInt(240))
	err := h.Keeper.AddRecipients(&types.MsgAddRecipients{
		Admin:   admin,
		Wallets: []types.Address{addr(10)},
		Amounts: []sdkmath.Int{sdkmath.NewInt(100)},
		Seal:    true,
	})
	require.ErrorIs(t, err, types.ErrSealSumMismatch)
}

func TestAddRecipientsRejectsOverSupply(t *testing.T) {
	h, admin, _, _ := initializedHarness(t, sdkmath.NewInt(100))
	err := h.Keeper.AddRecipients(&types.MsgAddRecipients{
		Admin:   admin,
		Wallets: []types.Address{addr(10)},
		Amounts: []sdkmath.Int{sdkmath.NewInt(150)},
	})
	require.ErrorIs(t, err, types.ErrAllocationOverflow)
}

func TestAddRecipientsRejectsPastCapacity(t *testing.T) {
	h, admin, _, _ := initializedHarness(t, sdkmath.NewInt(int64(types.MaxRecipients+1)*1_000_000))

	wallets := make([]types.Address, types.MaxRecipients)
	amounts := make([]sdkmath.Int, types.MaxRecipients)
	for i := range wallets {
		wallets[i] = addr(byte(i + 10))
		amounts[i] = sdkmath.NewInt(1_000_000)
	}
	require.NoError(t, h.Keeper.AddRecipients(&types.MsgAddRecipients{Admin: admin, Wallets: wallets, Amounts: amounts}))

	err := h.Keeper.AddRecipients(&types.MsgAddRecipients{
		Admin:   admin,
		Wallets: []types.Address{addr(250)},
		Amounts: []sdkmath.Int{sdkmath.NewInt(1)},
	})
	require.ErrorIs(t, err, types.ErrRecipientListFull)
}

func TestAddRecipientsRejectsAfterSeal(t *testing.T) {
	h, admin, _, _ := initializedHarness(t, sdkmath.NewInt(100))
	require.NoError(t, h.Keeper.AddRecipients(&types.MsgAddRecipients{
		Admin: admin, Wallets: []types.Address{addr(10)}, Amounts: []sdkmath.Int{sdkmath.NewInt(100)}, Seal: true,
	}))
	err := h.Keeper.AddRecipients(&types.MsgAddRecipients{
		Admin: admin, Wallets: []types.Address{addr(11)}, Amounts: []sdkmath.Int{sdkmath.NewInt(1)},
	})
	require.ErrorIs(t, err, types.ErrAlreadySealed)
}

func TestRevokeRecipient(t *testing.T) {
	h, admin, _, _ := initializedHarness(t, sdkmath.NewInt(100))
	wallet := addr(10)
	require.NoError(t, h.Keeper.AddRecipients(&types.MsgAddRecipients{
		Admin: admin, Wallets: []types.Address{wallet}, Amounts: []sdkmath.Int{sdkmath.NewInt(100)}, Seal: true,
	}))

	require.NoError(t, h.Keeper.RevokeRecipient(&types.MsgRevokeRecipient{Admin: admin, Wallet: wallet}))
	require.True(t, h.Keeper.Recipients()[0].Revoked)

	err := h.Keeper.RevokeRecipient(&types.MsgRevokeRecipient{Admin: admin, Wallet: wallet})
	require.ErrorIs(t, err, types.ErrRecipientRevoked)

	err = h.Keeper.RevokeRecipient(&types.MsgRevokeRecipient{Admin: admin, Wallet: addr(99)})
	require.ErrorIs(t, err, types.ErrRecipientNotFound)
}
