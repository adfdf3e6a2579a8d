package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/vesting-escrow/testutil/vestingtest"
	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

func addr(b byte) types.Address {
	var a types.Address
	a[31] = b
	return a
}

const (
	startTS = int64(1_700_000_000)
)

func TestInitializeSchedule(t *testing.T) {
	admin := addr(1)
	mint := addr(2)
	distributor := addr(3)

	testCases := []struct {
		name      string
		msg       *types.MsgInitializeSchedule
		expectErr error
	}{
		{
			name: "valid",
			msg: &types.MsgInitializeSchedule{
				Admin: admin, Mint: mint, Distributor: distributor,
				StartTS: startTS, TotalSupply: sdkmath.NewInt(1_000_000),
			},
		},
		{
			name: "distributor equals admin",
			msg: &types.MsgInitializeSchedule{
				Admin: admin, Mint: mint, Distributor: admin,
				StartTS: startTS, TotalSupply: sdkmath.NewInt(1_000_000),
			},
			expectErr: types.ErrZeroOrEqualKey,
		},
		{
			name: "zero total supply",
			msg: &types.MsgInitializeSchedule{
				Admin: admin, Mint: mint, Distributor: distributor,
				StartTS: startTS, TotalSupply: sdkmath.ZeroInt(),
			},
			expectErr: types.ErrZeroTotalSupply,
		},
		{
			name: "non-positive start",
			msg: &types.MsgInitializeSchedule{
				Admin: admin, Mint: mint, Distributor: distributor,
				StartTS: 0, TotalSupply: sdkmath.NewInt(1_000_000),
			},
			expectErr: types.ErrInvalidStartTimestamp,
		},
		{
			name: "distributor is a program-owned address",
			msg: &types.MsgInitializeSchedule{
				Admin: admin, Mint: mint, Distributor: types.ScheduleStateAddress(),
				StartTS: startTS, TotalSupply: sdkmath.NewInt(1_000_000),
			},
			expectErr: types.ErrDistributorUnsafe,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := vestingtest.NewHarness(startTS - 1000)
			err := h.Keeper.InitializeSchedule(tc.msg)
			if tc.expectErr != nil {
				require.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			state := h.Keeper.State()
			require.True(t, state.Admin == admin)
			require.False(t, state.Sealed)
			require.False(t, state.Paused)
			require.Len(t, h.Events.Events, 1)
		})
	}
}

func TestInitializeScheduleTwiceFails(t *testing.T) {
	h := vestingtest.NewHarness(startTS - 1000)
	msg := &types.MsgInitializeSchedule{
		Admin: addr(1), Mint: addr(2), Distributor: addr(3),
		StartTS: startTS, TotalSupply: sdkmath.NewInt(100),
	}
	require.NoError(t, h.Keeper.InitializeSchedule(msg))
	require.Error(t, h.Keeper.InitializeSchedule(msg))
}

func TestPauseUnpause(t *testing.T) {
	h := vestingtest.NewHarness(startTS - 1000)
	admin := addr(1)
	require.NoError(t, h.Keeper.InitializeSchedule(&types.MsgInitializeSchedule{
		Admin: admin, Mint: addr(2), Distributor: addr(3),
		StartTS: startTS, TotalSupply: sdkmath.NewInt(100),
	}))

	require.ErrorIs(t, h.Keeper.Unpause(&types.MsgUnpause{Admin: admin}), types.ErrNotPaused)

	require.NoError(t, h.Keeper.Pause(&types.MsgPause{Admin: admin}))
	require.True(t, h.Keeper.State().Paused)
	require.ErrorIs(t, h.Keeper.Pause(&types.MsgPause{Admin: admin}), types.ErrAlreadyPaused)

	require.NoError(t, h.Keeper.Unpause(&types.MsgUnpause{Admin: admin}))
	require.False(t, h.Keeper.State().Paused)

	require.ErrorIs(t, h.Keeper.Pause(&types.MsgPause{Admin: addr(9)}), types.ErrWrongAdmin)
}

func TestSetDistributor(t *testing.T) {
	h := vestingtest.NewHarness(startTS - 1000)
	admin := addr(1)
	require.NoError(t, h.Keeper.InitializeSchedule(&types.MsgInitializeSchedule{
		Admin: admin, Mint: addr(2), Distributor: addr(3),
		StartTS: startTS, TotalSupply: sdkmath.NewInt(100),
	}))

	newDist := addr(4)
	require.NoError(t, h.Keeper.SetDistributor(&types.MsgSetDistributor{Admin: admin, NewDistributor: newDist}))
	require.True(t, h.Keeper.State().Distributor == newDist)

	require.ErrorIs(t, h.Keeper.SetDistributor(&types.MsgSetDistributor{Admin: admin, NewDistributor: admin}),
		types.ErrDistributorUnsafe)
}
