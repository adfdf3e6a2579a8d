package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/tokenize-x/vesting-escrow/x/vesting/types"
)

func TestEmitVestingQuotePreSeal(t *testing.T) {
	h, admin, _, _ := initializedHarness(t, sdkmath.NewInt(120))
	wallet := addr(10)
	require.NoError(t, h.Keeper.AddRecipients(&types.MsgAddRecipients{
		Admin: admin, Wallets: []types.Address{wallet}, Amounts: []sdkmath.Int{sdkmath.NewInt(120)},
	}))

	h.Clock.Set(startTS)
	err := h.Keeper.EmitVestingQuote(&types.MsgEmitVestingQuote{Wallet: wallet})
	require.NoError(t, err)
	// ScheduleInitialized and RecipientsAdded precede the quote.
	require.Len(t, h.Events.Events, 3)

	quote, ok := h.Events.Events[2].(types.VestingQuote)
	require.True(t, ok)
	require.Equal(t, wallet, quote.Wallet)
	require.True(t, quote.Released.IsZero())
}

func TestEmitVestingQuoteBeforeStart(t *testing.T) {
	h, admin, _, _ := initializedHarness(t, sdkmath.NewInt(120))
	wallet := addr(10)
	require.NoError(t, h.Keeper.AddRecipients(&types.MsgAddRecipients{
		Admin: admin, Wallets: []types.Address{wallet}, Amounts: []sdkmath.Int{sdkmath.NewInt(120)},
	}))

	err := h.Keeper.EmitVestingQuote(&types.MsgEmitVestingQuote{Wallet: wallet})
	require.ErrorIs(t, err, types.ErrBeforeStart)
}

func TestEmitVestingQuoteReflectsAccrual(t *testing.T) {
	h, admin, _, _ := initializedHarness(t, sdkmath.NewInt(120))
	wallet := addr(10)
	require.NoError(t, h.Keeper.AddRecipients(&types.MsgAddRecipients{
		Admin: admin, Wallets: []types.Address{wallet}, Amounts: []sdkmath.Int{sdkmath.NewInt(120)}, Seal: true,
	}))

	h.Clock.Set(startTS)
	require.NoError(t, h.Keeper.EmitVestingQuote(&types.MsgEmitVestingQuote{Wallet: wallet}))
	quote := h.Events.Events[len(h.Events.Events)-1].(types.VestingQuote)
	require.Equal(t, 1, quote.MonthIndex)
	require.True(t, quote.Vested.Equal(sdkmath.NewInt(10)))
	require.True(t, quote.Releasable.Equal(sdkmath.NewInt(10)))
}

func TestEmitVestingQuoteUnknownWallet(t *testing.T) {
	h, _, _, _ := initializedHarness(t, sdkmath.NewInt(120))
	err := h.Keeper.EmitVestingQuote(&types.MsgEmitVestingQuote{Wallet: addr(99)})
	require.ErrorIs(t, err, types.ErrRecipientNotFound)
}
