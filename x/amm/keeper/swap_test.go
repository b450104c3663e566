package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/mojo-protocol/mojo/testutil/keeper"
	"github.com/mojo-protocol/mojo/x/amm/types"
)

func fundedTrader(bank *keepertest.MockBankKeeper, denom string, amount int64) sdk.AccAddress {
	trader := testAddr("trader")
	keepertest.FundAccount(bank, trader, denom, math.NewInt(amount))
	return trader
}

// TestSwap_ZeroFee_BaseIn tests the raw constant-product curve
func TestSwap_ZeroFee_BaseIn(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	admin := setupPlatform(t, k, ctx, 0)
	pairID, _ := setupFundedPair(t, k, bank, ctx, admin, 1000, 4000)
	trader := fundedTrader(bank, baseDenom, 100)

	result, err := k.Swap(ctx, trader, pairID, baseDenom, math.NewInt(100), math.ZeroInt())
	require.NoError(t, err)
	// k = 4000000; floor(4000000 / 1100) = 3636; out = 4000 - 3636 = 364
	require.Equal(t, math.NewInt(364), result.AmountOut)
	require.True(t, result.ProtocolFee.IsZero())
	require.True(t, result.InputIsBase)

	pair, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1100), pair.BaseReserve)
	require.Equal(t, math.NewInt(3636), pair.PairedReserve)

	require.True(t, bank.GetBalance(ctx, trader, baseDenom).Amount.IsZero())
	require.Equal(t, math.NewInt(364), bank.GetBalance(ctx, trader, pairedDenom).Amount)
}

// TestSwap_ProductNeverDecreases tests the curve invariant across swaps
func TestSwap_ProductNeverDecreases(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	admin := setupPlatform(t, k, ctx, 100)
	pairID, _ := setupFundedPair(t, k, bank, ctx, admin, 100000, 400000)

	trader := testAddr("trader")
	keepertest.FundAccount(bank, trader, baseDenom, math.NewInt(100000))
	keepertest.FundAccount(bank, trader, pairedDenom, math.NewInt(100000))

	pair, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	product := pair.BaseReserve.Mul(pair.PairedReserve)

	for _, trade := range []struct {
		denom  string
		amount int64
	}{
		{baseDenom, 137},
		{pairedDenom, 5000},
		{baseDenom, 9999},
		{pairedDenom, 1},
	} {
		_, err := k.Swap(ctx, trader, pairID, trade.denom, math.NewInt(trade.amount), math.ZeroInt())
		require.NoError(t, err)

		pair, err = k.GetPair(ctx, pairID)
		require.NoError(t, err)
		newProduct := pair.BaseReserve.Mul(pair.PairedReserve)
		require.True(t, newProduct.GTE(product), "product decreased after %+v", trade)
		product = newProduct
	}
}

// TestSwap_ProtocolFee_BaseIn tests the input-side fee split
func TestSwap_ProtocolFee_BaseIn(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	admin := setupPlatform(t, k, ctx, 100) // 1%
	pairID, _ := setupFundedPair(t, k, bank, ctx, admin, 10000, 40000)
	trader := fundedTrader(bank, baseDenom, 1000)

	result, err := k.Swap(ctx, trader, pairID, baseDenom, math.NewInt(1000), math.ZeroInt())
	require.NoError(t, err)
	// fee = 1000 * 100 / 10000 = 10; curve input 990
	// out = 40000 - floor(400000000 / 10990) = 40000 - 36396 = 3604
	require.Equal(t, math.NewInt(10), result.ProtocolFee)
	require.Equal(t, math.NewInt(3604), result.AmountOut)

	pair, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10990), pair.BaseReserve)
	require.Equal(t, math.NewInt(36396), pair.PairedReserve)

	// The fee landed with the collector in the base asset
	require.Equal(t, math.NewInt(10), k.GetCollectedFees(ctx, baseDenom))
	// Vault holds reserve exactly after the fee left
	baseVault := types.PairVaultAddress(pairID, types.VaultRoleBase)
	require.Equal(t, pair.BaseReserve, bank.GetBalance(ctx, baseVault, baseDenom).Amount)
}

// TestSwap_ProtocolFee_PairedIn tests the output-side fee split
func TestSwap_ProtocolFee_PairedIn(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	admin := setupPlatform(t, k, ctx, 100) // 1%
	pairID, _ := setupFundedPair(t, k, bank, ctx, admin, 10000, 40000)
	trader := fundedTrader(bank, pairedDenom, 4000)

	result, err := k.Swap(ctx, trader, pairID, pairedDenom, math.NewInt(4000), math.ZeroInt())
	require.NoError(t, err)
	// gross = 10000 - floor(400000000 / 44000) = 10000 - 9090 = 910
	// fee = 910 * 100 / 10000 = 9; net = 901
	require.Equal(t, math.NewInt(9), result.ProtocolFee)
	require.Equal(t, math.NewInt(901), result.AmountOut)
	require.False(t, result.InputIsBase)

	pair, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	// Reserves track the gross output
	require.Equal(t, math.NewInt(9090), pair.BaseReserve)
	require.Equal(t, math.NewInt(44000), pair.PairedReserve)

	require.Equal(t, math.NewInt(9), k.GetCollectedFees(ctx, baseDenom))
	require.Equal(t, math.NewInt(901), bank.GetBalance(ctx, trader, baseDenom).Amount)
}

// TestSwap_SlippageExceeded tests the min-out bound
func TestSwap_SlippageExceeded(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	admin := setupPlatform(t, k, ctx, 0)
	pairID, _ := setupFundedPair(t, k, bank, ctx, admin, 1000, 4000)
	trader := fundedTrader(bank, baseDenom, 100)

	_, err := k.Swap(ctx, trader, pairID, baseDenom, math.NewInt(100), math.NewInt(365))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	// Nothing moved
	pair, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), pair.BaseReserve)
	require.Equal(t, math.NewInt(100), bank.GetBalance(ctx, trader, baseDenom).Amount)
}

// TestSwap_ZeroAmount tests rejection of empty trades
func TestSwap_ZeroAmount(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	admin := setupPlatform(t, k, ctx, 0)
	pairID, _ := setupFundedPair(t, k, bank, ctx, admin, 1000, 4000)

	_, err := k.Swap(ctx, testAddr("trader"), pairID, baseDenom, math.ZeroInt(), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

// TestSwap_EmptyPool tests rejection when the pair has no liquidity
func TestSwap_EmptyPool(t *testing.T) {
	k, _, ctx := keepertest.AmmKeeper(t)
	admin := setupPlatform(t, k, ctx, 0)
	pair := setupPair(t, k, ctx, admin, 30)

	_, err := k.Swap(ctx, testAddr("trader"), pair.Id, baseDenom, math.NewInt(100), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

// TestSwap_Paused tests the platform pause gate
func TestSwap_Paused(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	admin := setupPlatform(t, k, ctx, 0)
	pairID, _ := setupFundedPair(t, k, bank, ctx, admin, 1000, 4000)
	trader := fundedTrader(bank, baseDenom, 100)

	_, err := k.PausePlatform(ctx, admin)
	require.NoError(t, err)

	_, err = k.Swap(ctx, trader, pairID, baseDenom, math.NewInt(100), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrTradingPaused)

	// Resume restores trading
	require.NoError(t, k.ResumePlatform(ctx, admin))
	_, err = k.Swap(ctx, trader, pairID, baseDenom, math.NewInt(100), math.ZeroInt())
	require.NoError(t, err)
}

// TestSwap_WrongDenom tests rejection of a denom outside the pair
func TestSwap_WrongDenom(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	admin := setupPlatform(t, k, ctx, 0)
	pairID, _ := setupFundedPair(t, k, bank, ctx, admin, 1000, 4000)

	_, err := k.Swap(ctx, testAddr("trader"), pairID, "uother", math.NewInt(100), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrDenomMismatch)
}

// TestSwap_Cooldown tests the per-pair swap rate limit
func TestSwap_Cooldown(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	admin := setupPlatform(t, k, ctx, 0)
	pairID, _ := setupFundedPair(t, k, bank, ctx, admin, 100000, 400000)

	params := k.GetParams(ctx)
	params.SwapCooldownSeconds = 60
	require.NoError(t, k.SetParams(ctx, params))

	trader := fundedTrader(bank, baseDenom, 1000)
	now := time.Unix(1_700_000_000, 0)
	ctx = ctx.WithBlockTime(now)

	_, err := k.Swap(ctx, trader, pairID, baseDenom, math.NewInt(100), math.ZeroInt())
	require.NoError(t, err)

	// Too soon
	ctx = ctx.WithBlockTime(now.Add(30 * time.Second))
	_, err = k.Swap(ctx, trader, pairID, baseDenom, math.NewInt(100), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrSwapCooldown)

	// Exactly at the boundary the cooldown has elapsed
	ctx = ctx.WithBlockTime(now.Add(60 * time.Second))
	_, err = k.Swap(ctx, trader, pairID, baseDenom, math.NewInt(100), math.ZeroInt())
	require.NoError(t, err)
}

// TestSwap_UpdatesStats tests the platform volume and fee counters
func TestSwap_UpdatesStats(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	admin := setupPlatform(t, k, ctx, 100)
	pairID, _ := setupFundedPair(t, k, bank, ctx, admin, 10000, 40000)
	trader := fundedTrader(bank, baseDenom, 1000)

	_, err := k.Swap(ctx, trader, pairID, baseDenom, math.NewInt(1000), math.ZeroInt())
	require.NoError(t, err)

	platform, err := k.GetPlatform(ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1000), platform.Stats.TotalVolume)
	require.Equal(t, math.NewInt(10), platform.Stats.TotalFees)
}

// TestSwap_UpdatesLastSwapTime tests the cooldown timestamp
func TestSwap_UpdatesLastSwapTime(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	admin := setupPlatform(t, k, ctx, 0)
	pairID, _ := setupFundedPair(t, k, bank, ctx, admin, 1000, 4000)
	trader := fundedTrader(bank, baseDenom, 100)

	now := time.Unix(1_700_000_000, 0)
	ctx = ctx.WithBlockTime(now)
	_, err := k.Swap(ctx, trader, pairID, baseDenom, math.NewInt(100), math.ZeroInt())
	require.NoError(t, err)

	pair, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	require.Equal(t, now.Unix(), pair.LastSwapTime)
}

// TestSwap_FailureLeavesStateUnchanged tests that no write survives a
// rejected swap
func TestSwap_FailureLeavesStateUnchanged(t *testing.T) {
	k, bank, ctx := keepertest.AmmKeeper(t)
	admin := setupPlatform(t, k, ctx, 100)
	pairID, _ := setupFundedPair(t, k, bank, ctx, admin, 1000, 4000)

	before, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	platformBefore, err := k.GetPlatform(ctx)
	require.NoError(t, err)

	// Trader holds nothing, so the transfer fails after all checks pass
	_, err = k.Swap(ctx, testAddr("pauper"), pairID, baseDenom, math.NewInt(100), math.ZeroInt())
	require.Error(t, err)

	after, err := k.GetPair(ctx, pairID)
	require.NoError(t, err)
	require.Equal(t, before, after)
	platformAfter, err := k.GetPlatform(ctx)
	require.NoError(t, err)
	require.Equal(t, platformBefore, platformAfter)
}
