package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/mojo-protocol/mojo/testutil/keeper"
	"github.com/mojo-protocol/mojo/x/amm/keeper"
	"github.com/mojo-protocol/mojo/x/amm/types"
)

const (
	baseDenom   = "umojo"
	pairedDenom = "uusdt"
)

func testAddr(name string) sdk.AccAddress {
	return sdk.AccAddress([]byte(name + "____________________")[:20])
}

// setupPlatform initializes the platform with the given protocol fee and
// returns the admin address.
func setupPlatform(t *testing.T, k *keeper.Keeper, ctx sdk.Context, protocolFeeBps uint32) sdk.AccAddress {
	t.Helper()
	admin := testAddr("admin")
	_, err := k.InitializePlatform(ctx, admin, baseDenom, protocolFeeBps)
	require.NoError(t, err)
	return admin
}

// setupPair creates a pair for pairedDenom and returns it.
func setupPair(t *testing.T, k *keeper.Keeper, ctx sdk.Context, admin sdk.AccAddress, feeRateBps uint32) *types.Pair {
	t.Helper()
	pair, err := k.CreatePair(ctx, admin, baseDenom, pairedDenom, feeRateBps)
	require.NoError(t, err)
	return pair
}

// setupFundedPair bootstraps a pair with the given reserves deposited by
// a funded provider. Returns the pair id and the provider.
func setupFundedPair(t *testing.T, k *keeper.Keeper, bank *keepertest.MockBankKeeper, ctx sdk.Context, admin sdk.AccAddress, baseReserve, pairedReserve int64) (uint64, sdk.AccAddress) {
	t.Helper()
	pair := setupPair(t, k, ctx, admin, 0)

	provider := testAddr("provider")
	keepertest.FundAccount(bank, provider, baseDenom, math.NewInt(baseReserve))
	keepertest.FundAccount(bank, provider, pairedDenom, math.NewInt(pairedReserve))

	_, err := k.AddLiquidity(ctx, provider, pair.Id, math.NewInt(baseReserve), math.NewInt(pairedReserve))
	require.NoError(t, err)
	return pair.Id, provider
}
