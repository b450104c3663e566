package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mojo-protocol/mojo/x/amm/types"
)

// AddLiquidity deposits both assets of a pair and mints LP tokens to the
// provider. The first deposit into an empty pair sets the price and mints
// sqrt(base * paired) LP tokens; later deposits mint the smaller of the
// two proportional shares so oversupplying one side donates to the pool.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, pairID uint64, baseAmount, pairedAmount math.Int) (math.Int, error) {
	if _, err := k.requireNotPaused(ctx); err != nil {
		return math.Int{}, err
	}
	pair, err := k.GetPair(ctx, pairID)
	if err != nil {
		return math.Int{}, err
	}
	if baseAmount.IsNil() || !baseAmount.IsPositive() || pairedAmount.IsNil() || !pairedAmount.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("deposit amounts must be positive")
	}

	var lpMinted math.Int
	if pair.IsEmpty() {
		// The deposit product fits 128 bits and its root fits 64, so
		// only the sqrt result is range-relevant.
		lpMinted, err = IntegerSqrt(baseAmount.Mul(pairedAmount))
		if err != nil {
			return math.Int{}, err
		}
		params := k.GetParams(ctx)
		if lpMinted.LT(params.MinInitialLiquidity) {
			return math.Int{}, types.ErrInsufficientLiquidityMinted.Wrapf(
				"bootstrap mint %s below minimum %s", lpMinted, params.MinInitialLiquidity)
		}
	} else {
		baseShare, err := SafeMulDiv(baseAmount, pair.TotalLiquidity, pair.BaseReserve)
		if err != nil {
			return math.Int{}, err
		}
		pairedShare, err := SafeMulDiv(pairedAmount, pair.TotalLiquidity, pair.PairedReserve)
		if err != nil {
			return math.Int{}, err
		}
		lpMinted = math.MinInt(baseShare, pairedShare)
		if lpMinted.IsZero() {
			return math.Int{}, types.ErrInsufficientLiquidityMinted.Wrap("deposit too small for one LP unit")
		}
	}

	newBaseReserve, err := SafeAdd(pair.BaseReserve, baseAmount)
	if err != nil {
		return math.Int{}, err
	}
	newPairedReserve, err := SafeAdd(pair.PairedReserve, pairedAmount)
	if err != nil {
		return math.Int{}, err
	}
	newTotalLiquidity, err := SafeAdd(pair.TotalLiquidity, lpMinted)
	if err != nil {
		return math.Int{}, err
	}

	baseVault := types.PairVaultAddress(pair.Id, types.VaultRoleBase)
	pairedVault := types.PairVaultAddress(pair.Id, types.VaultRolePaired)
	if err := k.bankKeeper.SendCoins(ctx, provider, baseVault, sdk.NewCoins(sdk.NewCoin(pair.BaseDenom, baseAmount))); err != nil {
		return math.Int{}, err
	}
	if err := k.bankKeeper.SendCoins(ctx, provider, pairedVault, sdk.NewCoins(sdk.NewCoin(pair.PairedDenom, pairedAmount))); err != nil {
		return math.Int{}, err
	}

	lpCoins := sdk.NewCoins(sdk.NewCoin(pair.LpDenom, lpMinted))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, lpCoins); err != nil {
		return math.Int{}, err
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, lpCoins); err != nil {
		return math.Int{}, err
	}

	pair.BaseReserve = newBaseReserve
	pair.PairedReserve = newPairedReserve
	pair.TotalLiquidity = newTotalLiquidity
	if err := k.SetPair(ctx, pair); err != nil {
		return math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityAdded,
			sdk.NewAttribute(types.AttributeKeyPairID, fmt.Sprintf("%d", pair.Id)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyBaseAmount, baseAmount.String()),
			sdk.NewAttribute(types.AttributeKeyPairedAmount, pairedAmount.String()),
			sdk.NewAttribute(types.AttributeKeyLpAmount, lpMinted.String()),
		),
	)
	k.Logger(ctx).Info("liquidity added",
		"pair_id", pair.Id,
		"provider", provider.String(),
		"lp_minted", lpMinted.String(),
	)
	GetMetrics().LiquidityAdds.Inc()

	return lpMinted, nil
}

// RemoveLiquidity burns LP tokens for a pro-rata share of both reserves.
// Both payouts are floored; the min bounds protect the provider from
// executing against a pool that moved since they signed.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, pairID uint64, lpAmount, minBaseOut, minPairedOut math.Int) (math.Int, math.Int, error) {
	if _, err := k.requireNotPaused(ctx); err != nil {
		return math.Int{}, math.Int{}, err
	}
	pair, err := k.GetPair(ctx, pairID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if lpAmount.IsNil() || !lpAmount.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("lp amount must be positive")
	}
	if pair.IsEmpty() || lpAmount.GT(pair.TotalLiquidity) {
		return math.Int{}, math.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"burning %s of %s total", lpAmount, pair.TotalLiquidity)
	}

	baseOut, err := SafeMulDiv(lpAmount, pair.BaseReserve, pair.TotalLiquidity)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	pairedOut, err := SafeMulDiv(lpAmount, pair.PairedReserve, pair.TotalLiquidity)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if !minBaseOut.IsNil() && baseOut.LT(minBaseOut) {
		return math.Int{}, math.Int{}, types.ErrSlippageExceeded.Wrapf("base out %s below min %s", baseOut, minBaseOut)
	}
	if !minPairedOut.IsNil() && pairedOut.LT(minPairedOut) {
		return math.Int{}, math.Int{}, types.ErrSlippageExceeded.Wrapf("paired out %s below min %s", pairedOut, minPairedOut)
	}

	newBaseReserve, err := SafeSub(pair.BaseReserve, baseOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	newPairedReserve, err := SafeSub(pair.PairedReserve, pairedOut)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	newTotalLiquidity, err := SafeSub(pair.TotalLiquidity, lpAmount)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	lpCoins := sdk.NewCoins(sdk.NewCoin(pair.LpDenom, lpAmount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, lpCoins); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, lpCoins); err != nil {
		return math.Int{}, math.Int{}, err
	}

	baseVault := types.PairVaultAddress(pair.Id, types.VaultRoleBase)
	pairedVault := types.PairVaultAddress(pair.Id, types.VaultRolePaired)
	if baseOut.IsPositive() {
		if err := k.bankKeeper.SendCoins(ctx, baseVault, provider, sdk.NewCoins(sdk.NewCoin(pair.BaseDenom, baseOut))); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}
	if pairedOut.IsPositive() {
		if err := k.bankKeeper.SendCoins(ctx, pairedVault, provider, sdk.NewCoins(sdk.NewCoin(pair.PairedDenom, pairedOut))); err != nil {
			return math.Int{}, math.Int{}, err
		}
	}

	pair.BaseReserve = newBaseReserve
	pair.PairedReserve = newPairedReserve
	pair.TotalLiquidity = newTotalLiquidity
	if err := k.SetPair(ctx, pair); err != nil {
		return math.Int{}, math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLiquidityRemoved,
			sdk.NewAttribute(types.AttributeKeyPairID, fmt.Sprintf("%d", pair.Id)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyBaseAmount, baseOut.String()),
			sdk.NewAttribute(types.AttributeKeyPairedAmount, pairedOut.String()),
			sdk.NewAttribute(types.AttributeKeyLpAmount, lpAmount.String()),
		),
	)
	k.Logger(ctx).Info("liquidity removed",
		"pair_id", pair.Id,
		"provider", provider.String(),
		"lp_burned", lpAmount.String(),
	)
	GetMetrics().LiquidityRemovals.Inc()

	return baseOut, pairedOut, nil
}
