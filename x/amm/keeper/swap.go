package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mojo-protocol/mojo/x/amm/types"
)

// SwapResult carries the settled amounts of one swap.
type SwapResult struct {
	AmountOut   math.Int
	ProtocolFee math.Int
	InputIsBase bool
}

// Swap trades denomIn for the other side of the pair along the
// constant-product curve. The protocol fee is always taken in the base
// asset: off the input before pricing when the base asset goes in, off
// the gross output after pricing when it comes out. All checks run
// before any token moves, so a failed swap leaves no trace.
func (k Keeper) Swap(ctx context.Context, trader sdk.AccAddress, pairID uint64, denomIn string, amountIn, minAmountOut math.Int) (*SwapResult, error) {
	platform, err := k.requireNotPaused(ctx)
	if err != nil {
		return nil, err
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return nil, types.ErrZeroAmount.Wrap("swap input must be positive")
	}
	pair, err := k.GetPair(ctx, pairID)
	if err != nil {
		return nil, err
	}
	var inputIsBase bool
	switch denomIn {
	case pair.BaseDenom:
		inputIsBase = true
	case pair.PairedDenom:
		inputIsBase = false
	default:
		return nil, types.ErrDenomMismatch.Wrapf("denom %s not in pair %d", denomIn, pairID)
	}
	if pair.IsEmpty() {
		return nil, types.ErrInsufficientLiquidity.Wrapf("pair %d has no liquidity", pairID)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	params := k.GetParams(ctx)
	if params.SwapCooldownSeconds > 0 && pair.LastSwapTime > 0 {
		if elapsed := now - pair.LastSwapTime; elapsed < params.SwapCooldownSeconds {
			return nil, types.ErrSwapCooldown.Wrapf("%ds of %ds elapsed", elapsed, params.SwapCooldownSeconds)
		}
	}

	feeRate := math.NewInt(int64(platform.ProtocolFeeBps))
	bpsDenom := math.NewInt(types.BpsDenominator)

	var (
		protocolFee math.Int
		amountOut   math.Int
		grossOut    math.Int
		curveIn     math.Int
	)
	inputReserve, outputReserve := pair.PairedReserve, pair.BaseReserve
	if inputIsBase {
		inputReserve, outputReserve = pair.BaseReserve, pair.PairedReserve
	}

	if inputIsBase {
		// Fee off the input, then price the remainder.
		protocolFee, err = SafeMulDiv(amountIn, feeRate, bpsDenom)
		if err != nil {
			return nil, err
		}
		curveIn, err = SafeSub(amountIn, protocolFee)
		if err != nil {
			return nil, err
		}
	} else {
		// Price the full input; the fee comes off the base-asset output.
		curveIn = amountIn
	}

	amountOut, err = constantProductOut(inputReserve, outputReserve, curveIn)
	if err != nil {
		return nil, err
	}
	grossOut = amountOut
	if !inputIsBase {
		protocolFee, err = SafeMulDiv(grossOut, feeRate, bpsDenom)
		if err != nil {
			return nil, err
		}
		amountOut, err = SafeSub(grossOut, protocolFee)
		if err != nil {
			return nil, err
		}
	}

	if !minAmountOut.IsNil() && amountOut.LT(minAmountOut) {
		return nil, types.ErrSlippageExceeded.Wrapf("output %s below min %s", amountOut, minAmountOut)
	}
	if grossOut.GTE(outputReserve) {
		return nil, types.ErrInsufficientLiquidity.Wrapf("output %s would drain reserve %s", grossOut, outputReserve)
	}

	newInputReserve, err := SafeAdd(inputReserve, curveIn)
	if err != nil {
		return nil, err
	}
	newOutputReserve, err := SafeSub(outputReserve, grossOut)
	if err != nil {
		return nil, err
	}
	// Floor division can only leave value in the pool, never remove it.
	oldK := inputReserve.Mul(outputReserve)
	if newInputReserve.Mul(newOutputReserve).LT(oldK) {
		return nil, types.ErrInvariantBroken.Wrapf("pair %d product decreased", pairID)
	}

	baseVault := types.PairVaultAddress(pair.Id, types.VaultRoleBase)
	pairedVault := types.PairVaultAddress(pair.Id, types.VaultRolePaired)
	feeCollector := types.FeeCollectorAddress()

	if inputIsBase {
		if err := k.bankKeeper.SendCoins(ctx, trader, baseVault, sdk.NewCoins(sdk.NewCoin(pair.BaseDenom, amountIn))); err != nil {
			return nil, err
		}
		if err := k.bankKeeper.SendCoins(ctx, pairedVault, trader, sdk.NewCoins(sdk.NewCoin(pair.PairedDenom, amountOut))); err != nil {
			return nil, err
		}
		if protocolFee.IsPositive() {
			if err := k.bankKeeper.SendCoins(ctx, baseVault, feeCollector, sdk.NewCoins(sdk.NewCoin(pair.BaseDenom, protocolFee))); err != nil {
				return nil, err
			}
		}
		pair.BaseReserve = newInputReserve
		pair.PairedReserve = newOutputReserve
	} else {
		if err := k.bankKeeper.SendCoins(ctx, trader, pairedVault, sdk.NewCoins(sdk.NewCoin(pair.PairedDenom, amountIn))); err != nil {
			return nil, err
		}
		if err := k.bankKeeper.SendCoins(ctx, baseVault, trader, sdk.NewCoins(sdk.NewCoin(pair.BaseDenom, amountOut))); err != nil {
			return nil, err
		}
		if protocolFee.IsPositive() {
			if err := k.bankKeeper.SendCoins(ctx, baseVault, feeCollector, sdk.NewCoins(sdk.NewCoin(pair.BaseDenom, protocolFee))); err != nil {
				return nil, err
			}
		}
		pair.PairedReserve = newInputReserve
		pair.BaseReserve = newOutputReserve
	}

	pair.LastSwapTime = now
	if err := k.SetPair(ctx, pair); err != nil {
		return nil, err
	}

	// Aggregate counters; raw input units, audit only.
	platform.Stats.TotalVolume, err = SafeAdd(platform.Stats.TotalVolume, amountIn)
	if err != nil {
		return nil, err
	}
	platform.Stats.TotalFees, err = SafeAdd(platform.Stats.TotalFees, protocolFee)
	if err != nil {
		return nil, err
	}
	if err := k.SetPlatform(ctx, platform); err != nil {
		return nil, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPairID, fmt.Sprintf("%d", pair.Id)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyProtocolFee, protocolFee.String()),
			sdk.NewAttribute(types.AttributeKeyInputIsBase, fmt.Sprintf("%t", inputIsBase)),
		),
	)
	k.Logger(ctx).Info("swap executed",
		"pair_id", pair.Id,
		"trader", trader.String(),
		"amount_in", amountIn.String(),
		"amount_out", amountOut.String(),
		"protocol_fee", protocolFee.String(),
	)
	GetMetrics().ObserveSwap(amountIn)

	return &SwapResult{
		AmountOut:   amountOut,
		ProtocolFee: protocolFee,
		InputIsBase: inputIsBase,
	}, nil
}

// constantProductOut prices amountIn against the x*y=k curve and returns
// the floored output. The product is carried at full width.
func constantProductOut(inputReserve, outputReserve, amountIn math.Int) (math.Int, error) {
	// The product of two in-range reserves always fits 128 bits, so it
	// is computed unchecked and never stored.
	product := inputReserve.Mul(outputReserve)
	newInputReserve, err := SafeAdd(inputReserve, amountIn)
	if err != nil {
		return math.Int{}, err
	}
	newOutputReserve, err := SafeQuo(product, newInputReserve)
	if err != nil {
		return math.Int{}, err
	}
	return SafeSub(outputReserve, newOutputReserve)
}
