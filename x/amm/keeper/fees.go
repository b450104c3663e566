package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mojo-protocol/mojo/x/amm/types"
)

// GetCollectedFees returns the fee collector's balance in the given denom.
func (k Keeper) GetCollectedFees(ctx context.Context, denom string) math.Int {
	return k.bankKeeper.GetBalance(ctx, types.FeeCollectorAddress(), denom).Amount
}

// WithdrawProtocolFees moves accrued protocol fees from the fee collector
// to a recipient. Admin only; fees accrue in the base asset, so any other
// denom is rejected.
func (k Keeper) WithdrawProtocolFees(ctx context.Context, admin, recipient sdk.AccAddress, denom string, amount math.Int) error {
	platform, err := k.requireAdmin(ctx, admin)
	if err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("withdrawal amount must be positive")
	}
	if denom != platform.BaseDenom {
		return types.ErrDenomMismatch.Wrapf("fees accrue in %s, not %s", platform.BaseDenom, denom)
	}
	collected := k.GetCollectedFees(ctx, denom)
	if amount.GT(collected) {
		return types.ErrInsufficientLiquidity.Wrapf("withdrawing %s of %s collected", amount, collected)
	}

	if err := k.bankKeeper.SendCoins(ctx, types.FeeCollectorAddress(), recipient, sdk.NewCoins(sdk.NewCoin(denom, amount))); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProtocolFeesWithdrawn,
			sdk.NewAttribute(types.AttributeKeyAdmin, platform.Admin),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyBaseAmount, amount.String()),
		),
	)
	k.Logger(ctx).Info("protocol fees withdrawn",
		"recipient", recipient.String(),
		"amount", amount.String(),
	)

	return nil
}
