package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mojo-protocol/mojo/x/amm/types"
)

// PausePlatform halts all swap and liquidity operations. Admin only.
// Pausing an already-paused platform fails so that operators notice
// double submissions.
func (k Keeper) PausePlatform(ctx context.Context, admin sdk.AccAddress) (uint32, error) {
	platform, err := k.requireAdmin(ctx, admin)
	if err != nil {
		return 0, err
	}
	if platform.Security.Paused {
		return 0, types.ErrAlreadyPaused
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	platform.Security.Paused = true
	platform.Security.LastPauseTime = sdkCtx.BlockTime().Unix()
	platform.Security.PauseCount++
	if err := k.SetPlatform(ctx, platform); err != nil {
		return 0, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePlatformPaused,
			sdk.NewAttribute(types.AttributeKeyAdmin, platform.Admin),
			sdk.NewAttribute(types.AttributeKeyPauseCount, fmt.Sprintf("%d", platform.Security.PauseCount)),
		),
	)
	k.Logger(ctx).Info("platform paused",
		"pause_count", platform.Security.PauseCount,
		"height", sdkCtx.BlockHeight(),
	)
	GetMetrics().PauseTotal.Inc()

	return platform.Security.PauseCount, nil
}

// ResumePlatform lifts the pause. Admin only; fails when not paused.
func (k Keeper) ResumePlatform(ctx context.Context, admin sdk.AccAddress) error {
	platform, err := k.requireAdmin(ctx, admin)
	if err != nil {
		return err
	}
	if !platform.Security.Paused {
		return types.ErrNotPaused
	}

	platform.Security.Paused = false
	if err := k.SetPlatform(ctx, platform); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePlatformResumed,
			sdk.NewAttribute(types.AttributeKeyAdmin, platform.Admin),
		),
	)
	k.Logger(ctx).Info("platform resumed", "height", sdkCtx.BlockHeight())
	GetMetrics().ResumeTotal.Inc()

	return nil
}

// UpdateFeeRate changes the platform protocol fee rate. Admin only.
// The rate is checked against the pool-level cap first, then the tighter
// protocol cap, so each violation reports its own error.
func (k Keeper) UpdateFeeRate(ctx context.Context, admin sdk.AccAddress, newFeeRateBps uint32) error {
	platform, err := k.requireAdmin(ctx, admin)
	if err != nil {
		return err
	}
	if newFeeRateBps > types.MaxFeeRateBps {
		return types.ErrFeeTooHigh.Wrapf("%d bps exceeds cap %d", newFeeRateBps, types.MaxFeeRateBps)
	}
	if newFeeRateBps > types.MaxProtocolFeeRateBps {
		return types.ErrProtocolFeeTooHigh.Wrapf("%d bps exceeds cap %d", newFeeRateBps, types.MaxProtocolFeeRateBps)
	}

	oldRate := platform.ProtocolFeeBps
	platform.ProtocolFeeBps = newFeeRateBps
	if err := k.SetPlatform(ctx, platform); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeRateUpdated,
			sdk.NewAttribute(types.AttributeKeyAdmin, platform.Admin),
			sdk.NewAttribute(types.AttributeKeyFeeRateBps, fmt.Sprintf("%d", newFeeRateBps)),
		),
	)
	k.Logger(ctx).Info("protocol fee rate updated", "old_bps", oldRate, "new_bps", newFeeRateBps)

	return nil
}
