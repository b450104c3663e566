package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mojo-protocol/mojo/x/amm/types"
)

// GetPlatform retrieves the singleton platform state. Records written by
// a different schema version are rejected.
func (k Keeper) GetPlatform(ctx context.Context) (*types.PlatformState, error) {
	store := k.getStore(ctx)
	bz := store.Get(PlatformKey)
	if bz == nil {
		return nil, types.ErrPlatformNotInitialized
	}

	var platform types.PlatformState
	if err := k.cdc.UnmarshalJSON(bz, &platform); err != nil {
		return nil, fmt.Errorf("GetPlatform: unmarshal: %w", err)
	}
	if platform.Version != types.CurrentPlatformVersion {
		return nil, types.ErrInvalidVersion.Wrapf("stored version %d, supported %d", platform.Version, types.CurrentPlatformVersion)
	}
	return &platform, nil
}

// SetPlatform saves the platform state to the store
func (k Keeper) SetPlatform(ctx context.Context, platform *types.PlatformState) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.MarshalJSON(platform)
	if err != nil {
		return fmt.Errorf("SetPlatform: marshal: %w", err)
	}
	store.Set(PlatformKey, bz)
	return nil
}

// HasPlatform reports whether the platform record exists.
func (k Keeper) HasPlatform(ctx context.Context) bool {
	return k.getStore(ctx).Has(PlatformKey)
}

// InitializePlatform creates the singleton platform record. The caller
// becomes the admin; the fee collector address is derived, not chosen.
// Fails if the platform already exists or the protocol fee exceeds its cap.
func (k Keeper) InitializePlatform(ctx context.Context, admin sdk.AccAddress, baseDenom string, protocolFeeBps uint32) (*types.PlatformState, error) {
	if k.HasPlatform(ctx) {
		return nil, types.ErrPlatformExists
	}
	if err := sdk.ValidateDenom(baseDenom); err != nil {
		return nil, types.ErrInvalidBaseToken.Wrapf("%s", err)
	}
	if protocolFeeBps > types.MaxProtocolFeeRateBps {
		return nil, types.ErrProtocolFeeTooHigh.Wrapf("%d bps exceeds cap %d", protocolFeeBps, types.MaxProtocolFeeRateBps)
	}

	platform := types.NewPlatformState(baseDenom, admin.String(), protocolFeeBps)
	if err := k.SetPlatform(ctx, &platform); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePlatformInitialized,
			sdk.NewAttribute(types.AttributeKeyAdmin, platform.Admin),
			sdk.NewAttribute(types.AttributeKeyBaseDenom, platform.BaseDenom),
			sdk.NewAttribute(types.AttributeKeyFeeRateBps, fmt.Sprintf("%d", platform.ProtocolFeeBps)),
		),
	)

	k.Logger(ctx).Info("platform initialized",
		"admin", platform.Admin,
		"base_denom", platform.BaseDenom,
		"protocol_fee_bps", platform.ProtocolFeeBps,
	)
	GetMetrics().PlatformInitialized.Inc()

	return &platform, nil
}

// requireAdmin loads the platform and checks the signer against its admin.
func (k Keeper) requireAdmin(ctx context.Context, signer sdk.AccAddress) (*types.PlatformState, error) {
	platform, err := k.GetPlatform(ctx)
	if err != nil {
		return nil, err
	}
	if platform.Admin != signer.String() {
		return nil, types.ErrUnauthorized.Wrapf("signer %s is not the platform admin", signer)
	}
	return platform, nil
}

// requireNotPaused loads the platform and rejects when trading is halted.
func (k Keeper) requireNotPaused(ctx context.Context) (*types.PlatformState, error) {
	platform, err := k.GetPlatform(ctx)
	if err != nil {
		return nil, err
	}
	if platform.Security.Paused {
		return nil, types.ErrTradingPaused
	}
	return platform, nil
}
