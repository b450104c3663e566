package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mojo-protocol/mojo/x/amm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the amm MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// InitializePlatform handles the creation of the platform record
func (ms msgServer) InitializePlatform(goCtx context.Context, msg *types.MsgInitializePlatform) (*types.MsgInitializePlatformResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("InitializePlatform: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("InitializePlatform: invalid admin address: %w", err)
	}

	platform, err := ms.Keeper.InitializePlatform(goCtx, admin, msg.BaseDenom, msg.ProtocolFeeBps)
	if err != nil {
		return nil, fmt.Errorf("InitializePlatform: %w", err)
	}

	return &types.MsgInitializePlatformResponse{
		FeeCollector: platform.FeeCollector,
	}, nil
}

// PausePlatform handles a platform-wide trading halt
func (ms msgServer) PausePlatform(goCtx context.Context, msg *types.MsgPausePlatform) (*types.MsgPausePlatformResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("PausePlatform: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("PausePlatform: invalid admin address: %w", err)
	}

	pauseCount, err := ms.Keeper.PausePlatform(goCtx, admin)
	if err != nil {
		return nil, fmt.Errorf("PausePlatform: %w", err)
	}

	return &types.MsgPausePlatformResponse{
		PauseCount: pauseCount,
	}, nil
}

// ResumePlatform handles lifting a platform-wide pause
func (ms msgServer) ResumePlatform(goCtx context.Context, msg *types.MsgResumePlatform) (*types.MsgResumePlatformResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ResumePlatform: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("ResumePlatform: invalid admin address: %w", err)
	}

	if err := ms.Keeper.ResumePlatform(goCtx, admin); err != nil {
		return nil, fmt.Errorf("ResumePlatform: %w", err)
	}

	return &types.MsgResumePlatformResponse{}, nil
}

// UpdateFeeRate handles a protocol fee rate change
func (ms msgServer) UpdateFeeRate(goCtx context.Context, msg *types.MsgUpdateFeeRate) (*types.MsgUpdateFeeRateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateFeeRate: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("UpdateFeeRate: invalid admin address: %w", err)
	}

	if err := ms.Keeper.UpdateFeeRate(goCtx, admin, msg.NewFeeRateBps); err != nil {
		return nil, fmt.Errorf("UpdateFeeRate: %w", err)
	}

	return &types.MsgUpdateFeeRateResponse{}, nil
}

// WithdrawProtocolFees handles a treasury withdrawal
func (ms msgServer) WithdrawProtocolFees(goCtx context.Context, msg *types.MsgWithdrawProtocolFees) (*types.MsgWithdrawProtocolFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawProtocolFees: validate: %w", err)
	}

	admin, err := sdk.AccAddressFromBech32(msg.Admin)
	if err != nil {
		return nil, fmt.Errorf("WithdrawProtocolFees: invalid admin address: %w", err)
	}
	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, fmt.Errorf("WithdrawProtocolFees: invalid recipient address: %w", err)
	}

	if err := ms.Keeper.WithdrawProtocolFees(goCtx, admin, recipient, msg.Denom, msg.Amount); err != nil {
		return nil, fmt.Errorf("WithdrawProtocolFees: %w", err)
	}

	return &types.MsgWithdrawProtocolFeesResponse{}, nil
}

// CreatePair handles the registration of a new trading pair
func (ms msgServer) CreatePair(goCtx context.Context, msg *types.MsgCreatePair) (*types.MsgCreatePairResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePair: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreatePair: invalid creator address: %w", err)
	}

	pair, err := ms.Keeper.CreatePair(goCtx, creator, msg.BaseDenom, msg.PairedDenom, msg.FeeRateBps)
	if err != nil {
		return nil, fmt.Errorf("CreatePair: %w", err)
	}

	return &types.MsgCreatePairResponse{
		PairId:  pair.Id,
		LpDenom: pair.LpDenom,
	}, nil
}

// AddLiquidity handles a deposit into a pair
func (ms msgServer) AddLiquidity(goCtx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("AddLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: invalid provider address: %w", err)
	}

	lpMinted, err := ms.Keeper.AddLiquidity(goCtx, provider, msg.PairId, msg.BaseAmount, msg.PairedAmount)
	if err != nil {
		return nil, fmt.Errorf("AddLiquidity: %w", err)
	}

	return &types.MsgAddLiquidityResponse{
		LpMinted: lpMinted,
	}, nil
}

// RemoveLiquidity handles a withdrawal from a pair
func (ms msgServer) RemoveLiquidity(goCtx context.Context, msg *types.MsgRemoveLiquidity) (*types.MsgRemoveLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: invalid provider address: %w", err)
	}

	baseOut, pairedOut, err := ms.Keeper.RemoveLiquidity(goCtx, provider, msg.PairId, msg.LpAmount, msg.MinBaseOut, msg.MinPairedOut)
	if err != nil {
		return nil, fmt.Errorf("RemoveLiquidity: %w", err)
	}

	return &types.MsgRemoveLiquidityResponse{
		BaseOut:   baseOut,
		PairedOut: pairedOut,
	}, nil
}

// Swap handles a constant-product trade
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, fmt.Errorf("Swap: invalid trader address: %w", err)
	}

	result, err := ms.Keeper.Swap(goCtx, trader, msg.PairId, msg.DenomIn, msg.AmountIn, msg.MinAmountOut)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	return &types.MsgSwapResponse{
		AmountOut:   result.AmountOut,
		ProtocolFee: result.ProtocolFee,
	}, nil
}
