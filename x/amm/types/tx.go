package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	InitializePlatform(context.Context, *MsgInitializePlatform) (*MsgInitializePlatformResponse, error)
	PausePlatform(context.Context, *MsgPausePlatform) (*MsgPausePlatformResponse, error)
	ResumePlatform(context.Context, *MsgResumePlatform) (*MsgResumePlatformResponse, error)
	UpdateFeeRate(context.Context, *MsgUpdateFeeRate) (*MsgUpdateFeeRateResponse, error)
	WithdrawProtocolFees(context.Context, *MsgWithdrawProtocolFees) (*MsgWithdrawProtocolFeesResponse, error)
	CreatePair(context.Context, *MsgCreatePair) (*MsgCreatePairResponse, error)
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(context.Context, *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
}

// Response types

// MsgInitializePlatformResponse defines the response for InitializePlatform
type MsgInitializePlatformResponse struct {
	FeeCollector string `json:"fee_collector"`
}

// MsgPausePlatformResponse defines the response for PausePlatform
type MsgPausePlatformResponse struct {
	PauseCount uint32 `json:"pause_count"`
}

// MsgResumePlatformResponse defines the response for ResumePlatform
type MsgResumePlatformResponse struct{}

// MsgUpdateFeeRateResponse defines the response for UpdateFeeRate
type MsgUpdateFeeRateResponse struct{}

// MsgWithdrawProtocolFeesResponse defines the response for WithdrawProtocolFees
type MsgWithdrawProtocolFeesResponse struct{}

// MsgCreatePairResponse defines the response for CreatePair
type MsgCreatePairResponse struct {
	PairId  uint64 `json:"pair_id"`
	LpDenom string `json:"lp_denom"`
}

// MsgAddLiquidityResponse defines the response for AddLiquidity
type MsgAddLiquidityResponse struct {
	LpMinted math.Int `json:"lp_minted"`
}

// MsgRemoveLiquidityResponse defines the response for RemoveLiquidity
type MsgRemoveLiquidityResponse struct {
	BaseOut   math.Int `json:"base_out"`
	PairedOut math.Int `json:"paired_out"`
}

// MsgSwapResponse defines the response for Swap
type MsgSwapResponse struct {
	AmountOut   math.Int `json:"amount_out"`
	ProtocolFee math.Int `json:"protocol_fee"`
}
