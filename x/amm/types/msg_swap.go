package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TypeMsgSwap is the message type URL for swaps
const TypeMsgSwap = "swap"

var _ sdk.Msg = &MsgSwap{}

// MsgSwap trades one side of a pair for the other along the
// constant-product curve.
type MsgSwap struct {
	Trader       string   `json:"trader"`
	PairId       uint64   `json:"pair_id"`
	DenomIn      string   `json:"denom_in"`
	AmountIn     math.Int `json:"amount_in"`
	MinAmountOut math.Int `json:"min_amount_out"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(trader string, pairId uint64, denomIn string, amountIn, minAmountOut math.Int) *MsgSwap {
	return &MsgSwap{
		Trader:       trader,
		PairId:       pairId,
		DenomIn:      denomIn,
		AmountIn:     amountIn,
		MinAmountOut: minAmountOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgSwap) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgSwap) Type() string { return TypeMsgSwap }

// GetSigners implements the sdk.Msg interface
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	trader, _ := sdk.AccAddressFromBech32(msg.Trader)
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgSwap) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid trader address: %s", err)
	}
	if msg.PairId == 0 {
		return sdkerrors.Wrap(ErrInvalidPair, "pair id cannot be zero")
	}
	if err := sdk.ValidateDenom(msg.DenomIn); err != nil {
		return sdkerrors.Wrapf(ErrDenomMismatch, "invalid input denom: %s", err)
	}
	// Zero input is rejected here and again in the keeper; the keeper
	// check keeps direct callers honest.
	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "amount in must be positive")
	}
	if msg.MinAmountOut.IsNil() || msg.MinAmountOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min amount out cannot be negative")
	}
	return nil
}
