package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs for liquidity provision
const (
	TypeMsgAddLiquidity    = "add_liquidity"
	TypeMsgRemoveLiquidity = "remove_liquidity"
)

var (
	_ sdk.Msg = &MsgAddLiquidity{}
	_ sdk.Msg = &MsgRemoveLiquidity{}
)

// MsgAddLiquidity deposits both assets of a pair in exchange for LP tokens.
type MsgAddLiquidity struct {
	Provider     string   `json:"provider"`
	PairId       uint64   `json:"pair_id"`
	BaseAmount   math.Int `json:"base_amount"`
	PairedAmount math.Int `json:"paired_amount"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider string, pairId uint64, baseAmount, pairedAmount math.Int) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider:     provider,
		PairId:       pairId,
		BaseAmount:   baseAmount,
		PairedAmount: pairedAmount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgAddLiquidity) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgAddLiquidity) Type() string { return TypeMsgAddLiquidity }

// GetSigners implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid provider address: %s", err)
	}
	if msg.PairId == 0 {
		return sdkerrors.Wrap(ErrInvalidPair, "pair id cannot be zero")
	}
	if msg.BaseAmount.IsNil() || !msg.BaseAmount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "base amount must be positive")
	}
	if msg.PairedAmount.IsNil() || !msg.PairedAmount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "paired amount must be positive")
	}
	return nil
}

// MsgRemoveLiquidity burns LP tokens for a pro-rata share of both reserves.
// MinBaseOut and MinPairedOut bound the acceptable slippage.
type MsgRemoveLiquidity struct {
	Provider     string   `json:"provider"`
	PairId       uint64   `json:"pair_id"`
	LpAmount     math.Int `json:"lp_amount"`
	MinBaseOut   math.Int `json:"min_base_out"`
	MinPairedOut math.Int `json:"min_paired_out"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider string, pairId uint64, lpAmount, minBaseOut, minPairedOut math.Int) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider:     provider,
		PairId:       pairId,
		LpAmount:     lpAmount,
		MinBaseOut:   minBaseOut,
		MinPairedOut: minPairedOut,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string { return TypeMsgRemoveLiquidity }

// GetSigners implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, _ := sdk.AccAddressFromBech32(msg.Provider)
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid provider address: %s", err)
	}
	if msg.PairId == 0 {
		return sdkerrors.Wrap(ErrInvalidPair, "pair id cannot be zero")
	}
	if msg.LpAmount.IsNil() || !msg.LpAmount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "lp amount must be positive")
	}
	if msg.MinBaseOut.IsNil() || msg.MinBaseOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min base out cannot be negative")
	}
	if msg.MinPairedOut.IsNil() || msg.MinPairedOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min paired out cannot be negative")
	}
	return nil
}
