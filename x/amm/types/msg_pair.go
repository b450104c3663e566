package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// TypeMsgCreatePair is the message type URL for pair creation
const TypeMsgCreatePair = "create_pair"

var _ sdk.Msg = &MsgCreatePair{}

// MsgCreatePair registers a new trading pair between the platform base
// asset and a paired asset. Only the platform admin may send it.
type MsgCreatePair struct {
	Creator     string `json:"creator"`
	BaseDenom   string `json:"base_denom"`
	PairedDenom string `json:"paired_denom"`
	FeeRateBps  uint32 `json:"fee_rate_bps"`
}

// NewMsgCreatePair creates a new MsgCreatePair instance
func NewMsgCreatePair(creator, baseDenom, pairedDenom string, feeRateBps uint32) *MsgCreatePair {
	return &MsgCreatePair{
		Creator:     creator,
		BaseDenom:   baseDenom,
		PairedDenom: pairedDenom,
		FeeRateBps:  feeRateBps,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgCreatePair) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgCreatePair) Type() string { return TypeMsgCreatePair }

// GetSigners implements the sdk.Msg interface
func (msg MsgCreatePair) GetSigners() []sdk.AccAddress {
	creator, _ := sdk.AccAddressFromBech32(msg.Creator)
	return []sdk.AccAddress{creator}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgCreatePair) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgCreatePair) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid creator address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.BaseDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidBaseToken, "invalid base denom: %s", err)
	}
	if err := sdk.ValidateDenom(msg.PairedDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidPairedToken, "invalid paired denom: %s", err)
	}
	if msg.BaseDenom == msg.PairedDenom {
		return sdkerrors.Wrap(ErrInvalidPair, "base and paired denoms must differ")
	}
	if msg.FeeRateBps > MaxFeeRateBps {
		return sdkerrors.Wrapf(ErrFeeTooHigh, "%d bps", msg.FeeRateBps)
	}
	return nil
}
