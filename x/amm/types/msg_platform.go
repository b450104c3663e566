package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs for platform administration
const (
	TypeMsgInitializePlatform   = "initialize_platform"
	TypeMsgPausePlatform        = "pause_platform"
	TypeMsgResumePlatform       = "resume_platform"
	TypeMsgUpdateFeeRate        = "update_fee_rate"
	TypeMsgWithdrawProtocolFees = "withdraw_protocol_fees"
)

var (
	_ sdk.Msg = &MsgInitializePlatform{}
	_ sdk.Msg = &MsgPausePlatform{}
	_ sdk.Msg = &MsgResumePlatform{}
	_ sdk.Msg = &MsgUpdateFeeRate{}
	_ sdk.Msg = &MsgWithdrawProtocolFees{}
)

// MsgInitializePlatform creates the singleton platform record. The signer
// becomes the platform admin.
type MsgInitializePlatform struct {
	Admin          string `json:"admin"`
	BaseDenom      string `json:"base_denom"`
	ProtocolFeeBps uint32 `json:"protocol_fee_bps"`
}

// NewMsgInitializePlatform creates a new MsgInitializePlatform instance
func NewMsgInitializePlatform(admin, baseDenom string, protocolFeeBps uint32) *MsgInitializePlatform {
	return &MsgInitializePlatform{
		Admin:          admin,
		BaseDenom:      baseDenom,
		ProtocolFeeBps: protocolFeeBps,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgInitializePlatform) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgInitializePlatform) Type() string { return TypeMsgInitializePlatform }

// GetSigners implements the sdk.Msg interface
func (msg MsgInitializePlatform) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgInitializePlatform) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgInitializePlatform) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid admin address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.BaseDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidBaseToken, "invalid base denom: %s", err)
	}
	if msg.ProtocolFeeBps > MaxProtocolFeeRateBps {
		return sdkerrors.Wrapf(ErrProtocolFeeTooHigh, "%d bps", msg.ProtocolFeeBps)
	}
	return nil
}

// MsgPausePlatform halts trading and liquidity operations platform-wide.
type MsgPausePlatform struct {
	Admin string `json:"admin"`
}

// NewMsgPausePlatform creates a new MsgPausePlatform instance
func NewMsgPausePlatform(admin string) *MsgPausePlatform {
	return &MsgPausePlatform{Admin: admin}
}

// Route implements the sdk.Msg interface
func (msg MsgPausePlatform) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgPausePlatform) Type() string { return TypeMsgPausePlatform }

// GetSigners implements the sdk.Msg interface
func (msg MsgPausePlatform) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgPausePlatform) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgPausePlatform) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid admin address: %s", err)
	}
	return nil
}

// MsgResumePlatform lifts a platform-wide pause.
type MsgResumePlatform struct {
	Admin string `json:"admin"`
}

// NewMsgResumePlatform creates a new MsgResumePlatform instance
func NewMsgResumePlatform(admin string) *MsgResumePlatform {
	return &MsgResumePlatform{Admin: admin}
}

// Route implements the sdk.Msg interface
func (msg MsgResumePlatform) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgResumePlatform) Type() string { return TypeMsgResumePlatform }

// GetSigners implements the sdk.Msg interface
func (msg MsgResumePlatform) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgResumePlatform) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgResumePlatform) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid admin address: %s", err)
	}
	return nil
}

// MsgUpdateFeeRate changes the platform protocol fee rate.
type MsgUpdateFeeRate struct {
	Admin         string `json:"admin"`
	NewFeeRateBps uint32 `json:"new_fee_rate_bps"`
}

// NewMsgUpdateFeeRate creates a new MsgUpdateFeeRate instance
func NewMsgUpdateFeeRate(admin string, newFeeRateBps uint32) *MsgUpdateFeeRate {
	return &MsgUpdateFeeRate{Admin: admin, NewFeeRateBps: newFeeRateBps}
}

// Route implements the sdk.Msg interface
func (msg MsgUpdateFeeRate) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgUpdateFeeRate) Type() string { return TypeMsgUpdateFeeRate }

// GetSigners implements the sdk.Msg interface
func (msg MsgUpdateFeeRate) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgUpdateFeeRate) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgUpdateFeeRate) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid admin address: %s", err)
	}
	// Range checks against both caps happen in the keeper so the error
	// ordering matches the on-chain semantics exactly.
	return nil
}

// MsgWithdrawProtocolFees moves accrued base-asset fees from the fee
// collector to a recipient.
type MsgWithdrawProtocolFees struct {
	Admin     string   `json:"admin"`
	Recipient string   `json:"recipient"`
	Denom     string   `json:"denom"`
	Amount    math.Int `json:"amount"`
}

// NewMsgWithdrawProtocolFees creates a new MsgWithdrawProtocolFees instance
func NewMsgWithdrawProtocolFees(admin, recipient, denom string, amount math.Int) *MsgWithdrawProtocolFees {
	return &MsgWithdrawProtocolFees{
		Admin:     admin,
		Recipient: recipient,
		Denom:     denom,
		Amount:    amount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgWithdrawProtocolFees) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg MsgWithdrawProtocolFees) Type() string { return TypeMsgWithdrawProtocolFees }

// GetSigners implements the sdk.Msg interface
func (msg MsgWithdrawProtocolFees) GetSigners() []sdk.AccAddress {
	admin, _ := sdk.AccAddressFromBech32(msg.Admin)
	return []sdk.AccAddress{admin}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgWithdrawProtocolFees) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgWithdrawProtocolFees) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Admin); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid admin address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAmount, "invalid recipient address: %s", err)
	}
	if err := sdk.ValidateDenom(msg.Denom); err != nil {
		return sdkerrors.Wrapf(ErrDenomMismatch, "invalid denom: %s", err)
	}
	if msg.Amount.IsNil() || msg.Amount.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount cannot be negative")
	}
	return nil
}
