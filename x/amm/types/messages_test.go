package types

import (
	"strings"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Test addresses derived instead of hardcoded so they stay valid under
// whatever bech32 prefix the test binary runs with.
var (
	validAddress   = sdk.AccAddress([]byte("addr1_______________")).String()
	validRecipient = sdk.AccAddress([]byte("addr2_______________")).String()
	invalidAddress = "invalid"
)

func checkValidateBasic(t *testing.T, name string, err error, wantErr bool, errMsg string) {
	t.Helper()
	if wantErr {
		if err == nil {
			t.Errorf("%s: expected error containing %q, got nil", name, errMsg)
			return
		}
		if errMsg != "" && !strings.Contains(err.Error(), errMsg) {
			t.Errorf("%s: error %q does not contain %q", name, err.Error(), errMsg)
		}
		return
	}
	if err != nil {
		t.Errorf("%s: unexpected error: %v", name, err)
	}
}

func TestMsgInitializePlatform_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     MsgInitializePlatform
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid message",
			msg:     MsgInitializePlatform{Admin: validAddress, BaseDenom: "umojo", ProtocolFeeBps: 100},
			wantErr: false,
		},
		{
			name:    "zero protocol fee",
			msg:     MsgInitializePlatform{Admin: validAddress, BaseDenom: "umojo", ProtocolFeeBps: 0},
			wantErr: false,
		},
		{
			name:    "protocol fee at cap",
			msg:     MsgInitializePlatform{Admin: validAddress, BaseDenom: "umojo", ProtocolFeeBps: MaxProtocolFeeRateBps},
			wantErr: false,
		},
		{
			name:    "invalid admin address",
			msg:     MsgInitializePlatform{Admin: invalidAddress, BaseDenom: "umojo", ProtocolFeeBps: 100},
			wantErr: true,
			errMsg:  "invalid admin address",
		},
		{
			name:    "invalid base denom",
			msg:     MsgInitializePlatform{Admin: validAddress, BaseDenom: "Bad Denom", ProtocolFeeBps: 100},
			wantErr: true,
			errMsg:  "invalid base denom",
		},
		{
			name:    "protocol fee above cap",
			msg:     MsgInitializePlatform{Admin: validAddress, BaseDenom: "umojo", ProtocolFeeBps: MaxProtocolFeeRateBps + 1},
			wantErr: true,
			errMsg:  "bps",
		},
	}
	for _, tt := range tests {
		checkValidateBasic(t, tt.name, tt.msg.ValidateBasic(), tt.wantErr, tt.errMsg)
	}
}

func TestMsgPausePlatform_ValidateBasic(t *testing.T) {
	msg := MsgPausePlatform{Admin: validAddress}
	if err := msg.ValidateBasic(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	msg.Admin = invalidAddress
	if err := msg.ValidateBasic(); err == nil {
		t.Error("expected error for invalid admin address")
	}
}

func TestMsgResumePlatform_ValidateBasic(t *testing.T) {
	msg := MsgResumePlatform{Admin: validAddress}
	if err := msg.ValidateBasic(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	msg.Admin = invalidAddress
	if err := msg.ValidateBasic(); err == nil {
		t.Error("expected error for invalid admin address")
	}
}

func TestMsgUpdateFeeRate_ValidateBasic(t *testing.T) {
	msg := MsgUpdateFeeRate{Admin: validAddress, NewFeeRateBps: 150}
	if err := msg.ValidateBasic(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	// Range enforcement is a keeper concern; out-of-range rates pass here.
	msg.NewFeeRateBps = MaxFeeRateBps + 1
	if err := msg.ValidateBasic(); err != nil {
		t.Errorf("unexpected error for out-of-range rate: %v", err)
	}
	msg.Admin = invalidAddress
	if err := msg.ValidateBasic(); err == nil {
		t.Error("expected error for invalid admin address")
	}
}

func TestMsgWithdrawProtocolFees_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     MsgWithdrawProtocolFees
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid message",
			msg:     MsgWithdrawProtocolFees{Admin: validAddress, Recipient: validRecipient, Denom: "umojo", Amount: math.NewInt(100)},
			wantErr: false,
		},
		{
			name:    "invalid admin address",
			msg:     MsgWithdrawProtocolFees{Admin: invalidAddress, Recipient: validRecipient, Denom: "umojo", Amount: math.NewInt(100)},
			wantErr: true,
			errMsg:  "invalid admin address",
		},
		{
			name:    "invalid recipient address",
			msg:     MsgWithdrawProtocolFees{Admin: validAddress, Recipient: invalidAddress, Denom: "umojo", Amount: math.NewInt(100)},
			wantErr: true,
			errMsg:  "invalid recipient address",
		},
		{
			name:    "invalid denom",
			msg:     MsgWithdrawProtocolFees{Admin: validAddress, Recipient: validRecipient, Denom: "Bad Denom", Amount: math.NewInt(100)},
			wantErr: true,
			errMsg:  "invalid denom",
		},
		{
			name:    "nil amount",
			msg:     MsgWithdrawProtocolFees{Admin: validAddress, Recipient: validRecipient, Denom: "umojo"},
			wantErr: true,
			errMsg:  "negative",
		},
		{
			name:    "negative amount",
			msg:     MsgWithdrawProtocolFees{Admin: validAddress, Recipient: validRecipient, Denom: "umojo", Amount: math.NewInt(-1)},
			wantErr: true,
			errMsg:  "negative",
		},
	}
	for _, tt := range tests {
		checkValidateBasic(t, tt.name, tt.msg.ValidateBasic(), tt.wantErr, tt.errMsg)
	}
}

func TestMsgCreatePair_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     MsgCreatePair
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid message",
			msg:     MsgCreatePair{Creator: validAddress, BaseDenom: "umojo", PairedDenom: "uusdt", FeeRateBps: 30},
			wantErr: false,
		},
		{
			name:    "zero fee falls back to default",
			msg:     MsgCreatePair{Creator: validAddress, BaseDenom: "umojo", PairedDenom: "uusdt", FeeRateBps: 0},
			wantErr: false,
		},
		{
			name:    "invalid creator address",
			msg:     MsgCreatePair{Creator: invalidAddress, BaseDenom: "umojo", PairedDenom: "uusdt", FeeRateBps: 30},
			wantErr: true,
			errMsg:  "invalid creator address",
		},
		{
			name:    "invalid base denom",
			msg:     MsgCreatePair{Creator: validAddress, BaseDenom: "Bad Denom", PairedDenom: "uusdt", FeeRateBps: 30},
			wantErr: true,
			errMsg:  "invalid base denom",
		},
		{
			name:    "invalid paired denom",
			msg:     MsgCreatePair{Creator: validAddress, BaseDenom: "umojo", PairedDenom: "123bad", FeeRateBps: 30},
			wantErr: true,
			errMsg:  "invalid paired denom",
		},
		{
			name:    "same denoms",
			msg:     MsgCreatePair{Creator: validAddress, BaseDenom: "umojo", PairedDenom: "umojo", FeeRateBps: 30},
			wantErr: true,
			errMsg:  "must differ",
		},
		{
			name:    "fee above cap",
			msg:     MsgCreatePair{Creator: validAddress, BaseDenom: "umojo", PairedDenom: "uusdt", FeeRateBps: MaxFeeRateBps + 1},
			wantErr: true,
			errMsg:  "bps",
		},
	}
	for _, tt := range tests {
		checkValidateBasic(t, tt.name, tt.msg.ValidateBasic(), tt.wantErr, tt.errMsg)
	}
}

func TestMsgAddLiquidity_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     MsgAddLiquidity
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid message",
			msg:     MsgAddLiquidity{Provider: validAddress, PairId: 1, BaseAmount: math.NewInt(1000), PairedAmount: math.NewInt(4000)},
			wantErr: false,
		},
		{
			name:    "invalid provider address",
			msg:     MsgAddLiquidity{Provider: invalidAddress, PairId: 1, BaseAmount: math.NewInt(1000), PairedAmount: math.NewInt(4000)},
			wantErr: true,
			errMsg:  "invalid provider address",
		},
		{
			name:    "zero pair id",
			msg:     MsgAddLiquidity{Provider: validAddress, PairId: 0, BaseAmount: math.NewInt(1000), PairedAmount: math.NewInt(4000)},
			wantErr: true,
			errMsg:  "pair id",
		},
		{
			name:    "zero base amount",
			msg:     MsgAddLiquidity{Provider: validAddress, PairId: 1, BaseAmount: math.ZeroInt(), PairedAmount: math.NewInt(4000)},
			wantErr: true,
			errMsg:  "base amount",
		},
		{
			name:    "zero paired amount",
			msg:     MsgAddLiquidity{Provider: validAddress, PairId: 1, BaseAmount: math.NewInt(1000), PairedAmount: math.ZeroInt()},
			wantErr: true,
			errMsg:  "paired amount",
		},
		{
			name:    "nil amounts",
			msg:     MsgAddLiquidity{Provider: validAddress, PairId: 1},
			wantErr: true,
			errMsg:  "base amount",
		},
	}
	for _, tt := range tests {
		checkValidateBasic(t, tt.name, tt.msg.ValidateBasic(), tt.wantErr, tt.errMsg)
	}
}

func TestMsgRemoveLiquidity_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     MsgRemoveLiquidity
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid message",
			msg:     MsgRemoveLiquidity{Provider: validAddress, PairId: 1, LpAmount: math.NewInt(500), MinBaseOut: math.ZeroInt(), MinPairedOut: math.ZeroInt()},
			wantErr: false,
		},
		{
			name:    "invalid provider address",
			msg:     MsgRemoveLiquidity{Provider: invalidAddress, PairId: 1, LpAmount: math.NewInt(500), MinBaseOut: math.ZeroInt(), MinPairedOut: math.ZeroInt()},
			wantErr: true,
			errMsg:  "invalid provider address",
		},
		{
			name:    "zero lp amount",
			msg:     MsgRemoveLiquidity{Provider: validAddress, PairId: 1, LpAmount: math.ZeroInt(), MinBaseOut: math.ZeroInt(), MinPairedOut: math.ZeroInt()},
			wantErr: true,
			errMsg:  "lp amount",
		},
		{
			name:    "negative min base out",
			msg:     MsgRemoveLiquidity{Provider: validAddress, PairId: 1, LpAmount: math.NewInt(500), MinBaseOut: math.NewInt(-1), MinPairedOut: math.ZeroInt()},
			wantErr: true,
			errMsg:  "min base out",
		},
		{
			name:    "negative min paired out",
			msg:     MsgRemoveLiquidity{Provider: validAddress, PairId: 1, LpAmount: math.NewInt(500), MinBaseOut: math.ZeroInt(), MinPairedOut: math.NewInt(-1)},
			wantErr: true,
			errMsg:  "min paired out",
		},
	}
	for _, tt := range tests {
		checkValidateBasic(t, tt.name, tt.msg.ValidateBasic(), tt.wantErr, tt.errMsg)
	}
}

func TestMsgSwap_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     MsgSwap
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid message",
			msg:     MsgSwap{Trader: validAddress, PairId: 1, DenomIn: "umojo", AmountIn: math.NewInt(100), MinAmountOut: math.ZeroInt()},
			wantErr: false,
		},
		{
			name:    "invalid trader address",
			msg:     MsgSwap{Trader: invalidAddress, PairId: 1, DenomIn: "umojo", AmountIn: math.NewInt(100), MinAmountOut: math.ZeroInt()},
			wantErr: true,
			errMsg:  "invalid trader address",
		},
		{
			name:    "zero pair id",
			msg:     MsgSwap{Trader: validAddress, PairId: 0, DenomIn: "umojo", AmountIn: math.NewInt(100), MinAmountOut: math.ZeroInt()},
			wantErr: true,
			errMsg:  "pair id",
		},
		{
			name:    "invalid denom",
			msg:     MsgSwap{Trader: validAddress, PairId: 1, DenomIn: "Bad Denom", AmountIn: math.NewInt(100), MinAmountOut: math.ZeroInt()},
			wantErr: true,
			errMsg:  "invalid input denom",
		},
		{
			name:    "zero amount in",
			msg:     MsgSwap{Trader: validAddress, PairId: 1, DenomIn: "umojo", AmountIn: math.ZeroInt(), MinAmountOut: math.ZeroInt()},
			wantErr: true,
			errMsg:  "amount in",
		},
		{
			name:    "negative min amount out",
			msg:     MsgSwap{Trader: validAddress, PairId: 1, DenomIn: "umojo", AmountIn: math.NewInt(100), MinAmountOut: math.NewInt(-1)},
			wantErr: true,
			errMsg:  "min amount out",
		},
	}
	for _, tt := range tests {
		checkValidateBasic(t, tt.name, tt.msg.ValidateBasic(), tt.wantErr, tt.errMsg)
	}
}

func TestMsgRoutesAndSigners(t *testing.T) {
	signer := sdk.AccAddress([]byte("addr1_______________"))

	type signedMsg interface {
		Route() string
		Type() string
		GetSigners() []sdk.AccAddress
		GetSignBytes() []byte
	}

	msgs := []signedMsg{
		NewMsgInitializePlatform(validAddress, "umojo", 100),
		NewMsgPausePlatform(validAddress),
		NewMsgResumePlatform(validAddress),
		NewMsgUpdateFeeRate(validAddress, 150),
		NewMsgWithdrawProtocolFees(validAddress, validRecipient, "umojo", math.NewInt(1)),
		NewMsgCreatePair(validAddress, "umojo", "uusdt", 30),
		NewMsgAddLiquidity(validAddress, 1, math.NewInt(1), math.NewInt(1)),
		NewMsgRemoveLiquidity(validAddress, 1, math.NewInt(1), math.ZeroInt(), math.ZeroInt()),
		NewMsgSwap(validAddress, 1, "umojo", math.NewInt(1), math.ZeroInt()),
	}

	seenTypes := make(map[string]bool)
	for _, msg := range msgs {
		if msg.Route() != RouterKey {
			t.Errorf("%T: route %q, want %q", msg, msg.Route(), RouterKey)
		}
		if msg.Type() == "" {
			t.Errorf("%T: empty type", msg)
		}
		if seenTypes[msg.Type()] {
			t.Errorf("%T: duplicate type %q", msg, msg.Type())
		}
		seenTypes[msg.Type()] = true

		signers := msg.GetSigners()
		if len(signers) != 1 || !signers[0].Equals(signer) {
			t.Errorf("%T: signers %v, want [%s]", msg, signers, signer)
		}
		if len(msg.GetSignBytes()) == 0 {
			t.Errorf("%T: empty sign bytes", msg)
		}
	}
}
