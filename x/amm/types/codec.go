package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgInitializePlatform{}, "amm/MsgInitializePlatform", nil)
	cdc.RegisterConcrete(&MsgPausePlatform{}, "amm/MsgPausePlatform", nil)
	cdc.RegisterConcrete(&MsgResumePlatform{}, "amm/MsgResumePlatform", nil)
	cdc.RegisterConcrete(&MsgUpdateFeeRate{}, "amm/MsgUpdateFeeRate", nil)
	cdc.RegisterConcrete(&MsgWithdrawProtocolFees{}, "amm/MsgWithdrawProtocolFees", nil)
	cdc.RegisterConcrete(&MsgCreatePair{}, "amm/MsgCreatePair", nil)
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "amm/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgRemoveLiquidity{}, "amm/MsgRemoveLiquidity", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "amm/MsgSwap", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgInitializePlatform{},
		&MsgPausePlatform{},
		&MsgResumePlatform{},
		&MsgUpdateFeeRate{},
		&MsgWithdrawProtocolFees{},
		&MsgCreatePair{},
		&MsgAddLiquidity{},
		&MsgRemoveLiquidity{},
		&MsgSwap{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
