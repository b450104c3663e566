package types

import "fmt"

// proto.Message boilerplate for the hand-written message types. The
// module encodes with amino, so these exist only to satisfy the sdk.Msg
// interface.

func (m *MsgInitializePlatform) Reset()         { *m = MsgInitializePlatform{} }
func (m *MsgInitializePlatform) String() string { return fmt.Sprintf("%+v", *m) }
func (m *MsgInitializePlatform) ProtoMessage()  {}

func (m *MsgPausePlatform) Reset()         { *m = MsgPausePlatform{} }
func (m *MsgPausePlatform) String() string { return fmt.Sprintf("%+v", *m) }
func (m *MsgPausePlatform) ProtoMessage()  {}

func (m *MsgResumePlatform) Reset()         { *m = MsgResumePlatform{} }
func (m *MsgResumePlatform) String() string { return fmt.Sprintf("%+v", *m) }
func (m *MsgResumePlatform) ProtoMessage()  {}

func (m *MsgUpdateFeeRate) Reset()         { *m = MsgUpdateFeeRate{} }
func (m *MsgUpdateFeeRate) String() string { return fmt.Sprintf("%+v", *m) }
func (m *MsgUpdateFeeRate) ProtoMessage()  {}

func (m *MsgWithdrawProtocolFees) Reset()         { *m = MsgWithdrawProtocolFees{} }
func (m *MsgWithdrawProtocolFees) String() string { return fmt.Sprintf("%+v", *m) }
func (m *MsgWithdrawProtocolFees) ProtoMessage()  {}

func (m *MsgCreatePair) Reset()         { *m = MsgCreatePair{} }
func (m *MsgCreatePair) String() string { return fmt.Sprintf("%+v", *m) }
func (m *MsgCreatePair) ProtoMessage()  {}

func (m *MsgAddLiquidity) Reset()         { *m = MsgAddLiquidity{} }
func (m *MsgAddLiquidity) String() string { return fmt.Sprintf("%+v", *m) }
func (m *MsgAddLiquidity) ProtoMessage()  {}

func (m *MsgRemoveLiquidity) Reset()         { *m = MsgRemoveLiquidity{} }
func (m *MsgRemoveLiquidity) String() string { return fmt.Sprintf("%+v", *m) }
func (m *MsgRemoveLiquidity) ProtoMessage()  {}

func (m *MsgSwap) Reset()         { *m = MsgSwap{} }
func (m *MsgSwap) String() string { return fmt.Sprintf("%+v", *m) }
func (m *MsgSwap) ProtoMessage()  {}
