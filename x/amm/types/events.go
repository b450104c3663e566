package types

// Event types for the AMM module
const (
	EventTypePlatformInitialized   = "platform_initialized"
	EventTypePlatformPaused        = "platform_paused"
	EventTypePlatformResumed       = "platform_resumed"
	EventTypeFeeRateUpdated        = "fee_rate_updated"
	EventTypeProtocolFeesWithdrawn = "protocol_fees_withdrawn"
	EventTypePairCreated           = "pair_created"
	EventTypeLiquidityAdded        = "liquidity_added"
	EventTypeLiquidityRemoved      = "liquidity_removed"
	EventTypeSwap                  = "swap"
)

// Event attribute keys
const (
	AttributeKeyAdmin        = "admin"
	AttributeKeyBaseDenom    = "base_denom"
	AttributeKeyPairedDenom  = "paired_denom"
	AttributeKeyPairID       = "pair_id"
	AttributeKeyCreator      = "creator"
	AttributeKeyProvider     = "provider"
	AttributeKeyTrader       = "trader"
	AttributeKeyBaseAmount   = "base_amount"
	AttributeKeyPairedAmount = "paired_amount"
	AttributeKeyLpAmount     = "lp_amount"
	AttributeKeyAmountIn     = "amount_in"
	AttributeKeyAmountOut    = "amount_out"
	AttributeKeyProtocolFee  = "protocol_fee"
	AttributeKeyFeeRateBps   = "fee_rate_bps"
	AttributeKeyRecipient    = "recipient"
	AttributeKeyPauseCount   = "pause_count"
	AttributeKeyInputIsBase  = "input_is_base"
)
