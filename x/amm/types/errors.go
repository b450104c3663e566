package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrSlippageExceeded            = errors.Register(ModuleName, 2, "slippage tolerance exceeded")
	ErrTradingPaused               = errors.Register(ModuleName, 3, "trading is paused")
	ErrZeroAmount                  = errors.Register(ModuleName, 4, "invalid zero amount")
	ErrMathOverflow                = errors.Register(ModuleName, 5, "math overflow occurred")
	ErrSwapCooldown                = errors.Register(ModuleName, 6, "swap cooldown not expired")
	ErrInvalidPair                 = errors.Register(ModuleName, 7, "invalid token pair")
	ErrInvalidFeeConfig            = errors.Register(ModuleName, 8, "invalid fee configuration")
	ErrFeeTooHigh                  = errors.Register(ModuleName, 9, "fee rate cannot exceed 10%")
	ErrProtocolFeeTooHigh          = errors.Register(ModuleName, 10, "protocol fee rate cannot exceed 2%")
	ErrInvalidBaseToken            = errors.Register(ModuleName, 11, "base asset must be the platform's base asset")
	ErrInvalidPairedToken          = errors.Register(ModuleName, 12, "invalid paired asset")
	ErrUnauthorized                = errors.Register(ModuleName, 13, "unauthorized access")
	ErrDenomMismatch               = errors.Register(ModuleName, 14, "token denom mismatch")
	ErrInvalidAmount               = errors.Register(ModuleName, 15, "invalid amount")
	ErrAlreadyPaused               = errors.Register(ModuleName, 16, "platform is already paused")
	ErrNotPaused                   = errors.Register(ModuleName, 17, "platform is not paused")
	ErrInsufficientLiquidityMinted = errors.Register(ModuleName, 18, "insufficient liquidity minted")
	ErrInsufficientLiquidity       = errors.Register(ModuleName, 19, "insufficient liquidity")
	ErrPairNotFound                = errors.Register(ModuleName, 20, "pair not found")
	ErrPairExists                  = errors.Register(ModuleName, 21, "pair already exists")
	ErrPlatformNotInitialized      = errors.Register(ModuleName, 22, "platform not initialized")
	ErrPlatformExists              = errors.Register(ModuleName, 23, "platform already initialized")
	ErrInvalidVersion              = errors.Register(ModuleName, 24, "unsupported platform state version")
	ErrInvalidState                = errors.Register(ModuleName, 25, "invalid state")
	ErrInvariantBroken             = errors.Register(ModuleName, 26, "constant product invariant violated")
)
