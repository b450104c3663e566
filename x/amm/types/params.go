package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Params are the operator-tunable settings of the AMM module.
type Params struct {
	// SwapCooldownSeconds is the minimum wall-clock gap between swaps on
	// the same pair. Zero disables the cooldown.
	SwapCooldownSeconds int64 `json:"swap_cooldown_seconds"`

	// DefaultFeeRateBps is the per-pair swap fee applied when a pair is
	// created without an explicit rate.
	DefaultFeeRateBps uint32 `json:"default_fee_rate_bps"`

	// MinInitialLiquidity is the smallest LP amount a bootstrap deposit
	// may mint. Guards against dust pools whose share math degenerates.
	MinInitialLiquidity math.Int `json:"min_initial_liquidity"`
}

// DefaultParams returns default parameters for the amm module
func DefaultParams() Params {
	return Params{
		SwapCooldownSeconds: 0,
		DefaultFeeRateBps:   30, // 0.3%
		MinInitialLiquidity: math.NewInt(1),
	}
}

// Validate checks parameter ranges.
func (p Params) Validate() error {
	if p.SwapCooldownSeconds < 0 {
		return fmt.Errorf("swap cooldown cannot be negative")
	}
	if p.DefaultFeeRateBps > MaxFeeRateBps {
		return fmt.Errorf("default fee rate %d bps exceeds cap %d", p.DefaultFeeRateBps, MaxFeeRateBps)
	}
	if p.MinInitialLiquidity.IsNil() || !p.MinInitialLiquidity.IsPositive() {
		return fmt.Errorf("min initial liquidity must be positive")
	}
	return nil
}
