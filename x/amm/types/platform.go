package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// CurrentPlatformVersion is the schema version written by this release.
// GetPlatform rejects records with any other version so that future
// migrations are explicit instead of silent.
const CurrentPlatformVersion = 1

// Fee-rate caps in basis points. The pool-level cap bounds per-pair swap
// fees; the protocol-level cap bounds the platform's cut.
const (
	MaxFeeRateBps         = 1000 // 10%
	MaxProtocolFeeRateBps = 200  // 2%
	BpsDenominator        = 10_000
)

// PlatformState is the singleton configuration record for the AMM.
// It is created once, mutated by admin operations and swap statistics,
// and never deleted.
type PlatformState struct {
	BaseDenom      string           `json:"base_denom"`
	Admin          string           `json:"admin"`
	FeeCollector   string           `json:"fee_collector"`
	ProtocolFeeBps uint32           `json:"protocol_fee_bps"`
	Security       PlatformSecurity `json:"security"`
	Stats          PlatformStats    `json:"stats"`
	DaoConfig      *DaoConfigInfo   `json:"dao_config,omitempty"`
	Version        uint32           `json:"version"`
}

// PlatformSecurity carries the pause flag and its audit counters.
type PlatformSecurity struct {
	Paused        bool   `json:"paused"`
	LastPauseTime int64  `json:"last_pause_time"`
	PauseCount    uint32 `json:"pause_count"`
}

// PlatformStats are aggregate counters; each field is monotonically
// non-decreasing.
type PlatformStats struct {
	PairCount   uint64   `json:"pair_count"`
	TotalVolume math.Int `json:"total_volume"`
	TotalFees   math.Int `json:"total_fees"`
}

// DaoConfigInfo points at the external governance program that may create
// pairs through proposals. Provenance only; not consulted for pricing.
type DaoConfigInfo struct {
	DaoAddress      string `json:"dao_address"`
	GovernanceDenom string `json:"governance_denom"`
	ProposalCount   uint64 `json:"proposal_count"`
}

// NewPlatformState returns an initialized platform record with empty stats.
func NewPlatformState(baseDenom, admin string, protocolFeeBps uint32) PlatformState {
	return PlatformState{
		BaseDenom:      baseDenom,
		Admin:          admin,
		FeeCollector:   FeeCollectorAddress().String(),
		ProtocolFeeBps: protocolFeeBps,
		Security:       PlatformSecurity{},
		Stats: PlatformStats{
			TotalVolume: math.ZeroInt(),
			TotalFees:   math.ZeroInt(),
		},
		Version: CurrentPlatformVersion,
	}
}

// Validate checks structural integrity of the platform record.
func (p PlatformState) Validate() error {
	if err := sdk.ValidateDenom(p.BaseDenom); err != nil {
		return fmt.Errorf("invalid base denom: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(p.Admin); err != nil {
		return fmt.Errorf("invalid admin address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(p.FeeCollector); err != nil {
		return fmt.Errorf("invalid fee collector address: %w", err)
	}
	if p.ProtocolFeeBps > MaxProtocolFeeRateBps {
		return fmt.Errorf("protocol fee %d bps exceeds cap %d", p.ProtocolFeeBps, MaxProtocolFeeRateBps)
	}
	if p.Stats.TotalVolume.IsNil() || p.Stats.TotalVolume.IsNegative() {
		return fmt.Errorf("total volume must be non-negative")
	}
	if p.Stats.TotalFees.IsNil() || p.Stats.TotalFees.IsNegative() {
		return fmt.Errorf("total fees must be non-negative")
	}
	if p.Version == 0 {
		return fmt.Errorf("platform version must be positive")
	}
	return nil
}
