package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Pair creator kinds. Pairs come either from the platform admin directly
// or from an approved governance proposal.
const (
	CreatorKindAdmin    = "admin"
	CreatorKindProposal = "proposal"
)

// PairCreator records the provenance of a pair.
type PairCreator struct {
	Kind       string `json:"kind"`
	Address    string `json:"address,omitempty"`
	ProposalId uint64 `json:"proposal_id,omitempty"`
}

// Pair is one base/paired trading pool with its reserves and fee config.
// Reserves mirror the vault balances; every state transition keeps them
// in sync with actual token movements.
type Pair struct {
	Id             uint64      `json:"id"`
	BaseDenom      string      `json:"base_denom"`
	PairedDenom    string      `json:"paired_denom"`
	LpDenom        string      `json:"lp_denom"`
	BaseVault      string      `json:"base_vault"`
	PairedVault    string      `json:"paired_vault"`
	BaseReserve    math.Int    `json:"base_reserve"`
	PairedReserve  math.Int    `json:"paired_reserve"`
	TotalLiquidity math.Int    `json:"total_liquidity"`
	FeeRateBps     uint32      `json:"fee_rate_bps"`
	LastSwapTime   int64       `json:"last_swap_time"`
	Creator        PairCreator `json:"creator"`
}

// NewPair returns an empty pair with derived vault and LP denoms.
func NewPair(id uint64, baseDenom, pairedDenom string, feeRateBps uint32, creator PairCreator) Pair {
	return Pair{
		Id:             id,
		BaseDenom:      baseDenom,
		PairedDenom:    pairedDenom,
		LpDenom:        LPDenom(id),
		BaseVault:      PairVaultAddress(id, VaultRoleBase).String(),
		PairedVault:    PairVaultAddress(id, VaultRolePaired).String(),
		BaseReserve:    math.ZeroInt(),
		PairedReserve:  math.ZeroInt(),
		TotalLiquidity: math.ZeroInt(),
		FeeRateBps:     feeRateBps,
		Creator:        creator,
	}
}

// IsEmpty reports whether the pair holds no liquidity. Empty pairs accept
// a bootstrap deposit and reject swaps.
func (p Pair) IsEmpty() bool {
	return p.TotalLiquidity.IsZero()
}

// Validate checks structural integrity of the pair record.
func (p Pair) Validate() error {
	if p.Id == 0 {
		return fmt.Errorf("pair id must be positive")
	}
	if err := sdk.ValidateDenom(p.BaseDenom); err != nil {
		return fmt.Errorf("invalid base denom: %w", err)
	}
	if err := sdk.ValidateDenom(p.PairedDenom); err != nil {
		return fmt.Errorf("invalid paired denom: %w", err)
	}
	if p.BaseDenom == p.PairedDenom {
		return fmt.Errorf("base and paired denoms must differ")
	}
	if _, err := sdk.AccAddressFromBech32(p.BaseVault); err != nil {
		return fmt.Errorf("invalid base vault address: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(p.PairedVault); err != nil {
		return fmt.Errorf("invalid paired vault address: %w", err)
	}
	if p.FeeRateBps > MaxFeeRateBps {
		return fmt.Errorf("fee rate %d bps exceeds cap %d", p.FeeRateBps, MaxFeeRateBps)
	}
	for _, v := range []struct {
		name string
		amt  math.Int
	}{
		{"base reserve", p.BaseReserve},
		{"paired reserve", p.PairedReserve},
		{"total liquidity", p.TotalLiquidity},
	} {
		if v.amt.IsNil() || v.amt.IsNegative() {
			return fmt.Errorf("%s must be non-negative", v.name)
		}
	}
	// A pair is either fully empty or fully funded. Liquidity without
	// reserves (or the converse) means tokens were lost or conjured.
	empty := p.TotalLiquidity.IsZero()
	if empty != p.BaseReserve.IsZero() || empty != p.PairedReserve.IsZero() {
		return fmt.Errorf("pair %d reserves and liquidity must be zero or positive together", p.Id)
	}
	switch p.Creator.Kind {
	case CreatorKindAdmin:
		if _, err := sdk.AccAddressFromBech32(p.Creator.Address); err != nil {
			return fmt.Errorf("invalid creator address: %w", err)
		}
	case CreatorKindProposal:
		if p.Creator.ProposalId == 0 {
			return fmt.Errorf("proposal creator must carry a proposal id")
		}
	default:
		return fmt.Errorf("unknown creator kind %q", p.Creator.Kind)
	}
	return nil
}
