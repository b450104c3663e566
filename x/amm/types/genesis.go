package types

import (
	"fmt"
)

// GenesisState is the full exported state of the amm module.
type GenesisState struct {
	Params     Params         `json:"params"`
	Platform   *PlatformState `json:"platform,omitempty"`
	Pairs      []Pair         `json:"pairs"`
	NextPairId uint64         `json:"next_pair_id"`
}

// DefaultGenesis returns the default genesis state for the amm module.
// The platform record is absent until an admin initializes it.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Platform:   nil,
		Pairs:      []Pair{},
		NextPairId: 1,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if gs.NextPairId == 0 {
		return fmt.Errorf("next pair id must be positive")
	}
	if gs.Platform == nil {
		if len(gs.Pairs) > 0 {
			return fmt.Errorf("pairs cannot exist without a platform record")
		}
		return nil
	}
	if err := gs.Platform.Validate(); err != nil {
		return fmt.Errorf("invalid platform state: %w", err)
	}
	if gs.Platform.Stats.PairCount != uint64(len(gs.Pairs)) {
		return fmt.Errorf("platform pair count %d does not match %d pairs", gs.Platform.Stats.PairCount, len(gs.Pairs))
	}

	seenIds := make(map[uint64]bool)
	seenDenoms := make(map[string]bool)
	for _, pair := range gs.Pairs {
		if err := pair.Validate(); err != nil {
			return fmt.Errorf("invalid pair %d: %w", pair.Id, err)
		}
		if pair.BaseDenom != gs.Platform.BaseDenom {
			return fmt.Errorf("pair %d base denom %s does not match platform base %s", pair.Id, pair.BaseDenom, gs.Platform.BaseDenom)
		}
		if pair.Id >= gs.NextPairId {
			return fmt.Errorf("pair id %d not below next pair id %d", pair.Id, gs.NextPairId)
		}
		if seenIds[pair.Id] {
			return fmt.Errorf("duplicate pair id %d", pair.Id)
		}
		seenIds[pair.Id] = true
		if seenDenoms[pair.PairedDenom] {
			return fmt.Errorf("duplicate pair for denom %s", pair.PairedDenom)
		}
		seenDenoms[pair.PairedDenom] = true
	}
	return nil
}
