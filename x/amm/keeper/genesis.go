package keeper

import (
	"context"
	"fmt"

	"github.com/mojo-protocol/mojo/x/amm/types"
)

// InitGenesis restores module state from a genesis record.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid amm genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	k.SetNextPairID(ctx, genState.NextPairId)

	if genState.Platform != nil {
		if err := k.SetPlatform(ctx, genState.Platform); err != nil {
			return err
		}
	}
	for i := range genState.Pairs {
		if err := k.SetPair(ctx, &genState.Pairs[i]); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis dumps module state into a genesis record.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	pairs, err := k.GetAllPairs(ctx)
	if err != nil {
		return nil, err
	}

	genState := &types.GenesisState{
		Params:     k.GetParams(ctx),
		Pairs:      pairs,
		NextPairId: k.PeekNextPairID(ctx),
	}
	if k.HasPlatform(ctx) {
		platform, err := k.GetPlatform(ctx)
		if err != nil {
			return nil, err
		}
		genState.Platform = platform
	}
	if genState.Pairs == nil {
		genState.Pairs = []types.Pair{}
	}
	return genState, nil
}
