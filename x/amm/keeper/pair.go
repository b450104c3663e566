package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mojo-protocol/mojo/x/amm/types"
)

// GetNextPairID returns the next pair ID and increments the counter
func (k Keeper) GetNextPairID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(PairCountKey)

	var pairID uint64 = 1
	if bz != nil {
		pairID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, pairID+1)
	store.Set(PairCountKey, nextBz)

	return pairID
}

// SetNextPairID sets the next pair ID counter
func (k Keeper) SetNextPairID(ctx context.Context, pairID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, pairID)
	store.Set(PairCountKey, bz)
}

// PeekNextPairID returns the counter without incrementing it.
func (k Keeper) PeekNextPairID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(PairCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// GetPair retrieves a pair by ID. Returns ErrPairNotFound if absent.
func (k Keeper) GetPair(ctx context.Context, pairID uint64) (*types.Pair, error) {
	store := k.getStore(ctx)
	bz := store.Get(PairKey(pairID))
	if bz == nil {
		return nil, types.ErrPairNotFound.Wrapf("pair %d", pairID)
	}

	var pair types.Pair
	if err := k.cdc.UnmarshalJSON(bz, &pair); err != nil {
		return nil, fmt.Errorf("GetPair: unmarshal pair %d: %w", pairID, err)
	}
	return &pair, nil
}

// SetPair saves a pair to the store and maintains the denom index
func (k Keeper) SetPair(ctx context.Context, pair *types.Pair) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.MarshalJSON(pair)
	if err != nil {
		return fmt.Errorf("SetPair: marshal pair %d: %w", pair.Id, err)
	}
	store.Set(PairKey(pair.Id), bz)

	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, pair.Id)
	store.Set(PairByDenomKey(pair.PairedDenom), idBz)
	return nil
}

// GetPairByDenom looks a pair up by its paired denom.
func (k Keeper) GetPairByDenom(ctx context.Context, pairedDenom string) (*types.Pair, error) {
	store := k.getStore(ctx)
	bz := store.Get(PairByDenomKey(pairedDenom))
	if bz == nil {
		return nil, types.ErrPairNotFound.Wrapf("no pair for denom %s", pairedDenom)
	}
	return k.GetPair(ctx, binary.BigEndian.Uint64(bz))
}

// IteratePairs calls cb for each stored pair; cb returning true stops.
func (k Keeper) IteratePairs(ctx context.Context, cb func(pair types.Pair) bool) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PairKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pair types.Pair
		if err := k.cdc.UnmarshalJSON(iterator.Value(), &pair); err != nil {
			return fmt.Errorf("IteratePairs: unmarshal pair: %w", err)
		}
		if cb(pair) {
			break
		}
	}
	return nil
}

// GetAllPairs returns all stored pairs in id order.
func (k Keeper) GetAllPairs(ctx context.Context) ([]types.Pair, error) {
	var pairs []types.Pair
	err := k.IteratePairs(ctx, func(pair types.Pair) bool {
		pairs = append(pairs, pair)
		return false
	})
	return pairs, err
}

// CreatePair registers a new trading pair between the platform base asset
// and pairedDenom. Admin only; one pair per paired denom. The pair starts
// empty with derived vault addresses and LP denom.
func (k Keeper) CreatePair(ctx context.Context, creator sdk.AccAddress, baseDenom, pairedDenom string, feeRateBps uint32) (*types.Pair, error) {
	platform, err := k.requireAdmin(ctx, creator)
	if err != nil {
		return nil, err
	}

	if err := sdk.ValidateDenom(pairedDenom); err != nil {
		return nil, types.ErrInvalidPairedToken.Wrapf("%s", err)
	}
	if baseDenom != platform.BaseDenom {
		return nil, types.ErrInvalidBaseToken.Wrapf("pair base %s, platform base %s", baseDenom, platform.BaseDenom)
	}
	if pairedDenom == platform.BaseDenom {
		return nil, types.ErrInvalidPair.Wrap("paired denom cannot be the base asset")
	}
	if k.getStore(ctx).Has(PairByDenomKey(pairedDenom)) {
		return nil, types.ErrPairExists.Wrapf("pair for denom %s", pairedDenom)
	}
	if feeRateBps > types.MaxFeeRateBps {
		return nil, types.ErrFeeTooHigh.Wrapf("%d bps exceeds cap %d", feeRateBps, types.MaxFeeRateBps)
	}
	if feeRateBps == 0 {
		params := k.GetParams(ctx)
		feeRateBps = params.DefaultFeeRateBps
	}

	pairID := k.GetNextPairID(ctx)
	pair := types.NewPair(pairID, baseDenom, pairedDenom, feeRateBps, types.PairCreator{
		Kind:    types.CreatorKindAdmin,
		Address: creator.String(),
	})
	if err := k.SetPair(ctx, &pair); err != nil {
		return nil, err
	}

	platform.Stats.PairCount++
	if err := k.SetPlatform(ctx, platform); err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePairCreated,
			sdk.NewAttribute(types.AttributeKeyPairID, fmt.Sprintf("%d", pair.Id)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyBaseDenom, pair.BaseDenom),
			sdk.NewAttribute(types.AttributeKeyPairedDenom, pair.PairedDenom),
			sdk.NewAttribute(types.AttributeKeyFeeRateBps, fmt.Sprintf("%d", pair.FeeRateBps)),
		),
	)
	k.Logger(ctx).Info("pair created",
		"pair_id", pair.Id,
		"paired_denom", pair.PairedDenom,
		"fee_rate_bps", pair.FeeRateBps,
	)
	GetMetrics().PairsCreated.Inc()

	return &pair, nil
}
