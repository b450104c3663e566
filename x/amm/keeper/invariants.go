package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/mojo-protocol/mojo/x/amm/types"
)

// RegisterInvariants registers all amm invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "vault-coverage", VaultCoverageInvariant(k))
	ir.RegisterRoute(types.ModuleName, "empty-or-funded", EmptyOrFundedInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pair-count", PairCountInvariant(k))
}

// AllInvariants runs all invariants of the amm module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := VaultCoverageInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		res, stop = EmptyOrFundedInvariant(k)(ctx)
		if stop {
			return res, stop
		}

		return PairCountInvariant(k)(ctx)
	}
}

// VaultCoverageInvariant checks that each pair's vault balances cover its
// recorded reserves.
func VaultCoverageInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pairs, err := k.GetAllPairs(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "vault-coverage", err.Error()), true
		}
		for _, pair := range pairs {
			baseVault := types.PairVaultAddress(pair.Id, types.VaultRoleBase)
			pairedVault := types.PairVaultAddress(pair.Id, types.VaultRolePaired)
			baseBalance := k.bankKeeper.GetBalance(ctx, baseVault, pair.BaseDenom)
			pairedBalance := k.bankKeeper.GetBalance(ctx, pairedVault, pair.PairedDenom)

			if baseBalance.Amount.LT(pair.BaseReserve) {
				count++
				msg += fmt.Sprintf("pair %d: base vault balance (%s) < reserve (%s)\n",
					pair.Id, baseBalance.Amount, pair.BaseReserve)
			}
			if pairedBalance.Amount.LT(pair.PairedReserve) {
				count++
				msg += fmt.Sprintf("pair %d: paired vault balance (%s) < reserve (%s)\n",
					pair.Id, pairedBalance.Amount, pair.PairedReserve)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "vault-coverage",
			fmt.Sprintf("found %d vaults with balance below reserve\n%s", count, msg),
		), broken
	}
}

// EmptyOrFundedInvariant checks that reserves and LP supply are zero or
// positive together for every pair.
func EmptyOrFundedInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		pairs, err := k.GetAllPairs(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "empty-or-funded", err.Error()), true
		}
		for _, pair := range pairs {
			empty := pair.TotalLiquidity.IsZero()
			if empty != pair.BaseReserve.IsZero() || empty != pair.PairedReserve.IsZero() {
				count++
				msg += fmt.Sprintf("pair %d: reserves (%s, %s) inconsistent with liquidity %s\n",
					pair.Id, pair.BaseReserve, pair.PairedReserve, pair.TotalLiquidity)
			}
			if pair.BaseReserve.IsNegative() || pair.PairedReserve.IsNegative() || pair.TotalLiquidity.IsNegative() {
				count++
				msg += fmt.Sprintf("pair %d: negative reserve or liquidity\n", pair.Id)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "empty-or-funded",
			fmt.Sprintf("found %d pairs in a half-funded state\n%s", count, msg),
		), broken
	}
}

// PairCountInvariant checks that the platform pair counter matches the
// number of stored pairs.
func PairCountInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		pairs, err := k.GetAllPairs(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pair-count", err.Error()), true
		}
		if !k.HasPlatform(ctx) {
			broken := len(pairs) != 0
			return sdk.FormatInvariant(
				types.ModuleName, "pair-count",
				fmt.Sprintf("%d pairs stored without a platform record", len(pairs)),
			), broken
		}

		platform, err := k.GetPlatform(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "pair-count", err.Error()), true
		}
		broken := platform.Stats.PairCount != uint64(len(pairs))
		return sdk.FormatInvariant(
			types.ModuleName, "pair-count",
			fmt.Sprintf("platform records %d pairs, store holds %d", platform.Stats.PairCount, len(pairs)),
		), broken
	}
}
