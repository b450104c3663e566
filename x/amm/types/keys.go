package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// VaultRole identifies which side of a pair a custody vault holds.
type VaultRole string

const (
	VaultRoleBase   VaultRole = "base"
	VaultRolePaired VaultRole = "paired"
)

// PairVaultAddress derives the custody account for one side of a pair.
// The derivation is stable and collision-free per (pair id, role); only
// code holding the keeper can move funds out of it.
func PairVaultAddress(pairID uint64, role VaultRole) sdk.AccAddress {
	return address.Module(ModuleName, []byte(fmt.Sprintf("vault/%d/%s", pairID, role)))
}

// FeeCollectorAddress derives the platform treasury account that receives
// protocol fees in the base asset.
func FeeCollectorAddress() sdk.AccAddress {
	return address.Module(ModuleName, []byte("fee-collector"))
}

// LPDenom returns the claim-token denom for a pair.
func LPDenom(pairID uint64) string {
	return fmt.Sprintf("%s/lp/%d", ModuleName, pairID)
}
