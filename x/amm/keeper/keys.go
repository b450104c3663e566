package keeper

import (
	"encoding/binary"
)

var (
	// PlatformKey is the key for the singleton platform state
	PlatformKey = []byte{0x01}

	// PairKeyPrefix is the prefix for pair store keys
	PairKeyPrefix = []byte{0x02}

	// PairCountKey is the key for the next pair ID counter
	PairCountKey = []byte{0x03}

	// PairByDenomKeyPrefix is the prefix for indexing pairs by paired denom
	PairByDenomKeyPrefix = []byte{0x04}

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05}
)

// PairKey returns the store key for a pair by ID
func PairKey(pairID uint64) []byte {
	pairIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(pairIDBytes, pairID)
	return append(PairKeyPrefix, pairIDBytes...)
}

// PairByDenomKey returns the index key for a pair by its paired denom.
// Every pair shares the platform base asset, so the paired denom alone
// identifies the pair.
func PairByDenomKey(pairedDenom string) []byte {
	return append(PairByDenomKeyPrefix, []byte(pairedDenom)...)
}
