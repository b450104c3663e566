package keeper

import (
	"math/big"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	ammtypes "github.com/mojo-protocol/mojo/x/amm/types"
)

// SafeMath provides overflow-safe arithmetic for the AMM module. Token
// quantities live in the unsigned 64-bit range; intermediate products may
// exceed it, so they go through big.Int and every result is checked back
// against the bound.

// maxUint64 is the exclusive upper bound for token quantities (2^64)
var maxUint64 = new(big.Int).Lsh(big.NewInt(1), 64)

func withinBound(v *big.Int) bool {
	return v.Sign() >= 0 && v.Cmp(maxUint64) < 0
}

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if !withinBound(result) {
		return math.Int{}, sdkerrors.Wrapf(ammtypes.ErrMathOverflow, "addition %s + %s", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts two math.Int values with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, sdkerrors.Wrapf(ammtypes.ErrMathOverflow, "underflow: %s - %s", a, b)
	}
	return a.Sub(b), nil
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}
	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if !withinBound(result) {
		return math.Int{}, sdkerrors.Wrapf(ammtypes.ErrMathOverflow, "multiplication %s * %s", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeQuo divides two math.Int values with division by zero checking
func SafeQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, sdkerrors.Wrap(ammtypes.ErrMathOverflow, "division by zero")
	}
	return math.NewIntFromBigInt(new(big.Int).Quo(a.BigInt(), b.BigInt())), nil
}

// SafeMulDiv performs floor((a * b) / c). The product is carried at full
// width, so only the final quotient must fit the quantity bound.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, sdkerrors.Wrap(ammtypes.ErrMathOverflow, "division by zero")
	}
	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	result := intermediate.Quo(intermediate, c.BigInt())
	if !withinBound(result) {
		return math.Int{}, sdkerrors.Wrapf(ammtypes.ErrMathOverflow, "muldiv (%s * %s) / %s", a, b, c)
	}
	return math.NewIntFromBigInt(result), nil
}

// IntegerSqrt returns the exact floor square root of v using Newton's
// iteration: the result r satisfies r*r <= v < (r+1)*(r+1). Values below
// two are their own root.
func IntegerSqrt(v math.Int) (math.Int, error) {
	if v.IsNil() || v.IsNegative() {
		return math.Int{}, sdkerrors.Wrap(ammtypes.ErrMathOverflow, "sqrt of negative value")
	}
	if v.LT(math.NewInt(2)) {
		return v, nil
	}

	big2 := big.NewInt(2)
	vb := v.BigInt()
	x := new(big.Int).Set(vb)
	y := new(big.Int).Add(x, big.NewInt(1))
	y.Quo(y, big2)
	for y.Cmp(x) < 0 {
		x.Set(y)
		y = new(big.Int).Quo(vb, x)
		y.Add(y, x)
		y.Quo(y, big2)
	}
	return math.NewIntFromBigInt(x), nil
}
