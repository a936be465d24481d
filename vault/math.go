package vault

import (
	"math/big"

	"cosmossdk.io/math"
)

// maxBitLen is the bit length cap of math.Int. Quotients and sums are
// checked against it before narrowing back from the big.Int accumulator.
const maxBitLen = 256

// mulDiv computes x * y / den over an unbounded intermediate product, so the
// multiplication can never lose precision or wrap before the division step.
// Rounds toward zero, or away from zero when roundUp is set. den must be
// positive; callers are responsible for never reaching a zero denominator.
func mulDiv(x, y, den math.Int, roundUp bool) (math.Int, error) {
	if den.IsZero() {
		panic("vault: mulDiv division by zero")
	}
	num := new(big.Int).Mul(x.BigInt(), y.BigInt())
	quo, rem := new(big.Int).QuoRem(num, den.BigInt(), new(big.Int))
	if roundUp && rem.Sign() != 0 {
		quo.Add(quo, big.NewInt(1))
	}
	if quo.BitLen() > maxBitLen {
		return math.Int{}, ErrArithmeticOverflow
	}
	return math.NewIntFromBigInt(quo), nil
}

// checkedAdd returns a + b, or ErrArithmeticOverflow instead of the panic
// math.Int.Add raises past 256 bits.
func checkedAdd(a, b math.Int) (math.Int, error) {
	sum := new(big.Int).Add(a.BigInt(), b.BigInt())
	if sum.BitLen() > maxBitLen {
		return math.Int{}, ErrArithmeticOverflow
	}
	return math.NewIntFromBigInt(sum), nil
}

// pow10 returns 10^exp as a math.Int.
func pow10(exp uint8) math.Int {
	return math.NewIntWithDecimal(1, int(exp))
}
