package vault

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulDivRounding(t *testing.T) {
	testCases := []struct {
		name      string
		x, y, den int64
		floor     int64
		ceil      int64
	}{
		{"exact", 10, 6, 3, 20, 20},
		{"remainder", 10, 7, 3, 23, 24},
		{"sub unit", 1, 1, 3, 0, 1},
		{"identity", 42, 1, 1, 42, 42},
		{"large remainder", 999, 2, 1002, 1, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			down, err := mulDiv(math.NewInt(tc.x), math.NewInt(tc.y), math.NewInt(tc.den), false)
			require.NoError(t, err)
			up, err := mulDiv(math.NewInt(tc.x), math.NewInt(tc.y), math.NewInt(tc.den), true)
			require.NoError(t, err)

			assert.Equal(t, tc.floor, down.Int64())
			assert.Equal(t, tc.ceil, up.Int64())
			if (tc.x*tc.y)%tc.den != 0 {
				assert.Equal(t, tc.floor+1, tc.ceil, "ceil must be floor+1 when division is not integral")
			} else {
				assert.Equal(t, tc.floor, tc.ceil)
			}
		})
	}
}

func TestMulDivWideIntermediate(t *testing.T) {
	// x*y alone needs ~340 bits; the quotient narrows back under 256.
	x := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 170))
	y := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 170))
	den := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 100))

	out, err := mulDiv(x, y, den, false)
	require.NoError(t, err)
	assert.Equal(t, math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 240)), out)
}

func TestMulDivOverflow(t *testing.T) {
	x := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 200))
	y := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 200))

	_, err := mulDiv(x, y, math.OneInt(), false)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestMulDivZeroDenominatorPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = mulDiv(math.OneInt(), math.OneInt(), math.ZeroInt(), false)
	})
}

func TestCheckedAdd(t *testing.T) {
	sum, err := checkedAdd(math.NewInt(2), math.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, int64(5), sum.Int64())

	near := math.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)))
	_, err = checkedAdd(near, math.OneInt())
	assert.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestPow10(t *testing.T) {
	assert.Equal(t, math.NewInt(1), pow10(0))
	assert.Equal(t, math.NewInt(1_000_000), pow10(6))
	assert.Equal(t, math.NewIntWithDecimal(1, 18), pow10(18))
}
