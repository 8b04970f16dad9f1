package boxscript

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedAdd(t *testing.T) {
	v, err := CheckedAdd[int64](40, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	v, err = CheckedAdd[int64](-40, -2)
	require.NoError(t, err)
	assert.Equal(t, int64(-42), v)

	_, err = CheckedAdd[int64](math.MaxInt64, 1)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)

	_, err = CheckedAdd[int64](math.MinInt64, -1)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)

	v8, err := CheckedAdd[int8](127, -127)
	require.NoError(t, err)
	assert.Equal(t, int8(0), v8)

	_, err = CheckedAdd[int8](127, 1)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestCheckedSub(t *testing.T) {
	v, err := CheckedSub[int64](40, -2)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	_, err = CheckedSub[int64](math.MinInt64, 1)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)

	_, err = CheckedSub[int64](0, math.MinInt64)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)

	v, err = CheckedSub[int64](-1, math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), v)
}

func TestCheckedMul(t *testing.T) {
	v, err := CheckedMul[int64](-6, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(-42), v)

	v, err = CheckedMul[int64](0, math.MinInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	_, err = CheckedMul[int64](math.MaxInt64, 2)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)

	// both orders of the MinInt * -1 wrap
	_, err = CheckedMul[int64](math.MinInt64, -1)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)
	_, err = CheckedMul[int64](-1, math.MinInt64)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)

	_, err = CheckedMul[int8](16, 8)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestShiftCount(t *testing.T) {
	s, err := ShiftCount[int64](3)
	require.NoError(t, err)
	assert.Equal(t, uint(3), s)

	s, err = ShiftCount[int64](0)
	require.NoError(t, err)
	assert.Equal(t, uint(0), s)

	_, err = ShiftCount[int64](-1)
	assert.ErrorIs(t, err, ErrNegativeShiftAmount)
}
