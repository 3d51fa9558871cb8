package dao_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"agora_dao/dao"
)

// TestDivDownTruncates checks the fraction always rounds toward zero.
func TestDivDownTruncates(t *testing.T) {
	// 1/3 truncates, so three thirds never quite make a whole.
	frac, err := dao.DivDown(1, 3)
	assert.NoError(t, err)
	assert.Equal(t, dao.FixedPoint(333_333_333), frac)

	frac, err = dao.DivDown(2, 3)
	assert.NoError(t, err)
	assert.Equal(t, dao.FixedPoint(666_666_666), frac)

	frac, err = dao.DivDown(1, 1)
	assert.NoError(t, err)
	assert.Equal(t, dao.FixedPoint(dao.RateScale), frac)
}

// TestDivDownZeroDenominator checks the explicit error instead of a panic.
func TestDivDownZeroDenominator(t *testing.T) {
	_, err := dao.DivDown(1, 0)
	assert.ErrorIs(t, err, dao.ErrDivideByZero)
}

// TestDivDownLargeValues checks the widened intermediate survives inputs that
// would overflow a plain uint64 multiply.
func TestDivDownLargeValues(t *testing.T) {
	huge := dao.Amount(math.MaxUint64)
	frac, err := dao.DivDown(huge, huge)
	assert.NoError(t, err)
	assert.Equal(t, dao.FixedPoint(dao.RateScale), frac)

	frac, err = dao.DivDown(huge/2, huge)
	assert.NoError(t, err)
	assert.Equal(t, dao.FixedPoint(499_999_999), frac)
}

// TestPercent checks the convenience scaler.
func TestPercent(t *testing.T) {
	assert.Equal(t, dao.FixedPoint(500_000_000), dao.Percent(50))
	assert.Equal(t, dao.FixedPoint(dao.RateScale), dao.Percent(100))
}
