package dao

import "github.com/holiman/uint256"

// FixedPoint is a rate scaled by RateScale, so RateScale itself means 100%.
// The engine settled on the 1e9 scale; all persisted rates use it.
type FixedPoint uint64

// RateScale is the fixed-point unit: 1e9 == 100%.
const RateScale = 1_000_000_000

// Percent builds a FixedPoint from whole percents for readable call sites.
// Example payload: dao.Percent(50)
func Percent(p uint64) FixedPoint {
	return FixedPoint(p * (RateScale / 100))
}

// DivDown computes num/den as a FixedPoint, truncating toward zero. The
// multiply runs on a 256-bit intermediate so num*RateScale cannot overflow.
// A zero denominator reports ErrDivideByZero; quorum derivation intercepts
// that case before calling.
func DivDown(num, den Amount) (FixedPoint, error) {
	if den == 0 {
		return 0, ErrDivideByZero
	}
	n := uint256.NewInt(uint64(num))
	n.Mul(n, uint256.NewInt(RateScale))
	n.Div(n, uint256.NewInt(uint64(den)))
	return FixedPoint(n.Uint64()), nil
}
