// Package accrual implements the pure vesting-accrual function: how
// much of a recipient's allocation has vested as of a given month
// index. Arithmetic widens through cosmossdk.io/math's arbitrary
// precision integer before narrowing back to a checked uint64, so a
// 128-bit-class overflow during the widen step can never go
// undetected.
package accrual

import (
	"fmt"
	"math"

	sdkmath "cosmossdk.io/math"
)

var maxUint64 = sdkmath.NewIntFromUint64(math.MaxUint64)

// Vested returns the amount vested for a recipient with the given
// cached monthly/final amounts as of monthIndex. An index above 12 is
// clamped to 12; a negative index is an error, and index 0 vests
// nothing. For month indices below the terminal month it is monthly*m; the
// terminal month absorbs the division remainder so that
// Vested(monthly, final, 12) always equals the original allocation
// (11*monthly + final) exactly.
func Vested(monthly, final sdkmath.Int, monthIndex int) (sdkmath.Int, error) {
	m := monthIndex
	if m > 12 {
		m = 12
	}
	if m < 0 {
		return sdkmath.Int{}, fmt.Errorf("accrual: negative month index %d", m)
	}

	var vested sdkmath.Int
	if m < 12 {
		vested = monthly.Mul(sdkmath.NewInt(int64(m)))
	} else {
		vested = monthly.MulRaw(11).Add(final)
	}
	return narrowToUint64(vested)
}

// Releasable returns vested-released. A negative difference means the
// per-recipient ledger has drifted from the accrual curve — that is an
// invariant violation, not a saturating no-op, so it is surfaced as an
// error rather than clamped to zero.
func Releasable(vested, released sdkmath.Int) (sdkmath.Int, error) {
	diff := vested.Sub(released)
	if diff.IsNegative() {
		return sdkmath.Int{}, fmt.Errorf("accrual: released %s exceeds vested %s", released, vested)
	}
	return diff, nil
}

func narrowToUint64(v sdkmath.Int) (sdkmath.Int, error) {
	if v.IsNegative() || v.GT(maxUint64) {
		return sdkmath.Int{}, fmt.Errorf("accrual: value %s does not fit in uint64", v)
	}
	return v, nil
}
