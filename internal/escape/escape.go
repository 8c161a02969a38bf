package escape

import (
	"math"
	"math/cmplx"
)

// Validate rejects inputs the iteration is not defined for.
func Validate(c complex128, budget int) error {
	if budget <= 0 {
		return &ParamError{C: c, Budget: budget, Wrapped: ErrInvalidBudget}
	}
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		return &ParamError{C: c, Budget: budget, Wrapped: ErrInvalidPoint}
	}
	return nil
}

// Evaluate returns the smallest n < budget with |z(n+1)| > 2, or Bounded.
func Evaluate(c complex128, budget int) (Result, error) {
	if err := Validate(c, budget); err != nil {
		return Bounded, err
	}
	return Iterate(c, budget), nil
}

// Iterate is Evaluate without input validation. The caller guarantees a finite
// c and a positive budget.
func Iterate(c complex128, budget int) Result {
	cr, ci := real(c), imag(c)
	zr, zi := 0.0, 0.0

	for n := 0; n < budget; n++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if zr*zr+zi*zi > thresholdSq {
			return Result(n)
		}
	}
	return Bounded
}

// Stable reports whether c stays bounded for the whole budget.
func Stable(c complex128, budget int) bool {
	return Iterate(c, budget).Bounded()
}

// Orbit returns z(1)..z(k), where k is the escape step + 1 or the budget.
func Orbit(c complex128, budget int) ([]complex128, error) {
	if err := Validate(c, budget); err != nil {
		return nil, err
	}

	orbit := make([]complex128, 0, min(budget, 64))
	cr, ci := real(c), imag(c)
	zr, zi := 0.0, 0.0
	for n := 0; n < budget; n++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		orbit = append(orbit, complex(zr, zi))
		if zr*zr+zi*zi > thresholdSq {
			break
		}
	}
	return orbit, nil
}

// Smooth returns the normalized iteration count n + 1 - log(log|z|)/log 2 for
// escaped points and float64(budget) for bounded ones.
func Smooth(c complex128, budget int) (float64, error) {
	if err := Validate(c, budget); err != nil {
		return 0, err
	}

	cr, ci := real(c), imag(c)
	zr, zi := 0.0, 0.0
	for n := 0; n < budget; n++ {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if mag := zr*zr + zi*zi; mag > thresholdSq {
			// log|z| = log(|z|^2) / 2, unless |z|^2 overflowed
			logAbs := math.Log(mag) / 2
			if math.IsInf(mag, 1) {
				logAbs = math.Log(math.Hypot(zr, zi))
			}
			return float64(n) + 1 - math.Log(logAbs)/math.Ln2, nil
		}
	}
	return float64(budget), nil
}
