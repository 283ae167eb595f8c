package utils

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/osse101/HerbFarmCalc_Go/internal/domain"
)

// Factorial returns n! for a non-negative n. Results past 20! do not fit in
// an int64 and are reported as ErrInvalidArgument.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial of negative number %d", domain.ErrInvalidArgument, n)
	}
	return FactorialRange(1, n)
}

// FactorialRange returns the product lo·(lo+1)·…·hi. An empty range is 1.
func FactorialRange(lo, hi int) (int64, error) {
	if lo < 1 && lo <= hi {
		return 0, fmt.Errorf("%w: factorial range [%d, %d] must start above zero", domain.ErrInvalidArgument, lo, hi)
	}
	result := int64(1)
	for i := lo; i <= hi; i++ {
		if result > math.MaxInt64/int64(i) {
			return 0, fmt.Errorf("%w: product %d..%d overflows int64", domain.ErrInvalidArgument, lo, hi)
		}
		result *= int64(i)
	}
	return result, nil
}

// Combination returns "n choose k", the product (n-k+1)·…·n divided by k!.
// k is first reduced to min(k, n-k), and the division is folded into each
// step so every intermediate value is itself a binomial coefficient.
// A result that does not fit in an int64 is reported as ErrInvalidArgument.
func Combination(n, k int) (int64, error) {
	if n < 0 || k < 0 || k > n {
		return 0, fmt.Errorf("%w: combination(%d, %d)", domain.ErrInvalidArgument, n, k)
	}
	k = min(k, n-k)

	// After step i, result holds C(n-k+i, i)
	var result uint64 = 1
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(result, uint64(n-k+i))
		if hi >= uint64(i) {
			return 0, fmt.Errorf("%w: combination(%d, %d) overflows int64", domain.ErrInvalidArgument, n, k)
		}
		result, _ = bits.Div64(hi, lo, uint64(i))
		if result > math.MaxInt64 {
			return 0, fmt.Errorf("%w: combination(%d, %d) overflows int64", domain.ErrInvalidArgument, n, k)
		}
	}
	return int64(result), nil
}

// BinomialPMF returns the probability of exactly k successes in n trials
// of success probability p
func BinomialPMF(p float64, n, k int) (float64, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: probability %v outside [0, 1]", domain.ErrInvalidArgument, p)
	}
	c, err := Combination(n, k)
	if err != nil {
		return 0, err
	}
	return math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k)) * float64(c), nil
}

// LinearInterpolate maps x from [x0, x1] onto [y0, y1]. It does not clamp.
func LinearInterpolate(x, x0, x1, y0, y1 float64) (float64, error) {
	if x1 <= x0 {
		return 0, fmt.Errorf("%w: empty interpolation range [%v, %v]", domain.ErrInvalidArgument, x0, x1)
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0), nil
}

// ClampInt bounds v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
