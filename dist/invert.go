// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// This file implements the generic quantile solver: bracketed
// bisection over a distribution's support, used by every distribution
// that has no closed-form inverse. The continuous solver narrows a
// floating-point bracket; the discrete solver searches the integers
// for the smallest value whose cumulative probability reaches the
// target.

const (
	// solverMaxIter bounds the continuous bisection loop. A
	// bracket spanning the whole double range narrows to one ulp
	// in under 2200 halvings, so reaching this cap means the
	// evaluator is not monotone or returns NaN.
	solverMaxIter = 1 << 12

	// solverRelTol and solverAbsTol terminate the bisection once
	// the bracket width falls below absTol + relTol*|mid|.
	solverRelTol = 2.220446049250313e-16 // double-precision epsilon
	solverAbsTol = 5e-324                // one subnormal step
)

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// invertCDF returns the quantile of d at p by bisection on the CDF.
func invertCDF(d Continuous, p float64) float64 {
	checkProbability(p)
	return continuousQuantile(d, p, false)
}

// invertSurvival returns the x at which d's survival function equals
// p, by bisection directly on the survival function. Searching the
// survival function rather than the CDF at 1-p preserves accuracy for
// small p.
func invertSurvival(d Continuous, p float64) float64 {
	checkProbability(p)
	return continuousQuantile(d, p, true)
}

func continuousQuantile(d Continuous, p float64, complement bool) float64 {
	sup := d.Support()

	// Degenerate probabilities map to the support bounds without
	// any search.
	if p == 0 {
		if complement {
			return sup.Hi
		}
		return sup.Lo
	}
	if p == 1 {
		if complement {
			return sup.Lo
		}
		return sup.Hi
	}

	// below reports whether x lies strictly left of the solution.
	// The CDF is non-decreasing and the survival function
	// non-increasing, so the comparison flips between them.
	var below func(x float64) bool
	if complement {
		below = func(x float64) bool { return d.Survival(x) > p }
	} else {
		below = func(x float64) bool { return d.CDF(x) < p }
	}

	lo, hi := sup.Lo, sup.Hi

	// Narrow the bracket with the Chebyshev inequality when the
	// distribution has finite mean and variance. Each candidate
	// bound is verified against the evaluator so that rounding in
	// the inequality can never exclude the solution.
	mu, sigma := d.Mean(), math.Sqrt(d.Variance())
	if isFinite(mu) && isFinite(sigma) && sigma > 0 {
		q := p
		if complement {
			q = 1 - p
		}
		if k := math.Sqrt((1 - q) / q); isFinite(k) && k > 0 {
			if tmp := mu - k*sigma; tmp > lo && below(tmp) {
				lo = tmp
			}
		}
		if k := math.Sqrt(q / (1 - q)); isFinite(k) && k > 0 {
			if tmp := mu + k*sigma; tmp < hi && !below(tmp) {
				hi = tmp
			}
		}
	}

	// Replace any remaining infinite bound by a finite one,
	// expanding geometrically outward from an interior guess
	// until the target is bracketed.
	if math.IsInf(lo, -1) {
		lo = expandDown(below, interiorGuess(mu, lo, hi), sigma)
	}
	if math.IsInf(hi, 1) {
		hi = expandUp(below, interiorGuess(mu, lo, hi), sigma)
	}

	// Bisect. The invariant is below(lo) && !below(hi).
	for i := 0; i < solverMaxIter; i++ {
		mid := lo/2 + hi/2 // no overflow for extreme brackets
		if !(lo < mid && mid < hi) {
			// The bracket is one ulp wide; it cannot
			// narrow further in floating point.
			return hi
		}
		if below(mid) {
			lo = mid
		} else {
			hi = mid
		}
		if hi-lo <= solverAbsTol+solverRelTol*math.Abs(mid) {
			return hi
		}
	}
	panic(&ConvergenceError{Iterations: solverMaxIter})
}

// interiorGuess picks a finite point inside (lo, hi) from which to
// expand a search bracket.
func interiorGuess(mu, lo, hi float64) float64 {
	if isFinite(mu) && lo < mu && mu < hi {
		return mu
	}
	switch {
	case isFinite(lo) && isFinite(hi):
		return lo + (hi-lo)/2
	case isFinite(lo):
		return lo + 1
	case isFinite(hi):
		return hi - 1
	}
	return 0
}

// expandDown returns a finite x at or left of the solution, stepping
// geometrically from g toward -inf. scale sets the initial step when
// it is finite and positive.
func expandDown(below func(float64) bool, g, scale float64) float64 {
	if below(g) {
		return g
	}
	step := 1.0
	if isFinite(scale) && scale > 0 {
		step = scale
	}
	for {
		x := g - step
		if x <= -math.MaxFloat64 {
			return -math.MaxFloat64
		}
		if below(x) {
			return x
		}
		step *= 2
	}
}

// expandUp is the mirror of expandDown.
func expandUp(below func(float64) bool, g, scale float64) float64 {
	if !below(g) {
		return g
	}
	step := 1.0
	if isFinite(scale) && scale > 0 {
		step = scale
	}
	for {
		x := g + step
		if x >= math.MaxFloat64 {
			return math.MaxFloat64
		}
		if !below(x) {
			return x
		}
		step *= 2
	}
}

// invertDiscreteCDF returns the smallest k in d's support with
// CDF(k) >= p.
func invertDiscreteCDF(d Discrete, p float64) int {
	checkProbability(p)
	return discreteQuantile(d, p, false)
}

// invertDiscreteSurvival returns the smallest k in d's support with
// Survival(k) <= p, evaluated directly on the survival function for
// accuracy at small p.
func invertDiscreteSurvival(d Discrete, p float64) int {
	checkProbability(p)
	return discreteQuantile(d, p, true)
}

func discreteQuantile(d Discrete, p float64, complement bool) int {
	sup := d.Support()

	if p == 0 {
		if complement {
			return sup.Hi
		}
		return sup.Lo
	}
	if p == 1 {
		if complement {
			return sup.Lo
		}
		return sup.Hi
	}

	// checked evaluation: a NaN cumulative probability means the
	// evaluator itself failed, which the solver cannot work
	// around.
	eval := func(k int) float64 {
		var v float64
		if complement {
			v = d.Survival(k)
		} else {
			v = d.CDF(k)
		}
		if math.IsNaN(v) {
			panic(&ConvergenceError{})
		}
		return v
	}
	below := func(k int) bool {
		if complement {
			return eval(k) > p
		}
		return eval(k) < p
	}

	lo, hi := sup.Lo, sup.Hi
	if !below(lo) {
		// The lower support bound already reaches the target.
		return lo
	}

	// Narrow the bracket with the Chebyshev inequality when the
	// moments are finite, verifying each candidate against the
	// evaluator before adopting it.
	mu, sigma := d.Mean(), math.Sqrt(d.Variance())
	if isFinite(mu) && isFinite(sigma) && sigma > 0 {
		q := p
		if complement {
			q = 1 - p
		}
		if k := math.Sqrt((1 - q) / q); isFinite(k) {
			if cand, ok := floorInt(mu - k*sigma); ok && cand > lo && cand < hi && below(cand) {
				lo = cand
			}
		}
		if k := math.Sqrt(q / (1 - q)); isFinite(k) {
			if cand, ok := ceilInt(mu + k*sigma); ok && cand < hi && cand > lo && !below(cand) {
				hi = cand
			}
		}
	}

	// Integer bisection. The invariant is below(lo) && !below(hi);
	// at most 64 halvings regardless of the bracket.
	for lo+1 < hi {
		// Two's-complement midpoint: correct for any lo < hi,
		// including brackets wider than half the int range
		// where (lo+hi)/2 would overflow.
		mid := lo>>1 + hi>>1 + lo&hi&1
		if below(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

// floorInt converts floor(x) to an int, reporting false when x is out
// of the representable integer range.
func floorInt(x float64) (int, bool) {
	x = math.Floor(x)
	if !(x >= math.MinInt64 && x < math.MaxInt64) {
		return 0, false
	}
	return int(x), true
}

// ceilInt converts ceil(x) to an int, reporting false when x is out
// of the representable integer range.
func ceilInt(x float64) (int, bool) {
	x = math.Ceil(x)
	if !(x >= math.MinInt64 && x < math.MaxInt64) {
		return 0, false
	}
	return int(x), true
}
