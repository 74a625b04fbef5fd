// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist provides probability distribution models with
// numerically robust density, cumulative probability, survival
// probability, and quantile functions.
//
// Distributions are immutable value types created by NewXxx factory
// functions that validate their parameters. Because instances never
// change after construction, they are safe for unsynchronized
// concurrent use.
//
// Cumulative and survival probabilities are computed by independent
// formulas rather than as 1 minus each other, so each remains
// accurate in the tail where the other rounds to 1. Likewise LogPDF
// and LogPMF are derived independently of PDF and PMF, so they stay
// finite where the plain density underflows to zero.
package dist // import "github.com/aclements/go-statdist/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// A Continuous is a continuous probability distribution.
type Continuous interface {
	// PDF returns the value of the probability density function
	// of this distribution at x. It is 0 outside the support and
	// may be +Inf at a support boundary where the density
	// diverges.
	PDF(x float64) float64

	// LogPDF returns the natural logarithm of the density at x.
	// It is computed by an independent formula, not as
	// log(PDF(x)), and so remains finite where PDF underflows.
	LogPDF(x float64) float64

	// CDF returns the cumulative probability P(X <= x).
	CDF(x float64) float64

	// Survival returns the survival probability P(X > x). This is
	// computed directly, not as 1-CDF(x), and remains accurate in
	// the upper tail where CDF(x) rounds to 1.
	Survival(x float64) float64

	// InvCDF returns the quantile x such that CDF(x) = p. It
	// returns the lower support bound for p = 0 and the upper
	// support bound for p = 1, and panics with a *DomainError if
	// p is outside [0, 1].
	InvCDF(p float64) float64

	// InvSurvival returns the x such that Survival(x) = p, with
	// the boundary and error conventions of InvCDF mirrored.
	InvSurvival(p float64) float64

	// Mean returns the mean of the distribution, or NaN if the
	// mean is undefined.
	Mean() float64

	// Variance returns the variance of the distribution, or NaN
	// if the variance is undefined. It may be +Inf.
	Variance() float64

	// Support returns the support of the distribution.
	Support() Support

	// Sampler returns a sampler drawing variates from this
	// distribution using uniform values from src.
	Sampler(src Source) Sampler
}

// A Discrete is a discrete probability distribution over the
// integers.
type Discrete interface {
	// PMF returns the probability mass P(X = k).
	PMF(k int) float64

	// LogPMF returns the natural logarithm of the probability
	// mass at k. Like Continuous.LogPDF, it is an independent
	// formula, not log(PMF(k)).
	LogPMF(k int) float64

	// CDF returns the cumulative probability P(X <= k).
	CDF(k int) float64

	// Survival returns the survival probability P(X > k),
	// computed directly for accuracy in the upper tail.
	Survival(k int) float64

	// InvCDF returns the smallest k in the support such that
	// CDF(k) >= p. It returns the lower support bound for p = 0
	// and the upper support bound for p = 1, and panics with a
	// *DomainError if p is outside [0, 1].
	InvCDF(p float64) int

	// InvSurvival returns the smallest k in the support such that
	// Survival(k) <= p, with boundaries mirrored: the upper
	// support bound for p = 0 and the lower bound for p = 1.
	InvSurvival(p float64) int

	// Mean returns the mean, or NaN if undefined. It may be +Inf.
	Mean() float64

	// Variance returns the variance, or NaN if undefined. It may
	// be +Inf.
	Variance() float64

	// Support returns the support of the distribution.
	Support() IntSupport
}

// Support is the support of a continuous distribution: the smallest
// interval outside of which the density is exactly zero. Either bound
// may be infinite.
type Support struct {
	Lo, Hi float64

	// Connected reports whether every point in [Lo, Hi] is in the
	// support. It is false only for distributions whose domain
	// excludes an interior range.
	Connected bool
}

// IntSupport is the support of a discrete distribution, inclusive on
// both ends. An unbounded support uses math.MinInt64 or
// math.MaxInt64.
type IntSupport struct {
	Lo, Hi    int
	Connected bool
}

// In reports whether x lies in the closed interval [s.Lo, s.Hi].
func (s Support) In(x float64) bool {
	return s.Lo <= x && x <= s.Hi
}

// In reports whether k lies in the closed interval [s.Lo, s.Hi].
func (s IntSupport) In(k int) bool {
	return s.Lo <= k && k <= s.Hi
}

// clamp limits x to the interval [lo, hi].
func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func lgamma(x float64) float64 {
	y, _ := math.Lgamma(x)
	return y
}
