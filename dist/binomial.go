// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Binomial is the distribution of the number of successes in N
// independent Bernoulli trials with success probability P.
//
// If N=1, this is equivalent to the Bernoulli distribution.
type Binomial struct {
	// N is the number of trials. N >= 0.
	N int

	// P is the probability of success in each trial. 0 <= P <= 1.
	P float64

	// logP and log1mP are log(P) and log1p(-P), fixed at
	// construction. They are -inf at the respective parameter
	// boundary.
	logP, log1mP float64
}

// NewBinomial returns a binomial distribution with n trials of
// success probability p. n must be non-negative and p must be in
// [0, 1].
func NewBinomial(n int, p float64) (Binomial, error) {
	if n < 0 {
		return Binomial{}, &ParameterError{Param: "NumberOfTrials", Value: float64(n), Constraint: consNotNegative}
	}
	if err := checkProbabilityParam("ProbabilityOfSuccess", p); err != nil {
		return Binomial{}, err
	}
	return Binomial{N: n, P: p, logP: math.Log(p), log1mP: math.Log1p(-p)}, nil
}

func (d Binomial) PMF(k int) float64 {
	return math.Exp(d.LogPMF(k))
}

// LogPMF computes the log binomial coefficient through the log-gamma
// function and keeps the power terms in log space via log(P) and
// log1p(-P), so the mass stays finite down to the smallest subnormal
// magnitudes.
func (d Binomial) LogPMF(k int) float64 {
	if k < 0 || k > d.N {
		return -inf
	}
	// The degenerate parameters concentrate all mass on one
	// point; the general formula below would produce 0 * -inf.
	if d.P == 0 {
		if k == 0 {
			return 0
		}
		return -inf
	}
	if d.P == 1 {
		if k == d.N {
			return 0
		}
		return -inf
	}
	n, x := float64(d.N), float64(k)
	lc := lgamma(n+1) - lgamma(x+1) - lgamma(n-x+1)
	return lc + x*d.logP + (n-x)*d.log1mP
}

// CDF is the regularized incomplete beta function I_{1-P}(N-k, k+1).
func (d Binomial) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	if k >= d.N {
		return 1
	}
	return mathext.RegIncBeta(float64(d.N-k), float64(k)+1, 1-d.P)
}

// Survival evaluates the complementary incomplete beta I_P(k+1, N-k)
// directly, so the upper tail does not round away against 1.
func (d Binomial) Survival(k int) float64 {
	if k < 0 {
		return 1
	}
	if k >= d.N {
		return 0
	}
	return mathext.RegIncBeta(float64(k)+1, float64(d.N-k), d.P)
}

func (d Binomial) InvCDF(p float64) int {
	return invertDiscreteCDF(d, p)
}

func (d Binomial) InvSurvival(p float64) int {
	return invertDiscreteSurvival(d, p)
}

func (d Binomial) Mean() float64 {
	return float64(d.N) * d.P
}

func (d Binomial) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

func (d Binomial) Support() IntSupport {
	return IntSupport{Lo: 0, Hi: d.N, Connected: true}
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PMF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d Binomial) NormalApprox() Normal {
	return Normal{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}
