// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// Geometric is the distribution of the number of failures before the
// first success in independent Bernoulli trials with success
// probability P.
type Geometric struct {
	// P is the probability of success in each trial. 0 < P <= 1.
	P float64

	// logP and log1mP are log(P) and log1p(-P), fixed at
	// construction. log1mP carries the full precision of 1-P even
	// when P is near zero, where the explicit subtraction would
	// round the parameter away.
	logP, log1mP float64
}

// NewGeometric returns a geometric distribution counting failures
// before the first success with probability p per trial. p must be in
// (0, 1].
func NewGeometric(p float64) (Geometric, error) {
	if !(0 < p && p <= 1) {
		return Geometric{}, &ParameterError{Param: "ProbabilityOfSuccess", Value: p, Constraint: consProbabilityExcl0}
	}
	return Geometric{P: p, logP: math.Log(p), log1mP: math.Log1p(-p)}, nil
}

// PMF is P * (1-P)^k. For P >= 0.5 the subtraction 1-P is exact and
// the power function is used directly; below that the power is
// rewritten as exp(k*log1p(-P)) so that the rounding of 1-P never
// enters. Away from the parameter boundary the two forms agree to
// unit roundoff.
func (d Geometric) PMF(k int) float64 {
	if k < 0 {
		return 0
	}
	if d.P >= 0.5 {
		return d.P * math.Pow(1-d.P, float64(k))
	}
	return d.P * math.Exp(float64(k)*d.log1mP)
}

func (d Geometric) LogPMF(k int) float64 {
	if k < 0 {
		return -inf
	}
	if k == 0 {
		// Avoids 0 * log1p(-1) = 0 * -inf when P == 1.
		return d.logP
	}
	return d.logP + float64(k)*d.log1mP
}

// CDF is 1 - (1-P)^(k+1), computed as -expm1(log1p(-P)*(k+1)). The
// index arithmetic is done in float64 so k+1 cannot wrap when k is
// the largest representable integer.
func (d Geometric) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	return -math.Expm1(d.log1mP * (float64(k) + 1))
}

// Survival is (1-P)^(k+1), computed in log space for the same reason
// as CDF. It stays distinguishable from 0 even for the most extreme
// parameters the float64 format can express.
func (d Geometric) Survival(k int) float64 {
	if k < 0 {
		return 1
	}
	return math.Exp(d.log1mP * (float64(k) + 1))
}

// InvCDF delegates to the generic discrete solver. The distribution's
// moments overflow for tiny P, in which case the solver bisects the
// full integer support.
func (d Geometric) InvCDF(p float64) int {
	return invertDiscreteCDF(d, p)
}

func (d Geometric) InvSurvival(p float64) int {
	return invertDiscreteSurvival(d, p)
}

func (d Geometric) Mean() float64 {
	return (1 - d.P) / d.P
}

func (d Geometric) Variance() float64 {
	return (1 - d.P) / (d.P * d.P)
}

func (d Geometric) Support() IntSupport {
	return IntSupport{Lo: 0, Hi: math.MaxInt64, Connected: true}
}
