// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// Exponential is an exponential distribution parameterized by its
// mean (the inverse of the rate).
type Exponential struct {
	// Mu is the mean of the distribution. Mu > 0.
	Mu float64

	logMu float64
}

// NewExponential returns an exponential distribution with mean mu.
// mu must be strictly positive.
func NewExponential(mu float64) (Exponential, error) {
	if err := checkStrictlyPositive("Mean", mu); err != nil {
		return Exponential{}, err
	}
	return Exponential{Mu: mu, logMu: math.Log(mu)}, nil
}

func (d Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return math.Exp(-x/d.Mu) / d.Mu
}

func (d Exponential) LogPDF(x float64) float64 {
	if x < 0 {
		return -inf
	}
	return -x/d.Mu - d.logMu
}

// CDF is computed as -expm1(-x/mu), which stays accurate near zero
// where 1-exp(-x/mu) would cancel.
func (d Exponential) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-x / d.Mu)
}

func (d Exponential) Survival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Exp(-x / d.Mu)
}

func (d Exponential) InvCDF(p float64) float64 {
	checkProbability(p)
	if p == 1 {
		return inf
	}
	// log1p sees the exact argument -p, so the tail x for p near
	// 0 keeps full relative precision.
	return -d.Mu * math.Log1p(-p)
}

func (d Exponential) InvSurvival(p float64) float64 {
	checkProbability(p)
	if p == 0 {
		return inf
	}
	return -d.Mu * math.Log(p)
}

func (d Exponential) Mean() float64 { return d.Mu }

func (d Exponential) Variance() float64 { return d.Mu * d.Mu }

func (d Exponential) Support() Support {
	return Support{Lo: 0, Hi: inf, Connected: true}
}

func (d Exponential) Sampler(src Source) Sampler {
	return inversionSampler{dist: d, src: src}
}
