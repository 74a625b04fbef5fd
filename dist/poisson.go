// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Poisson is a Poisson distribution with mean Lambda.
type Poisson struct {
	// Lambda is the mean number of events. Lambda > 0.
	Lambda float64

	// logLambda is log(Lambda), fixed at construction.
	logLambda float64
}

// NewPoisson returns a Poisson distribution with mean lambda, which
// must be strictly positive.
func NewPoisson(lambda float64) (Poisson, error) {
	if err := checkStrictlyPositive("Mean", lambda); err != nil {
		return Poisson{}, err
	}
	return Poisson{Lambda: lambda, logLambda: math.Log(lambda)}, nil
}

func (d Poisson) PMF(k int) float64 {
	return math.Exp(d.LogPMF(k))
}

func (d Poisson) LogPMF(k int) float64 {
	if k < 0 {
		return -inf
	}
	x := float64(k)
	return x*d.logLambda - d.Lambda - lgamma(x+1)
}

// CDF is the upper regularized incomplete gamma function Q(k+1,
// Lambda). The index arithmetic is in float64, so the k+1 shift
// cannot wrap at the top of the integer range.
func (d Poisson) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	return mathext.GammaIncRegComp(float64(k)+1, d.Lambda)
}

// Survival is the lower regularized incomplete gamma function P(k+1,
// Lambda), evaluated directly for accuracy in the upper tail.
func (d Poisson) Survival(k int) float64 {
	if k < 0 {
		return 1
	}
	return mathext.GammaIncReg(float64(k)+1, d.Lambda)
}

func (d Poisson) InvCDF(p float64) int {
	return invertDiscreteCDF(d, p)
}

func (d Poisson) InvSurvival(p float64) int {
	return invertDiscreteSurvival(d, p)
}

func (d Poisson) Mean() float64 { return d.Lambda }

func (d Poisson) Variance() float64 { return d.Lambda }

func (d Poisson) Support() IntSupport {
	return IntSupport{Lo: 0, Hi: math.MaxInt64, Connected: true}
}
