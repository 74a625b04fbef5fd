// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// LogNormal is the distribution of exp(N) where N is normal with
// mean Mu and standard deviation Sigma.
type LogNormal struct {
	Mu, Sigma float64
}

// NewLogNormal returns a log-normal distribution whose logarithm has
// mean mu and standard deviation sigma. sigma must be strictly
// positive.
func NewLogNormal(mu, sigma float64) (LogNormal, error) {
	if err := checkStrictlyPositive("Sigma", sigma); err != nil {
		return LogNormal{}, err
	}
	return LogNormal{Mu: mu, Sigma: sigma}, nil
}

func (d LogNormal) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	z := (math.Log(x) - d.Mu) / d.Sigma
	return math.Exp(-z*z/2) / (x * d.Sigma * math.Sqrt(2*math.Pi))
}

func (d LogNormal) LogPDF(x float64) float64 {
	if x <= 0 {
		return -inf
	}
	lx := math.Log(x)
	z := (lx - d.Mu) / d.Sigma
	return -z*z/2 - lx - math.Log(d.Sigma) - logSqrt2Pi
}

func (d LogNormal) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Erfc(-(math.Log(x)-d.Mu)/(d.Sigma*math.Sqrt2)) / 2
}

func (d LogNormal) Survival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Erfc((math.Log(x)-d.Mu)/(d.Sigma*math.Sqrt2)) / 2
}

func (d LogNormal) InvCDF(p float64) float64 {
	checkProbability(p)
	switch p {
	case 0:
		return 0
	case 1:
		return inf
	}
	return math.Exp(d.Mu + d.Sigma*mathext.NormalQuantile(p))
}

func (d LogNormal) InvSurvival(p float64) float64 {
	checkProbability(p)
	switch p {
	case 0:
		return inf
	case 1:
		return 0
	}
	return math.Exp(d.Mu - d.Sigma*mathext.NormalQuantile(p))
}

func (d LogNormal) Mean() float64 {
	return math.Exp(d.Mu + d.Sigma*d.Sigma/2)
}

func (d LogNormal) Variance() float64 {
	s2 := d.Sigma * d.Sigma
	return math.Expm1(s2) * math.Exp(2*d.Mu+s2)
}

func (d LogNormal) Support() Support {
	return Support{Lo: 0, Hi: inf, Connected: true}
}

func (d LogNormal) Sampler(src Source) Sampler {
	return inversionSampler{dist: d, src: src}
}
