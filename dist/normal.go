// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// log(sqrt(2 * pi))
const logSqrt2Pi = 0.91893853320467274178032973640561763986139747363778

// Normal is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type Normal struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = Normal{0, 1}

// NewNormal returns a normal distribution with mean mu and standard
// deviation sigma. sigma must be strictly positive.
func NewNormal(mu, sigma float64) (Normal, error) {
	if err := checkStrictlyPositive("Sigma", sigma); err != nil {
		return Normal{}, err
	}
	return Normal{Mu: mu, Sigma: sigma}, nil
}

func (d Normal) PDF(x float64) float64 {
	z := (x - d.Mu) / d.Sigma
	return math.Exp(-z*z/2) / (d.Sigma * math.Sqrt(2*math.Pi))
}

func (d Normal) LogPDF(x float64) float64 {
	z := (x - d.Mu) / d.Sigma
	return -z*z/2 - math.Log(d.Sigma) - logSqrt2Pi
}

// CDF uses the complementary error function in both directions, so
// each tail is evaluated by an erfc of a positive argument and never
// by subtraction from 1.
func (d Normal) CDF(x float64) float64 {
	return math.Erfc(-(x-d.Mu)/(d.Sigma*math.Sqrt2)) / 2
}

func (d Normal) Survival(x float64) float64 {
	return math.Erfc((x-d.Mu)/(d.Sigma*math.Sqrt2)) / 2
}

func (d Normal) InvCDF(p float64) float64 {
	checkProbability(p)
	switch p {
	case 0:
		return -inf
	case 1:
		return inf
	}
	return d.Mu + d.Sigma*mathext.NormalQuantile(p)
}

// InvSurvival uses the symmetry of the distribution to evaluate the
// quantile of p itself rather than of 1-p.
func (d Normal) InvSurvival(p float64) float64 {
	checkProbability(p)
	switch p {
	case 0:
		return inf
	case 1:
		return -inf
	}
	return d.Mu - d.Sigma*mathext.NormalQuantile(p)
}

func (d Normal) Mean() float64 { return d.Mu }

func (d Normal) Variance() float64 { return d.Sigma * d.Sigma }

func (d Normal) Support() Support {
	return Support{Lo: -inf, Hi: inf, Connected: true}
}

// Sampler returns a sampler using the Box-Muller transform rather
// than inversion.
func (d Normal) Sampler(src Source) Sampler {
	return normalSampler{dist: d, src: src}
}

type normalSampler struct {
	dist Normal
	src  Source
}

func (s normalSampler) Sample() float64 {
	// Box-Muller. Only the cosine variate of each pair is used, so
	// the sampler carries no state between calls.
	u1 := s.src.Float64()
	for u1 == 0 {
		u1 = s.src.Float64()
	}
	u2 := s.src.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return s.dist.Mu + s.dist.Sigma*z
}
