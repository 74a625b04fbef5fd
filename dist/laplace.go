// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// Laplace is a Laplace (double exponential) distribution with
// location Mu and scale Beta.
type Laplace struct {
	Mu, Beta float64

	// log2Beta is log(2*Beta), fixed at construction.
	log2Beta float64
}

// NewLaplace returns a Laplace distribution with location mu and
// scale beta. beta must be strictly positive.
func NewLaplace(mu, beta float64) (Laplace, error) {
	if err := checkStrictlyPositive("Beta", beta); err != nil {
		return Laplace{}, err
	}
	return Laplace{Mu: mu, Beta: beta, log2Beta: math.Log(2 * beta)}, nil
}

func (d Laplace) PDF(x float64) float64 {
	return math.Exp(-math.Abs(x-d.Mu)/d.Beta) / (2 * d.Beta)
}

func (d Laplace) LogPDF(x float64) float64 {
	return -math.Abs(x-d.Mu)/d.Beta - d.log2Beta
}

// CDF evaluates a single exponential on whichever side of Mu the
// argument falls, so the lower tail never passes through 1-SF.
func (d Laplace) CDF(x float64) float64 {
	if x <= d.Mu {
		return 0.5 * math.Exp((x-d.Mu)/d.Beta)
	}
	return 1 - 0.5*math.Exp((d.Mu-x)/d.Beta)
}

func (d Laplace) Survival(x float64) float64 {
	if x <= d.Mu {
		return 1 - 0.5*math.Exp((x-d.Mu)/d.Beta)
	}
	return 0.5 * math.Exp((d.Mu-x)/d.Beta)
}

func (d Laplace) InvCDF(p float64) float64 {
	checkProbability(p)
	switch p {
	case 0:
		return -inf
	case 1:
		return inf
	}
	t := math.Log(2 * p)
	if p > 0.5 {
		t = -math.Log(2 * (1 - p))
	}
	return d.Mu + d.Beta*t
}

// InvSurvival mirrors InvCDF around Mu.
func (d Laplace) InvSurvival(p float64) float64 {
	checkProbability(p)
	switch p {
	case 0:
		return inf
	case 1:
		return -inf
	}
	t := math.Log(2 * p)
	if p > 0.5 {
		t = -math.Log(2 * (1 - p))
	}
	return d.Mu - d.Beta*t
}

func (d Laplace) Mean() float64 { return d.Mu }

func (d Laplace) Variance() float64 { return 2 * d.Beta * d.Beta }

func (d Laplace) Support() Support {
	return Support{Lo: -inf, Hi: inf, Connected: true}
}

func (d Laplace) Sampler(src Source) Sampler {
	return inversionSampler{dist: d, src: src}
}
