// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Beta is a beta distribution on [0, 1] with shape parameters Alpha
// and Beta.
type Beta struct {
	// Alpha and Beta are both strictly positive.
	Alpha, Beta float64

	// logBeta is log B(Alpha, Beta), fixed at construction.
	logBeta float64
}

// NewBeta returns a beta distribution with the given shape
// parameters, both of which must be strictly positive.
func NewBeta(alpha, beta float64) (Beta, error) {
	if err := checkStrictlyPositive("Alpha", alpha); err != nil {
		return Beta{}, err
	}
	if err := checkStrictlyPositive("Beta", beta); err != nil {
		return Beta{}, err
	}
	return Beta{
		Alpha:   alpha,
		Beta:    beta,
		logBeta: lgamma(alpha) + lgamma(beta) - lgamma(alpha+beta),
	}, nil
}

func (d Beta) PDF(x float64) float64 {
	return math.Exp(d.LogPDF(x))
}

// LogPDF special-cases the support boundaries: for a shape parameter
// below 1 the density diverges at the corresponding edge, and the log
// density is +Inf there even though the x^(alpha-1) power in the
// direct formula can collapse to a finite artifact.
func (d Beta) LogPDF(x float64) float64 {
	if x < 0 || x > 1 {
		return -inf
	}
	if x == 0 {
		switch {
		case d.Alpha < 1:
			return inf
		case d.Alpha == 1:
			return -d.logBeta
		}
		return -inf
	}
	if x == 1 {
		switch {
		case d.Beta < 1:
			return inf
		case d.Beta == 1:
			return -d.logBeta
		}
		return -inf
	}
	return (d.Alpha-1)*math.Log(x) + (d.Beta-1)*math.Log1p(-x) - d.logBeta
}

func (d Beta) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return mathext.RegIncBeta(d.Alpha, d.Beta, x)
}

// Survival uses the symmetry I_x(a,b) = 1 - I_{1-x}(b,a) to evaluate
// the upper tail directly, where the regularized incomplete beta is
// accurate for small results.
func (d Beta) Survival(x float64) float64 {
	if x <= 0 {
		return 1
	}
	if x >= 1 {
		return 0
	}
	return mathext.RegIncBeta(d.Beta, d.Alpha, 1-x)
}

// InvCDF has no closed form; it delegates to the generic bisection
// solver.
func (d Beta) InvCDF(p float64) float64 {
	return invertCDF(d, p)
}

func (d Beta) InvSurvival(p float64) float64 {
	return invertSurvival(d, p)
}

func (d Beta) Mean() float64 {
	return d.Alpha / (d.Alpha + d.Beta)
}

func (d Beta) Variance() float64 {
	ab := d.Alpha + d.Beta
	return d.Alpha * d.Beta / (ab * ab * (ab + 1))
}

func (d Beta) Support() Support {
	return Support{Lo: 0, Hi: 1, Connected: true}
}

func (d Beta) Sampler(src Source) Sampler {
	return inversionSampler{dist: d, src: src}
}
