// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// Uniform is a continuous uniform distribution on [Lo, Hi].
type Uniform struct {
	Lo, Hi float64
}

// NewUniform returns a uniform distribution on [lo, hi]. The bounds
// must be finite with lo < hi.
func NewUniform(lo, hi float64) (Uniform, error) {
	if !isFinite(lo) {
		return Uniform{}, &ParameterError{Param: "Lo", Value: lo, Constraint: consFinite}
	}
	if !isFinite(hi) {
		return Uniform{}, &ParameterError{Param: "Hi", Value: hi, Constraint: consFinite}
	}
	if hi <= lo {
		return Uniform{}, &ParameterError{Param: "Hi", Value: hi, Constraint: "must be greater than Lo"}
	}
	return Uniform{Lo: lo, Hi: hi}, nil
}

func (d Uniform) PDF(x float64) float64 {
	if x < d.Lo || x > d.Hi {
		return 0
	}
	return 1 / (d.Hi - d.Lo)
}

func (d Uniform) LogPDF(x float64) float64 {
	if x < d.Lo || x > d.Hi {
		return -inf
	}
	return -math.Log(d.Hi - d.Lo)
}

func (d Uniform) CDF(x float64) float64 {
	if x <= d.Lo {
		return 0
	}
	if x >= d.Hi {
		return 1
	}
	return (x - d.Lo) / (d.Hi - d.Lo)
}

// Survival measures from the upper bound directly, so values near Hi
// keep full relative precision.
func (d Uniform) Survival(x float64) float64 {
	if x <= d.Lo {
		return 1
	}
	if x >= d.Hi {
		return 0
	}
	return (d.Hi - x) / (d.Hi - d.Lo)
}

func (d Uniform) InvCDF(p float64) float64 {
	checkProbability(p)
	return clamp(d.Lo+p*(d.Hi-d.Lo), d.Lo, d.Hi)
}

func (d Uniform) InvSurvival(p float64) float64 {
	checkProbability(p)
	return clamp(d.Hi-p*(d.Hi-d.Lo), d.Lo, d.Hi)
}

func (d Uniform) Mean() float64 { return d.Lo/2 + d.Hi/2 }

func (d Uniform) Variance() float64 {
	w := d.Hi - d.Lo
	return w * w / 12
}

func (d Uniform) Support() Support {
	return Support{Lo: d.Lo, Hi: d.Hi, Connected: true}
}

func (d Uniform) Sampler(src Source) Sampler {
	return inversionSampler{dist: d, src: src}
}
