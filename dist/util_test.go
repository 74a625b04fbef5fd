// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// releq returns whether got is within relative tolerance eps of
// expect, treating equal infinities as equal.
func releq(expect, got, eps float64) bool {
	if expect == got {
		return true
	}
	return math.Abs(expect-got) <= eps*math.Abs(expect)
}

// testFunc checks f against a table of expected values.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for x, want := range vals {
		if got := f(x); !aeq(want, got) {
			t.Errorf("want %s(%v) = %v, got %v", name, x, want, got)
		}
	}
}

// testIntFunc checks a discrete f against a table of expected values.
func testIntFunc(t *testing.T, name string, f func(int) float64, vals map[int]float64) {
	t.Helper()
	for k, want := range vals {
		if got := f(k); !aeq(want, got) {
			t.Errorf("want %s(%v) = %v, got %v", name, k, want, got)
		}
	}
}

// checkContinuous runs the shared contract checks for a continuous
// distribution over a sorted grid of in-support points: densities are
// non-negative, probabilities stay in [0, 1] and complement each
// other, the CDF is non-decreasing, the log density agrees with the
// density where the density does not underflow, and the quantile
// functions invert the probability functions.
func checkContinuous(t *testing.T, name string, d Continuous, xs []float64) {
	t.Helper()

	sup := d.Support()
	if got := d.InvCDF(0); got != sup.Lo {
		t.Errorf("%s: want InvCDF(0) = %v, got %v", name, sup.Lo, got)
	}
	if got := d.InvCDF(1); got != sup.Hi {
		t.Errorf("%s: want InvCDF(1) = %v, got %v", name, sup.Hi, got)
	}
	if got := d.InvSurvival(0); got != sup.Hi {
		t.Errorf("%s: want InvSurvival(0) = %v, got %v", name, sup.Hi, got)
	}
	if got := d.InvSurvival(1); got != sup.Lo {
		t.Errorf("%s: want InvSurvival(1) = %v, got %v", name, sup.Lo, got)
	}

	lastCDF := 0.0
	for _, x := range xs {
		pdf, logPDF := d.PDF(x), d.LogPDF(x)
		cdf, sf := d.CDF(x), d.Survival(x)

		if pdf < 0 || math.IsNaN(pdf) {
			t.Errorf("%s: PDF(%v) = %v, want >= 0", name, x, pdf)
		}
		if cdf < 0 || cdf > 1 || math.IsNaN(cdf) {
			t.Errorf("%s: CDF(%v) = %v, want in [0, 1]", name, x, cdf)
		}
		if sf < 0 || sf > 1 || math.IsNaN(sf) {
			t.Errorf("%s: Survival(%v) = %v, want in [0, 1]", name, x, sf)
		}
		if sum := cdf + sf; math.Abs(sum-1) > 1e-10 {
			t.Errorf("%s: CDF(%v) + Survival(%v) = %v, want 1", name, x, x, sum)
		}
		if cdf < lastCDF {
			t.Errorf("%s: CDF(%v) = %v decreased below %v", name, x, cdf, lastCDF)
		}
		lastCDF = cdf

		if pdf > 0 && !math.IsInf(logPDF, 0) {
			if want := math.Log(pdf); math.Abs(want-logPDF) > 1e-9*(1+math.Abs(want)) {
				t.Errorf("%s: LogPDF(%v) = %v, want %v", name, x, logPDF, want)
			}
		}

		if 0 < cdf && cdf < 1 {
			if got := d.InvCDF(cdf); math.Abs(got-x) > 1e-6*math.Max(1, math.Abs(x)) {
				t.Errorf("%s: InvCDF(CDF(%v)) = %v", name, x, got)
			}
		}
		if 0 < sf && sf < 1 {
			if got := d.InvSurvival(sf); math.Abs(got-x) > 1e-6*math.Max(1, math.Abs(x)) {
				t.Errorf("%s: InvSurvival(Survival(%v)) = %v", name, x, got)
			}
		}
	}
}

// checkDiscrete is the discrete counterpart of checkContinuous. The
// quantile round trip is checked exactly: InvCDF(CDF(k)) must
// recover k wherever the mass at k is positive.
func checkDiscrete(t *testing.T, name string, d Discrete, ks []int) {
	t.Helper()

	sup := d.Support()
	if got := d.InvCDF(0); got != sup.Lo {
		t.Errorf("%s: want InvCDF(0) = %v, got %v", name, sup.Lo, got)
	}
	if got := d.InvCDF(1); got != sup.Hi {
		t.Errorf("%s: want InvCDF(1) = %v, got %v", name, sup.Hi, got)
	}
	if got := d.InvSurvival(0); got != sup.Hi {
		t.Errorf("%s: want InvSurvival(0) = %v, got %v", name, sup.Hi, got)
	}
	if got := d.InvSurvival(1); got != sup.Lo {
		t.Errorf("%s: want InvSurvival(1) = %v, got %v", name, sup.Lo, got)
	}

	lastCDF := 0.0
	for _, k := range ks {
		pmf, logPMF := d.PMF(k), d.LogPMF(k)
		cdf, sf := d.CDF(k), d.Survival(k)

		if pmf < 0 || pmf > 1 || math.IsNaN(pmf) {
			t.Errorf("%s: PMF(%v) = %v, want in [0, 1]", name, k, pmf)
		}
		if cdf < 0 || cdf > 1 || math.IsNaN(cdf) {
			t.Errorf("%s: CDF(%v) = %v, want in [0, 1]", name, k, cdf)
		}
		if sum := cdf + sf; math.Abs(sum-1) > 1e-10 {
			t.Errorf("%s: CDF(%v) + Survival(%v) = %v, want 1", name, k, k, sum)
		}
		if cdf < lastCDF {
			t.Errorf("%s: CDF(%v) = %v decreased below %v", name, k, cdf, lastCDF)
		}
		lastCDF = cdf

		if pmf > 0 && !math.IsInf(logPMF, 0) {
			if want := math.Log(pmf); math.Abs(want-logPMF) > 1e-9*(1+math.Abs(want)) {
				t.Errorf("%s: LogPMF(%v) = %v, want %v", name, k, logPMF, want)
			}
		}
		if want := d.CDF(k) - d.CDF(k-1); math.Abs(want-pmf) > 1e-10 {
			t.Errorf("%s: CDF(%v)-CDF(%v) = %v, want PMF %v", name, k, k-1, want, pmf)
		}

		if pmf > 0 && 0 < cdf && cdf < 1 {
			if got := d.InvCDF(cdf); got != k {
				t.Errorf("%s: InvCDF(CDF(%v)) = %v", name, k, got)
			}
		}
		if pmf > 0 && 0 < sf && sf < 1 {
			if got := d.InvSurvival(sf); got != k {
				t.Errorf("%s: InvSurvival(Survival(%v)) = %v", name, k, got)
			}
		}
	}
}

// mustPanicDomain asserts that f panics with a *DomainError.
func mustPanicDomain(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		err, ok := recover().(error)
		if !ok {
			t.Errorf("%s: want *DomainError panic, got none", name)
			return
		}
		if _, ok := err.(*DomainError); !ok {
			t.Errorf("%s: want *DomainError panic, got %v", name, err)
		}
	}()
	f()
}
