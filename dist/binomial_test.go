// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinomial(t *testing.T) {
	d, err := NewBinomial(10, 0.5)
	require.NoError(t, err)

	testIntFunc(t, "Binomial(10,0.5).PMF", d.PMF, map[int]float64{
		-1: 0,
		0:  1.0 / 1024,
		1:  10.0 / 1024,
		5:  252.0 / 1024,
		10: 1.0 / 1024,
		11: 0,
	})
	testIntFunc(t, "Binomial(10,0.5).CDF", d.CDF, map[int]float64{
		-1: 0,
		0:  1.0 / 1024,
		5:  638.0 / 1024,
		10: 1,
	})

	checkDiscrete(t, "Binomial(10,0.5)", d, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	assert.Equal(t, 5.0, d.Mean())
	assert.Equal(t, 2.5, d.Variance())

	d, err = NewBinomial(40, 0.1)
	require.NoError(t, err)
	checkDiscrete(t, "Binomial(40,0.1)", d, []int{0, 1, 2, 4, 6, 10, 15})
}

func TestBinomialDegenerate(t *testing.T) {
	d, err := NewBinomial(5, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.PMF(0))
	assert.Equal(t, 0.0, d.PMF(1))
	assert.Equal(t, 1.0, d.CDF(0))
	assert.Equal(t, 0.0, d.Mean())

	d, err = NewBinomial(5, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d.PMF(5))
	assert.Equal(t, 0.0, d.PMF(4))
	assert.Equal(t, 0.0, d.CDF(4))
	assert.Equal(t, 1.0, d.CDF(5))
}

func TestBinomialInvalidParameters(t *testing.T) {
	_, err := NewBinomial(-1, 0.5)
	assert.ErrorIs(t, err, ErrParameter)
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := NewBinomial(10, p)
		assert.ErrorIs(t, err, ErrParameter, "p=%v", p)
	}
}

// The regularized incomplete beta tails stay accurate where naive
// summation of PMF terms loses everything to cancellation.
func TestBinomialTailPrecision(t *testing.T) {
	d, err := NewBinomial(1000, 0.5)
	require.NoError(t, err)

	sf := d.Survival(800)
	assert.Greater(t, sf, 0.0)
	assert.Less(t, sf, 1e-80)
	cdf := d.CDF(199)
	assert.Greater(t, cdf, 0.0)
	assert.Less(t, cdf, 1e-80)
	// The two tails are mirror images at p = 1/2.
	assert.InEpsilon(t, sf, cdf, 1e-12)

	assert.Equal(t, 800, d.InvSurvival(sf))
}
