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

func TestPoisson(t *testing.T) {
	d, err := NewPoisson(4)
	require.NoError(t, err)

	testIntFunc(t, "Poisson(4).PMF", d.PMF, map[int]float64{
		-1: 0,
		0:  math.Exp(-4),
		1:  4 * math.Exp(-4),
		2:  8 * math.Exp(-4),
		3:  32.0 / 3 * math.Exp(-4),
		10: 0.00529247667642,
	})
	testIntFunc(t, "Poisson(4).CDF", d.CDF, map[int]float64{
		-1: 0,
		0:  math.Exp(-4),
		1:  5 * math.Exp(-4),
	})

	checkDiscrete(t, "Poisson(4)", d, []int{0, 1, 2, 3, 4, 5, 8, 12, 20, 30})

	assert.Equal(t, 4.0, d.Mean())
	assert.Equal(t, 4.0, d.Variance())

	// A large mean exercises the Chebyshev seeding of the
	// discrete solver.
	d, err = NewPoisson(1e6)
	require.NoError(t, err)
	checkDiscrete(t, "Poisson(1e6)", d, []int{997000, 999000, 1000000, 1001000, 1003000})
}

func TestPoissonInvalidParameters(t *testing.T) {
	for _, lambda := range []float64{0, -4, math.NaN()} {
		_, err := NewPoisson(lambda)
		assert.ErrorIs(t, err, ErrParameter, "lambda=%v", lambda)
	}
}

// The survival function must resolve the deep upper tail that
// 1-CDF(k) cannot.
func TestPoissonTailPrecision(t *testing.T) {
	d, err := NewPoisson(1)
	require.NoError(t, err)

	sf := d.Survival(100)
	assert.Greater(t, sf, 0.0)
	assert.Less(t, sf, 1e-150)
	assert.Equal(t, 1.0, d.CDF(100))
	assert.Equal(t, 100, d.InvSurvival(sf))
}
