// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Each factory must store its parameters unchanged in the exported
// fields, so callers can read back exactly what they constructed with.
func TestParameterAccessors(t *testing.T) {
	n, err := NewNormal(1.25, 0.75)
	require.NoError(t, err)
	assert.Equal(t, 1.25, n.Mu)
	assert.Equal(t, 0.75, n.Sigma)

	e, err := NewExponential(3.5)
	require.NoError(t, err)
	assert.Equal(t, 3.5, e.Mu)

	g, err := NewGamma(2.5, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, g.Shape)
	assert.Equal(t, 1.5, g.Scale)

	b, err := NewBeta(0.5, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.5, b.Alpha)
	assert.Equal(t, 3.0, b.Beta)

	l, err := NewLaplace(-1, 2)
	require.NoError(t, err)
	assert.Equal(t, -1.0, l.Mu)
	assert.Equal(t, 2.0, l.Beta)

	ln, err := NewLogNormal(0.5, 1.25)
	require.NoError(t, err)
	assert.Equal(t, 0.5, ln.Mu)
	assert.Equal(t, 1.25, ln.Sigma)

	u, err := NewUniform(-2, 5)
	require.NoError(t, err)
	assert.Equal(t, -2.0, u.Lo)
	assert.Equal(t, 5.0, u.Hi)

	st, err := NewStudentsT(4.5)
	require.NoError(t, err)
	assert.Equal(t, 4.5, st.DF)

	geo, err := NewGeometric(0.125)
	require.NoError(t, err)
	assert.Equal(t, 0.125, geo.P)

	bin, err := NewBinomial(20, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 20, bin.N)
	assert.Equal(t, 0.25, bin.P)

	pois, err := NewPoisson(6.5)
	require.NoError(t, err)
	assert.Equal(t, 6.5, pois.Lambda)

	ui, err := NewUniformInt(3, 9)
	require.NoError(t, err)
	assert.Equal(t, 3, ui.Lo)
	assert.Equal(t, 9, ui.Hi)
}

// The value types satisfy the distribution interfaces.
var (
	_ Continuous = Normal{}
	_ Continuous = Exponential{}
	_ Continuous = Gamma{}
	_ Continuous = Beta{}
	_ Continuous = Laplace{}
	_ Continuous = LogNormal{}
	_ Continuous = Uniform{}
	_ Continuous = StudentsT{}
	_ Discrete   = Geometric{}
	_ Discrete   = Binomial{}
	_ Discrete   = Poisson{}
	_ Discrete   = UniformInt{}
)
