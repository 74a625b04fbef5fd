// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	exprand "golang.org/x/exp/rand"
)

// A Source is an injected stream of uniform pseudorandom values. The
// package makes no assumption about the generator algorithm, only
// that its output is uniform. Both *math/rand.Rand and
// *golang.org/x/exp/rand.Rand satisfy Source.
//
// Thread safety of a Sampler equals that of its Source; the package
// never synchronizes access to it.
type Source interface {
	// Uint64 returns a uniform random value over all 64-bit
	// values.
	Uint64() uint64

	// Float64 returns a uniform random value in [0, 1).
	Float64() float64
}

// NewSource returns a seeded Source backed by golang.org/x/exp/rand.
// It is a convenience for callers that do not inject their own
// generator.
func NewSource(seed uint64) Source {
	return exprand.New(exprand.NewSource(seed))
}

// A Sampler draws variates from a distribution. Samplers are
// stateless wrappers around a distribution and a Source; successive
// calls are independent apart from the advancing Source.
type Sampler interface {
	// Sample returns the next variate.
	Sample() float64
}

// inversionSampler draws by inverting a uniform value through the
// distribution's quantile function. It is the default sampling
// strategy; distributions override it only when a specialized
// generator is faster, and any override must reproduce the same
// marginal distribution.
type inversionSampler struct {
	dist Continuous
	src  Source
}

func (s inversionSampler) Sample() float64 {
	return s.dist.InvCDF(s.src.Float64())
}

// A DiscreteSampler draws integer variates from a discrete
// distribution by inversion.
type DiscreteSampler struct {
	dist Discrete
	src  Source
}

// NewDiscreteSampler returns a sampler for d using uniform values
// from src.
func NewDiscreteSampler(d Discrete, src Source) DiscreteSampler {
	return DiscreteSampler{dist: d, src: src}
}

// Sample returns the next variate.
func (s DiscreteSampler) Sample() int {
	return s.dist.InvCDF(s.src.Float64())
}
