// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is. The typed errors below wrap
// these, so a caller can match a whole category without inspecting
// the concrete type.
var (
	// ErrParameter indicates a distribution parameter outside its
	// domain constraint. Only returned by NewXxx factories; query
	// operations never produce it.
	ErrParameter = errors.New("dist: invalid distribution parameter")

	// ErrDomain indicates a probability argument outside [0, 1].
	ErrDomain = errors.New("dist: probability out of range [0, 1]")

	// ErrConvergence indicates that the quantile search exhausted
	// its iteration cap. It signals a numerical-robustness defect,
	// not a recoverable input condition.
	ErrConvergence = errors.New("dist: quantile search failed to converge")
)

// A ParameterError describes a constructor argument that violates its
// domain constraint.
type ParameterError struct {
	Param      string  // parameter name, e.g. "Sigma"
	Value      float64 // the offending value
	Constraint string  // the violated constraint, e.g. "must be strictly positive"
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("dist: parameter %s = %v %s", e.Param, e.Value, e.Constraint)
}

func (e *ParameterError) Unwrap() error { return ErrParameter }

// A DomainError describes a probability argument to a quantile
// function that lies outside [0, 1]. Quantile functions panic with a
// *DomainError rather than returning it; the probability argument is
// a programmer error, like an out-of-range slice index.
type DomainError struct {
	P float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("dist: probability %v out of range [0, 1]", e.P)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// A ConvergenceError reports that the generic quantile solver reached
// its iteration cap without satisfying its tolerance.
type ConvergenceError struct {
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("dist: quantile search did not converge after %d iterations", e.Iterations)
}

func (e *ConvergenceError) Unwrap() error { return ErrConvergence }

// Constraint messages shared by the factories. Validation is
// fail-fast: factories report the first violated constraint.
const (
	consStrictlyPositive = "must be strictly positive"
	consNotNegative      = "must not be negative"
	consProbability      = "must be a probability in [0, 1]"
	consProbabilityExcl0 = "must be a probability in (0, 1]"
	consFinite           = "must be finite"
)

func errStrictlyPositive(param string, v float64) error {
	return &ParameterError{Param: param, Value: v, Constraint: consStrictlyPositive}
}

// checkStrictlyPositive returns nil if v > 0. NaN fails the check.
func checkStrictlyPositive(param string, v float64) error {
	if v > 0 {
		return nil
	}
	return errStrictlyPositive(param, v)
}

// checkProbabilityParam returns nil if v is a probability in [0, 1].
func checkProbabilityParam(param string, v float64) error {
	if 0 <= v && v <= 1 {
		return nil
	}
	return &ParameterError{Param: param, Value: v, Constraint: consProbability}
}

// checkProbability validates a probability argument to a quantile
// function, panicking with a *DomainError if p is outside [0, 1].
func checkProbability(p float64) {
	if !(0 <= p && p <= 1) {
		panic(&DomainError{P: p})
	}
}
