// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers and vectors with tolerance.
package tolassert

import (
	"github.com/mxgrey/crab-edu/math32"
	"github.com/stretchr/testify/assert"
)

// DefaultTol is the tolerance used by [Equal] and the vector helpers
// when none is given.
const DefaultTol = float32(1.0e-5)

// Equal asserts that the given two numbers are equal with the default tolerance.
func Equal(t assert.TestingT, expected, actual float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, DefaultTol, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are equal with the given tolerance.
func EqualTol(t assert.TestingT, expected, actual, tol float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, expected, actual, float64(tol), msgAndArgs...)
}

// EqualVector3 asserts that the given two vectors are equal component-wise
// with the given tolerance.
func EqualVector3(t assert.TestingT, expected, actual math32.Vector3, tol float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if expected.IsEqualTol(actual, tol) {
		return true
	}
	return assert.Fail(t, "vectors not equal within tolerance",
		append([]any{"expected %v, actual %v (tol %g)", expected, actual, tol}, msgAndArgs...)...)
}

// UnitLength asserts that the given vector has unit length within tolerance.
func UnitLength(t assert.TestingT, v math32.Vector3, tol float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, 1, v.Length(), tol, msgAndArgs...)
}
