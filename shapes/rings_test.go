// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"testing"

	"github.com/mxgrey/crab-edu/base/tolassert"
	"github.com/mxgrey/crab-edu/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// angleBetween returns the signed angle about z from a to b.
func angleBetween(a, b math32.Vector3) float32 {
	a.Z, b.Z = 0, 0
	return math32.Atan2(a.Cross(b).Z, a.Dot(b))
}

func TestRingsFirstPointAndStep(t *testing.T) {
	const n = 9
	c := Circle{Radius: 2.5, Height: -1}
	pts := Rings([]Circle{c}, n, 0)
	require.Len(t, pts, n)
	tolassert.EqualVector3(t, math32.Vec3(2.5, 0, -1), pts[0], 1e-6)
	for i := 0; i+1 < n; i++ {
		tolassert.EqualTol(t, math32.Tau/(n-1), angleBetween(pts[i], pts[i+1]), 1e-5)
		tolassert.EqualTol(t, -1, pts[i].Z, 1e-6)
	}
	tolassert.EqualVector3(t, pts[0], pts[n-1], 1e-5)
}

func TestRingsGap(t *testing.T) {
	pts := Rings([]Circle{{Radius: 1}}, 5, math32.Pi)
	require.Len(t, pts, 5)
	tolassert.EqualVector3(t, math32.Vec3(-1, 0, 0), pts[4], 1e-6)
	tolassert.EqualVector3(t, math32.Vec3(0, 1, 0), pts[2], 1e-6)
}

func TestRingsMultipleCircles(t *testing.T) {
	a := Circle{Radius: 1, Height: 0}
	b := Circle{Radius: 2, Height: 3}
	pts := Rings([]Circle{a, b, b}, 4, 0)
	require.Len(t, pts, 12)
	tolassert.EqualVector3(t, math32.Vec3(2, 0, 3), pts[4], 1e-6)
	for i := 0; i < 4; i++ {
		assert.Equal(t, pts[4+i], pts[8+i], "repeated circles duplicate their points")
	}
}

func TestRingsDegenerate(t *testing.T) {
	assert.Empty(t, Rings([]Circle{{Radius: 1}}, 0, 0))
	assert.Empty(t, Rings([]Circle{{Radius: 1}}, -3, 0))
	one := Rings([]Circle{{Radius: 1, Height: 2}, {Radius: 3}}, 1, 0)
	require.Len(t, one, 2)
	tolassert.EqualVector3(t, math32.Vec3(1, 0, 2), one[0], 1e-6)
	tolassert.EqualVector3(t, math32.Vec3(3, 0, 0), one[1], 1e-6)
}

func TestSampler(t *testing.T) {
	s := Sampler{Count: 3, Start: math32.Pi / 2, Span: math32.Pi}
	pts := s.Sample(Circle{Radius: 1})
	require.Len(t, pts, 3)
	tolassert.EqualVector3(t, math32.Vec3(0, 1, 0), pts[0], 1e-6)
	tolassert.EqualVector3(t, math32.Vec3(-1, 0, 0), pts[1], 1e-6)
	tolassert.EqualVector3(t, math32.Vec3(0, -1, 0), pts[2], 1e-6)

	full := fullRing(4)
	tolassert.EqualTol(t, math32.Pi/2, full.Angle(1), 1e-6)
	tolassert.EqualTol(t, math32.Tau, full.Angle(4), 1e-6)
}

func TestCircle(t *testing.T) {
	c := Circle{Radius: 1, Height: 2}
	assert.Equal(t, Circle{Radius: 1, Height: -2}, c.FlipHeight())
	lo, hi := byHeight([2]Circle{c, c.FlipHeight()})
	assert.Equal(t, float32(-2), lo.Height)
	assert.Equal(t, float32(2), hi.Height)
	tolassert.EqualVector3(t, math32.Vec3(0, 1, 2), c.Point(math32.Pi/2), 1e-6)
}
