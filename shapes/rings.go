// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import "github.com/mxgrey/crab-edu/math32"

// Circle is a horizontal ring: a circle of the given
// radius around the Z axis at the given height.
type Circle struct {
	Radius float32 `toml:"radius" yaml:"radius"`
	Height float32 `toml:"height" yaml:"height"`
}

// FlipHeight returns the circle mirrored through the z = 0 plane.
func (c Circle) FlipHeight() Circle {
	c.Height = -c.Height
	return c
}

// Point returns the point on the circle at the given angle.
func (c Circle) Point(theta float32) math32.Vector3 {
	s, co := math32.Sincos(theta)
	return math32.Vec3(c.Radius*co, c.Radius*s, c.Height)
}

// byHeight returns the two circles ordered bottom first.
func byHeight(circles [2]Circle) (bottom, top Circle) {
	if circles[0].Height < circles[1].Height {
		return circles[0], circles[1]
	}
	return circles[1], circles[0]
}

// Sampler places Count points on each sampled circle, evenly spaced
// from angle Start to angle Start+Span inclusive.
type Sampler struct {
	// Count is the number of points per circle.
	Count int

	// Start is the angle of the first point, in radians.
	Start float32

	// Span is the angle from the first to the last point, in radians.
	Span float32
}

// Angle returns the angle of the i'th point.
func (s Sampler) Angle(i int) float32 {
	if s.Count <= 1 {
		return s.Start
	}
	return s.Start + float32(i)/(float32(s.Count)-1)*s.Span
}

// Sample returns Count points for each circle, concatenated ring by ring.
// Passing the same circle twice duplicates its vertices, which is how
// flat shaded surfaces get independent normals per face.
func (s Sampler) Sample(circles ...Circle) []math32.Vector3 {
	if s.Count <= 0 {
		return []math32.Vector3{}
	}
	pts := make([]math32.Vector3, 0, s.Count*len(circles))
	for _, c := range circles {
		for i := 0; i < s.Count; i++ {
			pts = append(pts, c.Point(s.Angle(i)))
		}
	}
	return pts
}

// Rings returns n points per circle spread over a revolution minus gap
// radians, starting at angle 0. With gap = 0 the last point of each ring
// coincides with the first; a positive gap leaves an open arc.
func Rings(circles []Circle, n int, gap float32) []math32.Vector3 {
	return Sampler{Count: n, Span: math32.Tau - gap}.Sample(circles...)
}

// fullRing returns the sampler for n distinct points around a full
// revolution, with the closing point dropped.
func fullRing(n int) Sampler {
	return Sampler{Count: n + 1, Span: math32.Tau}
}
