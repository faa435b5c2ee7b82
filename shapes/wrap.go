// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import "github.com/mxgrey/crab-edu/math32"

// BoxyWrap returns a flat shaded band connecting two circles with the
// given number of segments. Each quad gets its own normal, giving a
// low-poly faceted look. The circles may be given in either order.
func BoxyWrap(circles [2]Circle, segments int) *Buffer {
	if segments < 1 {
		return degenerate("BoxyWrap", "segments", segments)
	}
	bottom, top := byHeight(circles)
	s := uint32(segments)

	// rings: bottom, bottom copy, top, top copy; each quad uses one
	// ring and its copy per edge so that no vertex is shared by two quads
	positions := Rings([]Circle{bottom, bottom, top, top}, segments+1, 0)

	indices := make([]uint32, 0, 6*segments)
	for i := uint32(0); i < s; i++ {
		indices = append(indices, i, i+3*s+4, i+2*s+2, i, i+s+2, i+3*s+4)
	}

	normals := make([]math32.Vector3, len(positions))
	sampler := Sampler{Count: segments + 1, Span: math32.Tau}
	for i := uint32(0); i < s; i++ {
		v0 := i
		v1 := i + 3*s + 4
		v2 := i + 2*s + 2
		v3 := i + s + 2
		n := math32.Normal(positions[v0], positions[v1], positions[v2])
		if n.IsNil() {
			mid := (sampler.Angle(int(i)) + sampler.Angle(int(i)+1)) / 2
			n = radial(mid)
		}
		normals[v0] = n
		normals[v1] = n
		normals[v2] = n
		normals[v3] = n
	}
	// seam vertices that no quad uses take their neighbor's normal
	normals[s] = normals[s-1]
	normals[s+1] = normals[s+2]
	normals[3*s+2] = normals[3*s+1]
	normals[3*s+3] = normals[3*s+4]

	return newBuffer(positions, normals, indices)
}

// SmoothWrap returns a smooth shaded band connecting two circles with
// resolution points per ring. Normals come from the slant between the
// circles, rotated to each vertex's azimuth, so they are correct for
// cylinders, cones and tapers regardless of the triangulation.
// The circles may be given in either order.
func SmoothWrap(circles [2]Circle, resolution int) *Buffer {
	if resolution < 2 {
		return degenerate("SmoothWrap", "resolution", resolution)
	}
	bottom, top := byHeight(circles)
	sampler := Sampler{Count: resolution, Span: math32.Tau}
	positions := sampler.Sample(bottom, top)

	r := uint32(resolution)
	indices := make([]uint32, 0, 6*(resolution-1))
	for i := uint32(0); i < r-1; i++ {
		indices = append(indices, i, i+1, r+i+1, i, r+i+1, r+i)
	}

	phi := math32.Atan2(top.Radius-bottom.Radius, top.Height-bottom.Height)
	normals := make([]math32.Vector3, len(positions))
	for i := 0; i < resolution; i++ {
		n := slantNormal(sampler.Angle(i), phi)
		normals[i] = n
		normals[resolution+i] = n
	}
	return newBuffer(positions, normals, indices)
}

// slantNormal returns the X axis rotated by phi about Y and then by
// theta about Z: the outward normal at azimuth theta of a surface of
// revolution whose profile makes angle phi with the Z axis.
func slantNormal(theta, phi float32) math32.Vector3 {
	return math32.RotateZ(theta).Mul(math32.RotateY(phi)).MulVector(math32.AxisX)
}

// radial returns the horizontal unit vector at azimuth theta.
func radial(theta float32) math32.Vector3 {
	s, c := math32.Sincos(theta)
	return math32.Vec3(c, s, 0)
}
