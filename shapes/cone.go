// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import "github.com/mxgrey/crab-edu/math32"

// Cone returns a smooth shaded cone from the given base circle to the
// peak, with resolution points around the base. The peak vertex is
// duplicated once per side so that each side gets its own normal at the
// tip. The peak may be above or below the circle; normals and winding
// always face away from the cone's axis.
func Cone(circle Circle, peak math32.Vector3, resolution int) *Buffer {
	if resolution < 2 {
		return degenerate("Cone", "resolution", resolution)
	}
	n := uint32(resolution)
	sampler := fullRing(resolution)
	positions := sampler.Sample(circle)[:resolution]
	for i := 0; i < resolution; i++ {
		positions = append(positions, peak)
	}

	h := peak.Z - circle.Height
	below := h < 0
	indices := make([]uint32, 0, 3*resolution)
	tri := func(a, b, c uint32) {
		if below {
			b, c = c, b
		}
		indices = append(indices, a, b, c)
	}
	for i := uint32(0); i < n-1; i++ {
		tri(i, i+1, n+i)
	}
	tri(n-1, 0, 2*n-1)

	normal := func(theta float32) math32.Vector3 {
		p := circle.Point(theta)
		r := math32.Vec3(p.X-peak.X, p.Y-peak.Y, 0).Length()
		phi := math32.Atan2(r, math32.Abs(h))
		if !below {
			phi = -phi
		}
		return slantNormal(theta, phi)
	}

	normals := make([]math32.Vector3, len(positions))
	for i := 0; i < resolution; i++ {
		normals[i] = normal(sampler.Angle(i))
		mid := (sampler.Angle(i) + sampler.Angle(i+1)) / 2
		normals[resolution+i] = normal(mid)
	}
	return newBuffer(positions, normals, indices)
}

// Pyramid returns a flat shaded pyramid from the given base circle to
// the peak, with the given number of sides. Each face gets its own
// normal, which faces outward whether the peak is above or below the
// base.
func Pyramid(circle Circle, peak math32.Vector3, segments int) *Buffer {
	if segments < 1 {
		return degenerate("Pyramid", "segments", segments)
	}
	s := uint32(segments)
	positions := Rings([]Circle{circle, circle}, segments+1, 0)
	for i := 0; i < segments; i++ {
		positions = append(positions, peak)
	}

	peakStart := 2*s + 2
	complementStart := s + 2
	below := peak.Z < circle.Height

	indices := make([]uint32, 0, 3*segments)
	normals := make([]math32.Vector3, len(positions))
	for i := uint32(0); i < s; i++ {
		v0 := i
		v1 := i + complementStart
		vp := i + peakStart
		if below {
			v1, vp = vp, v1
		}
		indices = append(indices, v0, v1, vp)
		n := math32.Normal(positions[v0], positions[v1], positions[vp])
		if n.IsNil() {
			n = math32.AxisZ
			if below {
				n = n.Negate()
			}
		}
		normals[v0] = n
		normals[v1] = n
		normals[vp] = n
	}
	// seam vertices that no face uses take their neighbor's normal
	normals[s] = normals[s-1]
	normals[s+1] = normals[s+2]

	return newBuffer(positions, normals, indices)
}

// Diamond returns two square pyramids joined at their bases in the
// z = 0 plane, with peaks at +tip and -tip and base corners at the
// given distance from the axis.
func Diamond(tip, width float32) *Buffer {
	base := Circle{Radius: width}
	peak := math32.Vec3(0, 0, tip)
	return Pyramid(base, peak, 4).
		MergeWith(Pyramid(base, peak, 4).TransformBy(math32.RotateX(math32.Pi)))
}
