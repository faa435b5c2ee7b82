// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"github.com/mxgrey/crab-edu/base/errors"
	"github.com/mxgrey/crab-edu/math32"
)

// Sphere returns a UV sphere of the given radius centered on the origin,
// with segments divisions around the z axis and rings divisions from
// the top pole to the bottom pole. Texture coordinates run from (0, 0)
// at the top pole to (1, 1) at the bottom pole.
func Sphere(radius float32, segments, rings int) *Buffer {
	if segments < 3 || rings < 2 {
		return degenerate("Sphere", "segments", segments, "rings", rings)
	}
	nVtx := (segments + 1) * (rings + 1)
	positions := make([]math32.Vector3, 0, nVtx)
	normals := make([]math32.Vector3, 0, nVtx)
	uv := make([]math32.Vector2, 0, nVtx)
	for y := 0; y <= rings; y++ {
		v := float32(y) / float32(rings)
		st, ct := math32.Sincos(v * math32.Pi)
		for x := 0; x <= segments; x++ {
			u := float32(x) / float32(segments)
			sp, cp := math32.Sincos(u * math32.Tau)
			norm := math32.Vec3(st*cp, st*sp, ct)
			positions = append(positions, norm.MulScalar(radius))
			normals = append(normals, norm)
			uv = append(uv, math32.Vec2(u, v))
		}
	}

	row := uint32(segments + 1)
	indices := make([]uint32, 0, 6*segments*(rings-1))
	for y := uint32(0); y < uint32(rings); y++ {
		for x := uint32(0); x < uint32(segments); x++ {
			a := y*row + x
			b := a + 1
			c := a + row
			d := c + 1
			// triangles touching a pole collapse to a line
			if y != uint32(rings)-1 {
				indices = append(indices, a, c, d)
			}
			if y != 0 {
				indices = append(indices, a, d, b)
			}
		}
	}
	return errors.Must1(newBuffer(positions, normals, indices).WithUV(uv))
}
