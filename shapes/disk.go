// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import "github.com/mxgrey/crab-edu/math32"

// CylinderResolution is the number of points around the rings of a
// [Cylinder] and of the parts of a [CylinderArrow].
const CylinderResolution = 32

// disk returns a fan of resolution ring points around a center point,
// all with the given normal. The fan faces up unless down is set.
// The ring keeps its closing vertex, so the rim matches the rings of a
// [SmoothWrap] with the same resolution.
func disk(shape string, circle Circle, resolution int, down bool) *Buffer {
	if resolution < 3 {
		return degenerate(shape, "resolution", resolution)
	}
	positions := Sampler{Count: resolution, Span: math32.Tau}.Sample(circle)
	positions = append(positions, math32.Vec3(0, 0, circle.Height))

	center := uint32(resolution)
	indices := make([]uint32, 0, 3*resolution)
	for i := uint32(0); i < center; i++ {
		next := (i + 1) % center
		if down {
			indices = append(indices, i, center, next)
		} else {
			indices = append(indices, i, next, center)
		}
	}

	normal := math32.AxisZ
	if down {
		normal = normal.Negate()
	}
	normals := make([]math32.Vector3, len(positions))
	for i := range normals {
		normals[i] = normal
	}
	return newBuffer(positions, normals, indices)
}

// TopDisk returns a disk filling the circle, facing +z.
func TopDisk(circle Circle, resolution int) *Buffer {
	return disk("TopDisk", circle, resolution, false)
}

// BottomDisk returns a disk filling the circle, facing -z.
func BottomDisk(circle Circle, resolution int) *Buffer {
	return disk("BottomDisk", circle, resolution, true)
}

// FlatDisk returns a double sided disk of zero thickness.
func FlatDisk(circle Circle, resolution int) *Buffer {
	return TopDisk(circle, resolution).MergeWith(BottomDisk(circle, resolution))
}

// Cylinder returns a closed cylinder of the given height and radius,
// centered on the origin with its axis along z.
func Cylinder(height, radius float32) *Buffer {
	return CylinderWithResolution(height, radius, CylinderResolution)
}

// CylinderWithResolution is [Cylinder] with a given number of points
// around each ring.
func CylinderWithResolution(height, radius float32, resolution int) *Buffer {
	top := Circle{Radius: radius, Height: height / 2}
	mid := Circle{Radius: radius}
	bottom := top.FlipHeight()

	// the top cap is a bottom cap flipped over
	flip := math32.Translate3(math32.Vec3(0, 0, height/2)).Mul(math32.RotateX(math32.Pi))
	return SmoothWrap([2]Circle{top, bottom}, resolution).
		MergeWith(BottomDisk(mid, resolution).TransformBy(math32.Translate3(math32.Vec3(0, 0, -height/2)))).
		MergeWith(BottomDisk(mid, resolution).TransformBy(flip))
}
