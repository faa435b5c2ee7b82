// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"github.com/mxgrey/crab-edu/base/errors"
	"github.com/mxgrey/crab-edu/math32"
)

// upNormals returns n copies of +z.
func upNormals(n int) []math32.Vector3 {
	normals := make([]math32.Vector3, n)
	for i := range normals {
		normals[i] = math32.AxisZ
	}
	return normals
}

// yawTo returns the rotation about z that turns +x toward v.
func yawTo(v math32.Vector3) math32.Quat {
	return math32.NewQuatAxisAngle(math32.AxisZ, math32.Atan2(v.Y, v.X))
}

// FlatArc is a flat annulus sector in the z = 0 plane: the region
// between two concentric circles over an angular sweep.
type FlatArc struct {

	// Pivot is the center of the circles.
	Pivot math32.Vector3

	// OuterRadius is the radius of the outer edge.
	OuterRadius float32

	// InnerThickness is the distance from the outer edge to the inner edge.
	InnerThickness float32

	// InitialAngle is where the sweep starts, in radians counter-clockwise
	// from +x.
	InitialAngle float32

	// Sweep is the angle covered, in radians. A negative sweep runs
	// clockwise from the initial angle.
	Sweep float32

	// VerticesPerDegree sets the number of points along each edge.
	VerticesPerDegree float32
}

// Defaults sets default values for the arc.
func (a *FlatArc) Defaults() {
	a.OuterRadius = 1
	a.InnerThickness = 0.1
	a.Sweep = math32.Pi / 2
	a.VerticesPerDegree = 1
}

// Build returns the arc mesh. Each edge has one point per 1/VerticesPerDegree
// degrees of sweep; fewer than two points give an empty buffer.
func (a *FlatArc) Build() *Buffer {
	start, sweep := a.InitialAngle, a.Sweep
	if sweep < 0 {
		start += sweep
		sweep = -sweep
	}
	res := int(math32.RadToDeg(sweep) * a.VerticesPerDegree)
	if res < 2 {
		return degenerate("Arc", "sweep", a.Sweep, "vertices_per_degree", a.VerticesPerDegree)
	}

	inner := Circle{Radius: a.OuterRadius - a.InnerThickness}
	outer := Circle{Radius: a.OuterRadius}
	positions := Sampler{Count: res, Span: sweep}.Sample(inner, outer)

	r := uint32(res)
	indices := make([]uint32, 0, 6*(res-1))
	for seg := uint32(0); seg < r-1; seg++ {
		indices = append(indices, seg, r+seg, r+seg+1, seg, r+seg+1, seg+1)
	}
	tf := math32.RotationTranslation(math32.NewQuatAxisAngle(math32.AxisZ, start), a.Pivot)
	return newBuffer(positions, upNormals(len(positions)), indices).TransformBy(tf)
}

// Arc returns the mesh of a [FlatArc].
func Arc(pivot math32.Vector3, outerRadius, innerThickness, initialAngle, sweep, verticesPerDegree float32) *Buffer {
	a := FlatArc{Pivot: pivot, OuterRadius: outerRadius, InnerThickness: innerThickness,
		InitialAngle: initialAngle, Sweep: sweep, VerticesPerDegree: verticesPerDegree}
	return a.Build()
}

// LineStroke returns a flat rectangle in the z = 0 plane of the given
// thickness running from start to end. A stroke without length or
// thickness gives an empty buffer.
func LineStroke(start, end math32.Vector3, thickness float32) *Buffer {
	positions := []math32.Vector3{
		{-0.5, -0.5, 0},
		{0.5, -0.5, 0},
		{0.5, 0.5, 0},
		{-0.5, 0.5, 0},
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}

	dp := end.Sub(start)
	length := dp.Length()
	if length == 0 || thickness == 0 {
		return degenerate("LineStroke", "length", length, "thickness", thickness)
	}
	center := start.Add(end).MulScalar(0.5)
	tf := math32.ScaleRotationTranslation(math32.Vec3(length, thickness, 1), yawTo(dp), center)
	return newBuffer(positions, upNormals(len(positions)), indices).TransformBy(tf)
}

// LineStrokeAwayFrom returns a [LineStroke] of the given length leaving
// start in the direction given in radians counter-clockwise from +x.
func LineStrokeAwayFrom(start math32.Vector3, direction, length, thickness float32) *Buffer {
	end := start.Add(math32.RotateZ(direction).MulVector(math32.Vec3(length, 0, 0)))
	return LineStroke(start, end, thickness)
}

// FlatRect returns a double sided rectangle in the z = 0 plane centered
// on the origin. The front faces +z and the back faces -z; both sides
// map the full texture.
func FlatRect(x, y float32) *Buffer {
	hx, hy := x/2, y/2
	corners := []math32.Vector3{{-hx, -hy, 0}, {hx, -hy, 0}, {hx, hy, 0}, {-hx, hy, 0}}
	positions := append(corners, corners...)
	normals := upNormals(8)
	for i := 4; i < 8; i++ {
		normals[i] = math32.AxisZ.Negate()
	}
	indices := []uint32{0, 1, 2, 0, 2, 3, 4, 6, 5, 4, 7, 6}
	uv := []math32.Vector2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}
	uv = append(uv, uv...)
	return errors.Must1(newBuffer(positions, normals, indices).WithUV(uv))
}

// FlatSquare returns a [FlatRect] with equal sides.
func FlatSquare(extent float32) *Buffer {
	return FlatRect(extent, extent)
}

// FlatPatchForBox returns a [FlatRect] covering the x and y extents of
// the box, centered on the box.
func FlatPatchForBox(box math32.Box3) *Buffer {
	size := box.HalfExtents().MulScalar(2)
	return FlatRect(size.X, size.Y).TransformBy(math32.Translate3(box.Center()))
}
