// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"github.com/mxgrey/crab-edu/base/errors"
	"github.com/mxgrey/crab-edu/math32"
	"github.com/mxgrey/crab-edu/mesh"
)

// CylinderArrow returns a three dimensional arrow mesh pointing along +x
// from the origin: a sphere of radius r marks the pivot, a shaft of
// radius r runs to a cone head of radius 2r whose tip is at 8r.
func CylinderArrow(r float32) *mesh.Mesh {
	length := 8 * r
	headLength := 2.5 * r
	headBase := Circle{Radius: 2 * r, Height: length - headLength}
	shaftTop := Circle{Radius: r, Height: length - headLength}
	shaftBottom := Circle{Radius: r}
	tip := math32.Vec3(0, 0, length)

	m := Sphere(r, CylinderResolution, CylinderResolution/2).IntoMesh()
	m.Name = "arrow"
	m.RemoveAttribute(mesh.UV0)

	// the parts are built along +z and laid down onto +x
	toX := math32.RotateY(math32.DegToRad(90))
	parts := []*Buffer{
		Cone(headBase, tip, CylinderResolution),
		SmoothWrap([2]Circle{shaftTop, shaftBottom}, CylinderResolution),
		SmoothWrap([2]Circle{headBase, shaftTop}, CylinderResolution),
	}
	for _, p := range parts {
		errors.Must(p.TransformBy(toX).MergeInto(m))
	}
	return m
}

// FlatArrow returns a dart shaped arrow in the z = 0 plane pointing
// along +x from the origin: a rectangular handle followed by a
// triangular tip whose point is at handleLength + tipLength.
func FlatArrow(handleLength, handleWidth, tipLength, tipWidth float32) *Buffer {
	hw := handleWidth / 2
	tw := tipWidth / 2
	positions := []math32.Vector3{
		{0, hw, 0},
		{0, -hw, 0},
		{handleLength, -hw, 0},
		{handleLength, hw, 0},
		{handleLength, tw, 0},
		{handleLength, -tw, 0},
		{handleLength + tipLength, 0, 0},
	}
	normals := make([]math32.Vector3, len(positions))
	for i := range normals {
		normals[i] = math32.AxisZ
	}
	indices := []uint32{0, 1, 3, 1, 2, 3, 4, 5, 6}
	return newBuffer(positions, normals, indices)
}

// FlatArrowBetween returns a [FlatArrow] from start to stop. The tip is
// shortened to the distance between the points if needed, and the
// handle takes the remaining length.
func FlatArrowBetween(start, stop math32.Vector3, handleWidth, tipLength, tipWidth float32) *Buffer {
	dp := stop.Sub(start)
	total := dp.Length()
	tipLength = math32.Min(total, tipLength)
	tf := math32.ScaleRotationTranslation(math32.Vec3(1, 1, 1), yawTo(dp), start)
	return FlatArrow(total-tipLength, handleWidth, tipLength, tipWidth).TransformBy(tf)
}
