// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "strconv"

// Topology is how the index (or vertex) sequence of a [Mesh]
// is assembled into primitives.
type Topology int32

const (
	// PointList draws each vertex as a point.
	PointList Topology = iota

	// LineList draws each pair of vertices as a line segment.
	LineList

	// LineStrip draws a connected polyline.
	LineStrip

	// TriangleList draws each triple of indices as a triangle.
	// It is the only topology that mesh buffers can be merged into.
	TriangleList

	// TriangleStrip draws a strip of triangles sharing edges.
	TriangleStrip
)

var topologyNames = [...]string{"PointList", "LineList", "LineStrip", "TriangleList", "TriangleStrip"}

func (tp Topology) String() string {
	if tp < 0 || int(tp) >= len(topologyNames) {
		return "Topology(" + strconv.Itoa(int(tp)) + ")"
	}
	return topologyNames[tp]
}

// Attribute is a per-vertex attribute array of a [Mesh].
type Attribute int32

const (
	// Position is the vertex position, 3 components.
	Position Attribute = iota

	// Normal is the vertex normal, 3 components.
	Normal

	// UV0 is the first texture coordinate set, 2 components.
	UV0

	// Color is the vertex color, 4 components.
	Color
)

// Attributes lists all the attributes in canonical order.
var Attributes = []Attribute{Position, Normal, UV0, Color}

var attributeNames = [...]string{"Position", "Normal", "UV0", "Color"}

func (at Attribute) String() string {
	if at < 0 || int(at) >= len(attributeNames) {
		return "Attribute(" + strconv.Itoa(int(at)) + ")"
	}
	return attributeNames[at]
}

// Components returns the number of float32 components per vertex.
func (at Attribute) Components() int {
	switch at {
	case Position, Normal:
		return 3
	case UV0:
		return 2
	case Color:
		return 4
	}
	panic("mesh: unknown attribute " + at.String())
}
