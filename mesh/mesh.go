// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides the renderable mesh resource that generated
// geometry is handed off to: flat per-vertex attribute arrays plus an
// optional index array, with a primitive topology.
package mesh

import (
	"github.com/jinzhu/copier"
	"github.com/mxgrey/crab-edu/base/errors"
	"github.com/mxgrey/crab-edu/math32"
)

// Mesh is a renderable mesh resource. Attribute arrays are packed
// float32 values (see [Attribute.Components]); absent attributes have
// no entry in Attributes. Indices is nil when the mesh is not indexed.
type Mesh struct {
	// Name is an optional label, used by exporters.
	Name string

	// Topology is how indices are assembled into primitives.
	Topology Topology

	// Attributes holds the per-vertex arrays.
	Attributes map[Attribute]math32.ArrayF32

	// Indices holds the index array, if any.
	Indices math32.ArrayU32
}

// New returns a new empty mesh with the given topology.
func New(topology Topology) *Mesh {
	return &Mesh{Topology: topology, Attributes: map[Attribute]math32.ArrayF32{}}
}

// Attribute returns the array for the given attribute and whether it is present.
func (ms *Mesh) Attribute(at Attribute) (math32.ArrayF32, bool) {
	a, ok := ms.Attributes[at]
	return a, ok
}

// HasAttribute returns whether the given attribute is present.
func (ms *Mesh) HasAttribute(at Attribute) bool {
	_, ok := ms.Attributes[at]
	return ok
}

// SetAttribute sets (or replaces) the array for the given attribute.
func (ms *Mesh) SetAttribute(at Attribute, data math32.ArrayF32) {
	if ms.Attributes == nil {
		ms.Attributes = map[Attribute]math32.ArrayF32{}
	}
	ms.Attributes[at] = data
}

// RemoveAttribute removes the given attribute, returning the removed
// array and whether it was present.
func (ms *Mesh) RemoveAttribute(at Attribute) (math32.ArrayF32, bool) {
	a, ok := ms.Attributes[at]
	delete(ms.Attributes, at)
	return a, ok
}

// NumVertex returns the number of vertices, from the position array.
func (ms *Mesh) NumVertex() int {
	return len(ms.Attributes[Position]) / 3
}

// NumIndex returns the number of indices.
func (ms *Mesh) NumIndex() int {
	return len(ms.Indices)
}

// NumTriangles returns the number of triangles of a [TriangleList] mesh.
// Non-indexed meshes use consecutive vertex triples.
func (ms *Mesh) NumTriangles() int {
	if ms.Indices != nil {
		return len(ms.Indices) / 3
	}
	return ms.NumVertex() / 3
}

// Triangle returns the vertex indices of the given triangle of a
// [TriangleList] mesh.
func (ms *Mesh) Triangle(i int) (a, b, c uint32) {
	if ms.Indices != nil {
		return ms.Indices[i*3], ms.Indices[i*3+1], ms.Indices[i*3+2]
	}
	v := uint32(i * 3)
	return v, v + 1, v + 2
}

// Position returns the position of the given vertex.
func (ms *Mesh) Position(i uint32) math32.Vector3 {
	return ms.Attributes[Position].Vector3(int(i) * 3)
}

// Normal returns the normal of the given vertex.
func (ms *Mesh) Normal(i uint32) math32.Vector3 {
	return ms.Attributes[Normal].Vector3(int(i) * 3)
}

// BBox returns the bounding box of the vertex positions.
func (ms *Mesh) BBox() math32.Box3 {
	bb := math32.B3Empty()
	pos := ms.Attributes[Position]
	for vi := 0; vi+2 < len(pos); vi += 3 {
		bb.ExpandByPoint(pos.Vector3(vi))
	}
	return bb
}

// Validate checks the structural invariants of the mesh: every present
// attribute has one entry per vertex, and for a [TriangleList] the index
// count is a multiple of 3 and every index refers to a vertex.
func (ms *Mesh) Validate() error {
	pos, ok := ms.Attributes[Position]
	if !ok {
		if len(ms.Attributes) > 0 || len(ms.Indices) > 0 {
			return errors.Contract("Mesh.Validate", "mesh has attributes or indices but no positions")
		}
		return nil
	}
	if len(pos)%3 != 0 {
		return errors.Contract("Mesh.Validate", "position array length %d is not a multiple of 3", len(pos))
	}
	nv := len(pos) / 3
	for _, at := range Attributes {
		a, ok := ms.Attributes[at]
		if !ok {
			continue
		}
		if want := nv * at.Components(); len(a) != want {
			return errors.Contract("Mesh.Validate", "%v array has %d values, want %d for %d vertices", at, len(a), want, nv)
		}
	}
	if ms.Topology == TriangleList && len(ms.Indices)%3 != 0 {
		return errors.Contract("Mesh.Validate", "index count %d is not a multiple of 3", len(ms.Indices))
	}
	for i, ix := range ms.Indices {
		if int(ix) >= nv {
			return errors.Contract("Mesh.Validate", "index %d at %d is out of range for %d vertices", ix, i, nv)
		}
	}
	return nil
}

// Clone returns a deep copy of the mesh that shares no arrays with it.
func (ms *Mesh) Clone() *Mesh {
	nm := &Mesh{}
	errors.Must(copier.CopyWithOption(nm, ms, copier.Option{DeepCopy: true}))
	if ms.Indices == nil {
		// a non-indexed mesh stays non-indexed
		nm.Indices = nil
	}
	return nm
}
