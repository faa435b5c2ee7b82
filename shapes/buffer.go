// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes generates triangulated surface geometry for a fixed
// catalog of parametric solids and flat glyphs, and composes it through
// affine transforms and buffer merges.
//
// Every generator returns a [Buffer]. Buffers have move semantics:
// TransformBy, MergeWith, DropUV, IntoMesh and MergeInto consume their
// receiver (and MergeWith its argument), and any later use of a consumed
// buffer panics with an [errors.ContractError]. Chain calls instead:
//
//	b := shapes.Box(1, 2, 3).
//		TransformBy(math32.RotateZ(yaw)).
//		MergeWith(shapes.FlatSquare(1))
//	m := b.IntoMesh()
package shapes

import (
	"slices"

	"github.com/mxgrey/crab-edu/base/errors"
	"github.com/mxgrey/crab-edu/math32"
	"github.com/mxgrey/crab-edu/mesh"
)

// Buffer is generated mesh geometry: positions with parallel normals,
// triangle-list indices, and optional parallel texture coordinates.
type Buffer struct {
	positions []math32.Vector3
	normals   []math32.Vector3
	indices   []uint32
	uv        []math32.Vector2
	hasUV     bool
	spent     bool
}

// NewBuffer returns a new buffer from the given arrays, which it takes
// ownership of. It returns a [errors.ContractError] if the normals are not
// parallel to the positions, or the indices are not a valid triangle list.
func NewBuffer(positions, normals []math32.Vector3, indices []uint32) (*Buffer, error) {
	const op = "NewBuffer"
	if len(positions) != len(normals) {
		return nil, errors.Contract(op, "inconsistent positions %d vs normals %d", len(positions), len(normals))
	}
	if len(indices)%3 != 0 {
		return nil, errors.Contract(op, "index count %d is not a multiple of 3", len(indices))
	}
	for i, ix := range indices {
		if int(ix) >= len(positions) {
			return nil, errors.Contract(op, "index %d at %d is out of range for %d positions", ix, i, len(positions))
		}
	}
	return &Buffer{positions: positions, normals: normals, indices: indices}, nil
}

// newBuffer is [NewBuffer] for generators whose output is valid by construction.
func newBuffer(positions, normals []math32.Vector3, indices []uint32) *Buffer {
	return errors.Must1(NewBuffer(positions, normals, indices))
}

// NewEmptyBuffer returns a buffer with no geometry.
func NewEmptyBuffer() *Buffer {
	return &Buffer{positions: []math32.Vector3{}, normals: []math32.Vector3{}, indices: []uint32{}}
}

// use panics if the buffer cannot be used by the given operation.
func (b *Buffer) use(op string) {
	if b == nil {
		panic(errors.Contract(op, "nil buffer"))
	}
	if b.spent {
		panic(errors.Contract(op, "buffer was already consumed"))
	}
}

// take moves the contents of b into a new buffer and marks b spent.
func (b *Buffer) take(op string) *Buffer {
	b.use(op)
	nb := *b
	*b = Buffer{spent: true}
	return &nb
}

// IsSpent returns whether the buffer has been consumed by an operation.
func (b *Buffer) IsSpent() bool {
	return b.spent
}

// Positions returns a copy of the vertex positions.
func (b *Buffer) Positions() []math32.Vector3 {
	b.use("Buffer.Positions")
	return slices.Clone(b.positions)
}

// Normals returns a copy of the vertex normals.
func (b *Buffer) Normals() []math32.Vector3 {
	b.use("Buffer.Normals")
	return slices.Clone(b.normals)
}

// Indices returns a copy of the triangle indices.
func (b *Buffer) Indices() []uint32 {
	b.use("Buffer.Indices")
	return slices.Clone(b.indices)
}

// UV returns a copy of the texture coordinates, or nil if the buffer
// has none.
func (b *Buffer) UV() []math32.Vector2 {
	b.use("Buffer.UV")
	if !b.hasUV {
		return nil
	}
	return slices.Clone(b.uv)
}

// HasUV returns whether the buffer has texture coordinates.
func (b *Buffer) HasUV() bool {
	b.use("Buffer.HasUV")
	return b.hasUV
}

// NumVertex returns the number of vertices.
func (b *Buffer) NumVertex() int {
	b.use("Buffer.NumVertex")
	return len(b.positions)
}

// NumIndex returns the number of indices.
func (b *Buffer) NumIndex() int {
	b.use("Buffer.NumIndex")
	return len(b.indices)
}

// BBox returns the bounding box of the positions.
func (b *Buffer) BBox() math32.Box3 {
	b.use("Buffer.BBox")
	bb := math32.Box3{}
	bb.SetFromPoints(b.positions)
	return bb
}

// Validate checks the buffer invariants, returning a [errors.ContractError]
// describing the first violation.
func (b *Buffer) Validate() error {
	const op = "Buffer.Validate"
	b.use(op)
	if _, err := NewBuffer(b.positions, b.normals, b.indices); err != nil {
		return err
	}
	if b.hasUV && len(b.uv) != len(b.positions) {
		return errors.Contract(op, "inconsistent positions %d vs uv %d", len(b.positions), len(b.uv))
	}
	return nil
}

// Clone returns an independent copy of the buffer. The receiver
// is not consumed.
func (b *Buffer) Clone() *Buffer {
	b.use("Buffer.Clone")
	nb := &Buffer{
		positions: slices.Clone(b.positions),
		normals:   slices.Clone(b.normals),
		indices:   slices.Clone(b.indices),
		hasUV:     b.hasUV,
	}
	if b.hasUV {
		nb.uv = slices.Clone(b.uv)
	}
	return nb
}

// WithUV attaches texture coordinates, one per position, and returns the
// resulting buffer, consuming the receiver. It returns a
// [errors.ContractError] without consuming anything if the count does
// not match.
func (b *Buffer) WithUV(uv []math32.Vector2) (*Buffer, error) {
	const op = "Buffer.WithUV"
	b.use(op)
	if len(uv) != len(b.positions) {
		return nil, errors.Contract(op, "inconsistent positions %d vs uv %d", len(b.positions), len(uv))
	}
	nb := b.take(op)
	nb.uv = uv
	nb.hasUV = true
	return nb, nil
}

// DropUV removes any texture coordinates, consuming the receiver.
func (b *Buffer) DropUV() *Buffer {
	nb := b.take("Buffer.DropUV")
	nb.uv = nil
	nb.hasUV = false
	return nb
}

// TransformBy maps every position as a point and every normal as a
// direction through the given transform, consuming the receiver.
// Normals stay unit length: non-rigid transforms map them through the
// inverse-transpose of the linear part and re-normalize.
func (b *Buffer) TransformBy(tf math32.Affine3) *Buffer {
	nb := b.take("Buffer.TransformBy")
	for i, p := range nb.positions {
		nb.positions[i] = tf.MulPoint(p)
	}
	mapNormal := tf.NormalMapper()
	for i, n := range nb.normals {
		nb.normals[i] = mapNormal(n)
	}
	return nb
}

// MergeWith returns the concatenation of the receiver and other, consuming
// both. Indices from other are offset by the receiver's vertex count.
// Texture coordinates are kept only if both buffers have them.
func (b *Buffer) MergeWith(other *Buffer) *Buffer {
	const op = "Buffer.MergeWith"
	if b == other {
		panic(errors.Contract(op, "cannot merge a buffer with itself"))
	}
	other.use(op)
	nb := b.take(op)
	ob := other.take(op)

	offset := uint32(len(nb.positions))
	nb.indices = slices.Grow(nb.indices, len(ob.indices))
	for _, ix := range ob.indices {
		nb.indices = append(nb.indices, ix+offset)
	}
	nb.positions = append(nb.positions, ob.positions...)
	nb.normals = append(nb.normals, ob.normals...)

	if nb.hasUV && ob.hasUV {
		nb.uv = append(nb.uv, ob.uv...)
	} else {
		nb.uv = nil
		nb.hasUV = false
	}
	return nb
}

// IntoMesh converts the buffer into a standalone [mesh.TriangleList] mesh
// owning its own arrays, consuming the buffer.
func (b *Buffer) IntoMesh() *mesh.Mesh {
	nb := b.take("Buffer.IntoMesh")
	m := mesh.New(mesh.TriangleList)
	m.SetAttribute(mesh.Position, math32.ArrayF32FromVector3s(nb.positions))
	m.SetAttribute(mesh.Normal, math32.ArrayF32FromVector3s(nb.normals))
	if nb.hasUV {
		m.SetAttribute(mesh.UV0, math32.ArrayF32FromVector2s(nb.uv))
	}
	m.Indices = math32.ArrayU32(slices.Clone(nb.indices))
	return m
}

// MergeInto appends the buffer into an existing mesh, offsetting its
// indices by the mesh's current vertex count, and consumes the buffer.
// An empty mesh simply receives the buffer's arrays.
//
// It returns a [errors.ContractError], leaving both the mesh and the
// buffer untouched, if the mesh is not a [mesh.TriangleList], if the mesh
// is itself invalid, or if the mesh's attribute set does not match the
// buffer's (for example the mesh has UVs and the buffer does not, or the
// mesh has colors).
func (b *Buffer) MergeInto(sink *mesh.Mesh) error {
	const op = "Buffer.MergeInto"
	b.use(op)
	if sink == nil {
		return errors.Contract(op, "nil mesh")
	}
	if sink.Topology != mesh.TriangleList {
		return errors.Contract(op, "unsupported primitive topology while merging mesh: %v", sink.Topology)
	}
	if err := sink.Validate(); err != nil {
		return err
	}

	if !sink.HasAttribute(mesh.Position) {
		nb := b.take(op)
		sink.SetAttribute(mesh.Position, math32.ArrayF32FromVector3s(nb.positions))
		sink.SetAttribute(mesh.Normal, math32.ArrayF32FromVector3s(nb.normals))
		if nb.hasUV {
			sink.SetAttribute(mesh.UV0, math32.ArrayF32FromVector2s(nb.uv))
		}
		sink.Indices = math32.ArrayU32(slices.Clone(nb.indices))
		return nil
	}

	if !sink.HasAttribute(mesh.Normal) {
		return errors.Contract(op, "mesh is missing normals attribute when it has positions attribute")
	}
	if sink.HasAttribute(mesh.UV0) != b.hasUV {
		if b.hasUV {
			return errors.Contract(op, "buffer has UV values but the mesh does not")
		}
		return errors.Contract(op, "mesh needs UV values but the buffer does not have any")
	}
	if sink.HasAttribute(mesh.Color) {
		return errors.Contract(op, "mesh needs color values but buffers do not have any")
	}

	nb := b.take(op)
	offset := uint32(sink.NumVertex())
	if sink.Indices == nil {
		// existing non-indexed triangles keep their implicit order
		sink.Indices = math32.NewArrayU32(0, int(offset)+len(nb.indices))
		for i := uint32(0); i < offset; i++ {
			sink.Indices.Append(i)
		}
	}
	sink.Indices.AppendOffset(offset, nb.indices...)

	pos := sink.Attributes[mesh.Position]
	pos.AppendVector3(nb.positions...)
	sink.Attributes[mesh.Position] = pos

	norm := sink.Attributes[mesh.Normal]
	norm.AppendVector3(nb.normals...)
	sink.Attributes[mesh.Normal] = norm

	if nb.hasUV {
		uv := sink.Attributes[mesh.UV0]
		uv.AppendVector2(nb.uv...)
		sink.Attributes[mesh.UV0] = uv
	}
	return nil
}
