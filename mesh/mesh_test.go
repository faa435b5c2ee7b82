// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/mxgrey/crab-edu/base/errors"
	"github.com/mxgrey/crab-edu/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad() *Mesh {
	m := New(TriangleList)
	m.SetAttribute(Position, math32.ArrayF32FromVector3s([]math32.Vector3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}))
	m.SetAttribute(Normal, math32.ArrayF32FromVector3s([]math32.Vector3{math32.AxisZ, math32.AxisZ, math32.AxisZ, math32.AxisZ}))
	m.Indices = math32.ArrayU32{0, 1, 2, 0, 2, 3}
	return m
}

func TestEnums(t *testing.T) {
	assert.Equal(t, "TriangleList", TriangleList.String())
	assert.Equal(t, "Topology(9)", Topology(9).String())
	assert.Equal(t, "UV0", UV0.String())
	assert.Equal(t, 4, Color.Components())
	assert.Equal(t, 2, UV0.Components())
	assert.Panics(t, func() { Attribute(7).Components() })
}

func TestMesh(t *testing.T) {
	m := quad()
	require.NoError(t, m.Validate())
	assert.Equal(t, 4, m.NumVertex())
	assert.Equal(t, 6, m.NumIndex())
	assert.Equal(t, 2, m.NumTriangles())

	a, b, c := m.Triangle(1)
	assert.Equal(t, []uint32{0, 2, 3}, []uint32{a, b, c})
	assert.Equal(t, math32.Vec3(1, 1, 0), m.Position(2))
	assert.Equal(t, math32.AxisZ, m.Normal(3))

	bb := m.BBox()
	assert.Equal(t, math32.Vec3(0, 0, 0), bb.Min)
	assert.Equal(t, math32.Vec3(1, 1, 0), bb.Max)

	_, ok := m.RemoveAttribute(Normal)
	assert.True(t, ok)
	assert.False(t, m.HasAttribute(Normal))
	_, ok = m.Attribute(Normal)
	assert.False(t, ok)
}

func TestNonIndexed(t *testing.T) {
	m := quad()
	m.Indices = nil
	m.SetAttribute(Position, m.Attributes[Position][:9])
	m.SetAttribute(Normal, m.Attributes[Normal][:9])
	require.NoError(t, m.Validate())
	assert.Equal(t, 1, m.NumTriangles())
	a, b, c := m.Triangle(0)
	assert.Equal(t, []uint32{0, 1, 2}, []uint32{a, b, c})
}

func TestValidate(t *testing.T) {
	assert.NoError(t, New(TriangleList).Validate())

	tests := []struct {
		name   string
		modify func(m *Mesh)
	}{
		{"no positions", func(m *Mesh) { m.RemoveAttribute(Position) }},
		{"ragged positions", func(m *Mesh) { m.Attributes[Position] = m.Attributes[Position][:11] }},
		{"short normals", func(m *Mesh) { m.Attributes[Normal] = m.Attributes[Normal][:9] }},
		{"wrong uv count", func(m *Mesh) { m.SetAttribute(UV0, math32.NewArrayF32(6, 6)) }},
		{"partial triangle", func(m *Mesh) { m.Indices = m.Indices[:5] }},
		{"index out of range", func(m *Mesh) { m.Indices[4] = 4 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := quad()
			tt.modify(m)
			err := m.Validate()
			assert.ErrorIs(t, err, errors.ErrContract)
		})
	}

	lines := quad()
	lines.Topology = LineList
	lines.Indices = lines.Indices[:4]
	assert.NoError(t, lines.Validate())
}

func TestClone(t *testing.T) {
	m := quad()
	m.Name = "quad"
	c := m.Clone()
	assert.Equal(t, m.Name, c.Name)
	assert.Equal(t, m.Topology, c.Topology)
	assert.Equal(t, m.Attributes[Position], c.Attributes[Position])
	assert.Equal(t, m.Indices, c.Indices)

	c.Attributes[Position][0] = 42
	c.Indices[0] = 3
	c.SetAttribute(UV0, math32.NewArrayF32(8, 8))
	assert.Equal(t, float32(0), m.Attributes[Position][0])
	assert.Equal(t, uint32(0), m.Indices[0])
	assert.False(t, m.HasAttribute(UV0))
}

func TestCloneNonIndexed(t *testing.T) {
	m := quad()
	m.Indices = nil
	c := m.Clone()
	assert.Nil(t, c.Indices)
	assert.Equal(t, 4, c.NumVertex())
}
