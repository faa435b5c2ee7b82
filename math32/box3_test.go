// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())
	b.SetFromPoints([]Vector3{{1, 2, 3}, {-1, 0, 5}, {0, 4, 4}})
	assert.False(t, b.IsEmpty())
	assert.Equal(t, Vec3(-1, 0, 3), b.Min)
	assert.Equal(t, Vec3(1, 4, 5), b.Max)
	assert.Equal(t, Vec3(0, 2, 4), b.Center())
	assert.Equal(t, Vec3(1, 2, 1), b.HalfExtents())
	assert.True(t, b.ContainsPoint(Vec3(0, 1, 4)))
	assert.False(t, b.ContainsPoint(Vec3(0, 1, 6)))

	moved := b.Translate(Vec3(1, 1, 1))
	assert.Equal(t, Vec3(0, 1, 4), moved.Min)
	assert.True(t, b.IntersectsBox(moved))
	assert.Equal(t, B3(0, 1, 4, 1, 4, 5), b.Intersect(moved))
	assert.Equal(t, B3(-1, 0, 3, 2, 5, 6), b.Union(moved))
}

func TestBox3MulAffine3(t *testing.T) {
	b := B3(0, 0, 0, 2, 1, 1)
	rb := b.MulAffine3(Translate3(Vec3(0, 0, 1)).Mul(RotateZ(DegToRad(90))))
	TolAssertEqualVector(t, StandardTol, Vec3(-1, 0, 1), rb.Min)
	TolAssertEqualVector(t, StandardTol, Vec3(0, 2, 2), rb.Max)
}

func TestArrays(t *testing.T) {
	vs := []Vector3{{1, 2, 3}, {4, 5, 6}}
	a := ArrayF32FromVector3s(vs)
	assert.Equal(t, ArrayF32{1, 2, 3, 4, 5, 6}, a)
	assert.Equal(t, 24, a.Bytes())
	assert.Equal(t, Vec3(4, 5, 6), a.Vector3(3))
	assert.Equal(t, vs, a.Vector3s())

	a.AppendVector3(Vec3(7, 8, 9))
	a.SetVector3(0, Vec3(0, 0, 0))
	assert.Equal(t, 9, a.Len())
	assert.Equal(t, Vec3(0, 0, 0), a.Vector3(0))

	uv := ArrayF32FromVector2s([]Vector2{{0.5, 1}})
	uv.AppendVector2(Vec2(1, 0))
	assert.Equal(t, Vec2(1, 0), uv.Vector2(2))

	var ix ArrayU32
	ix.Append(0, 1, 2)
	ix.AppendOffset(3, 0, 1, 2)
	assert.Equal(t, ArrayU32{0, 1, 2, 3, 4, 5}, ix)
	assert.Equal(t, 6, ix.Size())
}
