// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit mesh generation.

package math32

// ArrayF32 is a slice of float32 with additional convenience methods
// for packing vectors, as used in vertex attribute buffers.
type ArrayF32 []float32

// NewArrayF32 creates a returns a new array of floats
// with the specified initial size and capacity
func NewArrayF32(size, capacity int) ArrayF32 {
	return make([]float32, size, capacity)
}

// ArrayF32FromVector3s packs the given vectors into a new array.
func ArrayF32FromVector3s(vs []Vector3) ArrayF32 {
	a := NewArrayF32(len(vs)*3, len(vs)*3)
	for i, v := range vs {
		v.ToSlice(a, i*3)
	}
	return a
}

// ArrayF32FromVector2s packs the given vectors into a new array.
func ArrayF32FromVector2s(vs []Vector2) ArrayF32 {
	a := NewArrayF32(len(vs)*2, len(vs)*2)
	for i, v := range vs {
		a[i*2] = v.X
		a[i*2+1] = v.Y
	}
	return a
}

// Bytes returns the size of the array in bytes
func (a *ArrayF32) Bytes() int {
	return len(*a) * 4
}

// Size returns the number of float32 elements in the array
func (a *ArrayF32) Size() int {
	return len(*a)
}

// Len returns the number of float32 elements in the array
// It is equivalent to Size()
func (a *ArrayF32) Len() int {
	return len(*a)
}

// Append appends any number of values to the array
func (a *ArrayF32) Append(v ...float32) {
	*a = append(*a, v...)
}

// AppendVector3 appends any number of Vector3 to the array
func (a *ArrayF32) AppendVector3(v ...Vector3) {
	for i := 0; i < len(v); i++ {
		*a = append(*a, v[i].X, v[i].Y, v[i].Z)
	}
}

// AppendVector2 appends any number of Vector2 to the array
func (a *ArrayF32) AppendVector2(v ...Vector2) {
	for i := 0; i < len(v); i++ {
		*a = append(*a, v[i].X, v[i].Y)
	}
}

// Vector3 returns the Vector3 starting at the given float offset.
func (a ArrayF32) Vector3(pos int) Vector3 {
	return Vec3(a[pos], a[pos+1], a[pos+2])
}

// Vector2 returns the Vector2 starting at the given float offset.
func (a ArrayF32) Vector2(pos int) Vector2 {
	return Vec2(a[pos], a[pos+1])
}

// SetVector3 sets the values of the array at the specified pos
// from the XYZ values of the specified Vector3
func (a ArrayF32) SetVector3(pos int, v Vector3) {
	a[pos] = v.X
	a[pos+1] = v.Y
	a[pos+2] = v.Z
}

// Vector3s unpacks the array into a new slice of vectors.
func (a ArrayF32) Vector3s() []Vector3 {
	vs := make([]Vector3, len(a)/3)
	for i := range vs {
		vs[i].FromSlice(a, i*3)
	}
	return vs
}

// ArrayU32 is a slice of uint32 with additional convenience methods
type ArrayU32 []uint32

// NewArrayU32 creates a returns a new array of uint32
// with the specified initial size and capacity
func NewArrayU32(size, capacity int) ArrayU32 {
	return make([]uint32, size, capacity)
}

// Bytes returns the size of the array in bytes
func (a *ArrayU32) Bytes() int {
	return len(*a) * 4
}

// Size returns the number of elements in the array
func (a *ArrayU32) Size() int {
	return len(*a)
}

// Len returns the number of elements in the array
func (a *ArrayU32) Len() int {
	return len(*a)
}

// Append appends n elements to the array updating the slice if necessary
func (a *ArrayU32) Append(v ...uint32) {
	*a = append(*a, v...)
}

// AppendOffset appends the given values, each increased by offset.
func (a *ArrayU32) AppendOffset(offset uint32, v ...uint32) {
	for _, x := range v {
		*a = append(*a, x+offset)
	}
}
