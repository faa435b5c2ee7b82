// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"github.com/mxgrey/crab-edu/base/errors"
	"github.com/mxgrey/crab-edu/math32"
)

// boxFace is one side of an axis aligned box.
type boxFace struct {
	normal  math32.Vector3
	corners [4]math32.Vector3
}

// boxFaces returns the six faces of a box spanning min to max, in the
// order top, bottom, right, left, front, back. The corners of each face
// wind counter-clockwise seen from outside.
func boxFaces(mn, mx math32.Vector3) [6]boxFace {
	v := math32.Vec3
	return [6]boxFace{
		{math32.AxisZ, [4]math32.Vector3{v(mn.X, mn.Y, mx.Z), v(mx.X, mn.Y, mx.Z), v(mx.X, mx.Y, mx.Z), v(mn.X, mx.Y, mx.Z)}},
		{math32.AxisZ.Negate(), [4]math32.Vector3{v(mn.X, mx.Y, mn.Z), v(mx.X, mx.Y, mn.Z), v(mx.X, mn.Y, mn.Z), v(mn.X, mn.Y, mn.Z)}},
		{math32.AxisX, [4]math32.Vector3{v(mx.X, mn.Y, mn.Z), v(mx.X, mx.Y, mn.Z), v(mx.X, mx.Y, mx.Z), v(mx.X, mn.Y, mx.Z)}},
		{math32.AxisX.Negate(), [4]math32.Vector3{v(mn.X, mn.Y, mx.Z), v(mn.X, mx.Y, mx.Z), v(mn.X, mx.Y, mn.Z), v(mn.X, mn.Y, mn.Z)}},
		{math32.AxisY, [4]math32.Vector3{v(mx.X, mx.Y, mn.Z), v(mn.X, mx.Y, mn.Z), v(mn.X, mx.Y, mx.Z), v(mx.X, mx.Y, mx.Z)}},
		{math32.AxisY.Negate(), [4]math32.Vector3{v(mx.X, mn.Y, mx.Z), v(mn.X, mn.Y, mx.Z), v(mn.X, mn.Y, mn.Z), v(mx.X, mn.Y, mn.Z)}},
	}
}

// Box returns an axis aligned box of the given size centered on the
// origin. Each face has its own four vertices so that every face gets
// an exact flat normal.
func Box(x, y, z float32) *Buffer {
	half := math32.Vec3(x, y, z).MulScalar(0.5)
	faces := boxFaces(half.Negate(), half)

	positions := make([]math32.Vector3, 0, 24)
	normals := make([]math32.Vector3, 0, 24)
	indices := make([]uint32, 0, 36)
	for fi, f := range faces {
		start := uint32(4 * fi)
		positions = append(positions, f.corners[:]...)
		for range f.corners {
			normals = append(normals, f.normal)
		}
		indices = append(indices, start, start+1, start+2, start+2, start+3, start)
	}
	return newBuffer(positions, normals, indices)
}

// Wall describes a box standing on the z = 0 plane that spans the
// segment from Start to End.
type Wall struct {

	// Start is one end of the wall's center line.
	Start math32.Vector3

	// End is the other end of the wall's center line.
	End math32.Vector3

	// Thickness of the wall, perpendicular to the center line.
	Thickness float32

	// Height of the wall.
	Height float32

	// TextureWidth is the length of wall covered by one repetition of
	// the texture. Zero means 1.
	TextureWidth float32

	// TextureHeight is the height of wall covered by one repetition of
	// the texture. Zero means the full wall height.
	TextureHeight float32
}

// Defaults sets default values for the wall.
func (w *Wall) Defaults() {
	w.End = math32.Vec3(1, 0, 0)
	w.Thickness = 0.1
	w.Height = 1
}

// textureRepeats returns the number of texture repetitions along the
// wall and up the wall.
func (w *Wall) textureRepeats(length float32) (u, v float32) {
	tw := w.TextureWidth
	if tw == 0 {
		tw = 1
	}
	th := w.TextureHeight
	if th == 0 {
		th = w.Height
	}
	if th != 0 {
		v = w.Height / th
	}
	return length / tw, v
}

// Build returns the wall mesh, or an empty buffer if the wall has no
// length, thickness or height. The sides carry texture coordinates that
// repeat the texture according to the wall's physical size, so tiling
// textures stay the same scale regardless of wall length.
func (w *Wall) Build() *Buffer {
	dp := w.End.Sub(w.Start)
	length := dp.Length()
	if length == 0 || w.Thickness == 0 || w.Height == 0 {
		return degenerate("Wall", "length", length, "thickness", w.Thickness, "height", w.Height)
	}
	yaw := math32.Atan2(dp.Y, dp.X)
	center := w.Start.Add(w.End).MulScalar(0.5)
	u, v := w.textureRepeats(length)

	uv := []math32.Vector2{
		// top
		{}, {}, {}, {},
		// bottom
		{0, v}, {0, v}, {0, v}, {0, v},
		// right
		{u, v}, {0, v}, {0, 0}, {u, 0},
		// left
		{0, 0}, {u, 0}, {u, v}, {0, v},
		// front
		{0, v}, {u, v}, {u, 0}, {0, 0},
		// back
		{u, 0}, {0, 0}, {0, v}, {u, v},
	}
	b := errors.Must1(Box(length, w.Thickness, w.Height).WithUV(uv))
	tf := math32.Translate3(math32.Vec3(center.X, center.Y, w.Height/2)).Mul(math32.RotateZ(yaw))
	return b.TransformBy(tf)
}

// WallMesh returns the mesh of a [Wall] from start to end. Zero texture
// sizes select the defaults described on [Wall].
func WallMesh(start, end math32.Vector3, thickness, height, textureWidth, textureHeight float32) *Buffer {
	w := Wall{Start: start, End: end, Thickness: thickness, Height: height,
		TextureWidth: textureWidth, TextureHeight: textureHeight}
	return w.Build()
}
