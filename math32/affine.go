// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Affine3 is a 3D affine transform: a linear part (rotation and
// possibly non-uniform scale) followed by a translation.
// Points are mapped with the full transform, vectors with
// the linear part only.
type Affine3 struct {
	Linear      Matrix3
	Translation Vector3
}

// rotationTol is the tolerance used to decide whether a linear part
// is a pure rotation, in which case normals need no correction.
const rotationTol = 1.0e-5

// IdentityAffine3 returns the identity transform.
func IdentityAffine3() Affine3 {
	return Affine3{Linear: Identity3()}
}

// Translate3 returns a pure translation by the given offset.
func Translate3(offset Vector3) Affine3 {
	return Affine3{Linear: Identity3(), Translation: offset}
}

// Scale3 returns a scaling about the origin by the given per-axis factors.
func Scale3(scale Vector3) Affine3 {
	return Affine3{Linear: Matrix3FromScale(scale)}
}

// RotateQuat returns a rotation about the origin by the given quaternion.
func RotateQuat(q Quat) Affine3 {
	return Affine3{Linear: Matrix3FromQuat(q)}
}

// RotateAxisAngle returns a rotation about the given axis by angle radians.
func RotateAxisAngle(axis Vector3, angle float32) Affine3 {
	return RotateQuat(NewQuatAxisAngle(axis, angle))
}

// RotateX returns a rotation about the X axis by angle radians.
func RotateX(angle float32) Affine3 {
	return RotateAxisAngle(AxisX, angle)
}

// RotateY returns a rotation about the Y axis by angle radians.
func RotateY(angle float32) Affine3 {
	return RotateAxisAngle(AxisY, angle)
}

// RotateZ returns a rotation about the Z axis by angle radians.
func RotateZ(angle float32) Affine3 {
	return RotateAxisAngle(AxisZ, angle)
}

// ScaleRotationTranslation returns the transform that scales,
// then rotates, then translates.
func ScaleRotationTranslation(scale Vector3, rot Quat, trans Vector3) Affine3 {
	return Affine3{
		Linear:      Matrix3FromQuat(rot).Mul(Matrix3FromScale(scale)),
		Translation: trans,
	}
}

// RotationTranslation returns the transform that rotates, then translates.
func RotationTranslation(rot Quat, trans Vector3) Affine3 {
	return Affine3{Linear: Matrix3FromQuat(rot), Translation: trans}
}

// Mul returns the composition a*b, which applies b first and then a.
func (a Affine3) Mul(b Affine3) Affine3 {
	return Affine3{
		Linear:      a.Linear.Mul(b.Linear),
		Translation: a.MulPoint(b.Translation),
	}
}

// MulPoint maps the given point through the full transform.
func (a Affine3) MulPoint(p Vector3) Vector3 {
	return p.MulMatrix3(&a.Linear).Add(a.Translation)
}

// MulVector maps the given direction through the linear part only.
func (a Affine3) MulVector(v Vector3) Vector3 {
	return v.MulMatrix3(&a.Linear)
}

// IsRigid returns whether the linear part is a pure rotation.
func (a Affine3) IsRigid() bool {
	return a.Linear.IsRotation(rotationTol)
}

// NormalMatrix returns the matrix that maps surface normals under this
// transform: the inverse-transpose of the linear part. ok is false when
// the linear part is singular, in which case the linear part itself is
// returned.
func (a Affine3) NormalMatrix() (m Matrix3, ok bool) {
	inv, err := a.Linear.Inverse()
	if err != nil {
		return a.Linear, false
	}
	return inv.Transpose(), true
}

// NormalMapper returns a function mapping unit normals under this transform.
// Rigid transforms rotate normals directly. Otherwise normals go through
// the normal matrix and are re-normalized; a normal that collapses to zero
// under a singular transform is kept as it was.
func (a Affine3) NormalMapper() func(n Vector3) Vector3 {
	if a.IsRigid() {
		return a.MulVector
	}
	nm, _ := a.NormalMatrix()
	return func(n Vector3) Vector3 {
		r := n.MulMatrix3(&nm)
		if r.LengthSquared() == 0 {
			return n
		}
		return r.Normal()
	}
}
