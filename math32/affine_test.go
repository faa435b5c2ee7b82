// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const StandardTol = float32(1.0e-6)

func TolAssertEqualVector(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	assert.InDelta(t, vt.X, va.X, float64(tol), "X")
	assert.InDelta(t, vt.Y, va.Y, float64(tol), "Y")
	assert.InDelta(t, vt.Z, va.Z, float64(tol), "Z")
}

func TestAffine3(t *testing.T) {
	v0 := Vec3(0, 0, 0)
	vx := Vec3(1, 0, 0)
	vy := Vec3(0, 1, 0)
	vz := Vec3(0, 0, 1)
	vxyz := Vec3(1, 1, 1)

	assert.Equal(t, vxyz, IdentityAffine3().MulPoint(vxyz))
	assert.Equal(t, vxyz, Translate3(vxyz).MulPoint(v0))
	assert.Equal(t, vx, Translate3(vxyz).MulVector(vx))
	assert.Equal(t, Vec3(2, 3, 4), Scale3(Vec3(2, 3, 4)).MulPoint(vxyz))

	TolAssertEqualVector(t, StandardTol, vy, RotateZ(DegToRad(90)).MulPoint(vx)) // left
	TolAssertEqualVector(t, StandardTol, vz, RotateX(DegToRad(90)).MulPoint(vy))
	TolAssertEqualVector(t, StandardTol, vx, RotateY(DegToRad(90)).MulPoint(vz))
	TolAssertEqualVector(t, StandardTol, vz.Negate(), RotateY(DegToRad(90)).MulPoint(vx))
	TolAssertEqualVector(t, StandardTol, vy, RotateAxisAngle(Vec3(0, 0, 5), DegToRad(90)).MulPoint(vx))

	// 1,0,0 -> scale(2) = 2,0,0 -> rotate 90 = 0,2,0 -> trans 1,1,1 -> 1,3,1
	// multiplication order is *reverse* of "logical" order:
	tf := Translate3(vxyz).Mul(RotateZ(DegToRad(90))).Mul(Scale3(Vector3Scalar(2)))
	TolAssertEqualVector(t, StandardTol, Vec3(1, 3, 1), tf.MulPoint(vx))
	TolAssertEqualVector(t, StandardTol, Vec3(0, 2, 0), tf.MulVector(vx))

	srt := ScaleRotationTranslation(Vector3Scalar(2), NewQuatAxisAngle(vz, DegToRad(90)), vxyz)
	TolAssertEqualVector(t, StandardTol, Vec3(1, 3, 1), srt.MulPoint(vx))

	rt := RotationTranslation(NewQuatAxisAngle(vz, DegToRad(180)), vx)
	TolAssertEqualVector(t, StandardTol, v0, rt.MulPoint(vx))
}

func TestAffine3IsRigid(t *testing.T) {
	assert.True(t, IdentityAffine3().IsRigid())
	assert.True(t, Translate3(Vec3(4, 5, 6)).Mul(RotateX(1.2)).Mul(RotateY(-0.4)).IsRigid())
	assert.False(t, Scale3(Vec3(1, 1, 2)).IsRigid())
	assert.False(t, Scale3(Vector3Scalar(2)).IsRigid())
	assert.False(t, Scale3(Vec3(1, 1, -1)).IsRigid(), "reflections are not rotations")
}

func TestNormalMatrix(t *testing.T) {
	nm, ok := RotateZ(0.7).NormalMatrix()
	require.True(t, ok)
	rot := RotateZ(0.7).Linear
	for i := range nm {
		assert.InDelta(t, rot[i], nm[i], 1e-6)
	}

	// the plane x + y = 1 squashed by half along x becomes 2x + y = 1
	sq := Scale3(Vec3(0.5, 1, 1))
	n := sq.NormalMapper()(Vec3(1, 1, 0).Normal())
	TolAssertEqualVector(t, StandardTol, Vec3(2, 1, 0).Normal(), n)

	// singular transforms keep what they can
	flat := Scale3(Vec3(1, 1, 0))
	_, ok = flat.NormalMatrix()
	assert.False(t, ok)
	mapN := flat.NormalMapper()
	TolAssertEqualVector(t, StandardTol, AxisX, mapN(AxisX))
	TolAssertEqualVector(t, StandardTol, AxisZ, mapN(AxisZ))
}

func TestMatrix3Inverse(t *testing.T) {
	m := Translate3(Vec3(1, 2, 3)).Mul(RotateAxisAngle(Vec3(1, 2, 3), 0.9)).Mul(Scale3(Vec3(2, 3, 4))).Linear
	inv, err := m.Inverse()
	require.NoError(t, err)
	id := m.Mul(inv)
	for i, v := range Identity3() {
		assert.InDelta(t, v, id[i], 1e-5)
	}

	_, err = Matrix3FromScale(Vec3(1, 0, 1)).Inverse()
	assert.ErrorIs(t, err, ErrSingular)
	assert.Equal(t, Identity3().Transpose(), Identity3())
}

func TestQuat(t *testing.T) {
	q := NewQuatAxisAngle(AxisZ, DegToRad(90))
	assert.InDelta(t, 1, q.Length(), 1e-6)
	TolAssertEqualVector(t, StandardTol, AxisY, AxisX.MulQuat(q))
	TolAssertEqualVector(t, StandardTol, AxisX, AxisX.MulQuat(q).MulQuat(q.Inverse()))

	// q.Mul(p) applies p first
	p := NewQuatAxisAngle(AxisX, DegToRad(90))
	TolAssertEqualVector(t, StandardTol, AxisZ.MulQuat(p).MulQuat(q), AxisZ.MulQuat(q.Mul(p)))
	TolAssertEqualVector(t, StandardTol, RotateQuat(q.Mul(p)).MulPoint(AxisZ), AxisZ.MulQuat(q.Mul(p)))

	assert.True(t, NewQuatIdentity().IsIdentity())
	e := NewQuatEuler(Vec3(0, 0, DegToRad(90)))
	TolAssertEqualVector(t, StandardTol, AxisY, AxisX.MulQuat(e))
}
