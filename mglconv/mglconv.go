package mglconv

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/viant/geomvec/base"
	"github.com/viant/geomvec/geometry"
)

// Vec2 widens v to an mgl64.Vec2.
func Vec2[N base.Scalar](v base.Vector2[N]) mgl64.Vec2 {
	return mgl64.Vec2{float64(v.X()), float64(v.Y())}
}

// Vec3 widens v to an mgl64.Vec3.
func Vec3[N base.Scalar](v base.Vector3[N]) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X()), float64(v.Y()), float64(v.Z())}
}

// Vec4 widens v to an mgl64.Vec4.
func Vec4[N base.Scalar](v base.Vector4[N]) mgl64.Vec4 {
	return mgl64.Vec4{float64(v.X()), float64(v.Y()), float64(v.Z()), float64(v.W())}
}

// FromVec2 converts v with base.Cast semantics.
func FromVec2[N base.Scalar](v mgl64.Vec2) base.Vector2[N] {
	return base.NewVector2(N(v[0]), N(v[1]))
}

// FromVec3 converts v with base.Cast semantics.
func FromVec3[N base.Scalar](v mgl64.Vec3) base.Vector3[N] {
	return base.NewVector3(N(v[0]), N(v[1]), N(v[2]))
}

// FromVec4 converts v with base.Cast semantics.
func FromVec4[N base.Scalar](v mgl64.Vec4) base.Vector4[N] {
	return base.NewVector4(N(v[0]), N(v[1]), N(v[2]), N(v[3]))
}

// PointVec3 returns the coordinates of p.
func PointVec3[N base.Scalar](p geometry.Point3[N]) mgl64.Vec3 { return Vec3(p.Coords()) }

// PointFromVec3 builds a point from mgl64 coordinates.
func PointFromVec3[N base.Scalar](v mgl64.Vec3) geometry.Point3[N] {
	return geometry.PointFromVector(FromVec3[N](v))
}

// Quat converts q; mgl64 stores the scalar part in W and the vector part in V.
func Quat[N base.Real](q geometry.UnitQuaternion[N]) mgl64.Quat {
	return mgl64.Quat{W: float64(q.W()), V: mgl64.Vec3{float64(q.I()), float64(q.J()), float64(q.K())}}
}

// FromQuat renormalizes q into a unit quaternion.
func FromQuat[N base.Real](q mgl64.Quat) geometry.UnitQuaternion[N] {
	return geometry.UnitQuaternionFromCoords(N(q.W), N(q.V[0]), N(q.V[1]), N(q.V[2]))
}

// Mat3FromSimilarity2 returns the homogeneous 3x3 matrix of s.
func Mat3FromSimilarity2[R geometry.Rotation2D[N, R], N base.Real](s geometry.Similarity[N, base.U2, R]) mgl64.Mat3 {
	r := s.Rotation().Matrix()
	t := s.Translation().Vector()
	k := float64(s.Scaling())
	var m mgl64.Mat3
	for col := range 2 {
		for row := range 2 {
			m[col*3+row] = k * float64(r[row][col])
		}
		m[6+col] = float64(t.At(col))
	}
	m[8] = 1
	return m
}

// Mat4FromIsometry3 returns the homogeneous 4x4 matrix of iso.
func Mat4FromIsometry3[R geometry.Rotation3D[N, R], N base.Real](iso geometry.Isometry[N, base.U3, R]) mgl64.Mat4 {
	return mat4(iso.Rotation().Matrix(), iso.Translation().Vector(), 1)
}

// Mat4FromSimilarity3 returns the homogeneous 4x4 matrix of s, with the
// scaling folded into the rotation block.
func Mat4FromSimilarity3[R geometry.Rotation3D[N, R], N base.Real](s geometry.Similarity[N, base.U3, R]) mgl64.Mat4 {
	return mat4(s.Rotation().Matrix(), s.Translation().Vector(), s.Scaling())
}

func mat4[N base.Real](r base.Matrix3[N], t base.Vector3[N], scaling N) mgl64.Mat4 {
	k := float64(scaling)
	var m mgl64.Mat4
	for col := range 3 {
		for row := range 3 {
			m[col*4+row] = k * float64(r[row][col])
		}
		m[12+col] = float64(t.At(col))
	}
	m[15] = 1
	return m
}
