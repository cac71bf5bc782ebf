package geometry

import (
	quickrand "math/rand"
	"math/rand/v2"
	"reflect"

	"github.com/viant/geomvec/base"
)

// IdentityIsometry returns the isometry with zero translation and identity
// rotation.
func IdentityIsometry[N base.Real, D base.Dim, R Rotation[N, D, R]]() Isometry[N, D, R] {
	var r R
	return Isometry[N, D, R]{translation: IdentityTranslation[N, D](), rotation: r.Identity()}
}

// Identity returns the identity isometry; the receiver is ignored.
func (Isometry[N, D, R]) Identity() Isometry[N, D, R] { return IdentityIsometry[N, D, R]() }

// One is an alias of Identity.
func (Isometry[N, D, R]) One() Isometry[N, D, R] { return IdentityIsometry[N, D, R]() }

// IsometryFromParts pairs a translation with a rotation.
func IsometryFromParts[N base.Real, D base.Dim, R Rotation[N, D, R]](translation Translation[N, D], rotation R) Isometry[N, D, R] {
	return Isometry[N, D, R]{translation: translation, rotation: rotation}
}

// NewIsometry2D builds a planar isometry from a translation vector and a
// rotation angle in radians, using the rotation representation R.
func NewIsometry2D[R Rotation2D[N, R], N base.Real](translation base.Vector2[N], angle N) Isometry[N, base.U2, R] {
	var r R
	return Isometry[N, base.U2, R]{translation: TranslationFromVector(translation), rotation: r.FromAngle(angle)}
}

// NewIsometry2 builds a planar isometry whose rotation is a UnitComplex.
func NewIsometry2[N base.Real](translation base.Vector2[N], angle N) Isometry2[N] {
	return NewIsometry2D[UnitComplex[N]](translation, angle)
}

// NewIsometryMatrix2 builds a planar isometry whose rotation is a Rotation2.
func NewIsometryMatrix2[N base.Real](translation base.Vector2[N], angle N) IsometryMatrix2[N] {
	return NewIsometry2D[Rotation2[N]](translation, angle)
}

// NewIsometry3D builds a spatial isometry from a translation vector and an
// axis-angle vector, using the rotation representation R.
func NewIsometry3D[R Rotation3D[N, R], N base.Real](translation, axisAngle base.Vector3[N]) Isometry[N, base.U3, R] {
	var r R
	return Isometry[N, base.U3, R]{translation: TranslationFromVector(translation), rotation: r.FromScaledAxis(axisAngle)}
}

// NewIsometry3 builds a spatial isometry whose rotation is a UnitQuaternion.
func NewIsometry3[N base.Real](translation, axisAngle base.Vector3[N]) Isometry3[N] {
	return NewIsometry3D[UnitQuaternion[N]](translation, axisAngle)
}

// NewIsometryMatrix3 builds a spatial isometry whose rotation is a Rotation3.
func NewIsometryMatrix3[N base.Real](translation, axisAngle base.Vector3[N]) IsometryMatrix3[N] {
	return NewIsometry3D[Rotation3[N]](translation, axisAngle)
}

// IsometryFaceTowards builds the local frame of an observer standing at eye
// and looking at target: the origin maps to eye and the z axis maps to the
// direction of target - eye. up must not be collinear with target - eye;
// this is not checked.
func IsometryFaceTowards[R Rotation3D[N, R], N base.Real](eye, target Point3[N], up base.Vector3[N]) Isometry[N, base.U3, R] {
	var r R
	return Isometry[N, base.U3, R]{
		translation: TranslationFromVector(eye.coords),
		rotation:    r.FaceTowards(target.Sub(eye), up),
	}
}

// IsometryLookAtRH builds a right-handed view transform: eye maps to the
// origin and target - eye maps to -z.
func IsometryLookAtRH[R Rotation3D[N, R], N base.Real](eye, target Point3[N], up base.Vector3[N]) Isometry[N, base.U3, R] {
	var r R
	rotation := r.LookAtRH(target.Sub(eye), up)
	return Isometry[N, base.U3, R]{
		translation: TranslationFromVector(rotation.TransformVector(eye.coords).Neg()),
		rotation:    rotation,
	}
}

// IsometryLookAtLH builds a left-handed view transform: eye maps to the
// origin and target - eye maps to +z.
func IsometryLookAtLH[R Rotation3D[N, R], N base.Real](eye, target Point3[N], up base.Vector3[N]) Isometry[N, base.U3, R] {
	var r R
	rotation := r.LookAtLH(target.Sub(eye), up)
	return Isometry[N, base.U3, R]{
		translation: TranslationFromVector(rotation.TransformVector(eye.coords).Neg()),
		rotation:    rotation,
	}
}

// SampleIsometry draws a random translation and a uniformly distributed
// rotation.
func SampleIsometry[N base.Real, D base.Dim, R Rotation[N, D, R]](rng *rand.Rand) Isometry[N, D, R] {
	var r R
	return Isometry[N, D, R]{translation: SampleTranslation[N, D](rng), rotation: r.Sample(rng)}
}

// Generate implements quick.Generator.
func (Isometry[N, D, R]) Generate(rng *quickrand.Rand, size int) reflect.Value {
	return reflect.ValueOf(arbitraryIsometry[N, D, R](rng, size))
}

func arbitraryIsometry[N base.Real, D base.Dim, R Rotation[N, D, R]](rng *quickrand.Rand, size int) Isometry[N, D, R] {
	var r R
	return Isometry[N, D, R]{
		translation: arbitraryTranslation[N, D](rng, size),
		rotation:    r.Generate(rng, size).Interface().(R),
	}
}

// CastIsometry2 converts every component to To.
func CastIsometry2[To, N base.Real](iso Isometry2[N]) Isometry2[To] {
	return Isometry2[To]{translation: CastTranslation[To](iso.translation), rotation: CastUnitComplex[To](iso.rotation)}
}

// CastIsometryMatrix2 converts every component to To.
func CastIsometryMatrix2[To, N base.Real](iso IsometryMatrix2[N]) IsometryMatrix2[To] {
	return IsometryMatrix2[To]{translation: CastTranslation[To](iso.translation), rotation: CastRotation2[To](iso.rotation)}
}

// CastIsometry3 converts every component to To.
func CastIsometry3[To, N base.Real](iso Isometry3[N]) Isometry3[To] {
	return Isometry3[To]{translation: CastTranslation[To](iso.translation), rotation: CastUnitQuaternion[To](iso.rotation)}
}

// CastIsometryMatrix3 converts every component to To.
func CastIsometryMatrix3[To, N base.Real](iso IsometryMatrix3[N]) IsometryMatrix3[To] {
	return IsometryMatrix3[To]{translation: CastTranslation[To](iso.translation), rotation: CastRotation3[To](iso.rotation)}
}
