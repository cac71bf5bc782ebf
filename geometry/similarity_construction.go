package geometry

import (
	"fmt"
	quickrand "math/rand"
	"math/rand/v2"
	"reflect"

	"github.com/viant/geomvec/base"
)

// IdentitySimilarity returns the identity isometry with a scaling of one.
func IdentitySimilarity[N base.Real, D base.Dim, R Rotation[N, D, R]]() Similarity[N, D, R] {
	return Similarity[N, D, R]{isometry: IdentityIsometry[N, D, R](), scaling: 1}
}

// Identity returns the identity similarity; the receiver is ignored.
func (Similarity[N, D, R]) Identity() Similarity[N, D, R] { return IdentitySimilarity[N, D, R]() }

// One is an alias of Identity.
func (Similarity[N, D, R]) One() Similarity[N, D, R] { return IdentitySimilarity[N, D, R]() }

// SimilarityFromIsometry attaches a uniform scaling factor to an isometry.
// It fails with ErrZeroScaling when scaling is exactly zero.
func SimilarityFromIsometry[N base.Real, D base.Dim, R Rotation[N, D, R]](isometry Isometry[N, D, R], scaling N) (Similarity[N, D, R], error) {
	if scaling == 0 {
		return Similarity[N, D, R]{}, fmt.Errorf("geometry: similarity from isometry %v: %w", isometry, ErrZeroScaling)
	}
	return Similarity[N, D, R]{isometry: isometry, scaling: scaling}, nil
}

// SimilarityFromParts builds a similarity from its translation, rotation and
// scaling.
func SimilarityFromParts[N base.Real, D base.Dim, R Rotation[N, D, R]](translation Translation[N, D], rotation R, scaling N) (Similarity[N, D, R], error) {
	return SimilarityFromIsometry(IsometryFromParts(translation, rotation), scaling)
}

// RotationWrtPoint builds the similarity that scales by scaling and then
// rotates by r about the pivot p. The translation p - r(p) keeps p fixed
// under the rotation and translation alone; the scaling stays centered at
// the origin, so the full similarity only fixes p when scaling is one or p
// is the origin.
func RotationWrtPoint[N base.Real, D base.Dim, R Rotation[N, D, R]](r R, p Point[N, D], scaling N) (Similarity[N, D, R], error) {
	shift := r.TransformVector(p.coords.Neg())
	return SimilarityFromParts(TranslationFromVector(shift.Add(p.coords)), r, scaling)
}

// NewSimilarity2D builds a planar similarity from a translation vector, a
// rotation angle in radians and a scaling factor, using the rotation
// representation R.
func NewSimilarity2D[R Rotation2D[N, R], N base.Real](translation base.Vector2[N], angle, scaling N) (Similarity[N, base.U2, R], error) {
	return SimilarityFromIsometry(NewIsometry2D[R](translation, angle), scaling)
}

// NewSimilarity2 builds a planar similarity whose rotation is a UnitComplex.
func NewSimilarity2[N base.Real](translation base.Vector2[N], angle, scaling N) (Similarity2[N], error) {
	return NewSimilarity2D[UnitComplex[N]](translation, angle, scaling)
}

// NewSimilarityMatrix2 builds a planar similarity whose rotation is a Rotation2.
func NewSimilarityMatrix2[N base.Real](translation base.Vector2[N], angle, scaling N) (SimilarityMatrix2[N], error) {
	return NewSimilarity2D[Rotation2[N]](translation, angle, scaling)
}

// NewSimilarity3D builds a spatial similarity from a translation vector, an
// axis-angle vector and a scaling factor, using the rotation representation R.
func NewSimilarity3D[R Rotation3D[N, R], N base.Real](translation, axisAngle base.Vector3[N], scaling N) (Similarity[N, base.U3, R], error) {
	return SimilarityFromIsometry(NewIsometry3D[R](translation, axisAngle), scaling)
}

// NewSimilarity3 builds a spatial similarity whose rotation is a UnitQuaternion.
func NewSimilarity3[N base.Real](translation, axisAngle base.Vector3[N], scaling N) (Similarity3[N], error) {
	return NewSimilarity3D[UnitQuaternion[N]](translation, axisAngle, scaling)
}

// NewSimilarityMatrix3 builds a spatial similarity whose rotation is a Rotation3.
func NewSimilarityMatrix3[N base.Real](translation, axisAngle base.Vector3[N], scaling N) (SimilarityMatrix3[N], error) {
	return NewSimilarity3D[Rotation3[N]](translation, axisAngle, scaling)
}

// SimilarityFaceTowards scales by scaling, then maps the origin to eye and
// the z axis to the direction of target - eye. up must not be collinear with
// target - eye; this is not checked.
func SimilarityFaceTowards[R Rotation3D[N, R], N base.Real](eye, target Point3[N], up base.Vector3[N], scaling N) (Similarity[N, base.U3, R], error) {
	return SimilarityFromIsometry(IsometryFaceTowards[R](eye, target, up), scaling)
}

// SimilarityLookAtRH is a right-handed look-at view transform including a
// scaling factor.
func SimilarityLookAtRH[R Rotation3D[N, R], N base.Real](eye, target Point3[N], up base.Vector3[N], scaling N) (Similarity[N, base.U3, R], error) {
	return SimilarityFromIsometry(IsometryLookAtRH[R](eye, target, up), scaling)
}

// SimilarityLookAtLH is a left-handed look-at view transform including a
// scaling factor.
func SimilarityLookAtLH[R Rotation3D[N, R], N base.Real](eye, target Point3[N], up base.Vector3[N], scaling N) (Similarity[N, base.U3, R], error) {
	return SimilarityFromIsometry(IsometryLookAtLH[R](eye, target, up), scaling)
}

// SampleSimilarity draws a random isometry and a scaling from the standard
// distribution of N, redrawing the scaling while it is exactly zero. A
// distribution with a point mass at zero can make this loop for a long time.
func SampleSimilarity[N base.Real, D base.Dim, R Rotation[N, D, R]](rng *rand.Rand) Similarity[N, D, R] {
	scaling := base.SampleScalar[N](rng)
	for scaling == 0 {
		scaling = base.SampleScalar[N](rng)
	}
	return Similarity[N, D, R]{isometry: SampleIsometry[N, D, R](rng), scaling: scaling}
}

// Generate implements quick.Generator with the same zero-scaling rejection
// as SampleSimilarity. Translation and scaling are normal with standard
// deviation size.
func (Similarity[N, D, R]) Generate(rng *quickrand.Rand, size int) reflect.Value {
	scale := generatorScale(size)
	scaling := base.BoundedScalar[N](rng, scale)
	for scaling == 0 {
		scaling = base.BoundedScalar[N](rng, scale)
	}
	return reflect.ValueOf(Similarity[N, D, R]{isometry: arbitraryIsometry[N, D, R](rng, size), scaling: scaling})
}

// CastSimilarity2 converts every component to To. Conversion follows
// base.Cast, so a scaling that underflows To becomes zero.
func CastSimilarity2[To, N base.Real](s Similarity2[N]) Similarity2[To] {
	return Similarity2[To]{isometry: CastIsometry2[To](s.isometry), scaling: To(s.scaling)}
}

// CastSimilarityMatrix2 converts every component to To.
func CastSimilarityMatrix2[To, N base.Real](s SimilarityMatrix2[N]) SimilarityMatrix2[To] {
	return SimilarityMatrix2[To]{isometry: CastIsometryMatrix2[To](s.isometry), scaling: To(s.scaling)}
}

// CastSimilarity3 converts every component to To.
func CastSimilarity3[To, N base.Real](s Similarity3[N]) Similarity3[To] {
	return Similarity3[To]{isometry: CastIsometry3[To](s.isometry), scaling: To(s.scaling)}
}

// CastSimilarityMatrix3 converts every component to To.
func CastSimilarityMatrix3[To, N base.Real](s SimilarityMatrix3[N]) SimilarityMatrix3[To] {
	return SimilarityMatrix3[To]{isometry: CastIsometryMatrix3[To](s.isometry), scaling: To(s.scaling)}
}
