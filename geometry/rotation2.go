package geometry

import (
	"math"
	quickrand "math/rand"
	"math/rand/v2"
	"reflect"

	"github.com/viant/geomvec/base"
	"github.com/viant/geomvec/internal/numeric"
)

// Rotation2 is a planar rotation stored as a 2x2 orthonormal matrix.
type Rotation2[N base.Real] struct {
	m base.Matrix2[N]
}

// NewRotation2 builds the counter-clockwise rotation by angle radians.
func NewRotation2[N base.Real](angle N) Rotation2[N] {
	s, c := numeric.SinCos(angle)
	return Rotation2[N]{m: base.Matrix2[N]{{c, -s}, {s, c}}}
}

// Rotation2FromMatrix wraps m without checking that it is orthonormal.
func Rotation2FromMatrix[N base.Real](m base.Matrix2[N]) Rotation2[N] {
	return Rotation2[N]{m: m}
}

// Matrix returns the row-major rotation matrix.
func (r Rotation2[N]) Matrix() base.Matrix2[N] { return r.m }

// Angle returns the rotation angle in (-π, π].
func (r Rotation2[N]) Angle() N { return numeric.Atan2(r.m[1][0], r.m[0][0]) }

// FromAngle is NewRotation2; the receiver is ignored.
func (Rotation2[N]) FromAngle(angle N) Rotation2[N] { return NewRotation2(angle) }

// TransformVector multiplies v by the matrix.
func (r Rotation2[N]) TransformVector(v base.Vector2[N]) base.Vector2[N] { return r.m.MulVector(v) }

// TransformPoint rotates p about the origin.
func (r Rotation2[N]) TransformPoint(p Point2[N]) Point2[N] {
	return PointFromVector(r.TransformVector(p.coords))
}

// Compose returns the rotation applying other first, then r.
func (r Rotation2[N]) Compose(other Rotation2[N]) Rotation2[N] {
	return Rotation2[N]{m: r.m.Mul(other.m)}
}

// Inverse returns the transpose.
func (r Rotation2[N]) Inverse() Rotation2[N] { return Rotation2[N]{m: r.m.Transpose()} }

// Identity returns the identity matrix.
func (Rotation2[N]) Identity() Rotation2[N] { return Rotation2[N]{m: base.Identity2[N]()} }

// Sample draws an angle uniformly from [-π, π).
func (Rotation2[N]) Sample(rng *rand.Rand) Rotation2[N] {
	return NewRotation2(N(rng.Float64()*2*math.Pi - math.Pi))
}

// Equal compares matrices entry by entry.
func (r Rotation2[N]) Equal(other Rotation2[N]) bool { return r.m == other.m }

// Generate implements quick.Generator.
func (Rotation2[N]) Generate(rng *quickrand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(NewRotation2(arbitraryAngle[N](rng)))
}

// CastRotation2 converts the matrix entries to To.
func CastRotation2[To, N base.Real](r Rotation2[N]) Rotation2[To] {
	return Rotation2[To]{m: base.CastMatrix2[To](r.m)}
}

var _ Rotation2D[float64, Rotation2[float64]] = Rotation2[float64]{}
