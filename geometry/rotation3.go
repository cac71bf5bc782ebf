package geometry

import (
	quickrand "math/rand"
	"math/rand/v2"
	"reflect"

	"github.com/viant/geomvec/base"
	"github.com/viant/geomvec/internal/numeric"
)

// Rotation3 is a spatial rotation stored as a 3x3 orthonormal matrix.
type Rotation3[N base.Real] struct {
	m base.Matrix3[N]
}

// NewRotation3 builds the rotation about the direction of axisAngle by
// |axisAngle| radians. The zero vector yields the identity.
func NewRotation3[N base.Real](axisAngle base.Vector3[N]) Rotation3[N] {
	angle := axisAngle.Norm()
	if angle == 0 {
		return Rotation3[N]{m: base.Identity3[N]()}
	}
	return Rotation3FromAxisAngle(axisAngle.DivScalar(angle), angle)
}

// Rotation3FromAxisAngle builds the rotation about the unit vector axis by
// angle radians (Rodrigues' formula).
func Rotation3FromAxisAngle[N base.Real](axis base.Vector3[N], angle N) Rotation3[N] {
	s, c := numeric.SinCos(angle)
	t := 1 - c
	x, y, z := axis.X(), axis.Y(), axis.Z()
	return Rotation3[N]{m: base.Matrix3[N]{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c},
	}}
}

// Rotation3FromMatrix wraps m without checking that it is orthonormal.
func Rotation3FromMatrix[N base.Real](m base.Matrix3[N]) Rotation3[N] {
	return Rotation3[N]{m: m}
}

// Rotation3FaceTowards builds the rotation whose z axis is the normalized dir
// and whose x axis is up × z. Collinear dir and up are not detected and
// produce NaN entries.
func Rotation3FaceTowards[N base.Real](dir, up base.Vector3[N]) Rotation3[N] {
	zaxis := dir.Normalize()
	xaxis := base.Cross(up, zaxis).Normalize()
	yaxis := base.Cross(zaxis, xaxis)
	return Rotation3[N]{m: base.Matrix3FromColumns(xaxis, yaxis, zaxis)}
}

// Rotation3LookAtRH builds a right-handed view rotation: dir maps to -z.
func Rotation3LookAtRH[N base.Real](dir, up base.Vector3[N]) Rotation3[N] {
	return Rotation3FaceTowards(dir.Neg(), up).Inverse()
}

// Rotation3LookAtLH builds a left-handed view rotation: dir maps to +z.
func Rotation3LookAtLH[N base.Real](dir, up base.Vector3[N]) Rotation3[N] {
	return Rotation3FaceTowards(dir, up).Inverse()
}

// Matrix returns the row-major rotation matrix.
func (r Rotation3[N]) Matrix() base.Matrix3[N] { return r.m }

// FromScaledAxis is NewRotation3; the receiver is ignored.
func (Rotation3[N]) FromScaledAxis(axisAngle base.Vector3[N]) Rotation3[N] {
	return NewRotation3(axisAngle)
}

// FaceTowards is Rotation3FaceTowards.
func (Rotation3[N]) FaceTowards(dir, up base.Vector3[N]) Rotation3[N] {
	return Rotation3FaceTowards(dir, up)
}

// LookAtRH is Rotation3LookAtRH.
func (Rotation3[N]) LookAtRH(dir, up base.Vector3[N]) Rotation3[N] {
	return Rotation3LookAtRH(dir, up)
}

// LookAtLH is Rotation3LookAtLH.
func (Rotation3[N]) LookAtLH(dir, up base.Vector3[N]) Rotation3[N] {
	return Rotation3LookAtLH(dir, up)
}

// TransformVector multiplies v by the matrix.
func (r Rotation3[N]) TransformVector(v base.Vector3[N]) base.Vector3[N] { return r.m.MulVector(v) }

// TransformPoint rotates p about the origin.
func (r Rotation3[N]) TransformPoint(p Point3[N]) Point3[N] {
	return PointFromVector(r.TransformVector(p.coords))
}

// Compose returns the rotation applying other first, then r.
func (r Rotation3[N]) Compose(other Rotation3[N]) Rotation3[N] {
	return Rotation3[N]{m: r.m.Mul(other.m)}
}

// Inverse returns the transpose.
func (r Rotation3[N]) Inverse() Rotation3[N] { return Rotation3[N]{m: r.m.Transpose()} }

// Identity returns the identity matrix.
func (Rotation3[N]) Identity() Rotation3[N] { return Rotation3[N]{m: base.Identity3[N]()} }

// Sample draws a uniformly distributed rotation through UnitQuaternion.
func (Rotation3[N]) Sample(rng *rand.Rand) Rotation3[N] {
	return UnitQuaternion[N]{}.Sample(rng).ToRotationMatrix()
}

// Equal compares matrices entry by entry.
func (r Rotation3[N]) Equal(other Rotation3[N]) bool { return r.m == other.m }

// Generate implements quick.Generator.
func (Rotation3[N]) Generate(rng *quickrand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(NewRotation3(arbitraryAxisAngle[N](rng)))
}

// CastRotation3 converts the matrix entries to To.
func CastRotation3[To, N base.Real](r Rotation3[N]) Rotation3[To] {
	return Rotation3[To]{m: base.CastMatrix3[To](r.m)}
}

var _ Rotation3D[float64, Rotation3[float64]] = Rotation3[float64]{}
