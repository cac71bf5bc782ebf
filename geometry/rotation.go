package geometry

import (
	"math"
	quickrand "math/rand"
	"math/rand/v2"
	"testing/quick"

	"github.com/viant/geomvec/base"
)

// Rotation is the capability shared by every rotation representation. R is
// the concrete rotation type itself. Identity and Sample do not depend on
// their receiver so generic code can call them on the zero value of R.
type Rotation[N base.Real, D base.Dim, R any] interface {
	// TransformVector rotates v.
	TransformVector(v base.Vector[N, D]) base.Vector[N, D]
	// TransformPoint rotates p about the origin.
	TransformPoint(p Point[N, D]) Point[N, D]
	// Compose returns the rotation that applies other first, then the receiver.
	Compose(other R) R
	// Inverse returns the opposite rotation.
	Inverse() R
	Identity() R
	// Sample draws a uniformly distributed rotation.
	Sample(rng *rand.Rand) R
	Equal(other R) bool
	quick.Generator
}

// Rotation2D is implemented by planar rotations.
type Rotation2D[N base.Real, R any] interface {
	Rotation[N, base.U2, R]
	// FromAngle builds the rotation by angle radians; the receiver is ignored.
	FromAngle(angle N) R
	Angle() N
	Matrix() base.Matrix2[N]
}

// Rotation3D is implemented by spatial rotations. The factory methods ignore
// their receiver.
type Rotation3D[N base.Real, R any] interface {
	Rotation[N, base.U3, R]
	// FromScaledAxis builds the rotation about axisAngle by |axisAngle| radians.
	FromScaledAxis(axisAngle base.Vector3[N]) R
	// FaceTowards maps the local z axis to dir; up must not be collinear with dir.
	FaceTowards(dir, up base.Vector3[N]) R
	// LookAtRH builds a right-handed view rotation mapping dir to -z.
	LookAtRH(dir, up base.Vector3[N]) R
	// LookAtLH builds a left-handed view rotation mapping dir to +z.
	LookAtLH(dir, up base.Vector3[N]) R
	Matrix() base.Matrix3[N]
}

// arbitraryAngle draws an angle in [-π, π) from a testing/quick source.
func arbitraryAngle[N base.Real](rng *quickrand.Rand) N {
	return N(rng.Float64()*2*math.Pi - math.Pi)
}

// arbitraryAxisAngle draws a normally distributed direction scaled by an
// angle in [0, 2π) from a testing/quick source.
func arbitraryAxisAngle[N base.Real](rng *quickrand.Rand) base.Vector3[N] {
	axis := base.NewVector3(N(rng.NormFloat64()), N(rng.NormFloat64()), N(rng.NormFloat64()))
	if axis.IsZero() {
		return axis
	}
	return axis.Normalize().Scale(N(rng.Float64() * 2 * math.Pi))
}
