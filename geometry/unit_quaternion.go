package geometry

import (
	"math"
	quickrand "math/rand"
	"math/rand/v2"
	"reflect"

	"github.com/viant/geomvec/base"
	"github.com/viant/geomvec/internal/numeric"
)

// UnitQuaternion is a spatial rotation stored as w + i·x + j·y + k·z with
// unit norm.
type UnitQuaternion[N base.Real] struct {
	w, i, j, k N
}

// NewUnitQuaternion builds the rotation about the direction of axisAngle by
// |axisAngle| radians. The zero vector yields the identity.
func NewUnitQuaternion[N base.Real](axisAngle base.Vector3[N]) UnitQuaternion[N] {
	angle := axisAngle.Norm()
	if angle == 0 {
		return UnitQuaternion[N]{w: 1}
	}
	return UnitQuaternionFromAxisAngle(axisAngle.DivScalar(angle), angle)
}

// UnitQuaternionFromAxisAngle builds the rotation about the unit vector axis
// by angle radians.
func UnitQuaternionFromAxisAngle[N base.Real](axis base.Vector3[N], angle N) UnitQuaternion[N] {
	s, c := numeric.SinCos(angle / 2)
	return UnitQuaternion[N]{w: c, i: axis.X() * s, j: axis.Y() * s, k: axis.Z() * s}
}

// UnitQuaternionFromCoords normalizes w + i·x + j·y + k·z. The zero
// quaternion yields NaN components.
func UnitQuaternionFromCoords[N base.Real](w, x, y, z N) UnitQuaternion[N] {
	n := numeric.Sqrt(w*w + x*x + y*y + z*z)
	return UnitQuaternion[N]{w: w / n, i: x / n, j: y / n, k: z / n}
}

// UnitQuaternionFromRotationMatrix converts an orthonormal matrix rotation.
func UnitQuaternionFromRotationMatrix[N base.Real](r Rotation3[N]) UnitQuaternion[N] {
	m := r.m
	var q UnitQuaternion[N]
	switch tr := m[0][0] + m[1][1] + m[2][2]; {
	case tr > 0:
		s := numeric.Sqrt(tr+1) * 2
		q = UnitQuaternion[N]{w: s / 4, i: (m[2][1] - m[1][2]) / s, j: (m[0][2] - m[2][0]) / s, k: (m[1][0] - m[0][1]) / s}
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := numeric.Sqrt(1+m[0][0]-m[1][1]-m[2][2]) * 2
		q = UnitQuaternion[N]{w: (m[2][1] - m[1][2]) / s, i: s / 4, j: (m[0][1] + m[1][0]) / s, k: (m[0][2] + m[2][0]) / s}
	case m[1][1] > m[2][2]:
		s := numeric.Sqrt(1+m[1][1]-m[0][0]-m[2][2]) * 2
		q = UnitQuaternion[N]{w: (m[0][2] - m[2][0]) / s, i: (m[0][1] + m[1][0]) / s, j: s / 4, k: (m[1][2] + m[2][1]) / s}
	default:
		s := numeric.Sqrt(1+m[2][2]-m[0][0]-m[1][1]) * 2
		q = UnitQuaternion[N]{w: (m[1][0] - m[0][1]) / s, i: (m[0][2] + m[2][0]) / s, j: (m[1][2] + m[2][1]) / s, k: s / 4}
	}
	return q
}

// UnitQuaternionFaceTowards is the quaternion form of Rotation3FaceTowards.
func UnitQuaternionFaceTowards[N base.Real](dir, up base.Vector3[N]) UnitQuaternion[N] {
	return UnitQuaternionFromRotationMatrix(Rotation3FaceTowards(dir, up))
}

// UnitQuaternionLookAtRH is the quaternion form of Rotation3LookAtRH.
func UnitQuaternionLookAtRH[N base.Real](dir, up base.Vector3[N]) UnitQuaternion[N] {
	return UnitQuaternionFaceTowards(dir.Neg(), up).Inverse()
}

// UnitQuaternionLookAtLH is the quaternion form of Rotation3LookAtLH.
func UnitQuaternionLookAtLH[N base.Real](dir, up base.Vector3[N]) UnitQuaternion[N] {
	return UnitQuaternionFaceTowards(dir, up).Inverse()
}

// W returns the scalar part.
func (q UnitQuaternion[N]) W() N { return q.w }

// I returns the first component of the vector part.
func (q UnitQuaternion[N]) I() N { return q.i }

// J returns the second component of the vector part.
func (q UnitQuaternion[N]) J() N { return q.j }

// K returns the third component of the vector part.
func (q UnitQuaternion[N]) K() N { return q.k }

// ToRotationMatrix converts q to its matrix form.
func (q UnitQuaternion[N]) ToRotationMatrix() Rotation3[N] { return Rotation3[N]{m: q.Matrix()} }

// Matrix returns the equivalent row-major rotation matrix.
func (q UnitQuaternion[N]) Matrix() base.Matrix3[N] {
	w, x, y, z := q.w, q.i, q.j, q.k
	return base.Matrix3[N]{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}

// FromScaledAxis is NewUnitQuaternion; the receiver is ignored.
func (UnitQuaternion[N]) FromScaledAxis(axisAngle base.Vector3[N]) UnitQuaternion[N] {
	return NewUnitQuaternion(axisAngle)
}

// FaceTowards is UnitQuaternionFaceTowards.
func (UnitQuaternion[N]) FaceTowards(dir, up base.Vector3[N]) UnitQuaternion[N] {
	return UnitQuaternionFaceTowards(dir, up)
}

// LookAtRH is UnitQuaternionLookAtRH.
func (UnitQuaternion[N]) LookAtRH(dir, up base.Vector3[N]) UnitQuaternion[N] {
	return UnitQuaternionLookAtRH(dir, up)
}

// LookAtLH is UnitQuaternionLookAtLH.
func (UnitQuaternion[N]) LookAtLH(dir, up base.Vector3[N]) UnitQuaternion[N] {
	return UnitQuaternionLookAtLH(dir, up)
}

// TransformVector computes v + w·t + u × t with u the vector part and
// t = 2·(u × v).
func (q UnitQuaternion[N]) TransformVector(v base.Vector3[N]) base.Vector3[N] {
	u := base.NewVector3(q.i, q.j, q.k)
	t := base.Cross(u, v).Scale(2)
	return v.Add(t.Scale(q.w)).Add(base.Cross(u, t))
}

// TransformPoint rotates p about the origin.
func (q UnitQuaternion[N]) TransformPoint(p Point3[N]) Point3[N] {
	return PointFromVector(q.TransformVector(p.coords))
}

// Compose returns the Hamilton product q·o.
func (q UnitQuaternion[N]) Compose(o UnitQuaternion[N]) UnitQuaternion[N] {
	return UnitQuaternion[N]{
		w: q.w*o.w - q.i*o.i - q.j*o.j - q.k*o.k,
		i: q.w*o.i + q.i*o.w + q.j*o.k - q.k*o.j,
		j: q.w*o.j - q.i*o.k + q.j*o.w + q.k*o.i,
		k: q.w*o.k + q.i*o.j - q.j*o.i + q.k*o.w,
	}
}

// Inverse returns the conjugate.
func (q UnitQuaternion[N]) Inverse() UnitQuaternion[N] {
	return UnitQuaternion[N]{w: q.w, i: -q.i, j: -q.j, k: -q.k}
}

// Identity returns 1 + 0i + 0j + 0k.
func (UnitQuaternion[N]) Identity() UnitQuaternion[N] { return UnitQuaternion[N]{w: 1} }

// Sample draws a uniformly distributed rotation (Shoemake's method).
func (UnitQuaternion[N]) Sample(rng *rand.Rand) UnitQuaternion[N] {
	u1, u2, u3 := rng.Float64(), rng.Float64(), rng.Float64()
	a, b := math.Sqrt(1-u1), math.Sqrt(u1)
	s1, c1 := math.Sincos(2 * math.Pi * u2)
	s2, c2 := math.Sincos(2 * math.Pi * u3)
	return UnitQuaternion[N]{w: N(b * c2), i: N(a * s1), j: N(a * c1), k: N(b * s2)}
}

// Equal compares components exactly, so q and -q differ.
func (q UnitQuaternion[N]) Equal(o UnitQuaternion[N]) bool { return q == o }

// ApproxEqual compares rotations, treating q and -q as the same rotation.
func (q UnitQuaternion[N]) ApproxEqual(o UnitQuaternion[N], eps N) bool {
	same := numeric.Abs(q.w-o.w) <= eps && numeric.Abs(q.i-o.i) <= eps &&
		numeric.Abs(q.j-o.j) <= eps && numeric.Abs(q.k-o.k) <= eps
	opposite := numeric.Abs(q.w+o.w) <= eps && numeric.Abs(q.i+o.i) <= eps &&
		numeric.Abs(q.j+o.j) <= eps && numeric.Abs(q.k+o.k) <= eps
	return same || opposite
}

// Generate implements quick.Generator.
func (UnitQuaternion[N]) Generate(rng *quickrand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(NewUnitQuaternion(arbitraryAxisAngle[N](rng)))
}

// CastUnitQuaternion converts every component to To without renormalizing.
func CastUnitQuaternion[To, N base.Real](q UnitQuaternion[N]) UnitQuaternion[To] {
	return UnitQuaternion[To]{w: To(q.w), i: To(q.i), j: To(q.j), k: To(q.k)}
}

var _ Rotation3D[float64, UnitQuaternion[float64]] = UnitQuaternion[float64]{}
