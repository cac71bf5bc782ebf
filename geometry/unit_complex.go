package geometry

import (
	"math"
	quickrand "math/rand"
	"math/rand/v2"
	"reflect"

	"github.com/viant/geomvec/base"
	"github.com/viant/geomvec/internal/numeric"
)

// UnitComplex is a planar rotation stored as the unit complex number
// re + i·im = cos θ + i·sin θ.
type UnitComplex[N base.Real] struct {
	re, im N
}

// NewUnitComplex builds the counter-clockwise rotation by angle radians.
func NewUnitComplex[N base.Real](angle N) UnitComplex[N] {
	s, c := numeric.SinCos(angle)
	return UnitComplex[N]{re: c, im: s}
}

// UnitComplexFromCosSin builds the rotation from a cosine and sine pair
// without normalizing it.
func UnitComplexFromCosSin[N base.Real](cos, sin N) UnitComplex[N] {
	return UnitComplex[N]{re: cos, im: sin}
}

// Re returns the cosine of the angle.
func (c UnitComplex[N]) Re() N { return c.re }

// Im returns the sine of the angle.
func (c UnitComplex[N]) Im() N { return c.im }

// Angle returns the rotation angle in (-π, π].
func (c UnitComplex[N]) Angle() N { return numeric.Atan2(c.im, c.re) }

// Matrix returns the equivalent row-major rotation matrix.
func (c UnitComplex[N]) Matrix() base.Matrix2[N] {
	return base.Matrix2[N]{{c.re, -c.im}, {c.im, c.re}}
}

// FromAngle is NewUnitComplex; the receiver is ignored.
func (UnitComplex[N]) FromAngle(angle N) UnitComplex[N] { return NewUnitComplex(angle) }

// TransformVector multiplies v, read as a complex number, by c.
func (c UnitComplex[N]) TransformVector(v base.Vector2[N]) base.Vector2[N] {
	x, y := v.X(), v.Y()
	return base.NewVector2(c.re*x-c.im*y, c.im*x+c.re*y)
}

// TransformPoint rotates p about the origin.
func (c UnitComplex[N]) TransformPoint(p Point2[N]) Point2[N] {
	return PointFromVector(c.TransformVector(p.coords))
}

// Compose returns the complex product c·other.
func (c UnitComplex[N]) Compose(other UnitComplex[N]) UnitComplex[N] {
	return UnitComplex[N]{
		re: c.re*other.re - c.im*other.im,
		im: c.re*other.im + c.im*other.re,
	}
}

// Inverse returns the conjugate.
func (c UnitComplex[N]) Inverse() UnitComplex[N] { return UnitComplex[N]{re: c.re, im: -c.im} }

// Identity returns 1 + 0i.
func (UnitComplex[N]) Identity() UnitComplex[N] { return UnitComplex[N]{re: 1} }

// Sample draws an angle uniformly from [-π, π).
func (UnitComplex[N]) Sample(rng *rand.Rand) UnitComplex[N] {
	return NewUnitComplex(N(rng.Float64()*2*math.Pi - math.Pi))
}

// Equal compares both parts exactly.
func (c UnitComplex[N]) Equal(other UnitComplex[N]) bool { return c == other }

// Generate implements quick.Generator.
func (UnitComplex[N]) Generate(rng *quickrand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(NewUnitComplex(arbitraryAngle[N](rng)))
}

// CastUnitComplex converts both components to To.
func CastUnitComplex[To, N base.Real](c UnitComplex[N]) UnitComplex[To] {
	return UnitComplex[To]{re: To(c.re), im: To(c.im)}
}

var _ Rotation2D[float32, UnitComplex[float32]] = UnitComplex[float32]{}
