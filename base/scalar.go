package base

import (
	quickrand "math/rand"
	"math/rand/v2"

	"github.com/viant/geomvec/internal/numeric"
	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the component types vectors and points can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Real is a constraint for the component types of transforms, which need
// division, square roots and trigonometry.
type Real interface {
	constraints.Float
}

// Cast converts a scalar using Go's numeric conversion rules: float to
// integer truncates toward zero, float64 to float32 rounds to nearest and
// integer narrowing keeps the low bits.
func Cast[To, From Scalar](v From) To { return To(v) }

// MaxValue returns the largest finite value of N.
func MaxValue[N Scalar]() N { return numeric.Max[N]() }

// MinValue returns the smallest finite value of N.
func MinValue[N Scalar]() N { return numeric.Min[N]() }

// SampleScalar draws from the standard distribution of N: [0, 1) for
// floating point types, the full range for integer types.
func SampleScalar[N Scalar](rng *rand.Rand) N { return numeric.Uniform[N](rng) }

// ArbitraryScalar generates a value for property tests.
func ArbitraryScalar[N Scalar](rng *quickrand.Rand) N { return numeric.Arbitrary[N](rng) }

// BoundedScalar generates a value for property tests from a normal
// distribution with standard deviation scale.
func BoundedScalar[N Scalar](rng *quickrand.Rand, scale float64) N {
	return numeric.Bounded[N](rng, scale)
}
