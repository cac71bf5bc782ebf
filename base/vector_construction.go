package base

import (
	"fmt"
	quickrand "math/rand"
	"math/rand/v2"
)

// NewVector builds a vector from exactly D components.
func NewVector[N Scalar, D Dim](components ...N) (Vector[N, D], error) {
	if n := DimOf[D](); len(components) != n {
		return Vector[N, D]{}, fmt.Errorf("base: vector of dimension %d built from %d components: %w", n, len(components), ErrDimensionMismatch)
	}
	return Vector[N, D]{data: append([]N(nil), components...)}, nil
}

// VectorFromElement builds a vector with every component equal to e.
func VectorFromElement[N Scalar, D Dim](e N) Vector[N, D] {
	data := make([]N, DimOf[D]())
	for i := range data {
		data[i] = e
	}
	return Vector[N, D]{data: data}
}

// Zeros builds the zero vector.
func Zeros[N Scalar, D Dim]() Vector[N, D] {
	return Vector[N, D]{data: make([]N, DimOf[D]())}
}

// Axis builds the i-th canonical basis vector. It panics if i is not in [0, D).
func Axis[N Scalar, D Dim](i int) Vector[N, D] {
	v := Zeros[N, D]()
	v.data[i] = 1
	return v
}

// MaxVector builds a vector with every component equal to the maximum of N.
func MaxVector[N Scalar, D Dim]() Vector[N, D] { return VectorFromElement[N, D](MaxValue[N]()) }

// MinVector builds a vector with every component equal to the minimum of N.
func MinVector[N Scalar, D Dim]() Vector[N, D] { return VectorFromElement[N, D](MinValue[N]()) }

// SampleVector draws every component independently with SampleScalar.
func SampleVector[N Scalar, D Dim](rng *rand.Rand) Vector[N, D] {
	data := make([]N, DimOf[D]())
	for i := range data {
		data[i] = SampleScalar[N](rng)
	}
	return Vector[N, D]{data: data}
}

// ArbitraryVector generates every component independently with ArbitraryScalar.
func ArbitraryVector[N Scalar, D Dim](rng *quickrand.Rand) Vector[N, D] {
	data := make([]N, DimOf[D]())
	for i := range data {
		data[i] = ArbitraryScalar[N](rng)
	}
	return Vector[N, D]{data: data}
}

// BoundedVector generates every component independently with BoundedScalar.
func BoundedVector[N Scalar, D Dim](rng *quickrand.Rand, scale float64) Vector[N, D] {
	data := make([]N, DimOf[D]())
	for i := range data {
		data[i] = BoundedScalar[N](rng, scale)
	}
	return Vector[N, D]{data: data}
}

// NewVector1 builds a one-dimensional vector.
func NewVector1[N Scalar](x N) Vector1[N] { return Vector1[N]{data: []N{x}} }

// NewVector2 builds a two-dimensional vector.
func NewVector2[N Scalar](x, y N) Vector2[N] { return Vector2[N]{data: []N{x, y}} }

// NewVector3 builds a three-dimensional vector.
func NewVector3[N Scalar](x, y, z N) Vector3[N] { return Vector3[N]{data: []N{x, y, z}} }

// NewVector4 builds a four-dimensional vector.
func NewVector4[N Scalar](x, y, z, w N) Vector4[N] { return Vector4[N]{data: []N{x, y, z, w}} }

// NewVector5 builds a five-dimensional vector.
func NewVector5[N Scalar](x, y, z, w, a N) Vector5[N] {
	return Vector5[N]{data: []N{x, y, z, w, a}}
}

// NewVector6 builds a six-dimensional vector.
func NewVector6[N Scalar](x, y, z, w, a, b N) Vector6[N] {
	return Vector6[N]{data: []N{x, y, z, w, a, b}}
}
