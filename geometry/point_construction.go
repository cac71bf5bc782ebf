package geometry

import (
	"fmt"
	quickrand "math/rand"
	"math/rand/v2"
	"reflect"

	"github.com/viant/geomvec/base"
)

// UninitializedPoint allocates a point whose coordinates are unspecified.
// Go has no uninitialized memory, so the storage is zero-filled in practice,
// but callers must write every coordinate before relying on its value.
func UninitializedPoint[N base.Scalar, D base.Dim]() Point[N, D] {
	return Point[N, D]{coords: base.Zeros[N, D]()}
}

// Origin returns the point with every coordinate equal to zero.
func Origin[N base.Scalar, D base.Dim]() Point[N, D] {
	return Point[N, D]{coords: base.VectorFromElement[N, D](0)}
}

// PointFromSlice copies exactly D components into a new point.
func PointFromSlice[N base.Scalar, D base.Dim](components []N) (Point[N, D], error) {
	coords, err := base.NewVector[N, D](components...)
	if err != nil {
		return Point[N, D]{}, fmt.Errorf("geometry: point from slice: %w", err)
	}
	return Point[N, D]{coords: coords}, nil
}

// FromHomogeneous divides the first D components of v by its last one. It
// returns false when the last component is exactly zero.
func FromHomogeneous[N base.Scalar, D base.Dim](v base.Vector[N, base.Succ[D]]) (Point[N, D], bool) {
	divisor := base.Last(v)
	if divisor == 0 {
		return Point[N, D]{}, false
	}
	return Point[N, D]{coords: base.Head(v).DivScalar(divisor)}, true
}

// CastPoint converts every coordinate to To with base.Cast semantics.
func CastPoint[To, N base.Scalar, D base.Dim](p Point[N, D]) Point[To, D] {
	return Point[To, D]{coords: base.CastVector[To](p.coords)}
}

// MaxPoint returns the point with every coordinate equal to the maximum of N.
func MaxPoint[N base.Scalar, D base.Dim]() Point[N, D] {
	return Point[N, D]{coords: base.MaxVector[N, D]()}
}

// MinPoint returns the point with every coordinate equal to the minimum of N.
func MinPoint[N base.Scalar, D base.Dim]() Point[N, D] {
	return Point[N, D]{coords: base.MinVector[N, D]()}
}

// SamplePoint draws every coordinate independently from the standard
// distribution of N, which is [0, 1) for floating point types.
func SamplePoint[N base.Scalar, D base.Dim](rng *rand.Rand) Point[N, D] {
	return Point[N, D]{coords: base.SampleVector[N, D](rng)}
}

// Generate implements quick.Generator.
func (Point[N, D]) Generate(rng *quickrand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(Point[N, D]{coords: base.ArbitraryVector[N, D](rng)})
}

// NewPoint1 builds a point from its components. NewPoint2 through NewPoint6
// take x, y, z, w, a, b in that order.
func NewPoint1[N base.Scalar](x N) Point1[N] {
	return Point1[N]{coords: base.NewVector1(x)}
}

// NewPoint2 builds a planar point.
func NewPoint2[N base.Scalar](x, y N) Point2[N] {
	return Point2[N]{coords: base.NewVector2(x, y)}
}

// NewPoint3 builds a spatial point.
func NewPoint3[N base.Scalar](x, y, z N) Point3[N] {
	return Point3[N]{coords: base.NewVector3(x, y, z)}
}

// NewPoint4 builds a four-dimensional point.
func NewPoint4[N base.Scalar](x, y, z, w N) Point4[N] {
	return Point4[N]{coords: base.NewVector4(x, y, z, w)}
}

// NewPoint5 builds a five-dimensional point.
func NewPoint5[N base.Scalar](x, y, z, w, a N) Point5[N] {
	return Point5[N]{coords: base.NewVector5(x, y, z, w, a)}
}

// NewPoint6 builds a six-dimensional point.
func NewPoint6[N base.Scalar](x, y, z, w, a, b N) Point6[N] {
	return Point6[N]{coords: base.NewVector6(x, y, z, w, a, b)}
}

// Point1FromArray converts an array of length D into a point, as do its
// siblings up to Point6FromArray.
func Point1FromArray[N base.Scalar](c [1]N) Point1[N] { return NewPoint1(c[0]) }

// Point2FromArray builds a point from c.
func Point2FromArray[N base.Scalar](c [2]N) Point2[N] { return NewPoint2(c[0], c[1]) }

// Point3FromArray builds a point from c.
func Point3FromArray[N base.Scalar](c [3]N) Point3[N] { return NewPoint3(c[0], c[1], c[2]) }

// Point4FromArray builds a point from c.
func Point4FromArray[N base.Scalar](c [4]N) Point4[N] { return NewPoint4(c[0], c[1], c[2], c[3]) }

// Point5FromArray builds a point from c.
func Point5FromArray[N base.Scalar](c [5]N) Point5[N] {
	return NewPoint5(c[0], c[1], c[2], c[3], c[4])
}

// Point6FromArray builds a point from c.
func Point6FromArray[N base.Scalar](c [6]N) Point6[N] {
	return NewPoint6(c[0], c[1], c[2], c[3], c[4], c[5])
}
