package geometry

import (
	"fmt"

	"github.com/viant/geomvec/base"
)

// Point is a position in a D-dimensional space.
type Point[N base.Scalar, D base.Dim] struct {
	coords base.Vector[N, D]
}

type (
	Point1[N base.Scalar] = Point[N, base.U1]
	Point2[N base.Scalar] = Point[N, base.U2]
	Point3[N base.Scalar] = Point[N, base.U3]
	Point4[N base.Scalar] = Point[N, base.U4]
	Point5[N base.Scalar] = Point[N, base.U5]
	Point6[N base.Scalar] = Point[N, base.U6]
)

// PointFromVector wraps coordinates into a point.
func PointFromVector[N base.Scalar, D base.Dim](coords base.Vector[N, D]) Point[N, D] {
	return Point[N, D]{coords: coords}
}

// Coords returns the coordinate vector of p.
func (p Point[N, D]) Coords() base.Vector[N, D] { return p.coords }

// Coordinate returns the i-th coordinate.
func (p Point[N, D]) Coordinate(i int) N { return p.coords.At(i) }

// Dim returns the dimension of p.
func (p Point[N, D]) Dim() int { return base.DimOf[D]() }

// X returns the first coordinate. X through B panic when D is too small.
func (p Point[N, D]) X() N { return p.coords.X() }

// Y returns the second coordinate.
func (p Point[N, D]) Y() N { return p.coords.Y() }

// Z returns the third coordinate.
func (p Point[N, D]) Z() N { return p.coords.Z() }

// W returns the fourth coordinate.
func (p Point[N, D]) W() N { return p.coords.W() }

// A returns the fifth coordinate.
func (p Point[N, D]) A() N { return p.coords.A() }

// B returns the sixth coordinate.
func (p Point[N, D]) B() N { return p.coords.B() }

// Sub returns the displacement p - q.
func (p Point[N, D]) Sub(q Point[N, D]) base.Vector[N, D] { return p.coords.Sub(q.coords) }

// AddVector returns p displaced by v.
func (p Point[N, D]) AddVector(v base.Vector[N, D]) Point[N, D] {
	return Point[N, D]{coords: p.coords.Add(v)}
}

// ToHomogeneous returns the (D+1)-dimensional vector (p, 1).
func (p Point[N, D]) ToHomogeneous() base.Vector[N, base.Succ[D]] {
	return base.Push(p.coords, 1)
}

// Equal reports exact coordinate equality.
func (p Point[N, D]) Equal(q Point[N, D]) bool { return p.coords.Equal(q.coords) }

// ApproxEqual reports whether every coordinate is within eps of q.
func (p Point[N, D]) ApproxEqual(q Point[N, D], eps N) bool {
	return p.coords.ApproxEqual(q.coords, eps)
}

// String implements fmt.Stringer.
func (p Point[N, D]) String() string { return fmt.Sprintf("Point%v", p.coords) }
