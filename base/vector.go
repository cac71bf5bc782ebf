package base

import (
	"fmt"
	quickrand "math/rand"
	"reflect"

	"github.com/viant/geomvec/internal/numeric"
	"github.com/viant/vec/search"
)

// Vector is an immutable D-dimensional column vector with components of type
// N. Every operation returns a new vector; the zero value holds no storage
// and must not be read.
type Vector[N Scalar, D Dim] struct {
	data []N
}

type (
	Vector1[N Scalar] = Vector[N, U1]
	Vector2[N Scalar] = Vector[N, U2]
	Vector3[N Scalar] = Vector[N, U3]
	Vector4[N Scalar] = Vector[N, U4]
	Vector5[N Scalar] = Vector[N, U5]
	Vector6[N Scalar] = Vector[N, U6]
)

// Dim returns the number of components.
func (v Vector[N, D]) Dim() int { return DimOf[D]() }

// At returns the i-th component.
func (v Vector[N, D]) At(i int) N { return v.data[i] }

// X returns the first component.
func (v Vector[N, D]) X() N { return v.data[0] }

// Y returns the second component.
func (v Vector[N, D]) Y() N { return v.data[1] }

// Z returns the third component.
func (v Vector[N, D]) Z() N { return v.data[2] }

// W returns the fourth component.
func (v Vector[N, D]) W() N { return v.data[3] }

// A returns the fifth component.
func (v Vector[N, D]) A() N { return v.data[4] }

// B returns the sixth component.
func (v Vector[N, D]) B() N { return v.data[5] }

// Slice returns a copy of the components.
func (v Vector[N, D]) Slice() []N { return append([]N(nil), v.data...) }

// Add returns v + o.
func (v Vector[N, D]) Add(o Vector[N, D]) Vector[N, D] {
	out := make([]N, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] + o.data[i]
	}
	return Vector[N, D]{data: out}
}

// Sub returns v - o.
func (v Vector[N, D]) Sub(o Vector[N, D]) Vector[N, D] {
	out := make([]N, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] - o.data[i]
	}
	return Vector[N, D]{data: out}
}

// Neg returns -v.
func (v Vector[N, D]) Neg() Vector[N, D] {
	return v.Map(func(x N) N { return -x })
}

// Scale multiplies every component by s.
func (v Vector[N, D]) Scale(s N) Vector[N, D] {
	return v.Map(func(x N) N { return x * s })
}

// DivScalar divides every component by s.
func (v Vector[N, D]) DivScalar(s N) Vector[N, D] {
	return v.Map(func(x N) N { return x / s })
}

// Map applies fn to every component.
func (v Vector[N, D]) Map(fn func(N) N) Vector[N, D] {
	out := make([]N, len(v.data))
	for i, x := range v.data {
		out[i] = fn(x)
	}
	return Vector[N, D]{data: out}
}

// Dot returns the inner product of v and o.
func (v Vector[N, D]) Dot(o Vector[N, D]) N {
	var sum N
	for i := range v.data {
		sum += v.data[i] * o.data[i]
	}
	return sum
}

// NormSquared returns the squared Euclidean norm.
func (v Vector[N, D]) NormSquared() N { return v.Dot(v) }

// Norm returns the Euclidean norm. float32 vectors use the viant/vec kernel.
func (v Vector[N, D]) Norm() N {
	if f, ok := any(v.data).([]float32); ok {
		return N(search.Float32s(f).Magnitude())
	}
	return numeric.Sqrt(v.NormSquared())
}

// Normalize returns v divided by its norm. The zero vector yields NaN
// components for floating point N.
func (v Vector[N, D]) Normalize() Vector[N, D] { return v.DivScalar(v.Norm()) }

// Distance returns the Euclidean distance between v and o.
func (v Vector[N, D]) Distance(o Vector[N, D]) N {
	if a, ok := any(v.data).([]float32); ok {
		return N(search.Float32s(a).EuclideanDistance(any(o.data).([]float32)))
	}
	return v.Sub(o).Norm()
}

// Equal reports exact component-wise equality.
func (v Vector[N, D]) Equal(o Vector[N, D]) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether every component differs from o by at most eps.
func (v Vector[N, D]) ApproxEqual(o Vector[N, D], eps N) bool {
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if numeric.Abs(v.data[i]-o.data[i]) > eps {
			return false
		}
	}
	return true
}

// IsZero reports whether every component is exactly zero.
func (v Vector[N, D]) IsZero() bool {
	for _, x := range v.data {
		if x != 0 {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (v Vector[N, D]) String() string { return fmt.Sprint(v.data) }

// Generate implements quick.Generator.
func (Vector[N, D]) Generate(rng *quickrand.Rand, _ int) reflect.Value {
	return reflect.ValueOf(ArbitraryVector[N, D](rng))
}

// Cross returns the cross product a × b.
func Cross[N Scalar](a, b Vector3[N]) Vector3[N] {
	return Vector3[N]{data: []N{
		a.data[1]*b.data[2] - a.data[2]*b.data[1],
		a.data[2]*b.data[0] - a.data[0]*b.data[2],
		a.data[0]*b.data[1] - a.data[1]*b.data[0],
	}}
}

// Head returns the first D components of a (D+1)-dimensional vector.
func Head[N Scalar, D Dim](v Vector[N, Succ[D]]) Vector[N, D] {
	n := DimOf[D]()
	return Vector[N, D]{data: append([]N(nil), v.data[:n]...)}
}

// Last returns the final component of a (D+1)-dimensional vector.
func Last[N Scalar, D Dim](v Vector[N, Succ[D]]) N { return v.data[DimOf[D]()] }

// Push appends last to v, producing a (D+1)-dimensional vector.
func Push[N Scalar, D Dim](v Vector[N, D], last N) Vector[N, Succ[D]] {
	out := make([]N, 0, len(v.data)+1)
	out = append(out, v.data...)
	return Vector[N, Succ[D]]{data: append(out, last)}
}

// CastVector converts every component to To using Cast.
func CastVector[To, N Scalar, D Dim](v Vector[N, D]) Vector[To, D] {
	out := make([]To, len(v.data))
	for i, x := range v.data {
		out[i] = To(x)
	}
	return Vector[To, D]{data: out}
}
