// Package numeric holds the scalar-level helpers shared by base and geometry:
// kind introspection, bounded values, uniform sampling and arbitrary value
// generation for any built-in integer or floating point type.
package numeric

import (
	"math"
	quickrand "math/rand"
	"math/rand/v2"
	"reflect"
	"testing/quick"

	"golang.org/x/exp/constraints"
)

// Number is the set of scalar types supported by the module.
type Number interface {
	constraints.Integer | constraints.Float
}

func kind[N Number]() reflect.Kind { return reflect.TypeFor[N]().Kind() }

// IsFloat reports whether N is a floating point type.
func IsFloat[N Number]() bool {
	switch kind[N]() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// Max returns the largest finite value representable by N.
func Max[N Number]() N {
	switch kind[N]() {
	case reflect.Float32:
		var v float64 = math.MaxFloat32
		return N(v)
	case reflect.Float64:
		var v float64 = math.MaxFloat64
		return N(v)
	case reflect.Int:
		var v int = math.MaxInt
		return N(v)
	case reflect.Int8:
		var v int8 = math.MaxInt8
		return N(v)
	case reflect.Int16:
		var v int16 = math.MaxInt16
		return N(v)
	case reflect.Int32:
		var v int32 = math.MaxInt32
		return N(v)
	case reflect.Int64:
		var v int64 = math.MaxInt64
		return N(v)
	case reflect.Uint:
		var v uint = math.MaxUint
		return N(v)
	case reflect.Uint8:
		var v uint8 = math.MaxUint8
		return N(v)
	case reflect.Uint16:
		var v uint16 = math.MaxUint16
		return N(v)
	case reflect.Uint32:
		var v uint32 = math.MaxUint32
		return N(v)
	case reflect.Uint64:
		var v uint64 = math.MaxUint64
		return N(v)
	case reflect.Uintptr:
		v := ^uintptr(0)
		return N(v)
	}
	return 0
}

// Min returns the smallest finite value representable by N. For floating
// point types this is the negated maximum, not the smallest positive value.
func Min[N Number]() N {
	switch kind[N]() {
	case reflect.Float32:
		var v float64 = -math.MaxFloat32
		return N(v)
	case reflect.Float64:
		var v float64 = -math.MaxFloat64
		return N(v)
	case reflect.Int:
		var v int = math.MinInt
		return N(v)
	case reflect.Int8:
		var v int8 = math.MinInt8
		return N(v)
	case reflect.Int16:
		var v int16 = math.MinInt16
		return N(v)
	case reflect.Int32:
		var v int32 = math.MinInt32
		return N(v)
	case reflect.Int64:
		var v int64 = math.MinInt64
		return N(v)
	}
	return 0
}

// Uniform draws a standard variate: [0, 1) for floating point types and the
// full value range for integer types.
func Uniform[N Number](rng *rand.Rand) N {
	switch kind[N]() {
	case reflect.Float32:
		return N(rng.Float32())
	case reflect.Float64:
		return N(rng.Float64())
	}
	// Truncating a uniform uint64 keeps the low bits uniform for every width.
	return N(rng.Uint64())
}

// Arbitrary produces a value for property tests using testing/quick's
// generator for the underlying kind.
func Arbitrary[N Number](rng *quickrand.Rand) N {
	v, ok := quick.Value(reflect.TypeFor[N](), rng)
	if !ok {
		return 0
	}
	return v.Interface().(N)
}

// Bounded draws a normal variate with standard deviation scale, rounded for
// integer types, folded for unsigned ones and clamped to the range of N.
func Bounded[N Number](rng *quickrand.Rand, scale float64) N {
	v := rng.NormFloat64() * scale
	if IsFloat[N]() {
		return N(v)
	}
	if Min[N]() == 0 {
		v = math.Abs(v)
	}
	v = math.Max(float64(Min[N]()), math.Min(float64(Max[N]()), math.Round(v)))
	return N(v)
}

// Sqrt computes the square root in float64 precision.
func Sqrt[N Number](x N) N { return N(math.Sqrt(float64(x))) }

// Abs returns |x|.
func Abs[N Number](x N) N {
	if x < 0 {
		return -x
	}
	return x
}

// SinCos returns sin(x) and cos(x) computed in float64 precision.
func SinCos[N Number](x N) (sin, cos N) {
	s, c := math.Sincos(float64(x))
	return N(s), N(c)
}

// Atan2 returns atan2(y, x) computed in float64 precision.
func Atan2[N Number](y, x N) N { return N(math.Atan2(float64(y), float64(x))) }
