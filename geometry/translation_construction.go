package geometry

import (
	quickrand "math/rand"
	"math/rand/v2"
	"reflect"

	"github.com/viant/geomvec/base"
)

// IdentityTranslation returns the zero displacement.
func IdentityTranslation[N base.Scalar, D base.Dim]() Translation[N, D] {
	return Translation[N, D]{vector: base.VectorFromElement[N, D](0)}
}

// Identity returns the zero displacement. The receiver is ignored, so it can
// be called on the zero value from generic code.
func (Translation[N, D]) Identity() Translation[N, D] { return IdentityTranslation[N, D]() }

// One returns the multiplicative identity under transform composition, which
// for translations is the zero displacement.
func (Translation[N, D]) One() Translation[N, D] { return IdentityTranslation[N, D]() }

// CastTranslation converts every component to To with base.Cast semantics.
func CastTranslation[To, N base.Scalar, D base.Dim](t Translation[N, D]) Translation[To, D] {
	return Translation[To, D]{vector: base.CastVector[To](t.vector)}
}

// SampleTranslation draws every component from the standard distribution of N.
func SampleTranslation[N base.Scalar, D base.Dim](rng *rand.Rand) Translation[N, D] {
	return Translation[N, D]{vector: base.SampleVector[N, D](rng)}
}

// Generate implements quick.Generator. Components are normal with standard
// deviation size, so composed transforms stay finite.
func (Translation[N, D]) Generate(rng *quickrand.Rand, size int) reflect.Value {
	return reflect.ValueOf(arbitraryTranslation[N, D](rng, size))
}

func arbitraryTranslation[N base.Scalar, D base.Dim](rng *quickrand.Rand, size int) Translation[N, D] {
	return Translation[N, D]{vector: base.BoundedVector[N, D](rng, generatorScale(size))}
}

// generatorScale maps a quick size hint to a positive standard deviation.
func generatorScale(size int) float64 { return float64(max(size, 1)) }

// NewTranslation1 builds a translation from its components; the same holds
// for NewTranslation2 through NewTranslation6 with components x, y, z, w, a, b.
func NewTranslation1[N base.Scalar](x N) Translation1[N] {
	return Translation1[N]{vector: base.NewVector1(x)}
}

// NewTranslation2 builds a planar translation.
func NewTranslation2[N base.Scalar](x, y N) Translation2[N] {
	return Translation2[N]{vector: base.NewVector2(x, y)}
}

// NewTranslation3 builds a spatial translation.
func NewTranslation3[N base.Scalar](x, y, z N) Translation3[N] {
	return Translation3[N]{vector: base.NewVector3(x, y, z)}
}

// NewTranslation4 builds a four-dimensional translation.
func NewTranslation4[N base.Scalar](x, y, z, w N) Translation4[N] {
	return Translation4[N]{vector: base.NewVector4(x, y, z, w)}
}

// NewTranslation5 builds a five-dimensional translation.
func NewTranslation5[N base.Scalar](x, y, z, w, a N) Translation5[N] {
	return Translation5[N]{vector: base.NewVector5(x, y, z, w, a)}
}

// NewTranslation6 builds a six-dimensional translation.
func NewTranslation6[N base.Scalar](x, y, z, w, a, b N) Translation6[N] {
	return Translation6[N]{vector: base.NewVector6(x, y, z, w, a, b)}
}
