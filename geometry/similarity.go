package geometry

import (
	"fmt"

	"github.com/viant/geomvec/base"
)

// Similarity is an isometry combined with a uniform scaling factor. The
// scaling is applied first, centered at the origin, then the rotation and
// the translation. A Similarity built by this package never has a scaling of
// exactly zero.
type Similarity[N base.Real, D base.Dim, R Rotation[N, D, R]] struct {
	isometry Isometry[N, D, R]
	scaling  N
}

type (
	Similarity2[N base.Real]       = Similarity[N, base.U2, UnitComplex[N]]
	SimilarityMatrix2[N base.Real] = Similarity[N, base.U2, Rotation2[N]]
	Similarity3[N base.Real]       = Similarity[N, base.U3, UnitQuaternion[N]]
	SimilarityMatrix3[N base.Real] = Similarity[N, base.U3, Rotation3[N]]
)

// Isometry returns the rigid part applied after scaling.
func (s Similarity[N, D, R]) Isometry() Isometry[N, D, R] { return s.isometry }

// Translation returns the translational part.
func (s Similarity[N, D, R]) Translation() Translation[N, D] { return s.isometry.translation }

// Rotation returns the rotational part.
func (s Similarity[N, D, R]) Rotation() R { return s.isometry.rotation }

// Scaling returns the uniform scale factor, never zero.
func (s Similarity[N, D, R]) Scaling() N { return s.scaling }

// TransformPoint scales p about the origin, then applies the isometry.
func (s Similarity[N, D, R]) TransformPoint(p Point[N, D]) Point[N, D] {
	return s.isometry.TransformPoint(PointFromVector(p.coords.Scale(s.scaling)))
}

// TransformVector scales then rotates v.
func (s Similarity[N, D, R]) TransformVector(v base.Vector[N, D]) base.Vector[N, D] {
	return s.isometry.TransformVector(v.Scale(s.scaling))
}

// Equal reports exact equality of the isometry and the scaling.
func (s Similarity[N, D, R]) Equal(o Similarity[N, D, R]) bool {
	return s.scaling == o.scaling && s.isometry.Equal(o.isometry)
}

// String implements fmt.Stringer.
func (s Similarity[N, D, R]) String() string {
	return fmt.Sprintf("Similarity{isometry: %v, scaling: %v}", s.isometry, s.scaling)
}
