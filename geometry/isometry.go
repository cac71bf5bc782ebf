package geometry

import (
	"fmt"

	"github.com/viant/geomvec/base"
)

// Isometry is a distance-preserving transform: a rotation followed by a
// translation.
type Isometry[N base.Real, D base.Dim, R Rotation[N, D, R]] struct {
	translation Translation[N, D]
	rotation    R
}

type (
	Isometry2[N base.Real]       = Isometry[N, base.U2, UnitComplex[N]]
	IsometryMatrix2[N base.Real] = Isometry[N, base.U2, Rotation2[N]]
	Isometry3[N base.Real]       = Isometry[N, base.U3, UnitQuaternion[N]]
	IsometryMatrix3[N base.Real] = Isometry[N, base.U3, Rotation3[N]]
)

// Translation returns the translational part.
func (iso Isometry[N, D, R]) Translation() Translation[N, D] { return iso.translation }

// Rotation returns the rotational part.
func (iso Isometry[N, D, R]) Rotation() R { return iso.rotation }

// TransformPoint rotates p about the origin, then translates it.
func (iso Isometry[N, D, R]) TransformPoint(p Point[N, D]) Point[N, D] {
	return iso.translation.TransformPoint(iso.rotation.TransformPoint(p))
}

// TransformVector rotates v; translations do not act on vectors.
func (iso Isometry[N, D, R]) TransformVector(v base.Vector[N, D]) base.Vector[N, D] {
	return iso.rotation.TransformVector(v)
}

// Equal reports exact equality of both parts.
func (iso Isometry[N, D, R]) Equal(o Isometry[N, D, R]) bool {
	return iso.translation.Equal(o.translation) && iso.rotation.Equal(o.rotation)
}

// String implements fmt.Stringer.
func (iso Isometry[N, D, R]) String() string {
	return fmt.Sprintf("Isometry{translation: %v, rotation: %v}", iso.translation.vector, iso.rotation)
}
