package geometry

import (
	"fmt"

	"github.com/viant/geomvec/base"
)

// Translation is a D-dimensional displacement. Unlike Point it carries no
// absolute position.
type Translation[N base.Scalar, D base.Dim] struct {
	vector base.Vector[N, D]
}

type (
	Translation1[N base.Scalar] = Translation[N, base.U1]
	Translation2[N base.Scalar] = Translation[N, base.U2]
	Translation3[N base.Scalar] = Translation[N, base.U3]
	Translation4[N base.Scalar] = Translation[N, base.U4]
	Translation5[N base.Scalar] = Translation[N, base.U5]
	Translation6[N base.Scalar] = Translation[N, base.U6]
)

// TranslationFromVector wraps a displacement vector.
func TranslationFromVector[N base.Scalar, D base.Dim](v base.Vector[N, D]) Translation[N, D] {
	return Translation[N, D]{vector: v}
}

// Vector returns the displacement.
func (t Translation[N, D]) Vector() base.Vector[N, D] { return t.vector }

// TransformPoint displaces p by t.
func (t Translation[N, D]) TransformPoint(p Point[N, D]) Point[N, D] { return p.AddVector(t.vector) }

// Equal reports exact equality.
func (t Translation[N, D]) Equal(o Translation[N, D]) bool { return t.vector.Equal(o.vector) }

// ApproxEqual reports whether every component is within eps of o.
func (t Translation[N, D]) ApproxEqual(o Translation[N, D], eps N) bool {
	return t.vector.ApproxEqual(o.vector, eps)
}

// String implements fmt.Stringer.
func (t Translation[N, D]) String() string { return fmt.Sprintf("Translation%v", t.vector) }
