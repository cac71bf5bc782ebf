package geometry

import "github.com/viant/geomvec/base"

// Distance computes the Euclidean distance between two points of the same
// dimension. float32 points are measured with the viant/vec kernel.
func Distance[N base.Scalar, D base.Dim](a, b Point[N, D]) N {
	return a.coords.Distance(b.coords)
}

// DistanceSquared computes the squared Euclidean distance, avoiding the
// square root.
func DistanceSquared[N base.Scalar, D base.Dim](a, b Point[N, D]) N {
	return a.Sub(b).NormSquared()
}
