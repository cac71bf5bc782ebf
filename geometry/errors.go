package geometry

import "errors"

// ErrZeroScaling is returned when a similarity would be built with a scaling
// factor of exactly zero.
var ErrZeroScaling = errors.New("geometry: scaling factor must not be zero")

// DefaultEpsilon is the tolerance used for approximate comparisons of
// transformed coordinates.
const DefaultEpsilon = 1e-6
