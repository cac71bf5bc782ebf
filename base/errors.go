package base

import "errors"

// ErrDimensionMismatch is returned when the number of supplied components
// does not match the dimension of the entity being built.
var ErrDimensionMismatch = errors.New("base: dimension mismatch")
