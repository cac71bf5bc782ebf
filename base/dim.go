package base

// Dim identifies a dimension at the type level. Implementations are zero-size
// types whose Dim method does not depend on the receiver.
type Dim interface {
	Dim() int
}

// U1 is the dimension one.
type U1 struct{}

// Dim returns 1.
func (U1) Dim() int { return 1 }

// Succ is the dimension D+1.
type Succ[D Dim] struct{}

// Dim returns the dimension of D plus one.
func (Succ[D]) Dim() int {
	var d D
	return d.Dim() + 1
}

type (
	U2 = Succ[U1]
	U3 = Succ[U2]
	U4 = Succ[U3]
	U5 = Succ[U4]
	U6 = Succ[U5]
)

// DimOf returns the runtime value of the dimension D.
func DimOf[D Dim]() int {
	var d D
	return d.Dim()
}
