package geometry

import (
	"math"
	"math/rand/v2"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/geomvec/base"
)

const eps = 1e-12

func TestPlanarRotations(t *testing.T) {
	var testCases = []struct {
		description string
		angle       float64
		input       base.Vector2[float64]
		expect      base.Vector2[float64]
	}{
		{description: "quarter turn", angle: math.Pi / 2, input: base.NewVector2(1.0, 0.0), expect: base.NewVector2(0.0, 1.0)},
		{description: "half turn", angle: math.Pi, input: base.NewVector2(2.0, 3.0), expect: base.NewVector2(-2.0, -3.0)},
		{description: "clockwise quarter", angle: -math.Pi / 2, input: base.NewVector2(0.0, 1.0), expect: base.NewVector2(1.0, 0.0)},
		{description: "no turn", angle: 0, input: base.NewVector2(5.0, -4.0), expect: base.NewVector2(5.0, -4.0)},
	}
	for _, testCase := range testCases {
		c := NewUnitComplex(testCase.angle)
		m := NewRotation2(testCase.angle)
		assert.True(t, c.TransformVector(testCase.input).ApproxEqual(testCase.expect, eps), testCase.description)
		assert.True(t, m.TransformVector(testCase.input).ApproxEqual(testCase.expect, eps), testCase.description)
		assert.True(t, c.Matrix().ApproxEqual(m.Matrix(), eps), testCase.description)
		assert.InDelta(t, testCase.angle, c.Angle(), eps, testCase.description)
		assert.InDelta(t, testCase.angle, m.Angle(), eps, testCase.description)
	}
}

func TestPlanarComposeInverse(t *testing.T) {
	a, b := NewUnitComplex(0.3), NewUnitComplex(1.1)
	assert.InDelta(t, 1.4, a.Compose(b).Angle(), eps)
	id := a.Compose(a.Inverse())
	assert.InDelta(t, 1.0, id.Re(), eps)
	assert.InDelta(t, 0.0, id.Im(), eps)

	m := NewRotation2(0.7)
	assert.True(t, m.Compose(m.Inverse()).Matrix().ApproxEqual(base.Identity2[float64](), eps))
	assert.InDelta(t, 1.4, m.Compose(m).Angle(), eps)

	var zero UnitComplex[float64]
	assert.True(t, zero.Identity().Equal(UnitComplexFromCosSin(1.0, 0.0)))
	assert.True(t, NewUnitComplex(0.0).Equal(zero.FromAngle(0)))
}

func TestRotation3FromAxisAngle(t *testing.T) {
	axisAngle := base.NewVector3(0, math.Pi/2, 0)
	m := NewRotation3(axisAngle)
	q := NewUnitQuaternion(axisAngle)
	v := base.NewVector3(4.0, 5.0, 6.0)
	expect := base.NewVector3(6.0, 5.0, -4.0)
	assert.True(t, m.TransformVector(v).ApproxEqual(expect, eps))
	assert.True(t, q.TransformVector(v).ApproxEqual(expect, eps))
	assert.True(t, q.Matrix().ApproxEqual(m.Matrix(), eps))

	id := NewRotation3(base.Zeros[float64, base.U3]())
	assert.True(t, id.Equal(Rotation3[float64]{}.Identity()))
	assert.True(t, NewUnitQuaternion(base.Zeros[float64, base.U3]()).Equal(UnitQuaternion[float64]{}.Identity()))
}

func TestUnitQuaternionMatrixRoundTrip(t *testing.T) {
	var testCases = []struct {
		description string
		axisAngle   base.Vector3[float64]
	}{
		{description: "generic axis", axisAngle: base.NewVector3(0.3, -0.2, 0.9)},
		{description: "near half turn about x", axisAngle: base.NewVector3(3.1, 0, 0)},
		{description: "near half turn about y", axisAngle: base.NewVector3(0, 3.1, 0)},
		{description: "near half turn about z", axisAngle: base.NewVector3(0, 0, -3.1)},
		{description: "identity", axisAngle: base.NewVector3(0.0, 0.0, 0.0)},
	}
	for _, testCase := range testCases {
		q := NewUnitQuaternion(testCase.axisAngle)
		actual := UnitQuaternionFromRotationMatrix(q.ToRotationMatrix())
		assert.True(t, actual.ApproxEqual(q, eps), testCase.description)
	}
}

func TestUnitQuaternionCompose(t *testing.T) {
	a := NewUnitQuaternion(base.NewVector3(0.2, 0.4, -0.1))
	b := NewUnitQuaternion(base.NewVector3(-1.0, 0.5, 0.3))
	v := base.NewVector3(1.0, -2.0, 0.5)

	composed := a.Compose(b).TransformVector(v)
	assert.True(t, composed.ApproxEqual(a.TransformVector(b.TransformVector(v)), eps))

	ma, mb := a.ToRotationMatrix(), b.ToRotationMatrix()
	assert.True(t, ma.Compose(mb).TransformVector(v).ApproxEqual(composed, eps))
	assert.True(t, a.Compose(a.Inverse()).ApproxEqual(UnitQuaternion[float64]{}.Identity(), eps))
	assert.True(t, ma.Compose(ma.Inverse()).Matrix().ApproxEqual(base.Identity3[float64](), eps))

	assert.True(t, UnitQuaternionFromCoords(2.0, 0.0, 0.0, 0.0).Equal(UnitQuaternion[float64]{}.Identity()))
}

func TestFaceTowards(t *testing.T) {
	dir, up := base.NewVector3(1.0, 0.0, 0.0), base.NewVector3(0.0, 1.0, 0.0)
	m := Rotation3FaceTowards(dir, up)
	assert.True(t, m.TransformVector(base.NewVector3(0.0, 0.0, 1.0)).ApproxEqual(dir, eps))
	assert.True(t, m.TransformVector(base.NewVector3(1.0, 0.0, 0.0)).ApproxEqual(base.NewVector3(0.0, 0.0, -1.0), eps))
	assert.True(t, m.TransformVector(up).ApproxEqual(up, eps))

	q := UnitQuaternionFaceTowards(dir, up)
	half := math.Sqrt2 / 2
	assert.True(t, q.ApproxEqual(UnitQuaternionFromCoords(half, 0, half, 0), eps))
}

func TestLookAt(t *testing.T) {
	dir, up := base.NewVector3(1.0, 0.0, 0.0), base.NewVector3(0.0, 1.0, 0.0)
	minusZ, plusZ := base.NewVector3(0.0, 0.0, -1.0), base.NewVector3(0.0, 0.0, 1.0)

	assert.True(t, Rotation3LookAtRH(dir, up).TransformVector(dir).ApproxEqual(minusZ, eps))
	assert.True(t, UnitQuaternionLookAtRH(dir, up).TransformVector(dir).ApproxEqual(minusZ, eps))
	assert.True(t, Rotation3LookAtLH(dir, up).TransformVector(dir).ApproxEqual(plusZ, eps))
	assert.True(t, UnitQuaternionLookAtLH(dir, up).TransformVector(dir).ApproxEqual(plusZ, eps))

	// the up vector stays in the upper half of the view plane
	assert.Greater(t, Rotation3LookAtRH(dir, up).TransformVector(up).Y(), 0.0)
}

func TestSampleRotations(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 50 {
		c := UnitComplex[float64]{}.Sample(rng)
		assert.InDelta(t, 1.0, c.Re()*c.Re()+c.Im()*c.Im(), eps)

		m := Rotation2[float64]{}.Sample(rng)
		assert.True(t, m.Matrix().Mul(m.Matrix().Transpose()).ApproxEqual(base.Identity2[float64](), eps))

		q := UnitQuaternion[float64]{}.Sample(rng)
		assert.InDelta(t, 1.0, q.W()*q.W()+q.I()*q.I()+q.J()*q.J()+q.K()*q.K(), eps)

		r := Rotation3[float64]{}.Sample(rng)
		assert.True(t, r.Matrix().Mul(r.Matrix().Transpose()).ApproxEqual(base.Identity3[float64](), eps))
	}
}

func TestArbitraryRotationsPreserveNorm(t *testing.T) {
	preserve := func(c UnitComplex[float64], m Rotation2[float64], q UnitQuaternion[float64], r Rotation3[float64]) bool {
		v2 := base.NewVector2(3.0, -4.0)
		v3 := base.NewVector3(1.0, 2.0, -2.0)
		return math.Abs(c.TransformVector(v2).Norm()-5) < 1e-9 &&
			math.Abs(m.TransformVector(v2).Norm()-5) < 1e-9 &&
			math.Abs(q.TransformVector(v3).Norm()-3) < 1e-9 &&
			math.Abs(r.TransformVector(v3).Norm()-3) < 1e-9
	}
	require.NoError(t, quick.Check(preserve, nil))
}

func TestCastRotations(t *testing.T) {
	q := CastUnitQuaternion[float32](NewUnitQuaternion(base.NewVector3(0.0, 0.0, math.Pi/2)))
	assert.True(t, q.TransformVector(base.NewVector3[float32](1, 0, 0)).ApproxEqual(base.NewVector3[float32](0, 1, 0), 1e-6))

	c := CastUnitComplex[float32](NewUnitComplex(math.Pi))
	assert.InDelta(t, -1.0, float64(c.Re()), 1e-6)

	m2 := CastRotation2[float32](NewRotation2(0.5))
	assert.InDelta(t, 0.5, float64(m2.Angle()), 1e-6)

	m3 := CastRotation3[float32](NewRotation3(base.NewVector3(0.0, math.Pi/2, 0.0)))
	assert.True(t, m3.Matrix().ApproxEqual(base.Matrix3[float32]{{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}}, 1e-6))
}
