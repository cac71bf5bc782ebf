package geometry

import (
	"math"
	quickrand "math/rand"
	"math/rand/v2"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/geomvec/base"
)

func TestIdentitySimilarity(t *testing.T) {
	id := IdentitySimilarity[float64, base.U2, UnitComplex[float64]]()
	assert.Equal(t, 1.0, id.Scaling())
	p := NewPoint2(3.0, -7.0)
	assert.True(t, id.TransformPoint(p).Equal(p))
	v := base.NewVector2(-1.5, 0.25)
	assert.True(t, id.TransformVector(v).Equal(v))
	assert.True(t, id.Equal(Similarity2[float64]{}.Identity()))
	assert.True(t, id.Equal(Similarity2[float64]{}.One()))

	id3 := IdentitySimilarity[float64, base.U3, Rotation3[float64]]()
	assert.True(t, id3.Isometry().Equal(IdentityIsometry[float64, base.U3, Rotation3[float64]]()))
}

func TestPlanarSimilarity(t *testing.T) {
	translation := base.NewVector2(1.0, 2.0)
	p, expect := NewPoint2(2.0, 4.0), NewPoint2(-11.0, 8.0)

	sim, err := NewSimilarity2(translation, math.Pi/2, 3.0)
	require.NoError(t, err)
	assert.True(t, sim.TransformPoint(p).ApproxEqual(expect, eps))
	assert.True(t, sim.TransformVector(base.NewVector2(2.0, 4.0)).ApproxEqual(base.NewVector2(-12.0, 6.0), eps))
	assert.Equal(t, 3.0, sim.Scaling())
	assert.True(t, sim.Translation().Equal(TranslationFromVector(translation)))

	matrix, err := NewSimilarityMatrix2(translation, math.Pi/2, 3.0)
	require.NoError(t, err)
	assert.True(t, matrix.TransformPoint(p).ApproxEqual(expect, eps))
	assert.True(t, matrix.Rotation().Matrix().ApproxEqual(sim.Rotation().Matrix(), eps))
}

func TestSpatialSimilarity(t *testing.T) {
	translation, axisAngle := base.NewVector3(1.0, 2.0, 3.0), base.NewVector3(0, math.Pi/2, 0)
	p, expectPoint := NewPoint3(4.0, 5.0, 6.0), NewPoint3(19.0, 17.0, -9.0)
	v, expectVector := base.NewVector3(4.0, 5.0, 6.0), base.NewVector3(18.0, 15.0, -12.0)

	sim, err := NewSimilarity3(translation, axisAngle, 3.0)
	require.NoError(t, err)
	assert.True(t, sim.TransformPoint(p).ApproxEqual(expectPoint, eps))
	assert.True(t, sim.TransformVector(v).ApproxEqual(expectVector, eps))

	matrix, err := NewSimilarityMatrix3(translation, axisAngle, 3.0)
	require.NoError(t, err)
	assert.True(t, matrix.TransformPoint(p).ApproxEqual(expectPoint, eps))
	assert.True(t, matrix.TransformVector(v).ApproxEqual(expectVector, eps))
}

func TestSimilarityFaceTowards(t *testing.T) {
	eye, target := NewPoint3(1.0, 2.0, 3.0), NewPoint3(2.0, 2.0, 3.0)
	up := base.NewVector3(0.0, 1.0, 0.0)
	z := base.NewVector3(0.0, 0.0, 1.0)

	quat, err := SimilarityFaceTowards[UnitQuaternion[float64]](eye, target, up, 3.0)
	require.NoError(t, err)
	assert.True(t, quat.TransformPoint(Origin[float64, base.U3]()).Equal(eye))
	assert.True(t, quat.TransformVector(z).ApproxEqual(base.NewVector3(3.0, 0.0, 0.0), eps))
	half := math.Sqrt2 / 2
	assert.True(t, quat.Rotation().ApproxEqual(UnitQuaternionFromCoords(half, 0, half, 0), eps))

	matrix, err := SimilarityFaceTowards[Rotation3[float64]](eye, target, up, 3.0)
	require.NoError(t, err)
	assert.True(t, matrix.TransformPoint(Origin[float64, base.U3]()).Equal(eye))
	assert.True(t, matrix.TransformVector(z).ApproxEqual(base.NewVector3(3.0, 0.0, 0.0), eps))
}

func TestSimilarityLookAt(t *testing.T) {
	eye, target := NewPoint3(1.0, 2.0, 3.0), NewPoint3(2.0, 2.0, 3.0)
	up := base.NewVector3(0.0, 1.0, 0.0)
	x := base.NewVector3(1.0, 0.0, 0.0)

	var testCases = []struct {
		description string
		build       func() (Similarity3[float64], error)
		buildMatrix func() (SimilarityMatrix3[float64], error)
		expect      base.Vector3[float64]
	}{
		{
			description: "right handed",
			build: func() (Similarity3[float64], error) {
				return SimilarityLookAtRH[UnitQuaternion[float64]](eye, target, up, 3.0)
			},
			buildMatrix: func() (SimilarityMatrix3[float64], error) {
				return SimilarityLookAtRH[Rotation3[float64]](eye, target, up, 3.0)
			},
			expect: base.NewVector3(0.0, 0.0, -3.0),
		},
		{
			description: "left handed",
			build: func() (Similarity3[float64], error) {
				return SimilarityLookAtLH[UnitQuaternion[float64]](eye, target, up, 3.0)
			},
			buildMatrix: func() (SimilarityMatrix3[float64], error) {
				return SimilarityLookAtLH[Rotation3[float64]](eye, target, up, 3.0)
			},
			expect: base.NewVector3(0.0, 0.0, 3.0),
		},
	}
	for _, testCase := range testCases {
		quat, err := testCase.build()
		require.NoError(t, err, testCase.description)
		assert.True(t, quat.TransformVector(x).ApproxEqual(testCase.expect, eps), testCase.description)

		matrix, err := testCase.buildMatrix()
		require.NoError(t, err, testCase.description)
		assert.True(t, matrix.TransformVector(x).ApproxEqual(testCase.expect, eps), testCase.description)
	}
}

func TestRotationWrtPoint(t *testing.T) {
	pivot := NewPoint2(3.0, 2.0)

	sim, err := RotationWrtPoint(NewUnitComplex(math.Pi/2), pivot, 4.0)
	require.NoError(t, err)
	assert.True(t, sim.Translation().ApproxEqual(NewTranslation2(5.0, -1.0), eps))
	assert.True(t, sim.TransformPoint(NewPoint2(1.0, 2.0)).ApproxEqual(NewPoint2(-3.0, 3.0), eps))
	assert.True(t, sim.Isometry().TransformPoint(pivot).ApproxEqual(pivot, eps))
	// scaling is centered at the origin, so the pivot moves
	assert.False(t, sim.TransformPoint(pivot).ApproxEqual(pivot, eps))

	unscaled, err := RotationWrtPoint(NewRotation2(math.Pi/2), pivot, 1.0)
	require.NoError(t, err)
	assert.True(t, unscaled.TransformPoint(pivot).ApproxEqual(pivot, eps))

	spatial, err := RotationWrtPoint(NewUnitQuaternion(base.NewVector3(0.0, 0.0, 1.0)), NewPoint3(1.0, 1.0, 1.0), 1.0)
	require.NoError(t, err)
	assert.True(t, spatial.TransformPoint(NewPoint3(1.0, 1.0, 1.0)).ApproxEqual(NewPoint3(1.0, 1.0, 1.0), eps))
}

func TestZeroScaling(t *testing.T) {
	eye, target := NewPoint3(1.0, 2.0, 3.0), NewPoint3(2.0, 2.0, 3.0)
	up := base.NewVector3(0.0, 1.0, 0.0)
	v2, v3 := base.NewVector2(1.0, 2.0), base.NewVector3(1.0, 2.0, 3.0)

	var testCases = []struct {
		description string
		build       func() error
	}{
		{description: "from isometry", build: func() error {
			_, err := SimilarityFromIsometry(NewIsometry2(v2, 0.5), 0.0)
			return err
		}},
		{description: "from parts", build: func() error {
			_, err := SimilarityFromParts(NewTranslation2(1.0, 2.0), NewRotation2(0.5), 0.0)
			return err
		}},
		{description: "rotation wrt point", build: func() error {
			_, err := RotationWrtPoint(NewUnitComplex(0.5), NewPoint2(1.0, 1.0), 0.0)
			return err
		}},
		{description: "planar", build: func() error {
			_, err := NewSimilarity2(v2, 0.5, 0.0)
			return err
		}},
		{description: "planar matrix", build: func() error {
			_, err := NewSimilarityMatrix2(v2, 0.5, 0.0)
			return err
		}},
		{description: "spatial", build: func() error {
			_, err := NewSimilarity3(v3, v3, 0.0)
			return err
		}},
		{description: "spatial matrix", build: func() error {
			_, err := NewSimilarityMatrix3(v3, v3, 0.0)
			return err
		}},
		{description: "negative zero", build: func() error {
			_, err := NewSimilarity3(v3, v3, math.Copysign(0, -1))
			return err
		}},
		{description: "face towards", build: func() error {
			_, err := SimilarityFaceTowards[UnitQuaternion[float64]](eye, target, up, 0.0)
			return err
		}},
		{description: "look at rh", build: func() error {
			_, err := SimilarityLookAtRH[Rotation3[float64]](eye, target, up, 0.0)
			return err
		}},
		{description: "look at lh", build: func() error {
			_, err := SimilarityLookAtLH[UnitQuaternion[float64]](eye, target, up, 0.0)
			return err
		}},
	}
	for _, testCase := range testCases {
		assert.ErrorIs(t, testCase.build(), ErrZeroScaling, testCase.description)
	}

	// a tiny but non-zero scaling is accepted
	sim, err := NewSimilarity2(v2, 0.5, math.SmallestNonzeroFloat64)
	require.NoError(t, err)
	assert.Equal(t, math.SmallestNonzeroFloat64, sim.Scaling())

	negative, err := NewSimilarity2(v2, 0.5, -2.0)
	require.NoError(t, err)
	assert.Equal(t, -2.0, negative.Scaling())
}

func TestSampleSimilarity(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	for range 200 {
		sim := SampleSimilarity[float64, base.U3, UnitQuaternion[float64]](rng)
		assert.Greater(t, sim.Scaling(), 0.0)
		assert.Less(t, sim.Scaling(), 1.0)
	}
	planar := SampleSimilarity[float32, base.U2, Rotation2[float32]](rng)
	assert.NotZero(t, planar.Scaling())
}

func TestArbitrarySimilarity(t *testing.T) {
	nonZero := func(s2 Similarity2[float64], s3 SimilarityMatrix3[float32]) bool {
		return s2.Scaling() != 0 && s3.Scaling() != 0
	}
	require.NoError(t, quick.Check(nonZero, nil))
}

func TestArbitrarySimilarityIsFinite(t *testing.T) {
	rng := quickrand.New(quickrand.NewSource(5))
	p := NewPoint3(1.0, 2.0, 3.0)
	for _, size := range []int{0, 10, 50} {
		for range 200 {
			sim := Similarity3[float64]{}.Generate(rng, size).Interface().(Similarity3[float64])
			require.NotZero(t, sim.Scaling())
			for _, c := range sim.TransformPoint(p).Coords().Slice() {
				require.False(t, math.IsNaN(c) || math.IsInf(c, 0), "size %d: %v", size, sim)
			}
		}
	}
}

func TestCastSimilarity(t *testing.T) {
	translation2 := base.NewVector2(1.0, 2.0)
	p2, expect2 := NewPoint2[float32](2, 4), NewPoint2[float32](-11, 8)

	sim2, err := NewSimilarity2(translation2, math.Pi/2, 3.0)
	require.NoError(t, err)
	cast2 := CastSimilarity2[float32](sim2)
	assert.Equal(t, float32(3), cast2.Scaling())
	assert.True(t, cast2.TransformPoint(p2).ApproxEqual(expect2, 1e-4))

	matrix2, err := NewSimilarityMatrix2(translation2, math.Pi/2, 3.0)
	require.NoError(t, err)
	assert.True(t, CastSimilarityMatrix2[float32](matrix2).TransformPoint(p2).ApproxEqual(expect2, 1e-4))

	translation3, axisAngle := base.NewVector3(1.0, 2.0, 3.0), base.NewVector3(0, math.Pi/2, 0)
	p3, expect3 := NewPoint3[float32](4, 5, 6), NewPoint3[float32](19, 17, -9)

	sim3, err := NewSimilarity3(translation3, axisAngle, 3.0)
	require.NoError(t, err)
	assert.True(t, CastSimilarity3[float32](sim3).TransformPoint(p3).ApproxEqual(expect3, 1e-4))

	matrix3, err := NewSimilarityMatrix3(translation3, axisAngle, 3.0)
	require.NoError(t, err)
	assert.True(t, CastSimilarityMatrix3[float32](matrix3).TransformPoint(p3).ApproxEqual(expect3, 1e-4))

	back := CastSimilarity3[float64](CastSimilarity3[float32](sim3))
	assert.Equal(t, 3.0, back.Scaling())
}
