// Package geometry defines strongly typed geometric entities over a scalar
// type N and a type-level dimension D, together with their construction and
// conversion machinery:
//   - Point: an absolute position
//   - Translation: a displacement
//   - Rotation2, UnitComplex, Rotation3, UnitQuaternion: rotation variants
//     sharing the Rotation capability
//   - Isometry: translation paired with a rotation
//   - Similarity: isometry with a uniform, never-zero scaling factor
//
// Entities are immutable values. Constructors that validate their input
// return an error wrapping ErrZeroScaling or base.ErrDimensionMismatch;
// FromHomogeneous reports an exact-zero divisor with a false flag.
package geometry
