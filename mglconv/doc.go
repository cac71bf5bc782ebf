// Package mglconv converts geomvec entities to and from
// github.com/go-gl/mathgl/mgl64 values. It includes:
//   - Vec2, Vec3 and Vec4 conversions for vectors and points
//   - Quat and FromQuat for unit quaternions
//   - homogeneous Mat3 and Mat4 builders for planar and spatial transforms
//
// mgl64 matrices are column-major; every builder here fills them in that
// order so the result can be handed directly to OpenGL style code.
package mglconv
