// Package base provides the storage layer used by the geometry package:
//   - Scalar and Real constraints over the built-in numeric types
//   - Type-level dimensions (U1..U6 and Succ[D] for D+1)
//   - Vector[N, D]: immutable D-dimensional coordinate vectors
//   - Matrix2 and Matrix3: fixed-size row-major matrices
//   - Scalar casting, bounded values and random sampling
package base
