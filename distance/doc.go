// Package distance provides vector distance calculations for clustering.
//
// Two code paths are exposed:
//
//   - SquaredL2: dense squared Euclidean distance, for fully-known vectors
//   - MaskedSquaredL2: squared Euclidean distance restricted to the known
//     components of a partially-observed vector
//
// Both paths are numerically equivalent when every component is known.
//
// # Usage
//
//	d := distance.SquaredL2(a, b)
//	d := distance.MaskedSquaredL2(a, b, valid) // set bit = known component
package distance
