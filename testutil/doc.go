// Package testutil provides testing utilities for clusterkit.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source and generators for
// synthetic clustering data.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	rows := testutil.Blobs(rng, centers, perCenter, spread)
//	testutil.Corrupt(rng, rows, 0.1) // punch NaN holes into 10% of components
package testutil
