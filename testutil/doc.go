// Package testutil provides testing utilities for rowindex.
//
// This package is intended for use in tests and benchmarks only.
//
// # Fixtures
//
//	rows := testutil.Books()  // three books: Tolkien, Milne, Asimov
//
// # Random Records
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.Records(10_000)  // reproducible for a given seed
package testutil
