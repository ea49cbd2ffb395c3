// Package seq provides the primitives every algorithm in go-sortkit is
// written against: an index-addressed Sequence with Swap, a half-open Range
// view for recursive subdivision without copying, a strict weak ordering
// predicate, and an explicit random source.
//
// # Sequences
//
// Any type with Len, At, Set and Swap is a Sequence. Slice adapts a plain
// Go slice:
//
//	data := []int{3, 1, 2}
//	s := seq.Slice[int](data)
//	s.Swap(0, 2) // data is now [2 1 3]
//
// # Ranges
//
// Sub returns a Range over [lo, hi) of a Sequence. Indices of a Range are
// relative to its start, so an algorithm can recurse on Sub(s, lo, hi)
// exactly as it would on a whole Sequence. Sub of a Range flattens to a
// single view over the underlying Sequence.
//
// # Random sources
//
// Randomized algorithms take a Rand instead of reaching for global state.
// Use NewRand for reproducible runs, Default for the process-wide source,
// or FromEnv to honor the SORTKIT_SEED environment variable:
//
//	rng := seq.NewRand(42)
//	sort.QuickFunc(s, seq.Natural[int](), rng)
package seq
