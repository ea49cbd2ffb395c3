// Package sort provides comparison sorts and order-statistic selection over
// any seq.Sequence, ordered by a caller-supplied seq.Less.
//
// # Algorithms
//
//   - Bubble, Selection, StableSelection, Insertion: quadratic baselines
//   - Quick: randomized three-way quicksort
//   - Heap: in-place heapsort over a binary max-heap
//   - Merge: top-down mergesort with one shared scratch buffer
//   - Select: randomized quickselect (k-th smallest)
//
// Bubble, StableSelection, Insertion and Merge are stable. Selection, Quick
// and Heap are not.
//
// Every algorithm has a slice form for cmp.Ordered element types using the
// natural order, and a Func form over seq.Sequence with an explicit
// comparator:
//
//	import "github.com/ajroetker/go-sortkit/seq/sort"
//
//	sort.Quick(data)
//	sort.MergeFunc(seq.Slice[Record](records), byKey)
//
// # Randomness
//
// Quick, Select and Partition3Way draw pivots from a seq.Rand. The slice
// forms use seq.Default(); the Func forms accept an explicit source, and a
// nil source also means seq.Default(). Pass seq.NewRand(seed) for
// reproducible pivot choices.
//
// # Stack usage
//
// Quick recurses only into the smaller side of each partition and loops on
// the larger one, so its stack depth is O(log n) regardless of pivot luck.
// Select does not recurse at all. Merge recurses to depth O(log n).
package sort
