// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"cmp"

	"github.com/ajroetker/go-sortkit/seq"
)

// Select returns the index holding the k-th smallest element of data
// (0-based) after partially reordering data, or len(data) when k is out of
// range. See SelectFunc.
func Select[T cmp.Ordered](data []T, k int) int {
	return SelectFunc(seq.Slice[T](data), k, seq.Natural[T](), nil)
}

// NthElement returns the k-th smallest element of data, reordering data as
// Select does. It reports false when k is out of range.
func NthElement[T cmp.Ordered](data []T, k int) (T, bool) {
	pos := Select(data, k)
	if pos == len(data) {
		var zero T
		return zero, false
	}
	return data[pos], true
}

// SelectFunc returns an index i of s such that s.At(i) is equivalent to the
// element a full sort would place at index k. s is reordered in the
// process; beyond the returned position no ordering is guaranteed.
//
// If k < 0, k >= s.Len() or s is empty, SelectFunc returns s.Len() and
// leaves s unchanged.
//
// Pivots are drawn from rng; a nil rng uses seq.Default(). Expected running
// time is O(n).
func SelectFunc[T any](s seq.Sequence[T], k int, less seq.Less[T], rng seq.Rand) int {
	n := s.Len()
	if k < 0 || k >= n {
		return n
	}
	rng = seq.OrDefault(rng)

	// Narrow [lo, hi) to the zone that contains rank k; k stays absolute.
	lo, hi := 0, n
	for hi-lo > 1 {
		eq, gt := partitionAt[T](seq.Sub(s, lo, hi), less, rng.IntN(hi-lo))
		switch {
		case k < lo+eq:
			hi = lo + eq
		case k < lo+gt:
			// Every element of the equal zone is the answer.
			return lo + eq
		default:
			lo += gt
		}
	}
	return lo
}
