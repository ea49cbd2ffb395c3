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

// Sort sorts data in ascending order. It uses randomized quicksort and is
// not stable; use Stable when equal elements must keep their order.
func Sort[T cmp.Ordered](data []T) {
	Quick(data)
}

// Stable sorts data in ascending order, keeping equal elements in their
// original order. It uses mergesort.
func Stable[T cmp.Ordered](data []T) {
	Merge(data)
}

// Quick sorts data in ascending order with randomized three-way quicksort.
func Quick[T cmp.Ordered](data []T) {
	QuickFunc(seq.Slice[T](data), seq.Natural[T](), nil)
}

// QuickFunc sorts s with randomized three-way quicksort. Pivots are drawn
// from rng; a nil rng uses seq.Default(). Not stable.
//
// Elements equivalent to the pivot are placed in their final position by
// the partition and never revisited, so inputs with many duplicates
// (including all-equal inputs) run in linear time per distinct value.
func QuickFunc[T any](s seq.Sequence[T], less seq.Less[T], rng seq.Rand) {
	quickImpl(s, less, seq.OrDefault(rng))
}

// quickImpl recurses into the smaller of the less and greater zones and
// iterates on the larger one, bounding the stack depth by O(log n).
func quickImpl[T any](s seq.Sequence[T], less seq.Less[T], rng seq.Rand) {
	for s.Len() > 1 {
		n := s.Len()
		eq, gt := partitionAt(s, less, rng.IntN(n))

		lo, hi := seq.Sub(s, 0, eq), seq.Sub(s, gt, n)
		if lo.Len() > hi.Len() {
			lo, hi = hi, lo
		}
		quickImpl[T](lo, less, rng)
		s = hi
	}
}
