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

// Partition3Way splits data around a uniformly random pivot value using the
// natural order. See Partition3WayFunc.
func Partition3Way[T cmp.Ordered](data []T, rng seq.Rand) (int, int) {
	return Partition3WayFunc(seq.Slice[T](data), seq.Natural[T](), rng)
}

// Partition3WayFunc rearranges s into three contiguous zones relative to the
// value of a pivot chosen uniformly at random:
//
//	s[:eq]   less than the pivot
//	s[eq:gt] equivalent to the pivot
//	s[gt:]   greater than the pivot
//
// It runs in a single pass using only swaps. A nil rng uses seq.Default().
// For Len() < 2 it returns (0, Len()) without consuming randomness.
func Partition3WayFunc[T any](s seq.Sequence[T], less seq.Less[T], rng seq.Rand) (eq, gt int) {
	n := s.Len()
	if n < 2 {
		return 0, n
	}
	return partitionAt(s, less, seq.OrDefault(rng).IntN(n))
}

// partitionAt is the three-way split around the value initially at index
// pivot. Elements are compared against s.At(pivot) on every step, so pivot
// is updated whenever a swap relocates the pivot element.
//
// Loop invariant, for the scanned prefix s[:i]:
//
//	s[:eq]   < pivot
//	s[eq:gt] == pivot
//	s[gt:i]  > pivot
func partitionAt[T any](s seq.Sequence[T], less seq.Less[T], pivot int) (eq, gt int) {
	n := s.Len()
	for i := 0; i < n; i++ {
		switch {
		case less(s.At(i), s.At(pivot)):
			if eq != gt {
				// Rotate: first equal -> first greater slot, first greater -> i,
				// s[i] -> first equal slot. With no greater elements yet
				// (gt == i) the first swap is skipped.
				if gt != i {
					s.Swap(eq, gt)
				}
				if eq == pivot {
					pivot = gt
				}
				s.Swap(i, eq)
			} else {
				s.Swap(i, gt)
			}
			eq++
			gt++
		case !less(s.At(pivot), s.At(i)):
			if i == pivot {
				pivot = gt
			}
			s.Swap(i, gt)
			gt++
		}
		// Greater elements stay where they are, at the tail of s[gt:i+1].
	}
	return eq, gt
}
