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

// Bubble sorts data in ascending order with bubble sort. Stable.
func Bubble[T cmp.Ordered](data []T) {
	BubbleFunc(seq.Slice[T](data), seq.Natural[T]())
}

// BubbleFunc sorts s with bubble sort. Each pass carries the largest
// unsorted element to the end, after which the unsorted end shrinks by one.
// Stable: equal neighbours are never swapped.
func BubbleFunc[T any](s seq.Sequence[T], less seq.Less[T]) {
	for end := s.Len(); end > 1; end-- {
		for i := 0; i+1 < end; i++ {
			if less(s.At(i+1), s.At(i)) {
				s.Swap(i, i+1)
			}
		}
	}
}

// Selection sorts data in ascending order with selection sort. Not stable.
func Selection[T cmp.Ordered](data []T) {
	SelectionFunc(seq.Slice[T](data), seq.Natural[T]())
}

// SelectionFunc sorts s by repeatedly swapping the minimum of the unsorted
// suffix into place. The long-distance swap can reorder equal elements.
func SelectionFunc[T any](s seq.Sequence[T], less seq.Less[T]) {
	n := s.Len()
	for begin := 0; begin < n; begin++ {
		best := minIndex(s, less, begin, n)
		if best != begin {
			s.Swap(best, begin)
		}
	}
}

// StableSelection sorts data in ascending order with stable selection sort.
func StableSelection[T cmp.Ordered](data []T) {
	StableSelectionFunc(seq.Slice[T](data), seq.Natural[T]())
}

// StableSelectionFunc sorts s like SelectionFunc, but rotates each minimum
// into place with adjacent swaps so equal elements keep their order.
func StableSelectionFunc[T any](s seq.Sequence[T], less seq.Less[T]) {
	n := s.Len()
	for begin := 0; begin < n; begin++ {
		for best := minIndex(s, less, begin, n); best > begin; best-- {
			s.Swap(best-1, best)
		}
	}
}

// minIndex returns the index of the first minimum of s[lo:hi].
func minIndex[T any](s seq.Sequence[T], less seq.Less[T], lo, hi int) int {
	best := lo
	for i := lo + 1; i < hi; i++ {
		if less(s.At(i), s.At(best)) {
			best = i
		}
	}
	return best
}

// Insertion sorts data in ascending order with insertion sort. Stable.
func Insertion[T cmp.Ordered](data []T) {
	InsertionFunc(seq.Slice[T](data), seq.Natural[T]())
}

// InsertionFunc sorts s by growing a sorted prefix, walking each new
// element backwards while it is strictly less than its left neighbour.
func InsertionFunc[T any](s seq.Sequence[T], less seq.Less[T]) {
	for sorted := 1; sorted < s.Len(); sorted++ {
		for cur := sorted; cur > 0 && less(s.At(cur), s.At(cur-1)); cur-- {
			s.Swap(cur-1, cur)
		}
	}
}
