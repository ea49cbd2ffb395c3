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

// Heap sorts data in ascending order with heapsort. Not stable.
func Heap[T cmp.Ordered](data []T) {
	HeapFunc(seq.Slice[T](data), seq.Natural[T]())
}

// HeapFunc sorts s in place with heapsort: it builds a max-heap over all of
// s, then repeatedly swaps the root with the last element of the shrinking
// heap and restores the heap property.
func HeapFunc[T any](s seq.Sequence[T], less seq.Less[T]) {
	n := s.Len()
	if n < 2 {
		return
	}

	buildHeap(s, less)

	for end := n - 1; end > 0; end-- {
		s.Swap(0, end)
		siftDown(s, less, 0, end)
	}
}

// buildHeap establishes the max-heap property over all of s by sifting down
// every internal node, from the last parent up to the root.
func buildHeap[T any](s seq.Sequence[T], less seq.Less[T]) {
	n := s.Len()
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, less, i, n)
	}
}

// siftDown moves s[root] down the heap s[:end] until neither child is
// greater than it. Children of i are 2i+1 and 2i+2.
func siftDown[T any](s seq.Sequence[T], less seq.Less[T], root, end int) {
	for {
		largest := root
		left := 2*root + 1
		right := left + 1

		if left < end && less(s.At(largest), s.At(left)) {
			largest = left
		}
		if right < end && less(s.At(largest), s.At(right)) {
			largest = right
		}

		if largest == root {
			return
		}

		s.Swap(root, largest)
		root = largest
	}
}
