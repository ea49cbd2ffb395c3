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

// IsSorted reports whether data is in non-decreasing order.
func IsSorted[T cmp.Ordered](data []T) bool {
	return IsSortedFunc(seq.Slice[T](data), seq.Natural[T]())
}

// IsSortedFunc reports whether s is in non-decreasing order under less.
func IsSortedFunc[T any](s seq.Sequence[T], less seq.Less[T]) bool {
	for i := 1; i < s.Len(); i++ {
		if less(s.At(i), s.At(i-1)) {
			return false
		}
	}
	return true
}

// IsHeapFunc reports whether s satisfies the max-heap property under less:
// no node is less than either of its children.
func IsHeapFunc[T any](s seq.Sequence[T], less seq.Less[T]) bool {
	n := s.Len()
	for i := 1; i < n; i++ {
		if less(s.At((i-1)/2), s.At(i)) {
			return false
		}
	}
	return true
}
