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

// Merge sorts data in ascending order with mergesort. Stable.
func Merge[T cmp.Ordered](data []T) {
	MergeFunc(seq.Slice[T](data), seq.Natural[T]())
}

// MergeFunc sorts s with top-down mergesort. A single scratch buffer of
// s.Len() elements is allocated here and shared by every merge step.
// Stable: on ties the element from the left half is taken first.
func MergeFunc[T any](s seq.Sequence[T], less seq.Less[T]) {
	n := s.Len()
	if n < 2 {
		return
	}
	buf := make([]T, n)
	mergeSort(s, less, buf)
}

// mergeSort sorts s, using buf[:s.Len()] as scratch space.
func mergeSort[T any](s seq.Sequence[T], less seq.Less[T], buf []T) {
	n := s.Len()
	if n < 2 {
		return
	}
	mid := n / 2
	mergeSort[T](seq.Sub(s, 0, mid), less, buf)
	mergeSort[T](seq.Sub(s, mid, n), less, buf)
	merge(s, less, mid, buf)
}

// merge combines the sorted runs s[:mid] and s[mid:] into one sorted run.
//
// Merged elements go to buf. If the right run is exhausted first, the
// remainder of the left run already belongs at the very end of s and is
// shifted there directly; buf is then copied to the front. If the left run
// is exhausted first, the rest of the right run is already in place.
func merge[T any](s seq.Sequence[T], less seq.Less[T], mid int, buf []T) {
	n := s.Len()
	l, r, w := 0, mid, 0
	for l < mid && r < n {
		if less(s.At(r), s.At(l)) {
			buf[w] = s.At(r)
			r++
		} else {
			buf[w] = s.At(l)
			l++
		}
		w++
	}

	// Backward shift so the source is not overwritten before it is read.
	for src, dst := mid-1, n-1; src >= l; src, dst = src-1, dst-1 {
		s.Set(dst, s.At(src))
	}

	for i := 0; i < w; i++ {
		s.Set(i, buf[i])
	}
}
