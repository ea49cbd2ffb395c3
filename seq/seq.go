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

package seq

import (
	"cmp"
	"fmt"
)

// Sequence is a finite, zero-indexed, mutable collection of elements.
// Swap(i, i) must be a no-op.
type Sequence[T any] interface {
	// Len is the number of elements.
	Len() int
	// At returns the element at index i.
	At(i int) T
	// Set stores v at index i.
	Set(i int, v T)
	// Swap exchanges the elements at indices i and j.
	Swap(i, j int)
}

// Less reports whether a must sort before b. It must be a strict weak
// ordering: irreflexive, transitive, and with a transitive "neither a<b
// nor b<a" equivalence.
type Less[T any] func(a, b T) bool

// Natural returns the natural ascending ordering of T.
func Natural[T cmp.Ordered]() Less[T] {
	return cmp.Less[T]
}

// Reverse returns the ordering that sorts in the opposite direction of less.
func Reverse[T any](less Less[T]) Less[T] {
	return func(a, b T) bool { return less(b, a) }
}

// Equivalent reports whether neither a<b nor b<a holds under less.
func Equivalent[T any](less Less[T], a, b T) bool {
	return !less(a, b) && !less(b, a)
}

// Slice adapts a Go slice to the Sequence interface.
type Slice[T any] []T

func (s Slice[T]) Len() int       { return len(s) }
func (s Slice[T]) At(i int) T     { return s[i] }
func (s Slice[T]) Set(i int, v T) { s[i] = v }
func (s Slice[T]) Swap(i, j int)  { s[i], s[j] = s[j], s[i] }

// Range is the half-open view [Begin, End) of a Sequence. A Range is itself
// a Sequence whose indices are relative to Begin.
type Range[T any] struct {
	Seq        Sequence[T]
	Begin, End int
}

// Whole returns a Range spanning all of s.
func Whole[T any](s Sequence[T]) Range[T] {
	return Range[T]{Seq: s, Begin: 0, End: s.Len()}
}

// Sub returns the view [lo, hi) of s. If s is already a Range the result
// refers directly to the underlying Sequence.
// Sub panics if 0 <= lo <= hi <= s.Len() does not hold.
func Sub[T any](s Sequence[T], lo, hi int) Range[T] {
	if lo < 0 || hi < lo || hi > s.Len() {
		panic(fmt.Sprintf("seq: invalid range [%d:%d] of length %d", lo, hi, s.Len()))
	}
	switch r := s.(type) {
	case Range[T]:
		return Range[T]{Seq: r.Seq, Begin: r.Begin + lo, End: r.Begin + hi}
	case *Range[T]:
		return Range[T]{Seq: r.Seq, Begin: r.Begin + lo, End: r.Begin + hi}
	}
	return Range[T]{Seq: s, Begin: lo, End: hi}
}

func (r Range[T]) Len() int       { return r.End - r.Begin }
func (r Range[T]) At(i int) T     { return r.Seq.At(r.Begin + i) }
func (r Range[T]) Set(i int, v T) { r.Seq.Set(r.Begin+i, v) }

func (r Range[T]) Swap(i, j int) {
	if i == j {
		return
	}
	r.Seq.Swap(r.Begin+i, r.Begin+j)
}

// Collect copies the elements of s into a new slice.
func Collect[T any](s Sequence[T]) []T {
	out := make([]T, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}
