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

// Package shuffle produces uniformly random permutations with the
// Fisher–Yates algorithm.
package shuffle

import "github.com/ajroetker/go-sortkit/seq"

// Slice shuffles data in place. A nil rng uses seq.Default().
func Slice[T any](data []T, rng seq.Rand) {
	Shuffle[T](seq.Slice[T](data), rng)
}

// Shuffle rearranges s into a permutation drawn uniformly from all
// s.Len()! orderings, provided rng.IntN is uniform.
//
// A shuffled prefix grows from one element: each step swaps the next
// position with an index drawn from the prefix including that position
// itself. Drawing from the full range instead, or excluding the position
// itself, biases the result.
//
// A nil rng uses seq.Default(). Sequences shorter than two elements are
// left untouched and consume no randomness.
func Shuffle[T any](s seq.Sequence[T], rng seq.Rand) {
	n := s.Len()
	if n < 2 {
		return
	}
	rng = seq.OrDefault(rng)
	for shuffled := 1; shuffled < n; shuffled++ {
		s.Swap(shuffled, rng.IntN(shuffled+1))
	}
}
