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
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-sortkit/seq"
)

// record carries its input position so stability can be checked.
type record struct {
	Key   int
	Order int
}

func byKey(a, b record) bool { return a.Key < b.Key }

type algorithm struct {
	name   string
	stable bool
	sort   func(s seq.Sequence[record], less seq.Less[record])
	ints   func(data []int)
}

func withRand(f func(seq.Sequence[record], seq.Less[record], seq.Rand), seed uint64) func(seq.Sequence[record], seq.Less[record]) {
	return func(s seq.Sequence[record], less seq.Less[record]) {
		f(s, less, seq.NewRand(seed))
	}
}

var algorithms = []algorithm{
	{"Bubble", true, BubbleFunc[record], Bubble[int]},
	{"Selection", false, SelectionFunc[record], Selection[int]},
	{"StableSelection", true, StableSelectionFunc[record], StableSelection[int]},
	{"Insertion", true, InsertionFunc[record], Insertion[int]},
	{"Quick", false, withRand(QuickFunc[record], 1), Quick[int]},
	{"Heap", false, HeapFunc[record], Heap[int]},
	{"Merge", true, MergeFunc[record], Merge[int]},
}

// Helper to check if slice is sorted
func isSorted(data []int) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

func randomInts(r *rand.Rand, n, bound int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = r.IntN(bound)
	}
	return data
}

func randomRecords(r *rand.Rand, n, bound int) []record {
	data := make([]record, n)
	for i := range data {
		data[i] = record{Key: r.IntN(bound), Order: i}
	}
	return data
}

// TestSortEmpty tests sorting empty slices
func TestSortEmpty(t *testing.T) {
	for _, alg := range algorithms {
		var empty []int
		alg.ints(empty)
		if len(empty) != 0 {
			t.Errorf("%s(empty) should not modify empty slice", alg.name)
		}
		alg.ints([]int{})
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	for _, alg := range algorithms {
		data := []int{5}
		alg.ints(data)
		if data[0] != 5 {
			t.Errorf("%s([5]) = %v, want [5]", alg.name, data)
		}
	}
}

func TestSortThree(t *testing.T) {
	for _, alg := range algorithms {
		data := []int{3, 1, 2}
		alg.ints(data)
		if diff := cmp.Diff([]int{1, 2, 3}, data); diff != "" {
			t.Errorf("%s([3 1 2]) mismatch (-want +got):\n%s", alg.name, diff)
		}
	}
}

func TestSortPatterns(t *testing.T) {
	patterns := map[string][]int{
		"sorted":     {1, 2, 3, 4, 5, 6, 7, 8},
		"reverse":    {8, 7, 6, 5, 4, 3, 2, 1},
		"duplicates": {3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5},
		"allSame":    {5, 5, 5, 5, 5, 5, 5, 5},
		"pair":       {2, 1},
		"organPipe":  {1, 3, 5, 7, 9, 8, 6, 4, 2, 0},
		"sawtooth":   {0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2},
	}
	for _, alg := range algorithms {
		for name, pattern := range patterns {
			data := slices.Clone(pattern)
			want := slices.Clone(pattern)
			slices.Sort(want)

			alg.ints(data)
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("%s(%s) mismatch (-want +got):\n%s", alg.name, name, diff)
			}
		}
	}
}

// TestSortMatchesStdlib verifies every algorithm produces the same result as slices.Sort
func TestSortMatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewPCG(12345, 0))
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 32, 63, 64, 100, 256}
	bounds := []int{1, 4, 1000}
	for _, alg := range algorithms {
		for _, n := range sizes {
			for _, bound := range bounds {
				data := randomInts(r, n, bound)
				want := slices.Clone(data)
				slices.Sort(want)

				alg.ints(data)
				if diff := cmp.Diff(want, data); diff != "" {
					t.Errorf("%s(n=%d, bound=%d) mismatch (-want +got):\n%s", alg.name, n, bound, diff)
				}
			}
		}
	}
}

func TestSortLarge(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	fast := []string{"Quick", "Heap", "Merge"}
	for _, alg := range algorithms {
		if !slices.Contains(fast, alg.name) {
			continue
		}
		for _, n := range []int{1000, 10000} {
			data := randomInts(r, n, n)
			alg.ints(data)
			if !isSorted(data) {
				t.Errorf("%s(random, n=%d) produced unsorted result", alg.name, n)
			}
		}

		sorted := make([]int, 10000)
		for i := range sorted {
			sorted[i] = i
		}
		alg.ints(sorted)
		if !isSorted(sorted) {
			t.Errorf("%s(sorted, n=10000) produced unsorted result", alg.name)
		}
	}
}

func TestSortStability(t *testing.T) {
	input := []record{{5, 0}, {3, 1}, {5, 2}}
	want := []record{{3, 1}, {5, 0}, {5, 2}}
	for _, alg := range algorithms {
		if !alg.stable {
			continue
		}
		data := slices.Clone(input)
		alg.sort(seq.Slice[record](data), byKey)
		if diff := cmp.Diff(want, data); diff != "" {
			t.Errorf("%s is not stable (-want +got):\n%s", alg.name, diff)
		}
	}

	r := rand.New(rand.NewPCG(99, 0))
	for _, alg := range algorithms {
		for _, n := range []int{10, 100, 300} {
			data := randomRecords(r, n, 8)
			want := slices.Clone(data)
			slices.SortStableFunc(want, func(a, b record) int { return a.Key - b.Key })

			alg.sort(seq.Slice[record](data), byKey)
			if !IsSortedFunc[record](seq.Slice[record](data), byKey) {
				t.Errorf("%s(records, n=%d) produced unsorted result", alg.name, n)
				continue
			}
			if alg.stable {
				if diff := cmp.Diff(want, data); diff != "" {
					t.Errorf("%s(records, n=%d) is not stable (-want +got):\n%s", alg.name, n, diff)
				}
			}
		}
	}
}

// TestSortSubRange checks that algorithms only touch the given range.
func TestSortSubRange(t *testing.T) {
	for _, alg := range algorithms {
		data := []record{{9, 0}, {8, 1}, {4, 2}, {2, 3}, {3, 4}, {1, 5}, {0, 6}}
		alg.sort(seq.Sub[record](seq.Slice[record](data), 2, 5), byKey)

		want := []record{{9, 0}, {8, 1}, {2, 3}, {3, 4}, {4, 2}, {1, 5}, {0, 6}}
		if diff := cmp.Diff(want, data); diff != "" {
			t.Errorf("%s(sub-range) mismatch (-want +got):\n%s", alg.name, diff)
		}
	}
}

func TestSortDescending(t *testing.T) {
	desc := seq.Reverse(seq.Natural[int]())
	data := []int{4, 9, 1, 7, 7, 3}
	QuickFunc(seq.Slice[int](data), desc, seq.NewRand(3))
	if diff := cmp.Diff([]int{9, 7, 7, 4, 3, 1}, data); diff != "" {
		t.Errorf("QuickFunc(descending) mismatch (-want +got):\n%s", diff)
	}
}

func TestSortAndStable(t *testing.T) {
	data := []float64{2.5, -1, 0, 2.5, 10}
	Sort(data)
	if !IsSorted(data) {
		t.Errorf("Sort produced unsorted result: %v", data)
	}

	strs := []string{"pear", "apple", "fig", "apple"}
	Stable(strs)
	if diff := cmp.Diff([]string{"apple", "apple", "fig", "pear"}, strs); diff != "" {
		t.Errorf("Stable mismatch (-want +got):\n%s", diff)
	}
}

func TestQuickDeterministicWithSeed(t *testing.T) {
	base := randomRecords(rand.New(rand.NewPCG(5, 5)), 200, 10)
	a, b := slices.Clone(base), slices.Clone(base)

	QuickFunc[record](seq.Slice[record](a), byKey, seq.NewRand(11))
	QuickFunc[record](seq.Slice[record](b), byKey, seq.NewRand(11))

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("QuickFunc with equal seeds diverged (-a +b):\n%s", diff)
	}
}

func TestIsSortedFunc(t *testing.T) {
	less := seq.Natural[int]()
	cases := []struct {
		data []int
		want bool
	}{
		{nil, true},
		{[]int{1}, true},
		{[]int{1, 1, 2}, true},
		{[]int{2, 1}, false},
	}
	for _, c := range cases {
		if got := IsSortedFunc(seq.Slice[int](c.data), less); got != c.want {
			t.Errorf("IsSortedFunc(%v) = %v, want %v", c.data, got, c.want)
		}
	}
}
