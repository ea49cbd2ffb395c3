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

// Package harness runs the sortkit algorithms over loaded data sets, times
// them, and validates ordering, stability and selection results.
package harness

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/ajroetker/go-sortkit/seq"
	"github.com/ajroetker/go-sortkit/seq/sort"
)

// Record is a value tagged with its input position, so stability can be
// checked after sorting.
type Record struct {
	Value int
	Order int
}

// ByValue orders records by Value only.
func ByValue(a, b Record) bool { return a.Value < b.Value }

// Records tags each number with its index.
func Records(nums []int) []Record {
	return lo.Map(nums, func(v int, i int) Record {
		return Record{Value: v, Order: i}
	})
}

// Algorithm is a registered sort entry point.
type Algorithm struct {
	Name      string
	Stable    bool
	Quadratic bool
	Sort      func(s seq.Sequence[Record], less seq.Less[Record], rng seq.Rand)
}

func ignoreRand(f func(seq.Sequence[Record], seq.Less[Record])) func(seq.Sequence[Record], seq.Less[Record], seq.Rand) {
	return func(s seq.Sequence[Record], less seq.Less[Record], _ seq.Rand) {
		f(s, less)
	}
}

var registry = []Algorithm{
	{Name: "bubble", Stable: true, Quadratic: true, Sort: ignoreRand(sort.BubbleFunc[Record])},
	{Name: "selection", Quadratic: true, Sort: ignoreRand(sort.SelectionFunc[Record])},
	{Name: "stable-selection", Stable: true, Quadratic: true, Sort: ignoreRand(sort.StableSelectionFunc[Record])},
	{Name: "insertion", Stable: true, Quadratic: true, Sort: ignoreRand(sort.InsertionFunc[Record])},
	{Name: "quick", Sort: sort.QuickFunc[Record]},
	{Name: "heap", Sort: ignoreRand(sort.HeapFunc[Record])},
	{Name: "merge", Stable: true, Sort: ignoreRand(sort.MergeFunc[Record])},
}

// Algorithms returns every registered algorithm.
func Algorithms() []Algorithm {
	return append([]Algorithm(nil), registry...)
}

// Names returns the names of every registered algorithm.
func Names() []string {
	return lo.Map(registry, func(a Algorithm, _ int) string { return a.Name })
}

// Lookup returns the named algorithms in the order given. An empty list or
// the single name "all" selects every algorithm.
func Lookup(names []string) ([]Algorithm, error) {
	if len(names) == 0 || (len(names) == 1 && names[0] == "all") {
		return Algorithms(), nil
	}
	out := make([]Algorithm, 0, len(names))
	for _, name := range lo.Uniq(names) {
		alg, ok := lo.Find(registry, func(a Algorithm) bool {
			return a.Name == strings.TrimSpace(name)
		})
		if !ok {
			return nil, errors.Errorf("unknown algorithm %q (known: %s)", name, strings.Join(Names(), ", "))
		}
		out = append(out, alg)
	}
	return out, nil
}
