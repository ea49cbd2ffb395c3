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

package harness

import (
	"slices"
	"time"

	"github.com/convox/logger"
	"github.com/pkg/errors"

	"github.com/ajroetker/go-sortkit/seq"
	"github.com/ajroetker/go-sortkit/seq/sort"
)

// DefaultQuadraticLimit is the largest input quadratic algorithms are run on
// unless Runner.QuadraticLimit says otherwise.
const DefaultQuadraticLimit = 20000

// Result describes one algorithm run over one data set.
type Result struct {
	Input     string
	Algorithm string
	N         int
	Elapsed   time.Duration
	Skipped   bool
	Sorted    bool

	// Stable is only meaningful when StableChecked is set.
	Stable        bool
	StableChecked bool
}

// OK reports whether the run passed every check it was subject to.
func (r Result) OK() bool {
	if r.Skipped {
		return true
	}
	return r.Sorted && (!r.StableChecked || r.Stable)
}

// SelectResult describes one selection check.
type SelectResult struct {
	Input   string
	K       int
	InRange bool
	Found   bool
	Got     int
	Want    int
}

// OK reports whether selection returned the expected order statistic, or
// reported not found for an out-of-range rank.
func (r SelectResult) OK() bool {
	if !r.InRange {
		return !r.Found
	}
	return r.Found && r.Got == r.Want
}

// Runner executes algorithms over data sets.
type Runner struct {
	Log  *logger.Logger
	Rand seq.Rand

	// QuadraticLimit skips quadratic algorithms on larger inputs. Zero
	// means DefaultQuadraticLimit; negative means no limit.
	QuadraticLimit int
}

// NewRunner returns a Runner logging to log and drawing pivots from rng.
func NewRunner(log *logger.Logger, rng seq.Rand) *Runner {
	return &Runner{Log: log, Rand: seq.OrDefault(rng)}
}

func (r *Runner) skip(alg Algorithm, n int) bool {
	limit := r.QuadraticLimit
	if limit == 0 {
		limit = DefaultQuadraticLimit
	}
	return alg.Quadratic && limit > 0 && n > limit
}

// Run sorts a fresh copy of nums with every algorithm in algs.
func (r *Runner) Run(input string, nums []int, algs []Algorithm) []Result {
	log := r.Log.Namespace("input=%s n=%d", input, len(nums))
	results := make([]Result, 0, len(algs))
	for _, alg := range algs {
		res := Result{Input: input, Algorithm: alg.Name, N: len(nums)}
		if r.skip(alg, len(nums)) {
			res.Skipped = true
			log.At("sort").Logf("algo=%s state=skipped", alg.Name)
			results = append(results, res)
			continue
		}

		data := Records(nums)
		s := seq.Slice[Record](data)

		alog := log.At("sort").Start()
		start := time.Now()
		alg.Sort(s, ByValue, r.Rand)
		res.Elapsed = time.Since(start)

		res.Sorted = sort.IsSortedFunc[Record](s, ByValue)
		if alg.Stable {
			res.StableChecked = true
			res.Stable = isStable(data)
		}

		if res.OK() {
			alog.Successf("algo=%s", alg.Name)
		} else {
			alog.Error(errors.Errorf("algo=%s sorted=%t stable=%t", alg.Name, res.Sorted, res.Stable))
		}
		results = append(results, res)
	}
	return results
}

// isStable reports whether equal values appear in input order. data must
// already be sorted by value.
func isStable(data []Record) bool {
	for i := 1; i < len(data); i++ {
		if data[i-1].Value == data[i].Value && data[i-1].Order > data[i].Order {
			return false
		}
	}
	return true
}

// SelectRanks returns the ranks CheckSelect probes for n elements: the
// minimum, the quartiles, the maximum, and one past the end.
func SelectRanks(n int) []int {
	if n == 0 {
		return []int{0}
	}
	ranks := []int{0, n / 4, n / 2, 3 * n / 4, n - 1, n}
	return slices.Compact(ranks)
}

// CheckSelect runs selection for each rank in ranks over a fresh copy of
// nums and compares against a fully sorted copy. Ranks outside [0, n) are
// expected to report not found.
func (r *Runner) CheckSelect(input string, nums []int, ranks []int) []SelectResult {
	sorted := slices.Clone(nums)
	sort.Merge(sorted)

	log := r.Log.Namespace("input=%s n=%d", input, len(nums)).At("select")
	out := make([]SelectResult, 0, len(ranks))
	for _, k := range ranks {
		data := slices.Clone(nums)
		pos := sort.SelectFunc(seq.Slice[int](data), k, seq.Natural[int](), r.Rand)

		res := SelectResult{Input: input, K: k, InRange: k >= 0 && k < len(nums)}
		if res.InRange {
			res.Want = sorted[k]
		}
		if pos < len(data) {
			res.Found = true
			res.Got = data[pos]
		}

		switch {
		case res.OK() && res.Found:
			log.Logf("k=%d value=%d", k, res.Got)
		case res.OK():
			log.Logf("k=%d state=not-found", k)
		default:
			log.Error(errors.Errorf("k=%d got=%d want=%d found=%t", k, res.Got, res.Want, res.Found))
		}
		out = append(out, res)
	}
	return out
}
