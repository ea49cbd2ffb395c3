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

// Package datafile reads and writes integer test data in the text format
// shared by the generator and the benchmark harness: a count on the first
// line, followed by that many whitespace-separated integers.
package datafile

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-sortkit/seq"
	"github.com/ajroetker/go-sortkit/seq/shuffle"
)

var (
	// ErrCountMismatch is returned when the file holds fewer integers than
	// its header announces.
	ErrCountMismatch = errors.New("datafile: fewer numbers than declared count")

	// ErrTrailingData is returned when numbers follow the declared count.
	ErrTrailingData = errors.New("datafile: trailing data after declared count")
)

// Generate returns n integers. When bound > 0 they are drawn uniformly from
// [0, bound); otherwise they are the unique values 0..n-1 in a uniformly
// shuffled order.
func Generate(bound, n int, rng seq.Rand) ([]int, error) {
	if n < 0 {
		return nil, errors.Errorf("datafile: negative count %d", n)
	}
	rng = seq.OrDefault(rng)
	nums := make([]int, n)
	if bound > 0 {
		for i := range nums {
			nums[i] = rng.IntN(bound)
		}
		return nums, nil
	}
	for i := range nums {
		nums[i] = i
	}
	shuffle.Slice(nums, rng)
	return nums, nil
}

// Write encodes nums to w.
func Write(w io.Writer, nums []int) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(len(nums)))
	bw.WriteByte('\n')
	for _, v := range nums {
		bw.WriteString(strconv.Itoa(v))
		bw.WriteByte(' ')
	}
	bw.WriteByte('\n')
	return errors.Wrap(bw.Flush(), "datafile: write")
}

// Read decodes a data file from r.
func Read(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, errors.Wrap(err, "datafile: read count")
		}
		return nil, errors.New("datafile: missing count")
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return nil, errors.Wrap(err, "datafile: parse count")
	}
	if n < 0 {
		return nil, errors.Errorf("datafile: negative count %d", n)
	}

	nums := make([]int, 0, n)
	for len(nums) < n && sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "datafile: parse number %d", len(nums))
		}
		nums = append(nums, v)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "datafile: read numbers")
	}
	if len(nums) < n {
		return nil, errors.Wrapf(ErrCountMismatch, "got %d of %d", len(nums), n)
	}
	if sc.Scan() {
		return nil, errors.Wrapf(ErrTrailingData, "unexpected %q", sc.Text())
	}
	return nums, nil
}

// WriteFile writes nums to the named file, creating or truncating it.
func WriteFile(name string, nums []int) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return errors.WithStack(err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.WithStack(cerr)
		}
	}()
	return Write(f, nums)
}

// ReadFile reads the named data file.
func ReadFile(name string) ([]int, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	nums, err := Read(f)
	return nums, errors.Wrap(err, name)
}
