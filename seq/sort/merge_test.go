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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-sortkit/seq"
)

func TestMergeStep(t *testing.T) {
	cases := []struct {
		name string
		data []record
		mid  int
		want []record
	}{
		{
			name: "left tail shifted",
			data: []record{{4, 0}, {5, 1}, {6, 2}, {1, 3}, {2, 4}},
			mid:  3,
			want: []record{{1, 3}, {2, 4}, {4, 0}, {5, 1}, {6, 2}},
		},
		{
			name: "right tail in place",
			data: []record{{1, 0}, {2, 1}, {3, 2}, {8, 3}, {9, 4}},
			mid:  2,
			want: []record{{1, 0}, {2, 1}, {3, 2}, {8, 3}, {9, 4}},
		},
		{
			name: "ties favor left",
			data: []record{{1, 0}, {2, 1}, {1, 2}, {2, 3}},
			mid:  2,
			want: []record{{1, 0}, {1, 2}, {2, 1}, {2, 3}},
		},
		{
			name: "interleaved",
			data: []record{{1, 0}, {3, 1}, {5, 2}, {2, 3}, {4, 4}, {6, 5}},
			mid:  3,
			want: []record{{1, 0}, {2, 3}, {3, 1}, {4, 4}, {5, 2}, {6, 5}},
		},
	}
	for _, c := range cases {
		buf := make([]record, len(c.data))
		merge[record](seq.Slice[record](c.data), byKey, c.mid, buf)
		if diff := cmp.Diff(c.want, c.data); diff != "" {
			t.Errorf("merge(%s) mismatch (-want +got):\n%s", c.name, diff)
		}
	}
}

// TestMergeSharedBuffer sorts a sub-range whose scratch buffer is smaller
// than the underlying slice.
func TestMergeSharedBuffer(t *testing.T) {
	data := []int{100, 9, 3, 7, 1, 8, 2, -5}
	MergeFunc[int](seq.Sub[int](seq.Slice[int](data), 1, 7), seq.Natural[int]())
	if diff := cmp.Diff([]int{100, 1, 2, 3, 7, 8, 9, -5}, data); diff != "" {
		t.Errorf("MergeFunc(sub-range) mismatch (-want +got):\n%s", diff)
	}
}
