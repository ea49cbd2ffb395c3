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

package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortkit/internal/datafile"
	"github.com/ajroetker/go-sortkit/seq"
	"github.com/ajroetker/go-sortkit/seq/sort"
)

func newSelectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "select FILE K",
		Short: "Print the K-th smallest number in FILE (0-based)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrap(err, "invalid K")
			}
			rng, err := opts.rand(cmd)
			if err != nil {
				return err
			}
			nums, err := datafile.ReadFile(args[0])
			if err != nil {
				return opts.logger(cmd).Error(err)
			}

			pos := sort.SelectFunc(seq.Slice[int](nums), k, seq.Natural[int](), rng)
			if pos == len(nums) {
				fmt.Fprintln(cmd.OutOrStdout(), "not found")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), nums[pos])
			return nil
		},
	}
}
