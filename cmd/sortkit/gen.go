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
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortkit/internal/datafile"
)

func newGenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gen K N FILE",
		Short: "Write N integers to FILE",
		Long: `Write N integers to FILE: the count on the first line, then the numbers.

K > 0 draws each number uniformly from [0, K).
K <= 0 writes the unique numbers 0..N-1 in a uniformly shuffled order.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bound, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(err, "invalid K")
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.Wrap(err, "invalid N")
			}
			rng, err := opts.rand(cmd)
			if err != nil {
				return err
			}

			log := opts.logger(cmd).Start()
			nums, err := datafile.Generate(bound, n, rng)
			if err != nil {
				return log.Error(err)
			}
			if err := datafile.WriteFile(args[2], nums); err != nil {
				return log.Error(err)
			}
			log.Successf("file=%s k=%d n=%d", args[2], bound, n)
			return nil
		},
	}
}
