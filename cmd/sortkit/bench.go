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
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sortkit/internal/datafile"
	"github.com/ajroetker/go-sortkit/internal/harness"
)

func newBenchCmd(opts *options) *cobra.Command {
	var (
		algos          []string
		quadraticLimit int
		checkSelect    bool
	)
	cmd := &cobra.Command{
		Use:   "bench FILE...",
		Short: "Time every algorithm on each data file and validate the results",
		Long: `Load each data file, sort a fresh copy with every selected algorithm,
and check that the output is ordered (and, for stable algorithms, that equal
values keep their input order). Selection is checked at the minimum, the
quartiles, the maximum and one past the end.

Exits non-zero if any check fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algs, err := harness.Lookup(algos)
			if err != nil {
				return err
			}
			rng, err := opts.rand(cmd)
			if err != nil {
				return err
			}

			log := opts.logger(cmd)
			runner := harness.NewRunner(log, rng)
			runner.QuadraticLimit = quadraticLimit

			var (
				results []harness.Result
				selects []harness.SelectResult
			)
			for _, name := range args {
				nums, err := datafile.ReadFile(name)
				if err != nil {
					return log.Error(err)
				}
				input := filepath.Base(name)
				results = append(results, runner.Run(input, nums, algs)...)
				if checkSelect {
					selects = append(selects, runner.CheckSelect(input, nums, harness.SelectRanks(len(nums)))...)
				}
			}

			failed, err := harness.WriteReport(cmd.OutOrStdout(), results, selects)
			if err != nil {
				return errors.Wrap(err, "write report")
			}
			if failed > 0 {
				return errors.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&algos, "algos", []string{"all"}, "algorithms to run")
	cmd.Flags().IntVar(&quadraticLimit, "quadratic-limit", harness.DefaultQuadraticLimit, "skip quadratic algorithms above this many elements (negative: never skip)")
	cmd.Flags().BoolVar(&checkSelect, "select", true, "also validate selection")
	return cmd
}
