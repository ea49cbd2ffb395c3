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

// Command sortkit generates integer test data and runs the sortkit
// algorithms over it.
//
// Usage:
//
//	sortkit gen 1000 100000 data/highly_duplicated.txt   # 100000 numbers in [0, 1000)
//	sortkit gen 0 100000 data/unique.txt                 # shuffled 0..99999
//	sortkit bench data/*.txt --algos quick,heap,merge
//	sortkit select data/unique.txt 500
//
// Randomized steps honor --seed, or the SORTKIT_SEED environment variable
// when the flag is not given.
package main

import (
	"io"
	"os"

	"github.com/convox/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-sortkit/seq"
)

type options struct {
	seed    uint64
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "sortkit",
		Short:        "Generate test data and validate sortkit algorithms",
		SilenceUsage: true,
	}
	opts.register(root.PersistentFlags())

	root.AddCommand(newGenCmd(opts), newBenchCmd(opts), newSelectCmd(opts))
	return root
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.Uint64Var(&o.seed, "seed", 0, "random seed (default: $"+seq.SeedEnvVar+" or a random seed)")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log every step to stderr")
}

// rand returns the random source selected by --seed or SORTKIT_SEED.
func (o *options) rand(cmd *cobra.Command) (seq.Rand, error) {
	if cmd.Flags().Changed("seed") {
		return seq.NewRand(o.seed), nil
	}
	return seq.FromEnv()
}

func (o *options) logger(cmd *cobra.Command) *logger.Logger {
	var w io.Writer = io.Discard
	if o.verbose {
		w = cmd.ErrOrStderr()
	}
	return logger.NewWriter("ns=sortkit", w).At(cmd.Name())
}
