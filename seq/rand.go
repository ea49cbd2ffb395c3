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

package seq

import (
	"math/rand/v2"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// SeedEnvVar names the environment variable consulted by FromEnv.
const SeedEnvVar = "SORTKIT_SEED"

// Rand is a source of uniformly distributed integers.
// IntN returns a value in [0, n) and panics if n <= 0.
//
// *rand.Rand from math/rand/v2 satisfies Rand.
type Rand interface {
	IntN(n int) int
}

// globalRand forwards to the top-level math/rand/v2 functions, which are
// safe for concurrent use and randomly seeded per process.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Default returns the process-wide random source. It is safe for
// concurrent use but cannot be seeded.
func Default() Rand {
	return globalRand{}
}

// NewRand returns a deterministic source seeded with seed. The returned
// source is not safe for concurrent use.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// OrDefault returns r, or Default() when r is nil.
func OrDefault(r Rand) Rand {
	if r == nil {
		return Default()
	}
	return r
}

// SeedEnv reads SORTKIT_SEED. It reports ok=false when the variable is
// unset or empty.
func SeedEnv() (seed uint64, ok bool, err error) {
	val := os.Getenv(SeedEnvVar)
	if val == "" {
		return 0, false, nil
	}
	seed, err = strconv.ParseUint(val, 0, 64)
	if err != nil {
		return 0, false, errors.Wrapf(err, "invalid %s", SeedEnvVar)
	}
	return seed, true, nil
}

// FromEnv returns a source seeded from SORTKIT_SEED when it is set, and
// Default() otherwise.
func FromEnv() (Rand, error) {
	seed, ok, err := SeedEnv()
	if err != nil {
		return nil, err
	}
	if !ok {
		return Default(), nil
	}
	return NewRand(seed), nil
}
