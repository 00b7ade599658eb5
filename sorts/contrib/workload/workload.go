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

// Package workload generates input sequences with known shapes for tests,
// benchmarks and the sortbench command.
//
// Every generator returns values in [0, maxValue], so the output is valid
// input for every algorithm, counting sort included.
package workload

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is the shape of a generated sequence.
type Pattern int

const (
	// Random draws values uniformly from [0, maxValue].
	Random Pattern = iota

	// Sorted is non-decreasing.
	Sorted

	// Reverse is non-increasing.
	Reverse

	// Equal repeats a single value.
	Equal

	// FewUnique draws from at most 4 distinct values.
	FewUnique

	// Sawtooth repeats ascending runs of length ~sqrt(n).
	Sawtooth
)

// ErrUnknownPattern is returned by ParsePattern for an unrecognised name.
var ErrUnknownPattern = errors.New("workload: unknown pattern")

var patternNames = map[Pattern]string{
	Random:    "random",
	Sorted:    "sorted",
	Reverse:   "reverse",
	Equal:     "equal",
	FewUnique: "few-unique",
	Sawtooth:  "sawtooth",
}

// Patterns returns all patterns in declaration order.
func Patterns() []Pattern {
	return []Pattern{Random, Sorted, Reverse, Equal, FewUnique, Sawtooth}
}

func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParsePattern parses a pattern name as returned by Pattern.String.
func ParsePattern(name string) (Pattern, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for p, n := range patternNames {
		if n == name {
			return p, nil
		}
	}
	return Random, errors.Wrapf(ErrUnknownPattern, "%q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	if _, ok := patternNames[p]; !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "pattern %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(text []byte) error {
	parsed, err := ParsePattern(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Generate returns n values in [0, maxValue] shaped by p. A nil rng uses the
// global source. maxValue below zero is treated as zero.
func Generate(p Pattern, n, maxValue int, rng *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	maxValue = max(maxValue, 0)
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	data := make([]int, n)
	switch p {
	case Sorted, Reverse:
		for i := range data {
			data[i] = int(int64(i) * int64(maxValue) / int64(max(n-1, 1)))
		}
		if p == Reverse {
			for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
				data[i], data[j] = data[j], data[i]
			}
		}
	case Equal:
		v := intN(maxValue + 1)
		for i := range data {
			data[i] = v
		}
	case FewUnique:
		var values [4]int
		for i := range values {
			values[i] = intN(maxValue + 1)
		}
		for i := range data {
			data[i] = values[intN(len(values))]
		}
	case Sawtooth:
		run := 1
		for run*run < n {
			run++
		}
		for i := range data {
			data[i] = (i % run) * maxValue / max(run-1, 1)
		}
	default:
		for i := range data {
			data[i] = intN(maxValue + 1)
		}
	}
	return data
}
