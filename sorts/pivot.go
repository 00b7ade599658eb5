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

package sorts

import (
	"math/rand/v2"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// PivotStrategy selects how QuickSortPivot picks the partitioning element.
type PivotStrategy int

const (
	// PivotLast uses the last element of the range. Sorted and
	// reverse-sorted input hit the O(n²) worst case.
	PivotLast PivotStrategy = iota

	// PivotMedianOfThree uses the median of the first, middle and last
	// elements, which defuses sorted and reverse-sorted input.
	PivotMedianOfThree

	// PivotRandom uses a uniformly random element of the range.
	PivotRandom
)

// ErrUnknownPivot is returned for a PivotStrategy or name that does not exist.
var ErrUnknownPivot = errors.New("sorts: unknown pivot strategy")

// PivotEnv is the environment variable read by PivotFromEnv.
const PivotEnv = "SORTS_PIVOT"

// String returns the name accepted by ParsePivot.
func (p PivotStrategy) String() string {
	switch p {
	case PivotLast:
		return "last"
	case PivotMedianOfThree:
		return "median3"
	case PivotRandom:
		return "random"
	default:
		return "unknown"
	}
}

// ParsePivot parses a pivot name as returned by PivotStrategy.String.
// Matching is case-insensitive.
func ParsePivot(name string) (PivotStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "last":
		return PivotLast, nil
	case "median3", "median-of-three":
		return PivotMedianOfThree, nil
	case "random":
		return PivotRandom, nil
	}
	return PivotLast, errors.Wrapf(ErrUnknownPivot, "%q", name)
}

// PivotFromEnv returns the strategy named by SORTS_PIVOT, or PivotLast when
// the variable is unset. An unparsable value is reported as an error along
// with PivotLast.
func PivotFromEnv() (PivotStrategy, error) {
	val := os.Getenv(PivotEnv)
	if val == "" {
		return PivotLast, nil
	}
	return ParsePivot(val)
}

// pivotFunc returns the index in [low, high] of the element to partition
// around.
type pivotFunc[E any] func(data []E, low, high int, key keyFunc[E], st *Stats) int

// pivotChooser returns nil for PivotLast: the partition already uses
// data[high].
func pivotChooser[E any](p PivotStrategy) (pivotFunc[E], error) {
	switch p {
	case PivotLast:
		return nil, nil
	case PivotMedianOfThree:
		return medianOfThree[E], nil
	case PivotRandom:
		return randomPivot[E], nil
	}
	return nil, errors.Wrapf(ErrUnknownPivot, "strategy %d", int(p))
}

func medianOfThree[E any](data []E, low, high int, key keyFunc[E], st *Stats) int {
	mid := low + (high-low)/2
	a, b, c := key(data[low]), key(data[mid]), key(data[high])
	st.compare()
	st.compare()
	switch {
	case (a <= b) == (b <= c):
		return mid
	case (b <= a) == (a <= c):
		return low
	default:
		return high
	}
}

func randomPivot[E any](data []E, low, high int, _ keyFunc[E], _ *Stats) int {
	return low + rand.IntN(high-low+1)
}
