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
	"strings"

	"github.com/pkg/errors"
)

// Algorithm describes one sorting algorithm of this package.
type Algorithm struct {
	// Name is the short lower-case identifier, e.g. "merge".
	Name string

	// Stable reports whether equal elements keep their input order.
	Stable bool

	// InPlace reports whether the algorithm works without buffers
	// proportional to the input.
	InPlace bool

	// Complexity is the average-case time complexity.
	Complexity string

	// Quadratic reports whether the average case grows with n².
	Quadratic bool

	// Sort sorts the whole of data, recording work into st when it is
	// non-nil.
	Sort func(data []int, st *Stats) error
}

// ErrUnknownAlgorithm is returned by Lookup for a name that is not registered.
var ErrUnknownAlgorithm = errors.New("sorts: unknown algorithm")

var algorithms = []Algorithm{
	{
		Name:       "selection",
		InPlace:    true,
		Complexity: "O(n²)",
		Quadratic:  true,
		Sort: func(data []int, st *Stats) error {
			selectionSort(data, identity, st)
			return nil
		},
	},
	{
		Name:       "bubble",
		Stable:     true,
		InPlace:    true,
		Complexity: "O(n²)",
		Quadratic:  true,
		Sort: func(data []int, st *Stats) error {
			bubbleSort(data, identity, st)
			return nil
		},
	},
	{
		Name:       "merge",
		Stable:     true,
		Complexity: "O(n log n)",
		Sort: func(data []int, st *Stats) error {
			mergeSort(data, 0, len(data)-1, identity, st, 1)
			return nil
		},
	},
	{
		Name:       "quick",
		InPlace:    true,
		Complexity: "O(n log n)",
		Sort: func(data []int, st *Stats) error {
			quickSort(data, 0, len(data)-1, identity, nil, st, 1)
			return nil
		},
	},
	{
		Name:       "counting",
		Stable:     true,
		Complexity: "O(n + k)",
		Sort: func(data []int, st *Stats) error {
			return countingSort(data, identity, st)
		},
	},
}

// Algorithms returns every registered algorithm in a fixed order: selection,
// bubble, merge, quick, counting. The returned slice is a copy.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// Lookup returns the algorithm with the given name, ignoring case.
func Lookup(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if strings.EqualFold(a.Name, name) {
			return a, nil
		}
	}
	return Algorithm{}, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
}

// QuickWithPivot returns the quicksort entry of the registry using the given
// pivot strategy.
func QuickWithPivot(strategy PivotStrategy) (Algorithm, error) {
	choose, err := pivotChooser[int](strategy)
	if err != nil {
		return Algorithm{}, err
	}
	a, _ := Lookup("quick")
	if strategy != PivotLast {
		a.Name = "quick/" + strategy.String()
	}
	a.Sort = func(data []int, st *Stats) error {
		quickSort(data, 0, len(data)-1, identity, choose, st, 1)
		return nil
	}
	return a, nil
}
