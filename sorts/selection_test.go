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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionSortScenario(t *testing.T) {
	data := []int{64, 25, 12, 22, 11}
	SelectionSort(data)
	assert.Equal(t, []int{11, 12, 22, 25, 64}, data)
}

func TestSelectionSortCases(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"nil", nil, nil},
		{"empty", []int{}, []int{}},
		{"single", []int{42}, []int{42}},
		{"two", []int{2, 1}, []int{1, 2}},
		{"sorted", []int{1, 2, 3, 4, 5}, []int{1, 2, 3, 4, 5}},
		{"reverse", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{"all equal", []int{7, 7, 7, 7}, []int{7, 7, 7, 7}},
		{"negatives", []int{3, -1, 0, -7, 2}, []int{-7, -1, 0, 2, 3}},
		{"duplicates", []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}, []int{1, 1, 2, 3, 3, 4, 5, 5, 5, 6, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SelectionSort(tt.in)
			assert.Equal(t, tt.want, tt.in)
		})
	}
}

// TestSelectionSortRandom compares against an independent heapsort.
func TestSelectionSortRandom(t *testing.T) {
	rng := newRand(1)
	for _, n := range []int{0, 1, 2, 7, 31, 100, 257} {
		input := randomInts(rng, n, 50)
		data := slices.Clone(input)
		SelectionSort(data)
		assertSortedAgainstReference(t, "SelectionSort", input, data)
	}
}

// TestSelectionSortStats checks that every pass scans the whole suffix and
// that already placed minimums are not swapped.
func TestSelectionSortStats(t *testing.T) {
	var st Stats
	data := []int{1, 2, 3, 4, 5}
	selectionSort(data, identity, &st)
	assert.Equal(t, 4, st.Passes)
	assert.Equal(t, 4+3+2+1, st.Comparisons)
	assert.Zero(t, st.Swaps)

	st.Reset()
	data = []int{2, 1}
	selectionSort(data, identity, &st)
	assert.Equal(t, Stats{Comparisons: 1, Swaps: 1, Passes: 1}, st)
}

// TestSelectionSortTiesKeepEarliest verifies the minimum search keeps the
// first of equal keys, while the swap may still reorder equal elements.
func TestSelectionSortTiesKeepEarliest(t *testing.T) {
	data := makeTagged([]int{2, 1, 1})
	selectionSort(data, tagKey, nil)
	assert.Equal(t, []tagged{{1, 1}, {1, 2}, {2, 0}}, data)

	// [2a 2b 1] -> [1 2b 2a]: the first swap carries 2a past 2b.
	data = makeTagged([]int{2, 2, 1})
	selectionSort(data, tagKey, nil)
	assert.Equal(t, []tagged{{1, 2}, {2, 1}, {2, 0}}, data)
}
