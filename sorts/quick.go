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

import "github.com/pkg/errors"

// QuickSort sorts data[low..high] (inclusive) in place, leaving the rest of
// data untouched. The sort is not stable.
//
// The pivot is always data[high] (Lomuto partitioning), so sorted and
// reverse-sorted ranges take O(n²) comparisons. The recursion descends into
// the smaller partition and iterates over the larger one, which bounds stack
// depth to O(log n) without changing the comparisons or swaps performed.
func QuickSort(data []int, low, high int) error {
	return QuickSortPivot(data, low, high, PivotLast)
}

// QuickSortPivot is QuickSort with a configurable pivot strategy. The chosen
// pivot is swapped into data[high] before the same Lomuto partition runs, so
// PivotLast behaves exactly like QuickSort.
func QuickSortPivot(data []int, low, high int, strategy PivotStrategy) error {
	if err := checkRange(len(data), low, high); err != nil {
		return err
	}
	choose, err := pivotChooser[int](strategy)
	if err != nil {
		return err
	}
	quickSort(data, low, high, identity, choose, nil, 1)
	return nil
}

// Partition rearranges data[low..high] around the pivot data[high]: elements
// strictly less than the pivot end up before it, all others after it. It
// returns the pivot's final index.
func Partition(data []int, low, high int) (int, error) {
	if err := checkRange(len(data), low, high); err != nil {
		return 0, err
	}
	if high < low {
		return 0, errors.Wrapf(ErrInvalidRange, "cannot partition empty range [%d, %d]", low, high)
	}
	return partition(data, low, high, identity, nil), nil
}

func quickSort[E any](data []E, low, high int, key keyFunc[E], choose pivotFunc[E], st *Stats, depth int) {
	for low < high {
		st.depth(depth)
		if choose != nil {
			if p := choose(data, low, high, key, st); p != high {
				data[p], data[high] = data[high], data[p]
				st.swap()
			}
		}
		p := partition(data, low, high, key, st)
		if p-low < high-p {
			quickSort(data, low, p-1, key, choose, st, depth+1)
			low = p + 1
		} else {
			quickSort(data, p+1, high, key, choose, st, depth+1)
			high = p - 1
		}
	}
}

func partition[E any](data []E, low, high int, key keyFunc[E], st *Stats) int {
	pivot := key(data[high])
	i := low - 1
	for j := low; j < high; j++ {
		st.compare()
		if key(data[j]) < pivot {
			i++
			data[i], data[j] = data[j], data[i]
			st.swap()
		}
	}
	data[i+1], data[high] = data[high], data[i+1]
	st.swap()
	return i + 1
}
