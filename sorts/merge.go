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

// MergeSort sorts data[left..right] (inclusive) in place, leaving the rest of
// data untouched. The sort is stable.
//
// Each merge copies its two halves into fresh buffers, so a single call
// allocates O(right-left+1) transient memory at the top level. Recursion
// depth is O(log n).
func MergeSort(data []int, left, right int) error {
	if err := checkRange(len(data), left, right); err != nil {
		return err
	}
	mergeSort(data, left, right, identity, nil, 1)
	return nil
}

// Merge merges the sorted runs data[left..mid] and data[mid+1..right] into a
// single sorted run. Equal elements from the left run come first.
//
// Merge does not verify that the runs are sorted; unsorted runs produce an
// unsorted result but never an invalid access.
func Merge(data []int, left, mid, right int) error {
	if err := checkRange(len(data), left, right); err != nil {
		return err
	}
	if right < left {
		return nil
	}
	if mid < left || mid > right {
		return errors.Wrapf(ErrInvalidRange, "mid %d outside [%d, %d]", mid, left, right)
	}
	merge(data, left, mid, right, identity, nil)
	return nil
}

func mergeSort[E any](data []E, left, right int, key keyFunc[E], st *Stats, depth int) {
	if left >= right {
		return
	}
	st.depth(depth)
	mid := left + (right-left)/2
	mergeSort(data, left, mid, key, st, depth+1)
	mergeSort(data, mid+1, right, key, st, depth+1)
	merge(data, left, mid, right, key, st)
}

func merge[E any](data []E, left, mid, right int, key keyFunc[E], st *Stats) {
	lhs := make([]E, mid-left+1)
	rhs := make([]E, right-mid)
	copy(lhs, data[left:mid+1])
	copy(rhs, data[mid+1:right+1])

	i, j, k := 0, 0, left
	for i < len(lhs) && j < len(rhs) {
		st.compare()
		// Ties take from lhs; this is what makes the sort stable.
		if key(lhs[i]) <= key(rhs[j]) {
			data[k] = lhs[i]
			i++
		} else {
			data[k] = rhs[j]
			j++
		}
		k++
	}
	k += copy(data[k:], lhs[i:])
	copy(data[k:], rhs[j:])
	st.write(right - left + 1)
}
