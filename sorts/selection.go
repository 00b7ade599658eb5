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

// SelectionSort sorts data in place in non-decreasing order.
//
// Each pass i scans data[i:] for its minimum and swaps it into position i.
// Ties keep the earliest index, but the swap itself can carry an element past
// an equal one, so the sort is not stable. O(n²) comparisons regardless of
// input order, at most n-1 swaps.
func SelectionSort(data []int) {
	selectionSort(data, identity, nil)
}

func selectionSort[E any](data []E, key keyFunc[E], st *Stats) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		st.pass()
		minIdx := i
		for j := i + 1; j < n; j++ {
			st.compare()
			if key(data[j]) < key(data[minIdx]) {
				minIdx = j
			}
		}
		if minIdx != i {
			data[i], data[minIdx] = data[minIdx], data[i]
			st.swap()
		}
	}
}
