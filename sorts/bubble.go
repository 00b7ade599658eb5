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

// BubbleSort sorts data in place in non-decreasing order.
//
// Pass i walks the unsorted prefix data[:n-i] and swaps every adjacent pair
// that is strictly out of order, bubbling the largest remaining element to
// position n-i-1. A pass without swaps ends the sort, so already-sorted input
// costs a single pass. Equal neighbours are never swapped, which keeps the
// sort stable.
func BubbleSort(data []int) {
	bubbleSort(data, identity, nil)
}

func bubbleSort[E any](data []E, key keyFunc[E], st *Stats) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		st.pass()
		swapped := false
		for j := 0; j < n-i-1; j++ {
			st.compare()
			if key(data[j]) > key(data[j+1]) {
				data[j], data[j+1] = data[j+1], data[j]
				st.swap()
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
