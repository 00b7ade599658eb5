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

// CountingSort sorts non-negative integers in O(n + k) time and space, where
// k is the largest value in data. The sort is stable.
//
// Values are tallied into a table of size k+1, the table is turned into
// running totals, and the input is scanned from the end to drop each element
// into the last free slot for its value in an output buffer, which is then
// copied back over data.
//
// An empty slice returns ErrEmptyInput and a negative value returns
// ErrNegativeValue naming the value and its index; in both cases data is
// left untouched.
func CountingSort(data []int) error {
	return countingSort(data, identity, nil)
}

func countingSort[E any](data []E, key keyFunc[E], st *Stats) error {
	n := len(data)
	if n == 0 {
		return errors.WithStack(ErrEmptyInput)
	}

	maxKey := 0
	for i, e := range data {
		k := key(e)
		if k < 0 {
			return errors.Wrapf(ErrNegativeValue, "value %d at index %d", k, i)
		}
		st.compare()
		if k > maxKey {
			maxKey = k
		}
	}

	count := make([]int, maxKey+1)
	for _, e := range data {
		count[key(e)]++
	}

	// count[v] becomes the number of elements <= v, i.e. one past the last
	// slot a value v may occupy.
	for v := 1; v <= maxKey; v++ {
		count[v] += count[v-1]
	}

	// Walking backwards while decrementing places equal keys in input order.
	output := make([]E, n)
	for i := n - 1; i >= 0; i-- {
		k := key(data[i])
		output[count[k]-1] = data[i]
		count[k]--
	}

	copy(data, output)
	st.write(n)
	return nil
}
