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

// Package check provides property checks for sorted output: order,
// permutation, range isolation and stability.
package check

import (
	"maps"
	"slices"

	"github.com/samber/lo"
)

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data []int) bool {
	return FirstUnsorted(data) < 0
}

// FirstUnsorted returns the first index i with data[i] < data[i-1], or -1 if
// data is sorted.
func FirstUnsorted(data []int) int {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return i
		}
	}
	return -1
}

// SameMultiset reports whether a and b hold the same values with the same
// multiplicities, in any order.
func SameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	return maps.Equal(lo.CountValues(a), lo.CountValues(b))
}

// IsSortedPermutation reports whether after is a sorted rearrangement of
// before.
func IsSortedPermutation(before, after []int) bool {
	return IsSorted(after) && SameMultiset(before, after)
}

// Untouched reports whether before and after agree everywhere outside the
// inclusive range [from, to].
func Untouched(before, after []int, from, to int) bool {
	if len(before) != len(after) {
		return false
	}
	from = max(from, 0)
	to = min(to, len(before)-1)
	if from > to {
		return slices.Equal(before, after)
	}
	return slices.Equal(before[:from], after[:from]) && slices.Equal(before[to+1:], after[to+1:])
}

// IsStableBy reports whether after keeps, for every key, the input order of
// the elements of before sharing that key. Elements are told apart by tag,
// which should be unique per element.
func IsStableBy[E any](before, after []E, key func(E) int, tag func(E) int) bool {
	if len(before) != len(after) {
		return false
	}
	want := lo.GroupBy(before, key)
	got := lo.GroupBy(after, key)
	if len(want) != len(got) {
		return false
	}
	for k, group := range want {
		if !slices.Equal(lo.Map(group, func(e E, _ int) int { return tag(e) }),
			lo.Map(got[k], func(e E, _ int) int { return tag(e) })) {
			return false
		}
	}
	return true
}
