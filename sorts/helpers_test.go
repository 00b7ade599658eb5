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
	"slices"
	stdsort "sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	algosort "github.com/twmb/algoimpl/go/sort"
)

// tagged is an element whose tag records its input position, so stability
// can be observed among equal keys.
type tagged struct {
	key, tag int
}

func tagKey(e tagged) int { return e.key }
func tagID(e tagged) int  { return e.tag }

// makeTagged tags keys with their index.
func makeTagged(keys []int) []tagged {
	out := make([]tagged, len(keys))
	for i, k := range keys {
		out[i] = tagged{key: k, tag: i}
	}
	return out
}

// reference sorts a copy of data with an independent heapsort.
func reference(data []int) []int {
	ref := slices.Clone(data)
	algosort.HeapSort(stdsort.IntSlice(ref))
	return ref
}

// randomInts returns n values in [0, maxValue] from a seeded source.
func randomInts(rng *rand.Rand, n, maxValue int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rng.IntN(maxValue + 1)
	}
	return data
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// assertSortedAgainstReference fails the test with a diff when got is not
// the sorted form of input. Nil and empty slices compare equal.
func assertSortedAgainstReference(t *testing.T, name string, input, got []int) {
	t.Helper()
	if diff := cmp.Diff(reference(input), got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s(%v) mismatch (-want +got):\n%s", name, input, diff)
	}
}
