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

// Stats counts the work an algorithm performs. A nil *Stats is valid and
// records nothing, which is what the plain entry points pass.
type Stats struct {
	// Comparisons is the number of element comparisons.
	Comparisons int

	// Swaps is the number of element exchanges.
	Swaps int

	// Writes is the number of elements written from an auxiliary buffer
	// back into the slice (merge and counting sort).
	Writes int

	// Passes is the number of outer passes (selection and bubble sort).
	Passes int

	// MaxDepth is the deepest recursion level reached (merge and quicksort).
	MaxDepth int
}

// Reset zeroes all counters.
func (s *Stats) Reset() {
	if s == nil {
		return
	}
	*s = Stats{}
}

// Add accumulates other into s. MaxDepth keeps the larger of the two.
func (s *Stats) Add(other Stats) {
	if s == nil {
		return
	}
	s.Comparisons += other.Comparisons
	s.Swaps += other.Swaps
	s.Writes += other.Writes
	s.Passes += other.Passes
	s.MaxDepth = max(s.MaxDepth, other.MaxDepth)
}

func (s *Stats) compare() {
	if s != nil {
		s.Comparisons++
	}
}

func (s *Stats) swap() {
	if s != nil {
		s.Swaps++
	}
}

func (s *Stats) write(n int) {
	if s != nil {
		s.Writes += n
	}
}

func (s *Stats) pass() {
	if s != nil {
		s.Passes++
	}
}

func (s *Stats) depth(d int) {
	if s != nil && d > s.MaxDepth {
		s.MaxDepth = d
	}
}

// keyFunc extracts the sort key of an element. The exported functions sort
// plain ints through identity; tests use tagged elements to observe
// stability.
type keyFunc[E any] func(E) int

func identity(v int) int { return v }
