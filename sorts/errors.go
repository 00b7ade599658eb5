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

var (
	// ErrOutOfRange is returned when bounds fall outside the slice.
	ErrOutOfRange = errors.New("sorts: index out of range")

	// ErrInvalidRange is returned for malformed bounds, such as lo > hi+1.
	ErrInvalidRange = errors.New("sorts: invalid range")

	// ErrEmptyInput is returned by CountingSort for an empty slice.
	ErrEmptyInput = errors.New("sorts: empty input")

	// ErrNegativeValue is returned by CountingSort when the input holds a
	// value below zero.
	ErrNegativeValue = errors.New("sorts: negative value")
)

// checkRange validates inclusive bounds [lo, hi] against a slice of length n.
// The empty range hi == lo-1 is valid for any 0 <= lo <= n.
func checkRange(n, lo, hi int) error {
	if lo < 0 || lo > n {
		return errors.Wrapf(ErrOutOfRange, "lower bound %d, length %d", lo, n)
	}
	if hi == lo-1 {
		return nil
	}
	if hi < lo-1 {
		return errors.Wrapf(ErrInvalidRange, "bounds [%d, %d]", lo, hi)
	}
	if hi >= n {
		return errors.Wrapf(ErrOutOfRange, "upper bound %d, length %d", hi, n)
	}
	return nil
}
