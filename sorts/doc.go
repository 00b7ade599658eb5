// Package sorts provides the classic comparison and counting sorts over
// integer slices: selection sort, bubble sort, merge sort, quicksort and
// counting sort.
//
// Every algorithm is a plain function over a caller-owned []int. Nothing is
// retained after a call returns and auxiliary buffers are allocated per call,
// so concurrent calls on independent slices are safe. Calling two sorts on
// the same slice at once is not.
//
// # Algorithms
//
//   - SelectionSort: O(n²), in place, not stable.
//   - BubbleSort: O(n²), O(n) on sorted input, in place, stable.
//   - MergeSort: O(n log n), O(n) auxiliary space, stable.
//   - QuickSort: O(n log n) average, O(n²) worst case, in place, not stable.
//   - CountingSort: O(n + k) for values in [0, k], stable, non-negative input only.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sorting/sorts"
//
//	func Sorted(data []int) ([]int, error) {
//	    out := slices.Clone(data)
//	    if err := sorts.MergeSort(out, 0, len(out)-1); err != nil {
//	        return nil, err
//	    }
//	    return out, nil
//	}
//
// # Bounds
//
// MergeSort, QuickSort, Merge and Partition take inclusive bounds. An empty
// range (hi == lo-1, for example 0, -1 on an empty slice) is accepted as a
// no-op; any other range must satisfy 0 <= lo <= hi < len(data). Violations
// return an error wrapping ErrOutOfRange or ErrInvalidRange and leave the
// slice untouched.
//
// # Pivots
//
// QuickSort always partitions around the last element of the range, which
// makes sorted and reverse-sorted input its O(n²) worst case. QuickSortPivot
// accepts a PivotStrategy for median-of-three or random pivots.
package sorts
