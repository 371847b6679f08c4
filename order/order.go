// Package order implements the priority-sort preprocessor: it reindexes
// item statistics by ascending a_i/b_i ratio so that every downstream
// solver (ltss, dp, pgraph) can assume contiguous-range partitions.
//
// Complexity: O(n log n) time, O(n) space for the index/permutation
// scratch; the reorder of a and b happens in place on the caller's
// slices.
package order

import "sort"

// SortByRatio stably sorts a and b in place by ascending a[i]/b[i] and
// returns the permutation applied, so callers who need to recover
// original item identity can invert it: original index at new position
// k is Perm[k].
//
// b[i] == 0 is not validated here; callers computing a ratio against a
// zero denominator get +Inf/-Inf/NaN per IEEE 754, which sort.Stable
// orders consistently (NaN sorts as neither less nor greater, so ties
// among NaN ratios preserve input order, same as any other tie).
func SortByRatio(a, b []float32) []int {
	n := len(a)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	sort.SliceStable(perm, func(i, j int) bool {
		pi, pj := perm[i], perm[j]
		return float64(a[pi])/float64(b[pi]) < float64(a[pj])/float64(b[pj])
	})

	sortedA := make([]float32, n)
	sortedB := make([]float32, n)
	for k, orig := range perm {
		sortedA[k] = a[orig]
		sortedB[k] = b[orig]
	}
	copy(a, sortedA)
	copy(b, sortedB)

	return perm
}
