// Package ltss implements the Linear-Time Subset Scan: given items
// already sorted by ascending a_i/b_i priority, find the single
// contiguous subset maximizing C^2/B, where C and B are the summed a
// and b statistics over the subset.
//
// Because items are presorted by priority and C^2/B belongs to the
// class of "linear-time subset scanning" score functions (its optimal
// subset over *all* subsets, not just contiguous ones, is always a
// threshold set on priority), the optimum is always a suffix of the
// sorted sequence: [i, n) for some i. This lets a single backward pass
// accumulating running sums find it in O(n) time and O(1) extra space —
// no need to consider arbitrary (i, j) windows.
package ltss

// FindOptimalPartition returns the ascending index list of the optimal
// contiguous subset. It assumes a and b are already sorted by ascending
// a_i/b_i (see package order) and every b_i > 0.
func FindOptimalPartition(a, b []float32) []int {
	start, _ := bestSuffix(a, b)
	n := len(a)
	indices := make([]int, 0, n-start)
	for i := start; i < n; i++ {
		indices = append(indices, i)
	}

	return indices
}

// OptimizeOne returns the optimal subset together with its score.
func OptimizeOne(a, b []float32) ([]int, float32) {
	start, score := bestSuffix(a, b)
	n := len(a)
	indices := make([]int, 0, n-start)
	for i := start; i < n; i++ {
		indices = append(indices, i)
	}

	return indices, score
}

// bestSuffix scans backward from n-1 to 0, maintaining running C and B
// sums for the suffix [i, n), and returns the start index and score of
// the best-scoring suffix. Ties prefer the lowest starting index, so
// later iterations (smaller i) override on an exact tie.
func bestSuffix(a, b []float32) (int, float32) {
	n := len(a)
	if n == 0 {
		return 0, 0
	}

	var sumA, sumB float32
	bestStart := n - 1
	sumA, sumB = a[n-1], b[n-1]
	bestScore := sumA * sumA / sumB

	for i := n - 2; i >= 0; i-- {
		sumA += a[i]
		sumB += b[i]
		score := sumA * sumA / sumB
		if score >= bestScore {
			bestScore = score
			bestStart = i
		}
	}

	return bestStart, bestScore
}
