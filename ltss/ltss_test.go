package ltss_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vlarion/partline/ltss"
	"github.com/vlarion/partline/order"
)

func bruteForceBest(a, b []float32) (int, int, float32) {
	n := len(a)
	bestI, bestJ := 0, n
	var bestScore float32 = -1e30
	for i := 0; i < n; i++ {
		var sumA, sumB float32
		for j := i + 1; j <= n; j++ {
			sumA += a[j-1]
			sumB += b[j-1]
			score := sumA * sumA / sumB
			if score > bestScore {
				bestScore = score
				bestI, bestJ = i, j
			}
		}
	}

	return bestI, bestJ, bestScore
}

func TestFindOptimalPartition_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 5 + rng.Intn(10)
		a := make([]float32, n)
		b := make([]float32, n)
		for i := range a {
			a[i] = float32(1 + rng.Intn(20))
			b[i] = float32(1 + rng.Intn(20))
		}
		order.SortByRatio(a, b)

		gotIndices, gotScore := ltss.OptimizeOne(a, b)
		_, wantJ, wantScore := bruteForceBest(a, b)

		require.InDelta(t, float64(wantScore), float64(gotScore), 1e-2, "trial %d", trial)
		require.Equal(t, n, wantJ, "brute force optimum should always end at n (LTSS suffix property)")
		require.Equal(t, n, gotIndices[len(gotIndices)-1]+1)
	}
}

func TestFindOptimalPartition_ContiguousAscending(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	b := []float32{1, 1, 1, 1}
	indices := ltss.FindOptimalPartition(a, b)
	for i := 1; i < len(indices); i++ {
		require.Equal(t, indices[i-1]+1, indices[i])
	}
	require.Equal(t, len(a)-1, indices[len(indices)-1])
}

func TestFindOptimalPartition_SingleItem(t *testing.T) {
	indices := ltss.FindOptimalPartition([]float32{5}, []float32{2})
	require.Equal(t, []int{0}, indices)
}
