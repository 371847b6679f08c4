package scoring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vlarion/partline/scoring"
)

func TestNew_OptimizationUnsupported(t *testing.T) {
	_, err := scoring.New([]float32{1, 2}, []float32{1, 1}, scoring.Gaussian, scoring.RiskPartitioningMode, true)
	require.ErrorIs(t, err, scoring.ErrOptimizationUnsupported)
}

func TestNew_DegenerateInput(t *testing.T) {
	_, err := scoring.New([]float32{1, 2}, []float32{1, 0}, scoring.RationalScore, scoring.RiskPartitioningMode, false)
	require.ErrorIs(t, err, scoring.ErrDegenerateInput)
}

func TestNew_LengthMismatch(t *testing.T) {
	_, err := scoring.New([]float32{1, 2}, []float32{1}, scoring.RationalScore, scoring.RiskPartitioningMode, false)
	require.ErrorIs(t, err, scoring.ErrLengthMismatch)
}

func TestScore_RationalScore_NaiveVsOptimized(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6}
	b := []float32{2, 1, 3, 2, 1, 4}

	naive, err := scoring.New(a, b, scoring.RationalScore, scoring.RiskPartitioningMode, false)
	require.NoError(t, err)
	opt, err := scoring.New(a, b, scoring.RationalScore, scoring.RiskPartitioningMode, true)
	require.NoError(t, err)

	n := len(a)
	for i := 0; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			want := naive.Score(i, j)
			got := opt.Score(i, j)
			require.InDelta(t, float64(want), float64(got), 1e-3, "i=%d j=%d", i, j)
		}
	}
}

func TestScore_GaussianMultiClust_ClampsAtZero(t *testing.T) {
	ctx, err := scoring.New([]float32{1}, []float32{10}, scoring.Gaussian, scoring.MultiClusterMode, false)
	require.NoError(t, err)
	require.Equal(t, float32(0), ctx.Score(0, 1))
}

func TestScore_GaussianRiskPartitioning_NoClamp(t *testing.T) {
	ctx, err := scoring.New([]float32{1}, []float32{10}, scoring.Gaussian, scoring.RiskPartitioningMode, false)
	require.NoError(t, err)
	want := float32(1.0 * 1.0 / (2.0 * 10.0))
	require.InDelta(t, float64(want), float64(ctx.Score(0, 1)), 1e-6)
}

func TestScore_PoissonRiskPartitioning(t *testing.T) {
	ctx, err := scoring.New([]float32{4}, []float32{2}, scoring.Poisson, scoring.RiskPartitioningMode, false)
	require.NoError(t, err)
	want := float32(4 * math.Log(4.0/2.0))
	require.InDelta(t, float64(want), float64(ctx.Score(0, 1)), 1e-5)
}

func TestAmbientScore_MatchesRangeScoreOnSingleton(t *testing.T) {
	ctx, err := scoring.New([]float32{4, 1}, []float32{2, 3}, scoring.RationalScore, scoring.RiskPartitioningMode, false)
	require.NoError(t, err)
	require.Equal(t, ctx.Score(0, 1), ctx.AmbientScore(4, 2))
}
