// Package dp implements the classical O(n^2 T) dynamic-programming
// partition solver: given items presorted by priority and a scoring
// context, it fills a (prefix-length x parts-used) table of best scores
// and backpointers, then reconstructs the optimal T-way contiguous
// partition.
package dp

import (
	"errors"
	"fmt"

	"github.com/vlarion/partline/scoring"
)

// ErrInvalidPartitionCount is returned when t < 1 or t > n.
var ErrInvalidPartitionCount = errors.New("dp: partition count must satisfy 1 <= t <= n")

// Result is the outcome of a DP solve: T contiguous, ascending index
// lists in partition order, their individual scores, and the aggregate.
type Result struct {
	Subsets       [][]int
	ScoreBySubset []float32
	TotalScore    float32
}

// Solve runs the DP recurrence over a, b for t parts using a scoring
// context built from (family, mode, optimized). It returns
// ErrInvalidPartitionCount for an out-of-range t, and propagates any
// error from scoring.New (ErrOptimizationUnsupported, ErrDegenerateInput).
func Solve(a, b []float32, t int, family scoring.Family, mode scoring.Mode, optimized bool) (Result, error) {
	n := len(a)
	if t < 1 || t > n {
		return Result{}, fmt.Errorf("%w: t=%d n=%d", ErrInvalidPartitionCount, t, n)
	}

	ctx, err := scoring.New(a, b, family, mode, optimized)
	if err != nil {
		return Result{}, err
	}

	return SolveWithContext(ctx, n, t)
}

// SolveWithContext runs the DP recurrence given an already-built scoring
// context, letting a caller share one context across multiple solver
// invocations instead of rebuilding partial-sum tables each time.
func SolveWithContext(ctx *scoring.Context, n, t int) (Result, error) {
	if t < 1 || t > n {
		return Result{}, fmt.Errorf("%w: t=%d n=%d", ErrInvalidPartitionCount, t, n)
	}
	// score[l][k] = best aggregate score partitioning the first l items
	// into k parts. split[l][k] = the chosen L_k realizing that score.
	score := make([][]float32, n+1)
	split := make([][]int, n+1)
	for l := 0; l <= n; l++ {
		score[l] = make([]float32, t+1)
		split[l] = make([]int, t+1)
	}

	for l := 1; l <= n; l++ {
		score[l][1] = ctx.Score(0, l)
		split[l][1] = 0
	}

	for k := 2; k <= t; k++ {
		for l := k; l <= n; l++ {
			var best float32 = negInf
			bestM := -1
			for m := k - 1; m < l; m++ {
				cand := score[m][k-1] + ctx.Score(m, l)
				if cand > best {
					best = cand
					bestM = m
				}
			}
			score[l][k] = best
			split[l][k] = bestM
		}
	}

	subsets := make([][]int, t)
	scoreBySubset := make([]float32, t)
	l, k := n, t
	for k > 0 {
		m := split[l][k]
		subset := make([]int, 0, l-m)
		for i := m; i < l; i++ {
			subset = append(subset, i)
		}
		subsets[k-1] = subset
		scoreBySubset[k-1] = ctx.Score(m, l)
		l, k = m, k-1
	}

	return Result{
		Subsets:       subsets,
		ScoreBySubset: scoreBySubset,
		TotalScore:    score[n][t],
	}, nil
}

const negInf = float32(-1e30)

// FindOptimalPartition returns just the T index lists.
func FindOptimalPartition(a, b []float32, t int, family scoring.Family, mode scoring.Mode, optimized bool) ([][]int, error) {
	res, err := Solve(a, b, t, family, mode, optimized)
	if err != nil {
		return nil, err
	}

	return res.Subsets, nil
}

// OptimizeOne is an alias for Solve kept for symmetry with the ltss and
// pgraph packages' entry-point naming (spec.md §6).
func OptimizeOne(a, b []float32, t int, family scoring.Family, mode scoring.Mode, optimized bool) (Result, error) {
	return Solve(a, b, t, family, mode, optimized)
}
