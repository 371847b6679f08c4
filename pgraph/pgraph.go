// Package pgraph implements the partition-graph solver: it reformulates
// the RationalScore partition problem as a layered DAG whose minimum
// weight source-to-sink path induces the optimal T-way partition, and
// solves it with a specialized layered relaxation (not a general SSSP
// algorithm — the DAG's layer structure makes that overkill, per
// spec.md's design notes).
//
// The DAG has T+1 layers of n+1 nodes each. Layer t, node j represents
// "the first t parts consume exactly the first j items". An edge from
// (t-1, i) to (t, j) for i < j has weight -score(i, j); only node (0, 0)
// is reachable in layer 0, which forces every part-1 edge to originate
// at position 0 — exactly mirroring the dp package's score[l][1] =
// ctx.Score(0, l) base case, so no separate "ambient boundary" code path
// is needed: scoring.Context.AmbientScore and Score share one evaluate
// function (see scoring.go) and agree on every range they can both
// express.
package pgraph

import (
	"errors"
	"fmt"

	"github.com/vlarion/partline/scoring"
)

// ErrInvalidPartitionCount is returned when t < 1 or t > n.
var ErrInvalidPartitionCount = errors.New("pgraph: partition count must satisfy 1 <= t <= n")

const posInf = float32(1e30)

// Result is the outcome of a pgraph solve.
type Result struct {
	Subsets [][]int
	Weight  float32 // aggregate maximization value (sign restored)
}

// Solve builds and solves the layered DAG for a, b, t using the
// RationalScore functional under risk-partitioning semantics (the two
// modes coincide for RationalScore, per scoring's formula table).
func Solve(a, b []float32, t int) (Result, error) {
	n := len(a)
	if t < 1 || t > n {
		return Result{}, fmt.Errorf("%w: t=%d n=%d", ErrInvalidPartitionCount, t, n)
	}

	ctx, err := scoring.New(a, b, scoring.RationalScore, scoring.RiskPartitioningMode, false)
	if err != nil {
		return Result{}, err
	}

	return SolveWithContext(ctx, n, t)
}

// SolveWithContext runs the layered relaxation given an already-built
// scoring context, letting a caller share one context with dp.
func SolveWithContext(ctx *scoring.Context, n, t int) (Result, error) {
	if t < 1 || t > n {
		return Result{}, fmt.Errorf("%w: t=%d n=%d", ErrInvalidPartitionCount, t, n)
	}

	// dist[layer][node], pred[layer][node].
	dist := make([][]float32, t+1)
	pred := make([][]int, t+1)
	for l := 0; l <= t; l++ {
		dist[l] = make([]float32, n+1)
		pred[l] = make([]int, n+1)
		for j := 0; j <= n; j++ {
			dist[l][j] = posInf
			pred[l][j] = -1
		}
	}
	dist[0][0] = 0

	for layer := 1; layer <= t; layer++ {
		for j := layer; j <= n; j++ {
			var best float32 = posInf
			bestI := -1
			for i := layer - 1; i < j; i++ {
				if dist[layer-1][i] == posInf {
					continue
				}
				w := dist[layer-1][i] - ctx.Score(i, j)
				if w < best {
					best = w
					bestI = i
				}
			}
			dist[layer][j] = best
			pred[layer][j] = bestI
		}
	}

	if dist[t][n] == posInf {
		return Result{}, fmt.Errorf("pgraph: no feasible %d-part path for n=%d", t, n)
	}

	// Decode: walk predecessors from (t, n) back to (0, 0).
	subsets := make([][]int, t)
	layer, j := t, n
	for layer > 0 {
		i := pred[layer][j]
		subset := make([]int, 0, j-i)
		for k := i; k < j; k++ {
			subset = append(subset, k)
		}
		subsets[layer-1] = subset
		j, layer = i, layer-1
	}

	return Result{Subsets: subsets, Weight: -dist[t][n]}, nil
}

// FindOptimalPartition returns just the T index lists.
func FindOptimalPartition(a, b []float32, t int) ([][]int, error) {
	res, err := Solve(a, b, t)
	if err != nil {
		return nil, err
	}

	return res.Subsets, nil
}

// FindOptimalWeight returns the aggregate maximization weight.
func FindOptimalWeight(a, b []float32, t int) (float32, error) {
	res, err := Solve(a, b, t)
	if err != nil {
		return 0, err
	}

	return res.Weight, nil
}

// OptimizeOne returns the full Result: subsets and weight together.
func OptimizeOne(a, b []float32, t int) (Result, error) {
	return Solve(a, b, t)
}
