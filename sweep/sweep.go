// Package sweep implements the §6 entry points that iterate T' over
// {T, T-1, ..., 2}: sweep__PG, sweep_best__PG, sweep_parallel__PG and
// their DP analogues. This is deliberately a thin package — spec.md §1
// calls the sweep driver an "external collaborator" with only a §6
// contract, not an algorithmic component — so it does no more than call
// dp.Solve / pgraph.Solve once per T' and reassemble results.
package sweep

import (
	"context"

	"github.com/vlarion/partline/dp"
	"github.com/vlarion/partline/partlog"
	"github.com/vlarion/partline/pgraph"
	"github.com/vlarion/partline/scoring"
	"github.com/vlarion/partline/workpool"
)

// Entry is one T' value's solve result within a sweep.
type Entry struct {
	T       int
	Subsets [][]int
	Weight  float32 // aggregate maximization value
	Err     error
}

// SweepPG runs pgraph.Solve serially for T' = t, t-1, ..., 2.
func SweepPG(a, b []float32, t int) ([]Entry, error) {
	entries := make([]Entry, 0, t-1)
	for tp := t; tp > 1; tp-- {
		res, err := pgraph.Solve(a, b, tp)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{T: tp, Subsets: res.Subsets, Weight: res.Weight})
	}

	return entries, nil
}

// SweepBestPG runs SweepPG and returns the entry with the largest
// aggregate weight (i.e. the smallest negated-score path weight in the
// graph solver's internal minimization — see DESIGN.md for why "minimum
// weight" and "maximum Entry.Weight" name the same entry once Weight has
// its sign restored).
func SweepBestPG(a, b []float32, t int) (Entry, error) {
	entries, err := SweepPG(a, b, t)
	if err != nil {
		return Entry{}, err
	}

	return bestOf(entries), nil
}

// SweepParallelPG computes the same content as SweepPG but fans one task
// per T' out to pool; completion order is unspecified, and a failing T'
// does not prevent the others from returning a result.
func SweepParallelPG(ctx context.Context, a, b []float32, t int, pool *workpool.Pool) ([]Entry, error) {
	tValues := make([]int, 0, t-1)
	for tp := t; tp > 1; tp-- {
		tValues = append(tValues, tp)
	}

	entries := make([]Entry, len(tValues))
	fns := make([]func(context.Context) error, len(tValues))
	for idx, tp := range tValues {
		idx, tp := idx, tp
		fns[idx] = func(context.Context) error {
			res, err := pgraph.Solve(a, b, tp)
			if err != nil {
				entries[idx] = Entry{T: tp, Err: err}
				return err
			}
			entries[idx] = Entry{T: tp, Subsets: res.Subsets, Weight: res.Weight}
			return nil
		}
	}

	pool.RunAll(ctx, fns)

	return entries, nil
}

// SweepDP is the DP analogue of SweepPG, threading the (family, mode,
// optimized) scoring configuration through every T'.
func SweepDP(a, b []float32, t int, family scoring.Family, mode scoring.Mode, optimized bool) ([]Entry, error) {
	entries := make([]Entry, 0, t-1)
	for tp := t; tp > 1; tp-- {
		res, err := dp.Solve(a, b, tp, family, mode, optimized)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{T: tp, Subsets: res.Subsets, Weight: res.TotalScore})
	}

	return entries, nil
}

// SweepBestDP is the DP analogue of SweepBestPG.
func SweepBestDP(a, b []float32, t int, family scoring.Family, mode scoring.Mode, optimized bool) (Entry, error) {
	entries, err := SweepDP(a, b, t, family, mode, optimized)
	if err != nil {
		return Entry{}, err
	}

	return bestOf(entries), nil
}

// SweepParallelDP is the DP analogue of SweepParallelPG.
func SweepParallelDP(ctx context.Context, a, b []float32, t int, family scoring.Family, mode scoring.Mode, optimized bool, pool *workpool.Pool) ([]Entry, error) {
	tValues := make([]int, 0, t-1)
	for tp := t; tp > 1; tp-- {
		tValues = append(tValues, tp)
	}

	entries := make([]Entry, len(tValues))
	fns := make([]func(context.Context) error, len(tValues))
	for idx, tp := range tValues {
		idx, tp := idx, tp
		fns[idx] = func(context.Context) error {
			res, err := dp.Solve(a, b, tp, family, mode, optimized)
			if err != nil {
				entries[idx] = Entry{T: tp, Err: err}
				return err
			}
			entries[idx] = Entry{T: tp, Subsets: res.Subsets, Weight: res.TotalScore}
			return nil
		}
	}

	pool.RunAll(ctx, fns)

	return entries, nil
}

// bestOf returns the entry with the largest Weight, logging via partlog
// if the sweep was empty (never expected for t >= 2, but defensive since
// this is an ambient orchestration layer rather than a solver).
func bestOf(entries []Entry) Entry {
	if len(entries) == 0 {
		partlog.L().Warn("sweep: bestOf called on empty entry set")
		return Entry{}
	}

	best := entries[0]
	for _, e := range entries[1:] {
		if e.Weight > best.Weight {
			best = e
		}
	}

	return best
}
