// Package partline solves the ordered partitioning optimization problem:
// given priority-scored items, split them into T contiguous, non-empty
// groups that maximize an additive parametric score.
//
// Three interchangeable solvers compute the same partition under
// different complexity/generality tradeoffs:
//
//	ltss    — O(n) linear scan, T=2 baseline, RationalScore only
//	dp      — O(n²T) dynamic programming, any scoring family
//	pgraph  — O(n²T) layered shortest-path formulation, RationalScore only
//
// Supporting packages:
//
//	order     — priority-sort preprocessing (stable sort by a_i/b_i)
//	scoring   — the tagged-variant scoring context (Gaussian, Poisson,
//	            RationalScore) shared by dp and pgraph
//	crosscheck — cross-validates dp and pgraph on identical input
//	sweep      — drives dp/pgraph across a descending range of T values
//	workpool   — bounded worker pool used by sweep's parallel variants
//	partlog    — structured logging for construction failures and
//	             cross-check divergences
//
// See SPEC_FULL.md for the full component contract.
package partline
