// Package scoring implements the parametric scoring context shared by
// the dp and pgraph solvers (ltss computes C^2/B inline and does not use
// it): a pure function object that, given a
// contiguous index range [i, j) over pre-sorted item statistics, returns
// a score under one of three functional families and one of two
// semantic modes.
//
// The three families and two modes form a small closed set, so this is
// modeled as a tagged variant (Family, Mode) dispatched by a plain
// switch rather than an interface hierarchy with virtual dispatch —
// there is no need for callers to add new families without touching
// this package.
package scoring

import (
	"errors"
	"fmt"
	"math"
)

// Family selects the parametric functional used to score a range.
type Family int

const (
	// Gaussian scores a range as a normal-deviation functional.
	Gaussian Family = iota
	// Poisson scores a range as a Poisson log-likelihood functional.
	Poisson
	// RationalScore scores a range as C^2/B; the only family admitting
	// the partial-sum optimization and the graph-based solver.
	RationalScore
)

func (f Family) String() string {
	switch f {
	case Gaussian:
		return "Gaussian"
	case Poisson:
		return "Poisson"
	case RationalScore:
		return "RationalScore"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Mode selects the semantic interpretation of the score.
type Mode int

const (
	// MultiClusterMode rewards a part for exceeding an ambient
	// expectation and clamps at zero otherwise.
	MultiClusterMode Mode = iota
	// RiskPartitioningMode treats a part as a likelihood contribution
	// with no zero-clamp.
	RiskPartitioningMode
)

// Sentinel errors returned by New.
var (
	// ErrOptimizationUnsupported indicates the rational-optimization
	// flag was requested for a family other than RationalScore.
	ErrOptimizationUnsupported = errors.New("scoring: rational optimization requires RationalScore family")

	// ErrDegenerateInput indicates some b_i <= 0, making a_i/b_i and
	// C/B undefined or numerically unstable.
	ErrDegenerateInput = errors.New("scoring: b_i must be strictly positive")

	// ErrLengthMismatch indicates a and b have different lengths.
	ErrLengthMismatch = errors.New("scoring: a and b must have equal length")
)

// Context is an immutable, per-solver-invocation scoring function object.
// Once constructed via New, Context is safe for concurrent read-only use
// by multiple solvers (e.g. a sweep fanning out over T values shares no
// mutable state through a Context beyond the tables built at
// construction).
type Context struct {
	a, b      []float32
	n         int
	family    Family
	mode      Mode
	optimized bool

	// aSums[i][j] and bSums[i][j], populated only when optimized and
	// family == RationalScore. See DESIGN.md for the derivation that
	// replaces the source's paired-cancellation indexing trick.
	aSums [][]float32
	bSums [][]float32
}

// New constructs a scoring Context over a, b. optimized may only be true
// when family == RationalScore; any other combination returns
// ErrOptimizationUnsupported. Every b_i must be strictly positive or New
// returns ErrDegenerateInput.
func New(a, b []float32, family Family, mode Mode, optimized bool) (*Context, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}
	if optimized && family != RationalScore {
		return nil, fmt.Errorf("%w: got family=%s", ErrOptimizationUnsupported, family)
	}
	for i, bi := range b {
		if bi <= 0 {
			return nil, fmt.Errorf("%w: b[%d]=%v", ErrDegenerateInput, i, bi)
		}
	}

	c := &Context{
		a:         append([]float32(nil), a...),
		b:         append([]float32(nil), b...),
		n:         len(a),
		family:    family,
		mode:      mode,
		optimized: optimized,
	}
	if optimized {
		c.computePartialSums()
	}

	return c, nil
}

// computePartialSums builds A_sums and B_sums via prefix sums, per
// DESIGN.md's resolution of the §9 off-by-one open question.
func (c *Context) computePartialSums() {
	n := c.n
	prefixA := make([]float32, n+1)
	prefixB := make([]float32, n+1)
	for k := 0; k < n; k++ {
		prefixA[k+1] = prefixA[k] + c.a[k]
		prefixB[k+1] = prefixB[k] + c.b[k]
	}

	c.aSums = make([][]float32, n+1)
	c.bSums = make([][]float32, n+1)
	for i := 0; i <= n; i++ {
		c.aSums[i] = make([]float32, n+1)
		c.bSums[i] = make([]float32, n+1)
	}

	for i := 0; i <= n; i++ {
		var acc float32
		c.aSums[i][i] = 0
		c.bSums[i][i] = 0
		for j := i + 1; j <= n; j++ {
			k := j - 1
			cumBefore := prefixA[k] - prefixA[i] // Σ_{l∈[i,k)} a_l
			acc += (2*cumBefore + c.a[k]) * c.a[k]
			c.aSums[i][j] = acc
			c.bSums[i][j] = c.bSums[i][j-1] + c.b[k]
		}
	}
}

// Score returns f(Σ_{k∈[i,j)} a_k, Σ_{k∈[i,j)} b_k) for 0 <= i < j <= n,
// under the Context's (family, mode, optimized) configuration.
func (c *Context) Score(i, j int) float32 {
	if c.optimized && c.family == RationalScore {
		return c.aSums[i][j] / c.bSums[i][j]
	}

	var sumA, sumB float32
	for k := i; k < j; k++ {
		sumA += c.a[k]
		sumB += c.b[k]
	}

	return c.evaluate(sumA, sumB)
}

// AmbientScore evaluates the same functional on a single (a, b) pair
// rather than a summed range. No solver in this module calls it: pgraph
// takes every edge weight, boundary edges included, from Score.
func (c *Context) AmbientScore(a, b float32) float32 {
	return c.evaluate(a, b)
}

// evaluate applies the (family, mode) formula table from spec.md §4.2 to
// a single aggregate (C, B) pair.
func (c *Context) evaluate(sumA, sumB float32) float32 {
	switch c.family {
	case Gaussian:
		if c.mode == RiskPartitioningMode {
			return sumA * sumA / (2 * sumB)
		}
		if sumA > sumB {
			return 0.5 * (sumA*sumA/sumB - 1)
		}
		return 0
	case Poisson:
		if c.mode == RiskPartitioningMode {
			return sumA * float32(math.Log(float64(sumA)/float64(sumB)))
		}
		if sumA > sumB {
			return sumA*float32(math.Log(float64(sumA)/float64(sumB))) + sumB - sumA
		}
		return 0
	case RationalScore:
		return sumA * sumA / sumB
	default:
		panic(fmt.Sprintf("scoring: unknown family %v", c.family))
	}
}

// Family reports the functional family this Context was built with.
func (c *Context) Family() Family { return c.family }

// Mode reports the semantic mode this Context was built with.
func (c *Context) Mode() Mode { return c.mode }

// N reports the number of items this Context was built over.
func (c *Context) N() int { return c.n }
