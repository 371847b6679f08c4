// Package partlog provides the structured logger shared by the sweep
// driver and the cross-check harness. It is intentionally thin: solvers
// themselves (order, scoring, ltss, dp, pgraph) are pure and never log —
// only the ambient orchestration layers that fan out work or compare
// results do.
package partlog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once   sync.Once
	global *zap.Logger
)

// L returns the process-wide logger, building a production zap.Logger
// (JSON encoding, info level) on first use.
func L() *zap.Logger {
	once.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		global = l
	})

	return global
}

// SetGlobal overrides the process-wide logger, primarily for tests that
// want to assert on emitted entries via an observer core.
func SetGlobal(l *zap.Logger) {
	once.Do(func() {}) // ensure once is spent so L() never overwrites l
	global = l
}
