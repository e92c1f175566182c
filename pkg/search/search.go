// Package search sweeps the dispatch hash parameter space for collision-free
// jump tables and ranks them by the cost of the AVR code that computes them.
package search

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/oisee/uwu-tables/pkg/dispatch"
	"github.com/oisee/uwu-tables/pkg/result"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Config holds search configuration.
type Config struct {
	Opcodes    []dispatch.Opcode // Opcode set to place (defaults to dispatch.DefaultOpcodes)
	NumWorkers int               // Number of parallel workers (defaults to NumCPU)
	Logger     *slog.Logger      // Progress and per-candidate debug output (nil discards)
}

// Run evaluates every candidate in the swept space and returns the valid ones.
// Results are independent of NumWorkers; read them with Table.Candidates for
// sweep order.
func Run(ctx context.Context, cfg Config) (*result.Table, error) {
	if cfg.Opcodes == nil {
		cfg.Opcodes = dispatch.DefaultOpcodes()
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = discardLogger
	}

	pool := NewWorkerPool(cfg.NumWorkers, cfg.Opcodes, logger)
	startTime := time.Now()

	prefixes := EnumeratePrefixes()
	tasks := make([]SearchTask, len(prefixes))
	for i, p := range prefixes {
		tasks[i] = SearchTask{Prefix: p}
	}
	logger.Info("searching dispatch hash space",
		"candidates", ParamCount(), "opcodes", len(cfg.Opcodes), "workers", cfg.NumWorkers)

	if err := pool.RunTasks(ctx, tasks); err != nil {
		return pool.Results, err
	}

	checked, found := pool.Stats()
	logger.Info("search complete",
		"checked", checked, "found", found,
		"elapsed", time.Since(startTime).Round(time.Millisecond))
	return pool.Results, nil
}

// EvaluateCandidate evaluates one parameter set and attaches its cost.
func EvaluateCandidate(p dispatch.Params, set []dispatch.Opcode) (result.Candidate, bool) {
	table, merges, ok := dispatch.Evaluate(p, set)
	if !ok {
		return result.Candidate{}, false
	}
	words, cycles := Cost(p)
	return result.Candidate{
		Params: p,
		Table:  table,
		Merges: merges,
		Words:  words,
		Cycles: cycles,
	}, true
}
