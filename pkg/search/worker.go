package search

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/oisee/uwu-tables/pkg/dispatch"
	"github.com/oisee/uwu-tables/pkg/result"
)

// WorkerPool manages parallel search workers.
type WorkerPool struct {
	NumWorkers int
	Opcodes    []dispatch.Opcode
	Results    *result.Table
	logger     *slog.Logger
	checked    atomic.Int64
	found      atomic.Int64
}

// NewWorkerPool creates a pool with the given number of workers.
func NewWorkerPool(numWorkers int, opcodes []dispatch.Opcode, logger *slog.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = discardLogger
	}
	return &WorkerPool{
		NumWorkers: numWorkers,
		Opcodes:    opcodes,
		Results:    result.NewTable(),
		logger:     logger,
	}
}

// SearchTask is a unit of work: every candidate under one (bit, addend) prefix.
type SearchTask struct {
	Prefix dispatch.Params
}

// Stats returns search statistics.
func (wp *WorkerPool) Stats() (checked, found int64) {
	return wp.checked.Load(), wp.found.Load()
}

// RunTasks distributes search tasks across workers.
// It stops handing out tasks once ctx is done and returns ctx's error.
func (wp *WorkerPool) RunTasks(ctx context.Context, tasks []SearchTask) error {
	ch := make(chan SearchTask, len(tasks))
	for _, t := range tasks {
		ch <- t
	}
	close(ch)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < wp.NumWorkers; i++ {
		g.Go(func() error {
			for task := range ch {
				if err := ctx.Err(); err != nil {
					return err
				}
				wp.processTask(task)
			}
			return nil
		})
	}
	return g.Wait()
}

// processTask evaluates every candidate under the task's prefix.
func (wp *WorkerPool) processTask(task SearchTask) {
	enumerateSuffix(task.Prefix, func(p dispatch.Params) bool {
		wp.checked.Add(1)

		c, ok := EvaluateCandidate(p, wp.Opcodes)
		if !ok {
			return true
		}

		wp.found.Add(1)
		wp.Results.Add(c)
		wp.logger.Debug("valid configuration",
			"params", p.String(), "merges", len(c.Merges), "words", c.Words)
		return true
	})
}
