package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/docsift/docsift/constants"
)

// BatchRunner fans document paths out to a bounded worker pool. Results come
// back in input order so batch reports stay stable run to run.
type BatchRunner struct {
	Processor   *Processor
	Logger      *slog.Logger
	Workers     int
	FileTimeout time.Duration // per-document deadline; 0 means none
}

func NewBatchRunner(p *Processor, logger *slog.Logger, workers int, fileTimeout time.Duration) *BatchRunner {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 4
	}
	return &BatchRunner{Processor: p, Logger: logger, Workers: workers, FileTimeout: fileTimeout}
}

// Run processes every path with at most Workers documents in flight. A
// canceled context stops admission; documents already in flight finish.
func (b *BatchRunner) Run(ctx context.Context, paths []string, docType constants.DocType) []Result {
	results := make([]Result, len(paths))
	sem := semaphore.NewWeighted(int64(b.Workers))
	var wg sync.WaitGroup

	start := time.Now()
	for i, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			b.Logger.Warn("batch.canceled", "pending", len(paths)-i)
			results[i] = Result{Path: path, DocType: docType, Status: constants.JobStatusQueued}
			continue
		}
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer sem.Release(1)

			fileCtx := ctx
			if b.FileTimeout > 0 {
				var cancel context.CancelFunc
				fileCtx, cancel = context.WithTimeout(ctx, b.FileTimeout)
				defer cancel()
			}
			results[i] = b.Processor.ProcessFile(fileCtx, path, docType)
		}(i, path)
	}
	wg.Wait()

	b.Logger.Info("batch.done",
		"files", len(paths),
		"workers", b.Workers,
		"duration", time.Since(start),
	)
	return results
}
