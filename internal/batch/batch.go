package batch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/statement-extractor/internal/common"
	"github.com/joseph-ayodele/statement-extractor/internal/extract"
)

// DocumentProcessor is the single-document entry point the runner fans out to.
type DocumentProcessor interface {
	Process(ctx context.Context, path string, enableOCR bool) (extract.Result, error)
}

// Item is the outcome of one document. Err is set only when Process failed.
type Item struct {
	Path   string
	Result extract.Result
	Err    error
}

type Stats struct {
	Total     int
	Succeeded int
	Failed    int
	Degraded  int
}

type Runner struct {
	proc    DocumentProcessor
	logger  *slog.Logger
	workers int
	timeout time.Duration
}

type Option func(*Runner)

func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithDocumentTimeout bounds the time spent on each document; 0 disables it.
func WithDocumentTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d >= 0 {
			r.timeout = d
		}
	}
}

func NewRunner(proc DocumentProcessor, logger *slog.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 2 * time.Minute,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

type job struct {
	index int
	path  string
}

// Run processes every path and returns one Item per path, in input order.
// Documents are independent: a failing one is recorded and the rest carry on.
// Paths not yet started when ctx is cancelled are recorded with ctx's error.
func (r *Runner) Run(ctx context.Context, paths []string, enableOCR bool) ([]Item, Stats) {
	items := make([]Item, len(paths))
	ch := make(chan job)

	var wg sync.WaitGroup
	workers := min(r.workers, max(len(paths), 1))
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range ch {
				items[j.index] = r.processOne(ctx, workerID, j.path, enableOCR)
			}
		}(i + 1)
	}

	for i, p := range paths {
		if err := ctx.Err(); err != nil {
			items[i] = Item{Path: p, Err: err}
			continue
		}
		select {
		case ch <- job{index: i, path: p}:
		case <-ctx.Done():
			items[i] = Item{Path: p, Err: ctx.Err()}
		}
	}
	close(ch)
	wg.Wait()

	stats := Summarize(items)
	r.logger.Info("batch.done",
		"total", stats.Total,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"degraded", stats.Degraded,
	)
	return items, stats
}

func (r *Runner) processOne(parent context.Context, workerID int, path string, enableOCR bool) Item {
	ctx, cancel := common.WithTimeout(parent, r.timeout)
	defer cancel()
	ctx = common.WithDocumentID(ctx, uuid.NewString())

	res, err := r.proc.Process(ctx, path, enableOCR)
	if err != nil {
		r.logger.Error("batch.document.failed", "worker_id", workerID, "path", path, "error", err)
		return Item{Path: path, Err: err}
	}
	r.logger.Debug("batch.document.ok", "worker_id", workerID, "path", path, "document_id", res.DocumentID)
	return Item{Path: path, Result: res}
}

func Summarize(items []Item) Stats {
	s := Stats{Total: len(items)}
	for _, it := range items {
		switch {
		case it.Err != nil:
			s.Failed++
		default:
			s.Succeeded++
			if it.Result.Degraded {
				s.Degraded++
			}
		}
	}
	return s
}
