package engine

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/docforge/docforge/internal/assemble"
	"github.com/docforge/docforge/internal/cache"
	"github.com/docforge/docforge/internal/comment"
	"github.com/docforge/docforge/internal/describe"
	"github.com/docforge/docforge/internal/source"
	"github.com/docforge/docforge/pkg/doc"
)

// WarnFunc receives per-file parse warnings on a side channel; failures
// never surface inside the returned corpus.
type WarnFunc func(path string, err error)

// ProgressFunc is invoked after each file completes.
type ProgressFunc func(done, total int)

// Stats summarizes one generation run.
type Stats struct {
	FilesProcessed int
	FilesCached    int
	FilesFailed    int
	Entities       int
	Duration       time.Duration
}

// Engine coordinates the documentation pipeline: discover comment tokens via
// the syntax-tree provider, parse markup, describe declarations, and
// assemble the corpus.
//
// Files are processed by a bounded worker pool. Per-file results are written
// into an index-addressed slice, so the merged corpus order is deterministic
// regardless of worker completion order.
type Engine struct {
	provider source.Provider
	store    *cache.Store
	warn     WarnFunc
	progress ProgressFunc
	workers  int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers bounds the worker pool. Values <= 0 fall back to
// runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithCache enables the incremental record cache.
func WithCache(store *cache.Store) Option {
	return func(e *Engine) { e.store = store }
}

// WithWarnFunc sets the warning sink. The default drops warnings.
func WithWarnFunc(fn WarnFunc) Option {
	return func(e *Engine) { e.warn = fn }
}

// WithProgress sets the per-file progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(e *Engine) { e.progress = fn }
}

// New creates an Engine backed by the given syntax-tree provider.
func New(provider source.Provider, opts ...Option) *Engine {
	e := &Engine{
		provider: provider,
		warn:     func(string, error) {},
		workers:  runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run parses the given files and assembles the corpus. The file order
// determines discovery order. Per-file failures are reported through the
// warning sink and contribute empty results; Run only fails when the context
// is canceled.
func (e *Engine) Run(ctx context.Context, project string, files []string) (*doc.Corpus, *Stats, error) {
	start := time.Now()
	stats := &Stats{}

	results := make([]assemble.FileResult, len(files))
	var done, cached, failed int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			entities, fromCache, err := e.processFile(gctx, path)
			if err != nil {
				e.warn(path, err)
				atomic.AddInt32(&failed, 1)
			}
			if fromCache {
				atomic.AddInt32(&cached, 1)
			}
			results[i] = assemble.FileResult{Path: path, Entities: entities}

			if e.progress != nil {
				e.progress(int(atomic.AddInt32(&done, 1)), len(files))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	corpus := assemble.Assemble(project, results)

	stats.FilesProcessed = len(files)
	stats.FilesCached = int(cached)
	stats.FilesFailed = int(failed)
	stats.Entities = corpus.EntityCount()
	stats.Duration = time.Since(start)
	return corpus, stats, nil
}

// processFile produces the entity records for one file, consulting the
// cache first when one is configured.
func (e *Engine) processFile(ctx context.Context, path string) ([]doc.EntityRecord, bool, error) {
	var hash string
	if e.store != nil {
		h, err := cache.HashFile(path)
		if err == nil {
			hash = h
			if records, hit, err := e.store.Get(path, hash); err == nil && hit {
				return records, true, nil
			}
		}
	}

	fd, err := e.provider.ParseFile(ctx, path)
	if err != nil {
		return nil, false, err
	}

	records := DescribeFile(fd)

	if e.store != nil && hash != "" {
		if err := e.store.Put(path, hash, records); err != nil {
			e.warn(path, err)
		}
	}
	return records, false, nil
}

// DescribeFile runs comment extraction, markup parsing, and declaration
// description for every declaration of one parsed file. Pure CPU work with
// no shared state; safe to call from any worker.
func DescribeFile(fd source.FileDecls) []doc.EntityRecord {
	records := make([]doc.EntityRecord, 0, len(fd.Decls))
	for _, d := range fd.Decls {
		pc := comment.Parse(comment.Normalize(d.CommentLines))
		records = append(records, describe.Entity(d, pc))
	}
	return records
}
