// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"varseq/internal/engine"
	"varseq/internal/profiles"
)

// Config controls the worker pool.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// Deriver turns one profile into a variant. It must be safe for concurrent use.
type Deriver interface {
	Derive(idx int, src profiles.Source) engine.Variant
}

var _ Deriver = (*engine.Engine)(nil)

// ForEachVariant derives every source on cfg.Threads workers and calls visit
// once per variant, in the order of srcs, from a single goroutine. A failed
// profile is a Variant with Err set, not a pipeline error. It returns the
// first visit error, or the context error when cancellation left sources
// unvisited; a run that visited everything is complete.
func ForEachVariant(
	parent context.Context,
	cfg Config,
	d Deriver,
	srcs []profiles.Source,
	visit func(engine.Variant) error,
) error {
	if err := parent.Err(); err != nil {
		return err
	}
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	type job struct {
		idx int
		src profiles.Source
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan engine.Variant, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					v := d.Derive(j.idx, j.src)
					select {
					case results <- v:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: reorders by index so output does not depend on scheduling.
	var (
		cerr    error
		visited int // written by the collector, read after cwg.Wait
		cwg     sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]engine.Variant)
		next := 0
		for v := range results {
			if cerr != nil {
				continue
			}
			pending[v.Index] = v
			for {
				nv, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(nv); err != nil {
					cerr = err
					cancel()
					break
				}
				visited = next
			}
		}
	}()

	// Feed work
feed:
	for i, s := range srcs {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{idx: i, src: s}:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return cerr
	}
	if visited < len(srcs) {
		return parent.Err()
	}
	return nil
}
