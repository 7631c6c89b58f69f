package enrich

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Pipeline applies a fixed sequence of stages to a batch of items. Every item
// runs in its own goroutine; there is no ordering between items. Process
// returns only after every item has finished (or the first failure has been
// observed by all of them), so callers see a full barrier.
type Pipeline[T any] struct {
	stages []Stage[T]
}

// NewPipeline constructs a Pipeline from the provided stages. Stages will be
// applied to each item in order.
func NewPipeline[T any](stages ...Stage[T]) *Pipeline[T] {
	return &Pipeline[T]{stages: stages}
}

// Process runs every stage over every item. Items are mutated in place and
// keep their positions in the slice, so completion order never leaks into the
// result. The first step error cancels the context passed to the remaining
// steps and is returned.
func (p *Pipeline[T]) Process(ctx context.Context, items []*T) error {
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			if err := p.run(gctx, item); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (p *Pipeline[T]) run(ctx context.Context, item *T) error {
	for _, stage := range p.stages {
		g, gctx := errgroup.WithContext(ctx)
		for _, step := range stage.steps {
			g.Go(func() error {
				return step(gctx, item)
			})
		}
		// stage barrier: all steps finish before the next stage starts
		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}
