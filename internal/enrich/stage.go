// Package enrich provides a small, generic pipeline abstraction that runs
// independent enrichment steps in parallel within a stage, while enforcing
// sequential execution between stages.
package enrich

import (
	"context"
)

// Step is a single enrichment operation that mutates the given item.
// Implementations must be safe to run concurrently with the other steps of the
// same stage on the same item, which in practice means each step writes its
// own fields. A returned error aborts the whole pipeline run.
//
// Example:
//
//	func locate(ctx context.Context, it *Item) error { it.Point, err = geo.Position(it.Element); return err }
type Step[T any] func(ctx context.Context, item *T) error

// Stage groups steps that are safe to execute in parallel for a single item.
// All steps in a stage are started together and the item waits for them to
// complete before moving to the next stage.
type Stage[T any] struct {
	steps []Step[T]
}

// NewStage constructs a Stage from the provided steps.
func NewStage[T any](steps ...Step[T]) Stage[T] {
	return Stage[T]{steps: steps}
}
