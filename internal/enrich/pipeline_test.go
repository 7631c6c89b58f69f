package enrich

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID      int
	A, B    int
	Sum     int
	Delayed bool
}

func setA(_ context.Context, it *item) error {
	it.A = it.ID * 10
	return nil
}

func setB(_ context.Context, it *item) error {
	if it.Delayed {
		time.Sleep(20 * time.Millisecond)
	}
	it.B = it.ID
	return nil
}

func sum(_ context.Context, it *item) error {
	it.Sum = it.A + it.B
	return nil
}

func TestPipeline_Process(t *testing.T) {
	tests := []struct {
		name   string
		stages []Stage[item]
		check  func(t *testing.T, it *item)
	}{
		{
			name:   "single step",
			stages: []Stage[item]{NewStage(setA)},
			check: func(t *testing.T, it *item) {
				assert.Equal(t, it.ID*10, it.A)
				assert.Zero(t, it.Sum)
			},
		},
		{
			name:   "two steps in one stage",
			stages: []Stage[item]{NewStage(setA, setB)},
			check: func(t *testing.T, it *item) {
				assert.Equal(t, it.ID*10, it.A)
				assert.Equal(t, it.ID, it.B)
			},
		},
		{
			name:   "later stage sees earlier stage",
			stages: []Stage[item]{NewStage(setA, setB), NewStage(sum)},
			check: func(t *testing.T, it *item) {
				assert.Equal(t, it.ID*11, it.Sum)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			items := []*item{{ID: 1, Delayed: true}, {ID: 2}, {ID: 3, Delayed: true}, {ID: 4}}

			require.NoError(t, NewPipeline(tt.stages...).Process(ctx, items))
			for i, it := range items {
				assert.Equal(t, i+1, it.ID, "items keep their positions")
				tt.check(t, it)
			}
		})
	}
}

func TestPipeline_ProcessEmpty(t *testing.T) {
	assert.NoError(t, NewPipeline(NewStage(setA)).Process(context.Background(), nil))
}

func TestPipeline_StepErrorAborts(t *testing.T) {
	errBroken := errors.New("broken contract")
	var reached atomic.Int32

	failOdd := func(_ context.Context, it *item) error {
		if it.ID%2 == 1 {
			return errBroken
		}
		return nil
	}
	after := func(_ context.Context, it *item) error {
		reached.Add(1)
		return nil
	}

	items := []*item{{ID: 1}, {ID: 3}}
	err := NewPipeline(NewStage(failOdd), NewStage(after)).Process(context.Background(), items)

	assert.ErrorIs(t, err, errBroken)
	assert.Zero(t, reached.Load(), "a failed stage stops that item")
}

func TestPipeline_ErrorCancelsOthers(t *testing.T) {
	errBroken := errors.New("broken contract")

	steps := func(_ context.Context, it *item) error {
		if it.ID == 1 {
			return errBroken
		}
		return nil
	}
	wait := func(ctx context.Context, it *item) error {
		if it.ID == 1 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Second):
			return errors.New("not cancelled")
		}
	}

	start := time.Now()
	err := NewPipeline(NewStage(steps, wait)).Process(context.Background(), []*item{{ID: 1}, {ID: 2}})
	assert.ErrorIs(t, err, errBroken)
	assert.Less(t, time.Since(start), time.Second)
}
