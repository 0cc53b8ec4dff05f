package numcode

import (
	"context"
	"sync"
	"time"
)

// Result holds the outcome of one batch item. A failed item carries its
// error in Err and the zero Value.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok reports whether the item succeeded.
func (r Result[T]) Ok() bool {
	return r.Err == nil
}

// Batch drives a Codec over collections of items, isolating per-item
// failure: one bad item produces a failure marker at its position and never
// aborts the rest. Output order always matches input order.
type Batch struct {
	codec   *Codec
	maxSize int
	workers int
}

// BatchOption configures a Batch.
type BatchOption func(*Batch)

// WithMaxBatchSize caps the number of items per batch. A batch exceeding the
// cap is rejected up front with ErrBatchSize; no items are processed.
// Zero (the default) means unlimited.
func WithMaxBatchSize(n int) BatchOption {
	return func(b *Batch) {
		if n < 0 {
			n = 0
		}
		b.maxSize = n
	}
}

// WithWorkers processes batch items on n goroutines. Items are independent
// and output order is preserved regardless of completion order. The charset
// must not be mutated while a parallel batch runs. Values below 2 keep the
// default sequential processing.
func WithWorkers(n int) BatchOption {
	return func(b *Batch) {
		b.workers = n
	}
}

// NewBatch creates a Batch over the given codec.
func NewBatch(c *Codec, opts ...BatchOption) *Batch {
	b := &Batch{codec: c}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// EncodeAll encodes every item independently under the codec's lock.
// results[i] corresponds to items[i].
func (b *Batch) EncodeAll(ctx context.Context, items []string) ([]Result[string], error) {
	return b.run(ctx, items, b.codec.Encode)
}

// DecodeAll decodes every item independently under the codec's lock.
// results[i] corresponds to items[i].
func (b *Batch) DecodeAll(ctx context.Context, items []string) ([]Result[string], error) {
	return b.run(ctx, items, b.codec.Decode)
}

// run applies op to every item, sequentially or on a worker pool.
func (b *Batch) run(ctx context.Context, items []string, op func(context.Context, string) (string, error)) ([]Result[string], error) {
	if b.maxSize > 0 && len(items) > b.maxSize {
		err := newBatchError(len(items), b.maxSize)
		emitBatchComplete(ctx, len(items), 0, 0, err)
		return nil, err
	}

	start := time.Now()
	emitBatchStart(ctx, len(items))

	results := make([]Result[string], len(items))

	if b.workers > 1 && len(items) > 1 {
		b.runParallel(ctx, items, op, results)
	} else {
		for i, item := range items {
			v, err := op(ctx, item)
			results[i] = Result[string]{Value: v, Err: err}
		}
	}

	failures := 0
	for _, r := range results {
		if r.Err != nil {
			failures++
		}
	}
	emitBatchComplete(ctx, len(items), failures, time.Since(start), nil)
	return results, nil
}

// runParallel fans items out to a fixed worker pool. Results are written by
// index, so ordering is structural.
func (b *Batch) runParallel(ctx context.Context, items []string, op func(context.Context, string) (string, error), results []Result[string]) {
	workers := b.workers
	if workers > len(items) {
		workers = len(items)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				v, err := op(ctx, items[i])
				results[i] = Result[string]{Value: v, Err: err}
			}
		}()
	}

	for i := range items {
		indexes <- i
	}
	close(indexes)
	wg.Wait()
}
