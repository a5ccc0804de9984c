package lflist

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ExtendConcurrent appends every element of values, fanning the work out
// across at most workers goroutines. Elements from one worker's chunk land
// in order relative to each other; ordering across chunks is whatever the
// append race produces, so the result is the multiset of values.
//
// The only error it can return is ctx's, when cancellation preempts chunks
// that have not started. Elements already appended stay appended.
func (l *List[T]) ExtendConcurrent(ctx context.Context, values []T, workers int) error {
	if len(values) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (len(values) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(values); start += chunk {
		end := start + chunk
		if end > len(values) {
			end = len(values)
		}
		part := values[start:end]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, v := range part {
				l.Append(v)
			}
			return nil
		})
	}
	return g.Wait()
}
