package internal

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MapOrdered applies fn to every item and returns the results in item order.
//
// With jobs below 2 the items are processed one at a time and processing
// stops at the first error. Otherwise up to jobs calls run at once; every
// item is processed and the error of the lowest indexed failing item is
// returned, so both forms report the same error.
func MapOrdered[T any, R any](ctx context.Context, items []T, jobs int, fn func(T) (R, error)) (results []R, err error) {
	results = make([]R, len(items))

	if jobs < 2 {
		for n, item := range items {
			err = ctx.Err()
			if err != nil {
				return nil, err
			}
			results[n], err = fn(item)
			if err != nil {
				return nil, err
			}
		}
		return
	}

	errs := make([]error, len(items))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	for n, item := range items {
		if gctx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[n], errs[n] = fn(item)
			return nil
		})
	}

	err = group.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return nil, err
	}

	for _, err = range errs {
		if err != nil {
			return nil, err
		}
	}

	return
}
