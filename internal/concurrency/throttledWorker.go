package concurrency

import (
	"context"
	"errors"

	"golang.org/x/time/rate"
)

// ThrottledWorker runs a job for each argument in turn, no faster than the
// configured rate.
type ThrottledWorker[T any] struct {
	limiter     *rate.Limiter
	jobCallback func(ctx context.Context, arg T) error
}

func NewThrottledWorker[T any](ratePerSecond float64, jobCallback func(ctx context.Context, arg T) error) ThrottledWorker[T] {
	return ThrottledWorker[T]{
		limiter:     rate.NewLimiter(rate.Limit(ratePerSecond), 1),
		jobCallback: jobCallback,
	}
}

// Run blocks until every job has run or ctx is done. The errors returned by the
// jobs are joined, a cancelled ctx is reported as ctx.Err().
func (w *ThrottledWorker[T]) Run(ctx context.Context, jobArgs []T) error {
	var errs []error
	for _, arg := range jobArgs {
		if err := w.limiter.Wait(ctx); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				err = ctxErr
			}
			return errors.Join(append(errs, err)...)
		}
		if err := w.jobCallback(ctx, arg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
