package testutil

import (
	"sync"
	"sync/atomic"

	"authbridge/pkg/autherrors"
)

// ConcurrentResult tracks outcomes of concurrent test operations.
type ConcurrentResult struct {
	Successes int32
	Errors    int32
	Cancelled int32
}

// Total returns the total number of operations executed.
func (r *ConcurrentResult) Total() int32 {
	return r.Successes + r.Errors + r.Cancelled
}

// RunConcurrent executes fn in parallel goroutines and collects results,
// categorizing errors into success, cancelled, or generic error. It
// replaces the common WaitGroup + atomic counter pattern in tests.
func RunConcurrent(goroutines int, fn func(idx int) error) *ConcurrentResult {
	var wg sync.WaitGroup
	var successes, errs, cancelled atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			err := fn(idx)
			switch {
			case err == nil:
				successes.Add(1)
			case autherrors.HasCode(err, autherrors.CodeUserCancelled):
				cancelled.Add(1)
			default:
				errs.Add(1)
			}
		}(i)
	}

	wg.Wait()

	return &ConcurrentResult{
		Successes: successes.Load(),
		Errors:    errs.Load(),
		Cancelled: cancelled.Load(),
	}
}
