package search

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

type Retry struct {
	client     Client
	baseDelay  time.Duration
	maxRetries int
	retryable  func(error) bool
}

type RetryOptionFunc func(r *Retry)

// RetryIf restricts retries to the errors matching the given predicate.
func RetryIf(retryable func(err error) bool) RetryOptionFunc {
	return func(r *Retry) {
		r.retryable = retryable
	}
}

// Search implements Client.
func (r *Retry) Search(ctx context.Context, search string) ([]Result, error) {
	backoff := r.baseDelay
	retries := 0
	for {
		results, err := r.client.Search(ctx, search)
		if err != nil {
			if retries < r.maxRetries && r.shouldRetry(err) {
				slog.WarnContext(ctx, "search failed, will retry", slog.Duration("backoff", backoff), slog.Int("retries", retries), slog.Any("error", errors.WithStack(err)))

				wait := backoff + time.Duration(rand.Float64()*float64(r.baseDelay))

				select {
				case <-ctx.Done():
					return nil, errors.WithStack(ctx.Err())
				case <-time.After(wait):
				}

				backoff *= 2
				retries++
				continue
			}

			// Partial results of the last attempt are kept along with its error.
			return results, errors.WithStack(err)
		}

		return results, nil
	}
}

func (r *Retry) shouldRetry(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if r.retryable == nil {
		return true
	}

	return r.retryable(err)
}

var _ Client = &Retry{}

func WithRetry(client Client, maxRetries int, baseDelay time.Duration, funcs ...RetryOptionFunc) *Retry {
	r := &Retry{client: client, maxRetries: maxRetries, baseDelay: baseDelay}
	for _, fn := range funcs {
		fn(r)
	}

	return r
}
