package backoff

import (
	"context"
	"errors"
	"time"
)

// Backoff sleeps start, 2*start, 4*start ... capped at limit. It is not safe
// for concurrent use, create one per retry loop.
type Backoff struct {
	next  time.Duration
	start time.Duration
	limit time.Duration
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	b := &Backoff{start: start, limit: limit}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.next = b.capped(b.start)
}

// Next is the duration the following Backoff call sleeps
func (b *Backoff) Next() time.Duration {
	return b.next
}

// Backoff sleeps for Next or until ctx is done
func (b *Backoff) Backoff(ctx context.Context) error {
	t := time.NewTimer(b.next)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	b.next = b.capped(b.next * 2)
	return nil
}

func (b *Backoff) capped(d time.Duration) time.Duration {
	if b.limit > 0 && d > b.limit {
		return b.limit
	}
	return d
}

// ErrStop can be wrapped by fn to end Retry early
var ErrStop = errors.New("backoff: stop retrying")

// Retry calls fn until it succeeds, returns an error wrapping ErrStop, or
// attempts calls were made, sleeping b between calls. The last error of fn is
// returned.
func Retry(ctx context.Context, b *Backoff, attempts int, fn func(attempt int) error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			if berr := b.Backoff(ctx); berr != nil {
				return err
			}
		}
		if err = fn(i); err == nil || errors.Is(err, ErrStop) {
			return err
		}
	}
	return err
}
