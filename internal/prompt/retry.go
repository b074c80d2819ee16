package prompt

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Retry re-asks src after failures that Retryable accepts, such as a wrong
// password typed at a terminal. Attempts are spaced at least Interval apart so
// that scripted guessing is slowed down on top of the KDF cost.
type Retry struct {
	Attempts  int
	Interval  time.Duration
	Retryable func(error) bool
}

// Do calls try with passwords from src until it succeeds, fails with a
// non-retryable error, or the attempts are used up. The last error is returned.
func (r Retry) Do(ctx context.Context, src Source, try func(password string) error) error {
	attempts := r.Attempts
	if attempts < 1 {
		attempts = 1
	}
	limiter := rate.NewLimiter(rate.Every(r.Interval), 1)

	var err error
	for i := 0; i < attempts; i++ {
		if werr := limiter.Wait(ctx); werr != nil {
			return werr
		}
		pw, perr := src.Password(ctx)
		if perr != nil {
			return perr
		}
		err = try(pw)
		if err == nil || r.Retryable == nil || !r.Retryable(err) {
			return err
		}
	}
	return err
}
