package readiness

import (
	"context"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jonboulle/clockwork"

	"github.com/maxpoletaev/sparkpool/internal/baseerror"
)

// ErrTimeout is returned when the policy limits are exceeded before the
// condition is met.
var ErrTimeout = baseerror.New("wait timed out")

// Condition reports whether the awaited state has been reached. An error
// aborts the wait immediately: the condition is retried, the underlying
// fetch is not.
type Condition func(ctx context.Context) (bool, error)

// Waiter blocks until a condition holds, re-evaluating it according to the
// retry policy.
type Waiter struct {
	policy Policy
	clock  clockwork.Clock
	logger log.Logger
}

func New(policy Policy, opts ...Option) *Waiter {
	w := &Waiter{
		policy: policy,
		clock:  clockwork.NewRealClock(),
		logger: log.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Policy returns the retry policy of the waiter.
func (w *Waiter) Policy() Policy {
	return w.policy
}

// Wait evaluates the condition right away and then once per interval until it
// returns true. Returns the number of evaluations performed. Every unsatisfied
// evaluation is reported with a progress notice in the log; the notice is for
// operators only.
func (w *Waiter) Wait(ctx context.Context, what string, cond Condition) (int, error) {
	return w.wait(ctx, what, cond, nil)
}

// wait is Wait with extra keyvals appended to the progress notice. status is
// called after every unsatisfied evaluation.
func (w *Waiter) wait(ctx context.Context, what string, cond Condition, status func() []interface{}) (int, error) {
	start := w.clock.Now()
	attempts := 0

	for {
		attempts++

		ok, err := cond(ctx)
		if err != nil {
			return attempts, err
		}

		if ok {
			return attempts, nil
		}

		if w.policy.MaxAttempts > 0 && attempts >= w.policy.MaxAttempts {
			return attempts, fmt.Errorf("%s: %w after %d attempts", what, ErrTimeout, attempts)
		}

		elapsed := w.clock.Since(start)
		if w.policy.Timeout > 0 && elapsed >= w.policy.Timeout {
			return attempts, fmt.Errorf("%s: %w after %s", what, ErrTimeout, elapsed)
		}

		keyvals := []interface{}{
			"msg", "still waiting",
			"for", what,
			"attempt", attempts,
			"elapsed", elapsed,
		}

		if status != nil {
			keyvals = append(keyvals, status()...)
		}

		level.Info(w.logger).Log(keyvals...)

		// Never sleep past the deadline, the last evaluation happens right on it.
		sleep := w.policy.Interval
		if remaining := w.policy.Timeout - elapsed; w.policy.Timeout > 0 && remaining < sleep {
			sleep = remaining
		}

		select {
		case <-w.clock.After(sleep):
			// noop
		case <-ctx.Done():
			return attempts, ctx.Err()
		}
	}
}
