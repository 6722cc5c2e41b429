package readiness

import (
	"github.com/go-kit/log"
	"github.com/jonboulle/clockwork"
)

type Option func(*Waiter)

func WithClock(c clockwork.Clock) Option {
	return func(w *Waiter) {
		w.clock = c
	}
}

func WithLogger(l log.Logger) Option {
	return func(w *Waiter) {
		w.logger = l
	}
}
