package readiness

import "time"

// Policy controls how often a condition is re-evaluated and when to give up.
type Policy struct {
	// Interval is the pause between two evaluations.
	Interval time.Duration
	// MaxAttempts is the maximum number of evaluations. Zero means no limit.
	MaxAttempts int
	// Timeout is the maximum time to wait, measured from the first evaluation.
	// Zero means no limit.
	Timeout time.Duration
}

// DefaultPolicy polls every five seconds and never gives up, which matches
// the behaviour expected from a node bootstrap script: the node hangs until
// the operator fixes the pool or kills it.
func DefaultPolicy() Policy {
	return Policy{
		Interval: 5 * time.Second,
	}
}

// IsBounded returns true if the wait can end without the condition being met.
func (p Policy) IsBounded() bool {
	return p.MaxAttempts > 0 || p.Timeout > 0
}
