package pool

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultRetryInterval is the pause between two listings of a snapshot.
const DefaultRetryInterval = time.Second

type snapshotOptions struct {
	interval time.Duration
	clock    clockwork.Clock
}

type SnapshotOption func(*snapshotOptions)

// WithRetryInterval sets the pause between two listings.
func WithRetryInterval(d time.Duration) SnapshotOption {
	return func(o *snapshotOptions) {
		o.interval = d
	}
}

func WithClock(c clockwork.Clock) SnapshotOption {
	return func(o *snapshotOptions) {
		o.clock = c
	}
}

// Snapshot is a node listing taken together with the pool it belongs to.
type Snapshot struct {
	Pool  Pool
	Nodes []Node
	// Consistent is true when the number of listed nodes matches the number of
	// nodes the pool reported right after the listing.
	Consistent bool
	// Attempts is the number of listings performed.
	Attempts int
}

// TakeSnapshot lists the pool nodes and checks the result against the pool
// node counters. The listing is paginated on the service side, so the pool can
// be resized between pages. An inconsistent listing is retried up to attempts
// times, pausing between the listings, after which the last listing is returned
// with Consistent set to false. It is up to the caller to decide whether an
// inconsistent snapshot is usable.
func TakeSnapshot(ctx context.Context, client Client, attempts int, opts ...SnapshotOption) (Snapshot, error) {
	o := snapshotOptions{
		interval: DefaultRetryInterval,
		clock:    clockwork.NewRealClock(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	if attempts < 1 {
		attempts = 1
	}

	var snap Snapshot

	for snap.Attempts < attempts {
		if snap.Attempts > 0 {
			select {
			case <-o.clock.After(o.interval):
				// noop
			case <-ctx.Done():
				return Snapshot{}, ctx.Err()
			}
		}

		snap.Attempts++

		nodes, err := client.ListNodes(ctx)
		if err != nil {
			return Snapshot{}, fmt.Errorf("list nodes: %w", err)
		}

		p, err := client.GetPool(ctx)
		if err != nil {
			return Snapshot{}, fmt.Errorf("get pool: %w", err)
		}

		snap.Pool = p
		snap.Nodes = nodes
		snap.Consistent = p.IsSteady() && len(nodes) == p.CurrentNodes()

		if snap.Consistent {
			break
		}
	}

	return snap, nil
}
