package readiness

import (
	"context"
	"fmt"

	"github.com/maxpoletaev/sparkpool/pool"
)

// PoolSteady blocks until the pool finishes allocating nodes. Node IP
// addresses are not reliably assigned before that, so no role decision is
// made earlier. Returns the first steady pool snapshot.
func (w *Waiter) PoolSteady(ctx context.Context, pools PoolReader) (pool.Pool, error) {
	var last pool.Pool

	cond := func(ctx context.Context) (bool, error) {
		p, err := pools.GetPool(ctx)
		if err != nil {
			return false, fmt.Errorf("get pool: %w", err)
		}

		last = p

		return p.IsSteady(), nil
	}

	status := func() []interface{} {
		return []interface{}{"pool_id", last.ID, "allocation_state", last.AllocationState}
	}

	_, err := w.wait(ctx, "pool steady", cond, status)

	if err != nil {
		return pool.Pool{}, err
	}

	return last, nil
}

// MasterReachable blocks until the master node is idle or running. A node that
// is itself the master returns immediately without asking the pool service, in
// which case the returned node only has its ID set.
func (w *Waiter) MasterReachable(ctx context.Context, nodes PoolReader, masterID, selfID string) (pool.Node, error) {
	if masterID == selfID {
		return pool.Node{ID: masterID}, nil
	}

	var last pool.Node

	cond := func(ctx context.Context) (bool, error) {
		node, err := nodes.GetNode(ctx, masterID)
		if err != nil {
			return false, fmt.Errorf("get master node %s: %w", masterID, err)
		}

		last = node

		return node.IsReachable(), nil
	}

	status := func() []interface{} {
		return []interface{}{"master_id", masterID, "state", last.State}
	}

	_, err := w.wait(ctx, "master reachable", cond, status)

	if err != nil {
		return pool.Node{}, err
	}

	return last, nil
}
