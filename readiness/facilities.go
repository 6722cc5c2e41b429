package readiness

//go:generate mockgen -source=facilities.go -destination=facilities_mock_test.go -package=readiness

import (
	"context"

	"github.com/maxpoletaev/sparkpool/pool"
)

// PoolReader is the subset of the pool client used by the waits.
type PoolReader interface {
	GetPool(ctx context.Context) (pool.Pool, error)
	GetNode(ctx context.Context, nodeID string) (pool.Node, error)
}
