package pool

//go:generate mockgen -source=facilities.go -destination=facilities_mock_test.go -package=pool

import "context"

// Client is a read-only accessor over the pool service. Implementations must
// not cache: every call returns a fresh snapshot.
type Client interface {
	GetPool(ctx context.Context) (Pool, error)
	GetNode(ctx context.Context, nodeID string) (Node, error)
	ListNodes(ctx context.Context) ([]Node, error)
}
