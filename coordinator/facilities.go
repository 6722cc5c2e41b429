package coordinator

//go:generate mockgen -source=facilities.go -destination=facilities_mock_test.go -package=coordinator

import (
	"context"

	"github.com/maxpoletaev/sparkpool/pool"
)

type PoolClient interface {
	GetPool(ctx context.Context) (pool.Pool, error)
	GetNode(ctx context.Context, nodeID string) (pool.Node, error)
	ListNodes(ctx context.Context) ([]pool.Node, error)
}

// Launcher starts the Spark daemons. Both methods return the pid of the
// spawned process.
type Launcher interface {
	StartMaster(ctx context.Context, masterIP string) (int, error)
	StartWorker(ctx context.Context, masterIP string) (int, error)
}

// AddrStore advertises the master address to local consumers.
type AddrStore interface {
	Write(ip string) error
}

// MasterHook is invoked on the master node after the master daemon has been
// started.
type MasterHook interface {
	AfterMasterStart(ctx context.Context, masterIP string) error
}
