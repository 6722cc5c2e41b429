// Package coordinator decides whether the local node becomes the Spark master
// or a worker, and drives the startup of the matching daemon.
//
// The only shared state between the nodes is the pool service. Every node
// waits for the pool to settle, elects the master locally from the node list,
// and either starts the master right away or waits for the elected master to
// come up before joining it as a worker. Once the cluster is formed, the
// master is never re-elected.
package coordinator

import (
	"context"
	"fmt"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jonboulle/clockwork"

	"github.com/maxpoletaev/sparkpool/election"
	"github.com/maxpoletaev/sparkpool/internal/baseerror"
	"github.com/maxpoletaev/sparkpool/pool"
	"github.com/maxpoletaev/sparkpool/readiness"
)

// ErrNoMasterAddress is returned when the master node has no IP address
// assigned by the pool service.
var ErrNoMasterAddress = baseerror.New("master has no ip address")

type Result struct {
	Role       Role
	MasterID   string
	MasterAddr string
	PID        int
}

type Coordinator struct {
	mut          sync.RWMutex
	state        State
	poolID       string
	selfID       string
	client       PoolClient
	launcher     Launcher
	selector     election.Selector
	addrStore    AddrStore
	masterHook   MasterHook
	steadyWait   *readiness.Waiter
	masterWait   *readiness.Waiter
	listAttempts int
	clock        clockwork.Clock
	logger       kitlog.Logger
}

// New creates a coordinator. Missing selector, clock and logger fall back to
// the values of DefaultConfig.
func New(conf Config) *Coordinator {
	defaults := DefaultConfig()

	if conf.Selector == nil {
		conf.Selector = defaults.Selector
	}

	if conf.Clock == nil {
		conf.Clock = defaults.Clock
	}

	if conf.Logger == nil {
		conf.Logger = defaults.Logger
	}

	logger := kitlog.With(conf.Logger, "pool_id", conf.PoolID, "node_id", conf.SelfID)

	return &Coordinator{
		state:        StateInit,
		poolID:       conf.PoolID,
		selfID:       conf.SelfID,
		client:       conf.Client,
		launcher:     conf.Launcher,
		selector:     conf.Selector,
		addrStore:    conf.AddrStore,
		masterHook:   conf.MasterHook,
		listAttempts: conf.ListAttempts,
		clock:        conf.Clock,
		logger:       logger,
		steadyWait: readiness.New(
			conf.SteadyPolicy,
			readiness.WithClock(conf.Clock),
			readiness.WithLogger(logger),
		),
		masterWait: readiness.New(
			conf.MasterPolicy,
			readiness.WithClock(conf.Clock),
			readiness.WithLogger(logger),
		),
	}
}

// State returns the current state of the coordinator. Safe to call while Run
// is in progress.
func (c *Coordinator) State() State {
	c.mut.RLock()
	defer c.mut.RUnlock()

	return c.state
}

func (c *Coordinator) setState(state State, keyvals ...interface{}) {
	c.mut.Lock()
	prev := c.state
	c.state = state
	c.mut.Unlock()

	keyvals = append([]interface{}{
		"msg", "state changed",
		"from", prev,
		"state", state,
	}, keyvals...)

	level.Info(c.logger).Log(keyvals...)
}

// Run executes the startup protocol once. It blocks until the Spark daemon of
// the decided role has been spawned, or until an error occurs. Errors are not
// retried: the coordinator moves to the failed state and the error is returned
// to the caller.
func (c *Coordinator) Run(ctx context.Context) (Result, error) {
	if state := c.State(); state.IsFinal() {
		return Result{}, fmt.Errorf("coordinator already finished, state is %s", state)
	} else if state != StateInit {
		return Result{}, fmt.Errorf("coordinator is already running, state is %s", state)
	}

	steady, master := c.steadyWait.Policy(), c.masterWait.Policy()

	level.Info(c.logger).Log(
		"msg", "starting coordinator",
		"steady_interval", steady.Interval,
		"master_interval", master.Interval,
		"bounded", steady.IsBounded() && master.IsBounded(),
	)

	res, err := c.run(ctx)
	if err != nil {
		c.setState(StateFailed, "err", err)
		return Result{}, err
	}

	c.setState(StateReady,
		"role", res.Role,
		"master_id", res.MasterID,
		"master_addr", res.MasterAddr,
		"pid", res.PID,
	)

	return res, nil
}

func (c *Coordinator) run(ctx context.Context) (Result, error) {
	c.setState(StateAwaitingPoolSteady)

	if _, err := c.steadyWait.PoolSteady(ctx, c.client); err != nil {
		return Result{}, fmt.Errorf("wait pool steady: %w", err)
	}

	masterID, err := c.electMaster(ctx)
	if err != nil {
		return Result{}, err
	}

	role := RoleWorker
	if masterID == c.selfID {
		role = RoleMaster
	}

	c.setState(StateRoleDecided, "role", role, "master_id", masterID)

	if role == RoleMaster {
		return c.startMaster(ctx)
	}

	return c.startWorker(ctx, masterID)
}

func (c *Coordinator) electMaster(ctx context.Context) (string, error) {
	snap, err := pool.TakeSnapshot(ctx, c.client, c.listAttempts,
		pool.WithClock(c.clock),
		pool.WithRetryInterval(c.steadyWait.Policy().Interval),
	)
	if err != nil {
		return "", fmt.Errorf("take snapshot: %w", err)
	}

	if !snap.Consistent {
		level.Warn(c.logger).Log(
			"msg", "node list does not match the pool size, electing anyway",
			"listed", len(snap.Nodes),
			"expected", snap.Pool.CurrentNodes(),
			"attempts", snap.Attempts,
		)
	}

	masterID, err := election.SelectFromNodes(c.selector, snap.Nodes)
	if err != nil {
		return "", fmt.Errorf("select master: %w", err)
	}

	return masterID, nil
}

func (c *Coordinator) startMaster(ctx context.Context) (Result, error) {
	self, err := c.client.GetNode(ctx, c.selfID)
	if err != nil {
		return Result{}, fmt.Errorf("get own node: %w", err)
	}

	if self.IPAddress == "" {
		return Result{}, fmt.Errorf("%w: node %s", ErrNoMasterAddress, c.selfID)
	}

	c.setState(StateStarting, "role", RoleMaster, "master_addr", self.IPAddress)

	if c.addrStore != nil {
		if err := c.addrStore.Write(self.IPAddress); err != nil {
			return Result{}, fmt.Errorf("write master address: %w", err)
		}
	}

	pid, err := c.launcher.StartMaster(ctx, self.IPAddress)
	if err != nil {
		return Result{}, err
	}

	if c.masterHook != nil {
		if err := c.masterHook.AfterMasterStart(ctx, self.IPAddress); err != nil {
			return Result{}, fmt.Errorf("after master start: %w", err)
		}
	}

	return Result{
		Role:       RoleMaster,
		MasterID:   c.selfID,
		MasterAddr: self.IPAddress,
		PID:        pid,
	}, nil
}

func (c *Coordinator) startWorker(ctx context.Context, masterID string) (Result, error) {
	master, err := c.masterWait.MasterReachable(ctx, c.client, masterID, c.selfID)
	if err != nil {
		return Result{}, fmt.Errorf("wait master reachable: %w", err)
	}

	if master.IPAddress == "" {
		return Result{}, fmt.Errorf("%w: node %s", ErrNoMasterAddress, masterID)
	}

	c.setState(StateStarting, "role", RoleWorker, "master_addr", master.IPAddress)

	if c.addrStore != nil {
		if err := c.addrStore.Write(master.IPAddress); err != nil {
			return Result{}, fmt.Errorf("write master address: %w", err)
		}
	}

	pid, err := c.launcher.StartWorker(ctx, master.IPAddress)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Role:       RoleWorker,
		MasterID:   masterID,
		MasterAddr: master.IPAddress,
		PID:        pid,
	}, nil
}
