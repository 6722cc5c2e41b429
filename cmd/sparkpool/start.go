package main

import (
	"context"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/sparkpool/addrstore"
	"github.com/maxpoletaev/sparkpool/coordinator"
	"github.com/maxpoletaev/sparkpool/launch"
	"github.com/maxpoletaev/sparkpool/notebook"
	"github.com/maxpoletaev/sparkpool/readiness"
)

func runStart(ctx context.Context, logger kitlog.Logger) error {
	client, err := setupPoolClient(logger)
	if err != nil {
		return err
	}

	selector, err := setupSelector()
	if err != nil {
		return err
	}

	profile, err := setupProfile()
	if err != nil {
		return err
	}

	executor := launch.NewOSExecutor(logger)
	wait := opts.Start.Wait

	conf := coordinator.DefaultConfig()
	conf.PoolID = opts.Pool.ID
	conf.SelfID = opts.Start.Node.ID
	conf.Client = client
	conf.Selector = selector
	conf.Launcher = launch.NewSpark(profile, executor)
	conf.AddrStore = addrstore.NewFileStore(profile.Resolve(profile.MasterAddrFile))
	conf.ListAttempts = opts.Election.ListAttempts
	conf.Logger = logger

	conf.SteadyPolicy = readiness.Policy{
		Interval:    wait.Interval,
		MaxAttempts: wait.MaxAttempts,
		Timeout:     wait.Timeout,
	}

	conf.MasterPolicy = readiness.Policy{
		Interval:    wait.MasterInterval,
		MaxAttempts: wait.MaxAttempts,
		Timeout:     wait.Timeout,
	}

	if opts.Start.Notebook.Enabled {
		setup, err := notebook.New(notebook.Config{
			Profile:  profile,
			Executor: executor,
			Logger:   logger,
		})
		if err != nil {
			return err
		}

		conf.MasterHook = setup
	}

	res, err := coordinator.New(conf).Run(ctx)
	if err != nil {
		return err
	}

	level.Info(logger).Log(
		"msg", "node started",
		"role", res.Role,
		"master_id", res.MasterID,
		"master_addr", res.MasterAddr,
		"pid", res.PID,
	)

	return nil
}
