package main

import (
	"fmt"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/sparkpool/election"
	"github.com/maxpoletaev/sparkpool/launch"
	"github.com/maxpoletaev/sparkpool/pool/batchapi"
)

func setupLogger() kitlog.Logger {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	if !opts.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	return logger
}

func setupPoolClient(logger kitlog.Logger) (*batchapi.Client, error) {
	conf := batchapi.DefaultConfig()
	conf.AccountURL = opts.Batch.AccountURL
	conf.AccountName = opts.Batch.AccountName
	conf.AccountKey = opts.Batch.AccountKey
	conf.APIVersion = opts.Batch.APIVersion
	conf.Timeout = opts.Batch.Timeout
	conf.PoolID = opts.Pool.ID
	conf.Logger = logger

	client, err := batchapi.New(conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch client: %w", err)
	}

	return client, nil
}

func setupSelector() (election.Selector, error) {
	strategy, err := election.ParseStrategy(opts.Election.Strategy)
	if err != nil {
		return nil, err
	}

	// The pool id seeds rendezvous hashing, it is the same on every node.
	return election.New(strategy, opts.Pool.ID)
}

func setupProfile() (launch.Profile, error) {
	profile := launch.DefaultProfile()

	if path := opts.Start.Spark.Profile; path != "" {
		loaded, err := launch.LoadProfile(path)
		if err != nil {
			return launch.Profile{}, err
		}

		profile = loaded
	}

	if port := opts.Start.Spark.MasterPort; port != 0 {
		profile.MasterPort = port
	}

	if port := opts.Start.Notebook.Port; port != 0 {
		profile.Notebook.Port = port
	}

	if err := profile.Validate(); err != nil {
		return launch.Profile{}, fmt.Errorf("invalid launch profile: %w", err)
	}

	return profile, nil
}
