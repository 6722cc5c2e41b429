package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"
)

func main() {
	p := flags.NewParser(&opts, flags.Default)

	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := setupLogger()

	var err error

	switch p.Active.Name {
	case "start":
		err = runStart(ctx, logger)
	case "status":
		err = runStatus(ctx, logger, os.Stdout)
	}

	if err != nil {
		level.Error(logger).Log("msg", p.Active.Name+" failed", "err", err)
		cancel()
		os.Exit(1)
	}
}
