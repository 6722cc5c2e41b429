package coordinator

import (
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/jonboulle/clockwork"

	"github.com/maxpoletaev/sparkpool/election"
	"github.com/maxpoletaev/sparkpool/readiness"
)

type Config struct {
	PoolID string
	SelfID string

	Client   PoolClient
	Launcher Launcher
	Selector election.Selector

	// AddrStore and MasterHook are optional.
	AddrStore  AddrStore
	MasterHook MasterHook

	SteadyPolicy readiness.Policy
	MasterPolicy readiness.Policy

	// ListAttempts is the number of node listings taken before settling on an
	// inconsistent one.
	ListAttempts int

	Clock  clockwork.Clock
	Logger kitlog.Logger
}

func DefaultConfig() Config {
	return Config{
		Selector:     election.NumericSuffix{},
		SteadyPolicy: readiness.DefaultPolicy(),
		MasterPolicy: readiness.Policy{Interval: 10 * time.Second},
		ListAttempts: 3,
		Clock:        clockwork.NewRealClock(),
		Logger:       kitlog.NewNopLogger(),
	}
}
