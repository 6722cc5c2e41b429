package launch

import (
	"context"
	"fmt"
)

// Spark builds and spawns the Spark daemon start scripts.
type Spark struct {
	profile Profile
	exec    Executor
}

func NewSpark(profile Profile, exec Executor) *Spark {
	return &Spark{
		profile: profile,
		exec:    exec,
	}
}

// MasterCommand binds the master to the given address.
func (s *Spark) MasterCommand(masterIP string) Command {
	return Command{
		Path: s.profile.Resolve(s.profile.MasterScript),
		Args: []string{"-h", masterIP},
	}
}

// WorkerCommand connects the worker to the master.
func (s *Spark) WorkerCommand(masterIP string) Command {
	return Command{
		Path: s.profile.Resolve(s.profile.WorkerScript),
		Args: []string{s.profile.MasterURL(masterIP)},
		Env: map[string]string{
			"SPARK_MASTER_IP": masterIP,
		},
	}
}

func (s *Spark) StartMaster(ctx context.Context, masterIP string) (int, error) {
	pid, err := s.exec.Start(ctx, s.MasterCommand(masterIP))
	if err != nil {
		return 0, fmt.Errorf("start spark master: %w", err)
	}

	return pid, nil
}

func (s *Spark) StartWorker(ctx context.Context, masterIP string) (int, error) {
	pid, err := s.exec.Start(ctx, s.WorkerCommand(masterIP))
	if err != nil {
		return 0, fmt.Errorf("start spark worker: %w", err)
	}

	return pid, nil
}
