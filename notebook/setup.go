// Package notebook prepares a Jupyter notebook server with a PySpark kernel
// on the master node.
package notebook

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/sparkpool/launch"
)

const disableTokens = "\nc.NotebookApp.token=\"\"\nc.NotebookApp.password=\"\"\n"

type Config struct {
	Profile  launch.Profile
	Executor Executor
	Logger   kitlog.Logger
	// HomeDir is used to expand ~ in paths. Defaults to the home directory of
	// the current user.
	HomeDir string
}

// Setup configures Jupyter and starts the notebook server once the Spark
// master is up.
type Setup struct {
	profile launch.Profile
	exec    Executor
	logger  kitlog.Logger
	homeDir string
}

func New(conf Config) (*Setup, error) {
	homeDir := conf.HomeDir
	if homeDir == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("home dir: %w", err)
		}

		homeDir = dir
	}

	logger := conf.Logger
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}

	return &Setup{
		profile: conf.Profile,
		exec:    conf.Executor,
		logger:  logger,
		homeDir: homeDir,
	}, nil
}

func (s *Setup) expand(path string) string {
	if path == "~" {
		return s.homeDir
	}

	if strings.HasPrefix(path, "~/") {
		return filepath.Join(s.homeDir, path[2:])
	}

	return path
}

// KernelSpec builds the PySpark kernel pointing at the given master.
func (s *Setup) KernelSpec(masterIP string) KernelSpec {
	nb := s.profile.Notebook

	return KernelSpec{
		DisplayName: nb.DisplayName,
		Language:    "python",
		Argv:        []string{nb.Python, "-m", "ipykernel", "-f", "{connection_file}"},
		Env: map[string]string{
			"SPARK_HOME":          s.profile.SparkHome,
			"PYSPARK_PYTHON":      nb.Python,
			"PYSPARK_SUBMIT_ARGS": fmt.Sprintf("--master %s pyspark-shell", s.profile.MasterURL(masterIP)),
		},
	}
}

// Configure generates the notebook config and replaces the installed kernels
// with the PySpark one.
func (s *Setup) Configure(ctx context.Context, masterIP string) error {
	nb := s.profile.Notebook

	err := s.exec.Run(ctx, launch.Command{
		Path: nb.Jupyter,
		Args: []string{"notebook", "--generate-config"},
	})
	if err != nil {
		return fmt.Errorf("generate notebook config: %w", err)
	}

	if nb.DisableTokens {
		if err := appendFile(s.expand(nb.ConfigFile), disableTokens); err != nil {
			return fmt.Errorf("update notebook config: %w", err)
		}
	}

	kernelsDir := s.expand(nb.KernelsDir)
	if err := os.RemoveAll(kernelsDir); err != nil {
		return fmt.Errorf("remove kernels: %w", err)
	}

	kernelDir := filepath.Join(kernelsDir, nb.KernelName)
	if err := writeKernelSpec(kernelDir, s.KernelSpec(masterIP)); err != nil {
		return err
	}

	level.Info(s.logger).Log("msg", "notebook configured", "kernel_dir", kernelDir)

	return nil
}

// Start spawns pyspark with Jupyter as the driver frontend.
func (s *Setup) Start(ctx context.Context) (int, error) {
	nb := s.profile.Notebook

	pid, err := s.exec.Start(ctx, launch.Command{
		Path: nb.PySpark,
		Env: map[string]string{
			"PYSPARK_DRIVER_PYTHON":      nb.Jupyter,
			"PYSPARK_DRIVER_PYTHON_OPTS": fmt.Sprintf("notebook --no-browser --port='%d'", nb.Port),
		},
	})
	if err != nil {
		return 0, fmt.Errorf("start pyspark: %w", err)
	}

	level.Info(s.logger).Log("msg", "notebook started", "pid", pid, "port", nb.Port)

	return pid, nil
}

func (s *Setup) AfterMasterStart(ctx context.Context, masterIP string) error {
	if err := s.Configure(ctx, masterIP); err != nil {
		return err
	}

	if _, err := s.Start(ctx); err != nil {
		return err
	}

	return nil
}

func appendFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
