package launch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/maxpoletaev/sparkpool/internal/multierror"
)

var errEmpty = errors.New("must not be empty")

// Profile describes where Spark and the notebook tooling live on the node
// image. Defaults match the data science VM image the pool is created from.
type Profile struct {
	SparkHome      string          `yaml:"spark_home"`
	MasterPort     int             `yaml:"master_port"`
	MasterScript   string          `yaml:"master_script"`
	WorkerScript   string          `yaml:"worker_script"`
	MasterAddrFile string          `yaml:"master_addr_file"`
	Notebook       NotebookProfile `yaml:"notebook"`
}

type NotebookProfile struct {
	Jupyter       string `yaml:"jupyter"`
	Python        string `yaml:"python"`
	PySpark       string `yaml:"pyspark"`
	KernelsDir    string `yaml:"kernels_dir"`
	ConfigFile    string `yaml:"config_file"`
	KernelName    string `yaml:"kernel_name"`
	DisplayName   string `yaml:"display_name"`
	Port          int    `yaml:"port"`
	DisableTokens bool   `yaml:"disable_tokens"`
}

func DefaultProfile() Profile {
	return Profile{
		SparkHome:      "/dsvm/tools/spark/current",
		MasterPort:     7077,
		MasterScript:   "sbin/start-master.sh",
		WorkerScript:   "sbin/start-slave.sh",
		MasterAddrFile: "conf/master",
		Notebook: NotebookProfile{
			Jupyter:       "/anaconda/envs/py35/bin/jupyter",
			Python:        "/usr/bin/python3",
			PySpark:       "pyspark",
			KernelsDir:    "/usr/local/share/jupyter/kernels",
			ConfigFile:    "~/.jupyter/jupyter_notebook_config.py",
			KernelName:    "pyspark",
			DisplayName:   "PySpark",
			Port:          8888,
			DisableTokens: true,
		},
	}
}

// LoadProfile reads a YAML profile. Fields missing from the file keep their
// default values.
func LoadProfile(path string) (Profile, error) {
	profile := DefaultProfile()

	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}

	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}

	if err := profile.Validate(); err != nil {
		return Profile{}, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	return profile, nil
}

// Validate reports every invalid field at once.
func (p *Profile) Validate() error {
	errs := multierror.New(multierror.String)

	if p.SparkHome == "" {
		errs.Add("spark_home", errEmpty)
	}

	if p.MasterScript == "" {
		errs.Add("master_script", errEmpty)
	}

	if p.WorkerScript == "" {
		errs.Add("worker_script", errEmpty)
	}

	if p.MasterAddrFile == "" {
		errs.Add("master_addr_file", errEmpty)
	}

	if !validPort(p.MasterPort) {
		errs.Add("master_port", fmt.Errorf("out of range: %d", p.MasterPort))
	}

	if !validPort(p.Notebook.Port) {
		errs.Add("notebook.port", fmt.Errorf("out of range: %d", p.Notebook.Port))
	}

	return errs.Combined()
}

func validPort(port int) bool {
	return port > 0 && port <= 65535
}

// Resolve returns the path relative to the Spark home, unless it is absolute.
func (p *Profile) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(p.SparkHome, path)
}

// MasterURL is the URL workers use to connect to the master.
func (p *Profile) MasterURL(masterIP string) string {
	return fmt.Sprintf("spark://%s:%d", masterIP, p.MasterPort)
}
