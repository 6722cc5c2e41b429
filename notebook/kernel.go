package notebook

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// KernelSpec is the Jupyter kernel.json document.
type KernelSpec struct {
	DisplayName string            `json:"display_name"`
	Language    string            `json:"language"`
	Argv        []string          `json:"argv"`
	Env         map[string]string `json:"env"`
}

func writeKernelSpec(dir string, spec KernelSpec) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create kernel dir: %w", err)
	}

	data, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal kernel spec: %w", err)
	}

	path := filepath.Join(dir, "kernel.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write kernel spec: %w", err)
	}

	return nil
}
