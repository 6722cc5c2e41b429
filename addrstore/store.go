// Package addrstore hands the master address over to the Spark scripts on the
// node, through a single-line text file. Both master and worker nodes write
// it once the master address is known.
package addrstore

import (
	"fmt"
	"net/netip"
	"os"
	"path/filepath"

	"github.com/maxpoletaev/sparkpool/internal/baseerror"
)

var ErrInvalidAddress = baseerror.New("invalid master address")

// FileStore keeps the master address in a file, one line terminated by a
// newline. Writes replace the file atomically, so readers never observe a
// partially written address.
type FileStore struct {
	path string
	perm os.FileMode
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		perm: 0o644,
	}
}

func (s *FileStore) Write(ip string) error {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAddress, ip)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.WriteString(addr.String() + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Chmod(s.perm); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
