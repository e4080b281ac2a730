package ttyfind

import (
	"fmt"
	"os"
	"syscall"
)

// FS abstracts the filesystem reads the resolver performs so tests can run
// against recorded procfs trees instead of the live kernel.
type FS interface {
	// ReadFile returns the contents of the named file.
	ReadFile(name string) ([]byte, error)
	// Rdev returns the raw device number of the node at name. The error
	// doubles as the existence probe: a missing node reports an error.
	Rdev(name string) (uint64, error)
}

// hostFS reads the live filesystem.
type hostFS struct{}

func (hostFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (hostFS) Rdev(name string) (uint64, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return 0, err
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, fmt.Errorf("no raw stat data for %s", name)
	}
	return uint64(st.Rdev), nil
}
