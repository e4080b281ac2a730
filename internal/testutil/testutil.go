// Package testutil provides filesystem fixtures for resolver tests.
package testutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
)

// MemFS is an in-memory stand-in for the resolver's filesystem access. It
// serves file contents and device numbers from maps and records every path
// it is asked about, so tests can assert which nodes were touched.
type MemFS struct {
	Files   map[string][]byte
	Devices map[string]uint64
	Reads   []string
}

// NewMemFS creates an empty filesystem fixture.
func NewMemFS() *MemFS {
	return &MemFS{
		Files:   make(map[string][]byte),
		Devices: make(map[string]uint64),
	}
}

// ReadFile serves the registered contents for name.
func (m *MemFS) ReadFile(name string) ([]byte, error) {
	m.Reads = append(m.Reads, name)
	data, ok := m.Files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return data, nil
}

// Rdev serves the registered raw device number for name.
func (m *MemFS) Rdev(name string) (uint64, error) {
	m.Reads = append(m.Reads, name)
	rdev, ok := m.Devices[name]
	if !ok {
		return 0, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return rdev, nil
}

// AddFile registers raw file contents.
func (m *MemFS) AddFile(name, contents string) {
	m.Files[name] = []byte(contents)
}

// AddDevice registers a device node with the given raw device number.
func (m *MemFS) AddDevice(name string, rdev uint64) {
	m.Devices[name] = rdev
}

// AddStat registers a stat line for pid under procRoot.
func (m *MemFS) AddStat(procRoot string, pid int, line string) {
	m.Files[filepath.Join(procRoot, strconv.Itoa(pid), "stat")] = []byte(line)
}

// AddRegistry registers the tty driver registry under procRoot.
func (m *MemFS) AddRegistry(procRoot, contents string) {
	m.Files[filepath.Join(procRoot, "tty", "drivers")] = []byte(contents)
}

// StatLine renders a plausible /proc/<pid>/stat line whose tty_nr column
// carries the given packed device number.
func StatLine(pid int, comm string, ttyNr int64) string {
	return fmt.Sprintf("%d (%s) S 1 %d %d %d %d 4194560 189 0 0 0 2 1 0 0 20 0 1 0 12345 2465792 191",
		pid, comm, pid, pid, ttyNr, pid)
}

// StandardRegistry returns a driver registry resembling a desktop Linux
// host, pseudo-terminal slaves included.
func StandardRegistry() string {
	return `/dev/tty             /dev/tty        5       0 system:/dev/tty
/dev/console         /dev/console    5       1 system:console
/dev/ptmx            /dev/ptmx       5       2 system
serial               /dev/ttyS       4       64-95 serial
pty_master           /dev/ptm      128 0-1048575 pty:master
pty_slave            /dev/pts      136 0-1048575 pty:slave
unknown              /dev/tty        4       1-63 console
`
}
