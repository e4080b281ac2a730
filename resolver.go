package ttyfind

import (
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// DefaultProcRoot is the procfs mount point used when none is configured.
const DefaultProcRoot = "/proc"

// statTTYField is the 0-indexed tty_nr column of /proc/<pid>/stat.
const statTTYField = 6

// Config defines resolver configuration. The zero value targets the host
// /proc with no logging.
type Config struct {
	// ProcRoot overrides the procfs mount point. Defaults to DefaultProcRoot.
	ProcRoot string
	// FS overrides filesystem access, mainly for tests.
	FS FS
	// Logger receives stage-by-stage resolution logs. Defaults to a no-op
	// logger.
	Logger *zap.Logger
}

// Resolver resolves the controlling terminal path of processes via procfs.
// A Resolver is immutable after construction and safe for concurrent use;
// the driver registry is re-read on every call.
type Resolver struct {
	fs       FS
	procRoot string
	log      *zap.Logger
}

// New creates a resolver with the provided configuration.
func New(cfg Config) *Resolver {
	if cfg.ProcRoot == "" {
		cfg.ProcRoot = DefaultProcRoot
	}
	if cfg.FS == nil {
		cfg.FS = hostFS{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Resolver{
		fs:       cfg.FS,
		procRoot: cfg.ProcRoot,
		log:      cfg.Logger,
	}
}

// NewDefault creates a resolver over the host /proc with no logging.
func NewDefault() *Resolver {
	return New(Config{})
}

// FindTTYForPID resolves the controlling terminal of pid against the host
// /proc. It is shorthand for NewDefault().Resolve(pid).
func FindTTYForPID(pid int) (string, bool) {
	return NewDefault().Resolve(pid)
}

// Resolve returns the filesystem path of the terminal device controlling
// pid. The boolean reports whether a verified path was found; every failure
// mode (dead pid, detached process, unreadable procfs, no claiming driver,
// unverifiable candidates) collapses into a false result.
func (r *Resolver) Resolve(pid int) (string, bool) {
	r.log.Info("Resolving controlling tty", zap.Int("pid", pid))

	dev, ok := r.deviceNumber(pid)
	if !ok {
		r.log.Debug("No tty device number for process", zap.Int("pid", pid))
		return "", false
	}
	r.log.Info("Decoded tty device number",
		zap.Int("pid", pid),
		zap.Int32("major", dev.Major),
		zap.Int32("minor", dev.Minor))

	drivers := r.drivers()
	r.log.Info("Parsed tty driver registry", zap.Int("entries", len(drivers)))

	driver, ok := matchDriver(drivers, dev)
	if !ok {
		r.log.Debug("No driver claims device",
			zap.Int32("major", dev.Major),
			zap.Int32("minor", dev.Minor))
		return "", false
	}
	r.log.Info("Matched tty driver",
		zap.String("name", driver.Name),
		zap.String("prefix", driver.Path))

	path, ok := r.guessPath(driver, dev)
	if !ok {
		r.log.Debug("No candidate path verified", zap.Int("pid", pid))
		return "", false
	}
	r.log.Info("Resolved controlling tty",
		zap.Int("pid", pid),
		zap.String("path", path))
	return path, true
}

// DeviceNumber returns the decoded controlling-terminal device number of
// pid, read from /proc/<pid>/stat.
func (r *Resolver) DeviceNumber(pid int) (DeviceNumber, bool) {
	return r.deviceNumber(pid)
}

// Drivers returns the parsed tty driver registry in file order. An
// unreadable registry yields an empty list.
func (r *Resolver) Drivers() []Driver {
	return r.drivers()
}

// deviceNumber reads and decodes the tty_nr field of pid's stat line.
// Pid -1 is the kernel's "no process" sentinel and fails without touching
// the filesystem.
func (r *Resolver) deviceNumber(pid int) (DeviceNumber, bool) {
	if pid == -1 {
		return DeviceNumber{}, false
	}
	data, err := r.fs.ReadFile(filepath.Join(r.procRoot, strconv.Itoa(pid), "stat"))
	if err != nil {
		return DeviceNumber{}, false
	}
	fields := strings.Fields(string(data))
	if len(fields) <= statTTYField {
		return DeviceNumber{}, false
	}
	packed, err := strconv.ParseInt(fields[statTTYField], 10, 32)
	if err != nil {
		return DeviceNumber{}, false
	}
	return decodeDeviceNumber(int32(packed)), true
}

func (r *Resolver) drivers() []Driver {
	data, err := r.fs.ReadFile(filepath.Join(r.procRoot, "tty", "drivers"))
	if err != nil {
		return nil
	}
	return parseDrivers(data)
}

// guessPath probes the candidate device paths for a matched driver and
// returns the first whose on-disk identity equals dev. Multi-device
// prefixes nest the minor under the prefix ("/dev/pts/3"); legacy drivers
// append it directly ("/dev/ttyS4"), so both shapes are tried in that
// order.
func (r *Resolver) guessPath(driver Driver, dev DeviceNumber) (string, bool) {
	minor := strconv.Itoa(int(dev.Minor))
	candidates := [2]string{
		filepath.Join(driver.Path, minor),
		driver.Path + minor,
	}
	for _, candidate := range candidates {
		r.log.Debug("Trying candidate path", zap.String("path", candidate))
		if r.verifyPath(candidate, dev) {
			return candidate, true
		}
	}
	return "", false
}

// verifyPath reports whether a node exists at path and carries exactly the
// device number dev. The raw rdev is truncated to int32 before decoding,
// matching the width the decode convention is defined on.
func (r *Resolver) verifyPath(path string, dev DeviceNumber) bool {
	rdev, err := r.fs.Rdev(path)
	if err != nil {
		return false
	}
	return decodeDeviceNumber(int32(rdev)) == dev
}
