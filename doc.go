// Package ttyfind resolves the filesystem path of the terminal device that
// controls a process, using the procfs interfaces exposed by Linux.
//
// Resolution pipeline:
//   - Read the packed tty device number from /proc/<pid>/stat (tty_nr)
//   - Decode it with the legacy convention: minor in the low 8 bits, major above
//   - Parse the kernel driver registry at /proc/tty/drivers
//   - Match the first registry entry claiming the device number
//   - Probe the driver's candidate device paths and verify their identity
//
// Every failure along the pipeline collapses into an absent result: callers
// learn whether a verified path exists, never why resolution stopped.
//
// Features:
//   - Pluggable filesystem access for hermetic tests
//   - Alternate procfs roots (containers, recorded snapshots)
//   - Stage-by-stage structured logging via zap
//   - Safe for concurrent use; nothing is cached between calls
//
// Example Usage:
//
//	// One-shot resolution against the host /proc
//	if path, ok := ttyfind.FindTTYForPID(os.Getpid()); ok {
//		fmt.Println(path)
//	}
//
//	// Resolver with explicit configuration
//	r := ttyfind.New(ttyfind.Config{
//		ProcRoot: "/host/proc",
//		Logger:   logger,
//	})
//	path, ok := r.Resolve(1234)
package ttyfind
