// Package main is the ttyfind command-line tool.
//
// It takes one process id and prints the filesystem path of the terminal
// device controlling that process, or exits 1 when no verified path
// exists.
//
// Usage:
//
//	# Resolve a process
//	ttyfind 1234
//
//	# Machine-readable output
//	ttyfind -json 1234
//
//	# Inspect the parsed driver registry
//	ttyfind -drivers
//
//	# Resolve against a recorded procfs snapshot
//	ttyfind -proc /snapshot/proc 1234
//
//	# Watch the pipeline stage by stage
//	ttyfind -dev -log-level debug 1234
package main
