// Package main is the entry point for the ttyfind HTTP server.
//
// The server exposes the controlling-terminal resolver as a small REST
// API, with health checks, driver registry diagnostics, and Prometheus
// metrics.
//
// Endpoints:
//   - GET /           service banner
//   - GET /health     status, uptime, driver count
//   - GET /tty/:pid   resolved terminal path (404 when unresolved)
//   - GET /drivers    parsed tty driver registry
//   - GET /metrics    Prometheus scrape endpoint
//
// Configuration:
//   - Environment variables (12-factor)
//   - CLI flags (override env vars)
//   - Defaults for development
//
// Usage:
//
//	# Production mode
//	./server -port 8090
//
//	# Against a bind-mounted host procfs
//	./server -proc /host/proc
//
//	# Development mode (colored logs, debug level)
//	./server -dev -log-level debug
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
