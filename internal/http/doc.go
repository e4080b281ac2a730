// Package http provides HTTP handlers and routing for the ttyfind REST API.
//
// This package implements all HTTP endpoints using the Gin framework,
// exposing the resolver library plus health and diagnostics surfaces.
//
// Endpoints:
//   - Health: / and /health
//   - Resolution: /tty/:pid
//   - Registry: /drivers
//   - Metrics: /metrics/json (Prometheus scrape lives on /metrics)
//
// Features:
//   - JSON request/response handling
//   - Proper HTTP status codes (400 bad pid, 404 unresolved)
//   - Per-resolution outcome metrics and tracing spans
//
// Example Usage:
//
//	handlers := http.NewHandlers(resolver, metrics, tracer, logger, "/proc")
//	router.GET("/health", handlers.Health)
//	router.GET("/tty/:pid", handlers.ResolveTTY)
package http
