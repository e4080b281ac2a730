// Package logging provides structured logging using uber/zap.
//
// This package offers production-ready logging with two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The resolver library narrates its pipeline through the same logger, so
// one LOG_LEVEL flag controls both service and resolution verbosity.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Server starting", zap.String("port", "8090"))
//	logger.Component("resolver").Debug("Trying candidate path")
package logging
