/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the ttyfind
service, tracking HTTP traffic, resolution outcomes, and system metrics.

# Features

- HTTP request metrics (latency, throughput, size)
- Resolution metrics (outcome counts, duration)
- Driver registry size
- System metrics (uptime)

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Time a resolution
	timer := monitoring.NewTimer(metrics)
	// ... resolve ...
	timer.Stop(monitoring.OutcomeResolved)

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
