/*
Package monitoring provides Prometheus metrics collection for the emulator.

# Overview

Metrics are registered on a per-collector registry rather than the global
default, so tests and embedded use can create as many collectors as needed.

Tracked:

- HTTP request metrics (count, latency, status)
- Core operation outcomes by status
- Navigation session lifecycle
- WebSocket shell connections
- Process uptime

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))
	metrics.RecordOp("read", err)
*/
package monitoring
