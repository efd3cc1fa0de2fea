/*
Package monitoring provides per-command metrics collection.

# Overview

This package implements Prometheus-based metrics for the shell. Every
dispatched command is counted by verb and outcome and timed; stream handlers
add the bytes they moved. Metrics live on a private registry so nothing is
exported from the process unless a caller gathers them explicitly.

# Metrics

  - fileshell_commands_total{verb,status}: status is "ok" or the error kind
  - fileshell_command_duration_seconds{verb}
  - fileshell_bytes_processed_total{op}

# Usage

	metrics := monitoring.NewMetrics()
	registry.Use(monitoring.Middleware(metrics))

	// inside a stream handler
	metrics.AddBytes("cp", res.Bytes)

	// on shutdown
	lines, _ := metrics.Summary()

A nil *Metrics is valid and records nothing.
*/
package monitoring
