// internal/config/config.go
//
// Package config defines gatecrawl's configuration structure. It is
// internal so that fields can be added, changed, or removed without
// breaking the public gatecrawl.Engine API, which exposes configuration
// only via functional options.
package config

import "time"

// Config holds the tunable knobs of a running gatecrawl engine.
type Config struct {
	// GatewayHost is the hostname of the content gateway, e.g. "ipfs.io".
	// Fetches are issued as http://<GatewayHost>/ipfs/<workkey>.
	GatewayHost string

	// WorkerCount is the number of goroutines draining the work queue.
	WorkerCount int

	// QueueCapacity bounds the number of outstanding work keys; enqueue
	// silently drops once this is reached.
	QueueCapacity int

	// RequestTimeout bounds every outbound gateway fetch.
	RequestTimeout time.Duration

	// ListenAddr is the address the HTTP status/enqueue/search/metrics
	// server binds to.
	ListenAddr string

	// Seeds are work keys enqueued once at startup.
	Seeds []string

	// LogJSON selects structured JSON log output over the console writer.
	LogJSON bool

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
}

// Default constructs a Config with conservative, documented defaults.
func Default() *Config {
	return &Config{
		GatewayHost:    defaultGatewayHost,
		WorkerCount:    defaultWorkerCount,
		QueueCapacity:  defaultQueueCapacity,
		RequestTimeout: defaultRequestTimeout,
		ListenAddr:     defaultListenAddr,
		Seeds:          nil,
		LogJSON:        false,
		LogLevel:       defaultLogLevel,
	}
}
