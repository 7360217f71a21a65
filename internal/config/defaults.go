// internal/config/defaults.go
//
// This file centralizes default configuration constants. Keeping them
// separate makes it easy to review and adjust the engine's baseline
// behavior without touching code that depends on Config.
package config

import "time"

const (
	// defaultGatewayHost is the content gateway used when none is given
	// on the command line.
	defaultGatewayHost = "ipfs.io"

	// defaultWorkerCount is the number of goroutines draining the work
	// queue when none is configured.
	defaultWorkerCount = 10

	// defaultQueueCapacity bounds the number of outstanding work keys.
	defaultQueueCapacity = 1000

	// defaultRequestTimeout is the baseline HTTP request timeout used
	// when callers do not specify a custom value.
	defaultRequestTimeout = 15 * time.Second

	// defaultListenAddr is the address the HTTP API server binds to.
	defaultListenAddr = ":8080"

	// defaultLogLevel is the logging verbosity used when none is given
	// on the command line.
	defaultLogLevel = "info"
)

// ApplyDefaults populates zero-valued fields in c with the engine's
// standard defaults. Used when a Config is constructed field-by-field
// (e.g. from CLI flags) instead of via Default().
func ApplyDefaults(c *Config) {
	if c.GatewayHost == "" {
		c.GatewayHost = defaultGatewayHost
	}
	if c.WorkerCount <= 0 {
		c.WorkerCount = defaultWorkerCount
	}
	if c.QueueCapacity <= 0 {
		c.QueueCapacity = defaultQueueCapacity
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}
