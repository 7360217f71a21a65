// Package gatecrawl is the public entry point for embedding the
// crawl-and-index engine in another Go program. It mirrors the
// functional-options Client construction idiom this lineage has used
// for its other public packages: configuration is assembled privately
// via internal/config, and Option values are the only thing callers
// touch.
package gatecrawl

import (
	"time"

	"github.com/Nibir1/gatecrawl/internal/config"
	"github.com/Nibir1/gatecrawl/internal/fetch"
	"github.com/Nibir1/gatecrawl/internal/index"
	"github.com/Nibir1/gatecrawl/internal/log"
	"github.com/Nibir1/gatecrawl/internal/pipeline"
	"github.com/Nibir1/gatecrawl/internal/worker"
)

// Option configures an Engine at construction time.
type Option func(*config.Config)

// WithGatewayHost sets the content gateway hostname, e.g. "ipfs.io".
func WithGatewayHost(host string) Option {
	return func(c *config.Config) { c.GatewayHost = host }
}

// WithWorkerCount sets the number of goroutines draining the work queue.
func WithWorkerCount(n int) Option {
	return func(c *config.Config) { c.WorkerCount = n }
}

// WithQueueCapacity bounds the number of outstanding work keys.
func WithQueueCapacity(n int) Option {
	return func(c *config.Config) { c.QueueCapacity = n }
}

// WithRequestTimeout bounds every outbound gateway fetch.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *config.Config) { c.RequestTimeout = d }
}

// WithSeeds enqueues the given work keys once, when Run starts.
func WithSeeds(keys ...string) Option {
	return func(c *config.Config) { c.Seeds = append(c.Seeds, keys...) }
}

// WithLogLevel sets the logging verbosity ("debug", "info", "warn", or
// "error").
func WithLogLevel(level string) Option {
	return func(c *config.Config) { c.LogLevel = level }
}

// WithJSONLogging switches log output to newline-delimited JSON.
func WithJSONLogging() Option {
	return func(c *config.Config) { c.LogJSON = true }
}

// Engine is a running crawl-and-index engine: a shared Store, a
// Fetcher bound to one gateway, and the worker pool that drains the
// Store's queue through a Pipeline built from both.
type Engine struct {
	cfg    *config.Config
	logger log.Logger
	store  *index.Store
	pool   *worker.Pool
}

// New constructs an Engine from the given options, applying defaults
// for anything left unset.
func New(opts ...Option) *Engine {
	cfg := config.Default()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := log.New(cfg.LogJSON, cfg.LogLevel)
	store := index.NewStore(cfg.QueueCapacity)
	fetcher := fetch.New(cfg.RequestTimeout)
	pl := pipeline.New(fetcher, store, cfg.GatewayHost, logger)
	pool := worker.New(cfg.WorkerCount, pl, logger)

	return &Engine{cfg: cfg, logger: logger, store: store, pool: pool}
}

// Store exposes the engine's shared index, for callers that want to
// enqueue or search without going through the HTTP API.
func (e *Engine) Store() *index.Store { return e.store }

// Logger exposes the engine's configured logger, so an embedding
// caller's HTTP server or CLI can log through the same sink.
func (e *Engine) Logger() log.Logger { return e.logger }
