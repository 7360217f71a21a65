// cmd/gatecrawl/main.go
//
// The gatecrawl binary wires configuration, logging, the crawl engine,
// and the HTTP API server together and runs until interrupted.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nibir1/gatecrawl/gatecrawl"
	"github.com/Nibir1/gatecrawl/internal/config"
	"github.com/Nibir1/gatecrawl/internal/httpapi"
	"github.com/Nibir1/gatecrawl/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "gatecrawl [gateway-host]",
	Short:   "Crawl and index content served through an IPFS-style HTTP gateway",
	Version: version.Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	flags := rootCmd.Flags()
	flags.Int("workers", 0, "number of worker goroutines (default 10)")
	flags.Int("queue-capacity", 0, "maximum number of outstanding work keys (default 1000)")
	flags.Duration("request-timeout", 0, "timeout for each gateway fetch (default 15s)")
	flags.String("listen", "", "address the HTTP API server binds to (default :8080)")
	flags.Bool("log-json", false, "emit structured JSON logs instead of console output")
	flags.String("log-level", "", "log level: debug, info, warn, or error (default info)")
	flags.StringArray("seed", nil, "work key to enqueue at startup (repeatable)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()

	if len(args) == 1 {
		cfg.GatewayHost = args[0]
	}
	if v, _ := cmd.Flags().GetInt("workers"); v > 0 {
		cfg.WorkerCount = v
	}
	if v, _ := cmd.Flags().GetInt("queue-capacity"); v > 0 {
		cfg.QueueCapacity = v
	}
	if v, _ := cmd.Flags().GetDuration("request-timeout"); v > 0 {
		cfg.RequestTimeout = v
	}
	if v, _ := cmd.Flags().GetString("listen"); v != "" {
		cfg.ListenAddr = v
	}
	cfg.LogJSON, _ = cmd.Flags().GetBool("log-json")
	cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	cfg.Seeds, _ = cmd.Flags().GetStringArray("seed")
	config.ApplyDefaults(cfg)

	opts := []gatecrawl.Option{
		gatecrawl.WithGatewayHost(cfg.GatewayHost),
		gatecrawl.WithWorkerCount(cfg.WorkerCount),
		gatecrawl.WithQueueCapacity(cfg.QueueCapacity),
		gatecrawl.WithRequestTimeout(cfg.RequestTimeout),
		gatecrawl.WithSeeds(cfg.Seeds...),
		gatecrawl.WithLogLevel(cfg.LogLevel),
	}
	if cfg.LogJSON {
		opts = append(opts, gatecrawl.WithJSONLogging())
	}
	engine := gatecrawl.New(opts...)
	logger := engine.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: httpapi.NewRouter(engine.Store()),
	}

	go func() {
		logger.Infof("HTTP API listening on %s", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("HTTP API server error: %v", err)
		}
	}()

	logger.Infof("crawling via gateway %s with %d workers", cfg.GatewayHost, cfg.WorkerCount)
	engine.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
