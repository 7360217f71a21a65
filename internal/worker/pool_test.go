package worker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Nibir1/gatecrawl/internal/fetch"
	"github.com/Nibir1/gatecrawl/internal/index"
	"github.com/Nibir1/gatecrawl/internal/log"
	"github.com/Nibir1/gatecrawl/internal/pipeline"
)

func TestPoolDrainsQueueThenStopsOnCancel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ipfs/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>some searchable words here</body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	gatewayHost := strings.TrimPrefix(srv.URL, "http://")
	store := index.NewStore(0)
	logger := log.New(false, "debug")
	pl := pipeline.New(fetch.New(2*time.Second), store, gatewayHost, logger)

	store.Enqueue("Qm1")
	store.Enqueue("Qm2")
	store.Enqueue("Qm3")

	pool := New(3, pl, logger)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(200 * time.Millisecond)
		cancel()
	}()
	pool.Run(ctx)

	if got := store.IndexLength(); got != 3 {
		t.Fatalf("IndexLength() = %d, want 3", got)
	}
}
