package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Nibir1/gatecrawl/internal/index"
)

func TestStatusReportsCounts(t *testing.T) {
	store := index.NewStore(0)
	store.Enqueue("Qm1")
	store.InsertKeyword("Qm2", "alpha")
	store.Publish(&index.Result{WorkKey: "Qm2", Keywords: map[string]int{"alpha": 1}})

	r := NewRouter(store)
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "Queue length: 1") || !strings.Contains(body, "Index size: 1") || !strings.Contains(body, "Number of Keywords: 1") {
		t.Fatalf("unexpected status body: %q", body)
	}
}

func TestEnqueueAcceptsMultiSegmentWorkKey(t *testing.T) {
	store := index.NewStore(0)
	r := NewRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/enqueue/Qm1/sub/page.html", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Body.String(); got != "Enqueued Qm1/sub/page.html\n" {
		t.Fatalf("unexpected body: %q", got)
	}
	if got := store.QueueLength(); got != 1 {
		t.Fatalf("QueueLength() = %d, want 1", got)
	}
}

func TestSearchNoResults(t *testing.T) {
	store := index.NewStore(0)
	r := NewRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/search/missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Body.String(); got != "No results found for missing\n" {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestSearchWithResults(t *testing.T) {
	store := index.NewStore(0)
	store.InsertKeyword("Qm1", "alpha")
	store.Publish(&index.Result{WorkKey: "Qm1", Title: "t"})

	r := NewRouter(store)
	req := httptest.NewRequest(http.MethodGet, "/search/alpha", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	body := rec.Body.String()
	if !strings.HasPrefix(body, "Results for alpha: ") {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestMetricsEndpointExposesGauges(t *testing.T) {
	store := index.NewStore(0)
	store.Enqueue("Qm1")

	r := NewRouter(store)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "gatecrawl_queue_length 1") {
		t.Fatalf("expected queue length gauge in metrics output, got: %q", rec.Body.String())
	}
}
