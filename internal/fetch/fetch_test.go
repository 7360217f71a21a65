package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetReturnsBodyOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body>hi</body></html>"))
	}))
	defer srv.Close()

	f := New(2 * time.Second)
	resp, err := f.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Body) != "<html><body>hi</body></html>" {
		t.Fatalf("unexpected body: %q", resp.Body)
	}
}

func TestGetReturnsBodyOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no link named foo in this directory"))
	}))
	defer srv.Close()

	f := New(2 * time.Second)
	resp, err := f.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error for 404 response: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("StatusCode = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
	if string(resp.Body) != "no link named foo in this directory" {
		t.Fatalf("unexpected body: %q", resp.Body)
	}
}

func TestGetRespectsContextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f := New(5 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Get(ctx, srv.URL)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
}

func TestGatewayURL(t *testing.T) {
	got := GatewayURL("ipfs.io", "Qm1/sub")
	want := "http://ipfs.io/ipfs/Qm1/sub"
	if got != want {
		t.Fatalf("GatewayURL() = %q, want %q", got, want)
	}
}
