// internal/fetch/fetch.go
//
// Package fetch implements gatecrawl's gateway HTTP client. Unlike a
// general-purpose web crawler's HTTP client, this one makes a single
// GET per call with no retries, no robots.txt handling, and no
// per-host concurrency limiter: the gateway is one trusted host, and
// retry/re-enqueue policy is the pipeline's decision, not the
// transport's (see internal/pipeline).
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	gcerrors "github.com/Nibir1/gatecrawl/internal/errors"
)

// Response is the result of a single gateway GET.
type Response struct {
	URL        string
	StatusCode int
	Body       []byte
}

// Fetcher issues GET requests against a content gateway.
type Fetcher struct {
	http *http.Client
}

// New constructs a Fetcher whose requests are bounded by timeout.
func New(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Fetcher{http: &http.Client{Timeout: timeout}}
}

// Get issues a single GET against rawURL, applying ctx's deadline on
// top of the Fetcher's own timeout. Only a failure to build the
// request, perform the round trip, or read the body is treated as an
// error: a non-2xx status is still a successful fetch as far as Get is
// concerned, since the gateway's error pages are ordinary HTML bodies
// that callers need to inspect, not discard. StatusCode is carried on
// Response for callers that want it.
func (f *Fetcher) Get(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, gcerrors.New(gcerrors.KindTransport, "building request failed", err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, gcerrors.New(gcerrors.KindTransport, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, gcerrors.New(gcerrors.KindTransport, "reading response body failed", err)
	}

	return &Response{URL: rawURL, StatusCode: resp.StatusCode, Body: body}, nil
}

// GatewayURL builds the gateway URL for a work key.
func GatewayURL(gatewayHost, workKey string) string {
	return fmt.Sprintf("http://%s/ipfs/%s", gatewayHost, workKey)
}
