// internal/httpapi/handlers.go
//
// Handler implementations. Response bodies follow the exact formats
// the engine's external interface promises, so tests and callers can
// match on them as plain strings rather than parsing structured output.
package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Nibir1/gatecrawl/internal/index"
)

type handlers struct {
	store *index.Store
}

func (h *handlers) status(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(w, "Queue length: %d Index size: %d Number of Keywords: %d\n",
		h.store.QueueLength(), h.store.IndexLength(), h.store.KeywordLength())
}

func (h *handlers) enqueue(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	h.store.Enqueue(key)
	fmt.Fprintf(w, "Enqueued %s\n", key)
}

func (h *handlers) search(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "*")
	results := h.store.Search(query)
	if len(results) == 0 {
		fmt.Fprintf(w, "No results found for %s\n", query)
		return
	}
	vals := make([]index.Result, 0, len(results))
	for _, res := range results {
		vals = append(vals, *res)
	}
	fmt.Fprintf(w, "Results for %s: %+v\n", query, vals)
}
