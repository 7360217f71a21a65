// gatecrawl/engine.go
//
// Engine lifecycle: seeding and running the worker pool.
package gatecrawl

import "context"

// Run enqueues the engine's configured seeds and blocks running the
// worker pool until ctx is canceled.
func (e *Engine) Run(ctx context.Context) {
	for _, seed := range e.cfg.Seeds {
		e.store.Enqueue(seed)
	}
	e.pool.Run(ctx)
}

// Enqueue admits a work key to the crawl frontier.
func (e *Engine) Enqueue(workKey string) {
	e.store.Enqueue(workKey)
}

// Search returns the currently published results containing keyword.
func (e *Engine) Search(keyword string) []SearchResult {
	raw := e.store.Search(keyword)
	out := make([]SearchResult, 0, len(raw))
	for _, r := range raw {
		out = append(out, SearchResult{WorkKey: r.WorkKey, Title: r.Title, Excerpt: r.Excerpt})
	}
	return out
}

// Status is a snapshot of the engine's current size.
type Status struct {
	QueueLength  int
	IndexSize    int
	KeywordCount int
}

// Status reports the engine's current queue/index/keyword counts.
func (e *Engine) Status() Status {
	return Status{
		QueueLength:  e.store.QueueLength(),
		IndexSize:    e.store.IndexLength(),
		KeywordCount: e.store.KeywordLength(),
	}
}

// SearchResult is the public-facing view of an index.Result: the
// per-document keyword histogram stays internal to the engine.
type SearchResult struct {
	WorkKey string
	Title   string
	Excerpt string
}
