// internal/index/store.go
//
// The Store combines the work queue with the shared index stores
// (Results, Postings, KeywordRank) behind the single "enqueue / pop /
// insert keyword / publish / search" capability the rest of the engine
// depends on. Results and Postings are two independently locked maps;
// KeywordRank is kept as a field of each keyword's posting entry. The
// postings map shards its lock per keyword so that indexing two
// unrelated keywords never contends.
package index

import (
	"sort"
	"sync"

	"github.com/Nibir1/gatecrawl/internal/workqueue"
)

// posting tracks which work keys contain one keyword. rank is kept in
// lockstep with len(set) on every insert, so KeywordRank is always a
// cheap read of a field already computed rather than a set cardinality
// recomputed on demand.
type posting struct {
	mu   sync.Mutex
	set  map[string]struct{}
	rank int
}

// Store is the engine's shared crawl frontier and inverted index.
type Store struct {
	queue *workqueue.Queue

	resultsMu sync.RWMutex
	results   map[string]*Result

	postingsMu sync.RWMutex
	postings   map[string]*posting
}

// NewStore constructs an empty Store whose work queue is bounded at
// queueCapacity (0 or negative means unbounded).
func NewStore(queueCapacity int) *Store {
	return &Store{
		queue:    workqueue.New(queueCapacity),
		results:  make(map[string]*Result),
		postings: make(map[string]*posting),
	}
}

// Enqueue admits key to the work queue unless it is already indexed or
// already pending, silently dropping it if the queue is at capacity.
func (s *Store) Enqueue(key string) {
	if key == "" {
		return
	}
	if s.hasResult(key) {
		return
	}
	s.queue.TryPush(key)
}

// TryPop removes and returns the next pending work key, if any.
func (s *Store) TryPop() (string, bool) {
	return s.queue.TryPop()
}

// QueueLength reports the number of pending work keys.
func (s *Store) QueueLength() int {
	return s.queue.Len()
}

// IndexLength reports the number of published Results.
func (s *Store) IndexLength() int {
	s.resultsMu.RLock()
	n := len(s.results)
	s.resultsMu.RUnlock()
	return n
}

// KeywordLength reports the number of distinct indexed keywords.
func (s *Store) KeywordLength() int {
	s.postingsMu.RLock()
	n := len(s.postings)
	s.postingsMu.RUnlock()
	return n
}

func (s *Store) hasResult(key string) bool {
	s.resultsMu.RLock()
	_, ok := s.results[key]
	s.resultsMu.RUnlock()
	return ok
}

// InsertKeyword records that workKey contains keyword, and updates
// KeywordRank[keyword] to the new cardinality of Postings[keyword].
// Safe to call concurrently for different keywords without contention;
// concurrent calls for the same keyword serialize on that keyword's
// own lock only.
func (s *Store) InsertKeyword(workKey, keyword string) {
	p := s.postingFor(keyword)

	p.mu.Lock()
	p.set[workKey] = struct{}{}
	p.rank = len(p.set)
	p.mu.Unlock()
}

// postingFor returns the posting entry for keyword, creating it under
// a short write lock on first occurrence only; the common case of an
// existing keyword takes the read lock.
func (s *Store) postingFor(keyword string) *posting {
	s.postingsMu.RLock()
	p, ok := s.postings[keyword]
	s.postingsMu.RUnlock()
	if ok {
		return p
	}

	s.postingsMu.Lock()
	defer s.postingsMu.Unlock()
	if p, ok = s.postings[keyword]; ok {
		return p
	}
	p = &posting{set: make(map[string]struct{})}
	s.postings[keyword] = p
	return p
}

// Publish stores result under its WorkKey. Under normal operation this
// happens exactly once per work key; if the same key is re-fetched
// concurrently (the redirect-follow-timeout re-enqueue race), the last
// writer wins and earlier keyword inserts for that key remain valid
// because Postings inserts are idempotent.
func (s *Store) Publish(result *Result) {
	if result == nil || result.WorkKey == "" {
		return
	}
	s.resultsMu.Lock()
	s.results[result.WorkKey] = result
	s.resultsMu.Unlock()
}

// Search returns a snapshot of every published Result whose work key
// appears in Postings[query]. A query with no postings yields an empty
// slice, not an error.
func (s *Store) Search(query string) []*Result {
	p := s.existingPosting(query)
	if p == nil {
		return nil
	}

	p.mu.Lock()
	keys := make([]string, 0, len(p.set))
	for k := range p.set {
		keys = append(keys, k)
	}
	p.mu.Unlock()

	s.resultsMu.RLock()
	defer s.resultsMu.RUnlock()
	out := make([]*Result, 0, len(keys))
	for _, k := range keys {
		if r, ok := s.results[k]; ok {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) existingPosting(keyword string) *posting {
	s.postingsMu.RLock()
	p := s.postings[keyword]
	s.postingsMu.RUnlock()
	return p
}

// TopKeywords returns the n keywords with the highest KeywordRank,
// sorted descending, breaking ties by keyword for determinism.
func (s *Store) TopKeywords(n int) []KeywordCount {
	if n <= 0 {
		return nil
	}

	s.postingsMu.RLock()
	out := make([]KeywordCount, 0, len(s.postings))
	for k, p := range s.postings {
		p.mu.Lock()
		rank := p.rank
		p.mu.Unlock()
		out = append(out, KeywordCount{Keyword: k, Count: rank})
	}
	s.postingsMu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Keyword < out[j].Keyword
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
