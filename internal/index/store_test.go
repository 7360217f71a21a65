package index

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnqueueSkipsAlreadyIndexed(t *testing.T) {
	s := NewStore(0)
	s.Publish(&Result{WorkKey: "Qm1", Title: "t"})

	s.Enqueue("Qm1")
	assert.Equal(t, 0, s.QueueLength(), "already-indexed key should not be queued")
}

func TestEnqueueDedupesPending(t *testing.T) {
	s := NewStore(0)
	s.Enqueue("Qm1")
	s.Enqueue("Qm1")
	assert.Equal(t, 1, s.QueueLength())
}

func TestPopBeforePublishAllowsReEnqueue(t *testing.T) {
	s := NewStore(0)
	s.Enqueue("Qm1")
	key, ok := s.TryPop()
	assert.True(t, ok)
	assert.Equal(t, "Qm1", key)

	// Not yet published: a re-enqueue (e.g. redirect-follow timeout)
	// must be admitted.
	s.Enqueue("Qm1")
	assert.Equal(t, 1, s.QueueLength())
}

func TestInsertKeywordKeepsRankInSyncWithPostingsCardinality(t *testing.T) {
	s := NewStore(0)
	s.InsertKeyword("Qm1", "alpha")
	s.InsertKeyword("Qm2", "alpha")
	s.InsertKeyword("Qm1", "alpha") // idempotent repeat

	top := s.TopKeywords(10)
	assert.Len(t, top, 1)
	assert.Equal(t, "alpha", top[0].Keyword)
	assert.Equal(t, 2, top[0].Count)
}

func TestSearchReturnsOnlyPublishedResults(t *testing.T) {
	s := NewStore(0)
	s.InsertKeyword("Qm1", "alpha")
	s.InsertKeyword("Qm2", "alpha")
	s.Publish(&Result{WorkKey: "Qm1", Title: "one"})
	// Qm2 has a posting but was never published (fetch failed after
	// keyword extraction never happens in practice, but the store must
	// tolerate a posting with no matching Result regardless).

	got := s.Search("alpha")
	assert.Len(t, got, 1)
	assert.Equal(t, "Qm1", got[0].WorkKey)
}

func TestSearchUnknownKeywordReturnsEmpty(t *testing.T) {
	s := NewStore(0)
	assert.Empty(t, s.Search("missing"))
}

func TestConcurrentInsertKeywordSameKeywordNoDataRace(t *testing.T) {
	s := NewStore(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.InsertKeyword("Qm1", "kw")
			_ = i
		}(i)
	}
	wg.Wait()

	top := s.TopKeywords(1)
	assert.Len(t, top, 1)
	assert.Equal(t, 1, top[0].Count)
}
