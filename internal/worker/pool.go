// internal/worker/pool.go
//
// Package worker runs a fixed number of goroutines draining a shared
// index.Store's work queue, each executing one pipeline.Pipeline
// invocation per popped key. This generalizes the single-worker
// sequential crawl loop of earlier designs into N independent workers
// sharing the same queue and index stores; every building block those
// designs used (queue, stores) was already safe for concurrent use,
// so scaling to N workers requires no new synchronization here.
package worker

import (
	"context"
	"time"

	"github.com/Nibir1/gatecrawl/internal/log"
	"github.com/Nibir1/gatecrawl/internal/pipeline"
)

// idleBackoff is how long a worker sleeps after finding the queue
// empty before polling again. A short sleep is a pragmatic substitute
// for a condition variable: it keeps idle CPU usage low without
// requiring the queue to support blocking semantics.
const idleBackoff = 25 * time.Millisecond

// Pool runs Count workers against Pipeline until ctx is canceled.
type Pool struct {
	Count    int
	Pipeline *pipeline.Pipeline
	Logger   log.Logger
}

// New constructs a Pool of count workers (minimum 1).
func New(count int, p *pipeline.Pipeline, logger log.Logger) *Pool {
	if count < 1 {
		count = 1
	}
	return &Pool{Count: count, Pipeline: p, Logger: logger}
}

// Run blocks until ctx is canceled, having spawned Count worker
// goroutines that each loop: pop a key, run the pipeline, repeat.
func (p *Pool) Run(ctx context.Context) {
	done := make(chan struct{}, p.Count)
	for i := 0; i < p.Count; i++ {
		go func(id int) {
			p.loop(ctx, id)
			done <- struct{}{}
		}(i)
	}
	for i := 0; i < p.Count; i++ {
		<-done
	}
}

func (p *Pool) loop(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		key, ok := p.Pipeline.Store.TryPop()
		if !ok {
			select {
			case <-ctx.Done():
				return
			case <-time.After(idleBackoff):
			}
			continue
		}

		p.Logger.Debugf("worker %d processing %s", id, key)
		p.Pipeline.Run(ctx, key)
	}
}
