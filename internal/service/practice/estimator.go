package practice

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/deviuno/ouse-passar-practice/internal/domain"
)

// CountEstimator feeds the selection screen's live question count. Every
// facet change calls Request; the estimator coalesces rapid edits and
// runs the count query only after the debounce window of inactivity, so
// a burst of toggles costs one store round trip.
type CountEstimator struct {
	count  func(ctx context.Context, f domain.FilterSet) (int, error)
	notify func(count int, err error)
	window time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending domain.FilterSet
	seq     uint64 // bumped per Request; results from older requests are dropped
	running bool
	stopped bool
}

// NewCountEstimator creates an estimator bound to the user's question
// counts. notify is invoked from a timer goroutine.
func (e *Engine) NewCountEstimator(userID uuid.UUID, notify func(count int, err error)) *CountEstimator {
	return &CountEstimator{
		count: func(ctx context.Context, f domain.FilterSet) (int, error) {
			return e.questions.Count(ctx, userID, f)
		},
		notify: notify,
		window: e.cfg.Practice.CountDebounce,
	}
}

// Request schedules a recount for the given filters, replacing any
// pending one.
func (c *CountEstimator) Request(ctx context.Context, f domain.FilterSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}

	c.pending = f.Clone()
	c.seq++
	seq := c.seq
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.window, func() { c.run(ctx, seq) })
}

func (c *CountEstimator) run(ctx context.Context, seq uint64) {
	c.mu.Lock()
	if c.stopped || seq != c.seq {
		c.mu.Unlock()
		return
	}
	if c.running {
		// At most one count query is on the wire at a time; wait for
		// the current one to settle and try again.
		c.timer = time.AfterFunc(c.window, func() { c.run(ctx, seq) })
		c.mu.Unlock()
		return
	}
	c.running = true
	filters := c.pending
	c.mu.Unlock()

	n, err := c.count(ctx, filters)

	c.mu.Lock()
	c.running = false
	stale := c.stopped || seq != c.seq
	c.mu.Unlock()
	if stale {
		// A newer request landed while this count was running; its
		// result supersedes this one.
		return
	}
	c.notify(n, err)
}

// Stop cancels any pending recount and drops the result of a count
// already on the wire; after Stop no notify is delivered.
func (c *CountEstimator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped = true
	if c.timer != nil {
		c.timer.Stop()
	}
}
