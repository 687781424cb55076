package refresh

import (
	"sort"
	"time"

	"github.com/rileyhilliard/jobdash/internal/logger"
	"github.com/rileyhilliard/jobdash/internal/series"
)

// queueCapacity bounds the request and result channels. At most one request
// is ever in flight per target, so anything comfortably above the target
// count means the non-blocking send never drops in practice.
const queueCapacity = 256

// Coordinator owns the target registry and drives the refresh cycle. It is
// designed to be called from a single goroutine (the UI loop): Tick,
// RequestRefresh, Remove, and Targets must not be called concurrently.
// All interaction with the worker goroutine happens over channels, and the
// coordinator never blocks on them.
type Coordinator struct {
	targets []*Target
	nextID  uint64

	requests chan Request
	results  chan Result
	done     chan struct{}

	// removals collected during a tick, applied after the scan so indices
	// stay stable while it runs.
	removals []uint64

	log logger.Logger
}

// NewCoordinator creates a coordinator and starts its background worker.
// Call Close to stop the worker.
func NewCoordinator(fetcher Fetcher, log logger.Logger) *Coordinator {
	if log == nil {
		log = logger.Noop()
	}
	c := &Coordinator{
		requests: make(chan Request, queueCapacity),
		results:  make(chan Result, queueCapacity),
		done:     make(chan struct{}),
		log:      log,
	}
	w := &worker{
		fetcher:  fetcher,
		requests: c.requests,
		results:  c.results,
		log:      log,
	}
	go w.run(c.done)
	return c
}

// Add registers a new target and returns its stable ID. The zero
// LastRefreshed makes it stale immediately, so the first tick fetches it.
func (c *Coordinator) Add(name, host, path string, kind series.Kind, interval time.Duration) uint64 {
	if interval <= 0 {
		interval = DefaultInterval
	}
	c.nextID++
	t := &Target{
		ID:       c.nextID,
		Name:     name,
		Host:     host,
		Path:     path,
		Kind:     kind,
		Interval: interval,
	}
	c.targets = append(c.targets, t)
	return t.ID
}

// Targets returns the registry in order. The slice and its entries are
// owned by the coordinator; callers must not retain them across ticks.
func (c *Coordinator) Targets() []*Target {
	return c.targets
}

// Lookup returns the target with the given ID, or nil.
func (c *Coordinator) Lookup(id uint64) *Target {
	for _, t := range c.targets {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Tick runs one scheduling pass: enqueue a refresh for every stale target,
// drain completed results, then apply deferred removals. It never blocks.
func (c *Coordinator) Tick(now time.Time) {
	for _, t := range c.targets {
		if t.Stale(now) {
			c.enqueue(t, now)
		}
	}
	c.Drain()
	c.applyRemovals()
}

// RequestRefresh enqueues an ad-hoc refresh for one target, outside the
// normal staleness cycle. Returns false if the ID is unknown.
func (c *Coordinator) RequestRefresh(id uint64) bool {
	t := c.Lookup(id)
	if t == nil {
		return false
	}
	c.enqueue(t, time.Now())
	return true
}

// enqueue marks the target refreshed and sends the request. The timestamp
// write happens before the send: until the interval elapses again, the
// target cannot go stale, so at most one request per target is in flight.
// The send itself is non-blocking; on a full queue the request is dropped
// and the target retries after its next interval.
func (c *Coordinator) enqueue(t *Target, now time.Time) {
	t.LastRefreshed = now
	req := Request{ID: t.ID, Spec: t.Spec()}
	select {
	case c.requests <- req:
	default:
		c.log.Warn("request queue full, dropping refresh of %s", t.Name)
	}
}

// Drain applies all currently-available results without blocking. Results
// for targets removed while the request was in flight are discarded.
func (c *Coordinator) Drain() {
	for {
		select {
		case res := <-c.results:
			c.apply(res)
		default:
			return
		}
	}
}

// apply replaces a target's dataset with a completed result.
func (c *Coordinator) apply(res Result) {
	t := c.Lookup(res.ID)
	if t == nil {
		c.log.Debug("discarding result for removed target %d", res.ID)
		return
	}
	t.Series = res.Series
	t.LastModified = res.LastModified
}

// Remove schedules a target for removal. Removals are deferred until the
// end of the current tick and applied in descending index order, so the
// registry scan never sees shifted indices and batch removals don't skip
// each other.
func (c *Coordinator) Remove(id uint64) {
	c.removals = append(c.removals, id)
}

// applyRemovals deletes all pending targets, highest index first. Repeated
// removals of the same ID within one tick collapse to a single delete, so a
// stale index can never fall on a neighboring target.
func (c *Coordinator) applyRemovals() {
	if len(c.removals) == 0 {
		return
	}
	seen := make(map[uint64]bool, len(c.removals))
	var indices []int
	for _, id := range c.removals {
		if seen[id] {
			continue
		}
		seen[id] = true
		for i, t := range c.targets {
			if t.ID == id {
				indices = append(indices, i)
				break
			}
		}
	}
	c.removals = c.removals[:0]

	sort.Sort(sort.Reverse(sort.IntSlice(indices)))
	for _, i := range indices {
		c.targets = append(c.targets[:i], c.targets[i+1:]...)
	}
}

// MinInterval returns the shortest configured interval across all targets,
// bounding how long the UI may defer its next tick when idle. With no
// targets it falls back to DefaultInterval.
func (c *Coordinator) MinInterval() time.Duration {
	min := time.Duration(0)
	for _, t := range c.targets {
		if min == 0 || t.Interval < min {
			min = t.Interval
		}
	}
	if min == 0 {
		min = DefaultInterval
	}
	return min
}

// Close stops the worker and waits for it to finish its current request.
// Results still in the channel are discarded.
func (c *Coordinator) Close() {
	close(c.requests)
	// The worker may be blocked sending a result; keep draining until it
	// exits so Close can't deadlock.
	for {
		select {
		case <-c.results:
		case <-c.done:
			return
		}
	}
}
