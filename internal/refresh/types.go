// Package refresh coordinates the staleness-driven update cycle for
// monitored targets: a single-threaded coordinator owns the target registry
// and hands refresh requests to one background worker over channels, so the
// UI thread never blocks on the network.
package refresh

import (
	"time"

	"github.com/rileyhilliard/jobdash/internal/fetch"
	"github.com/rileyhilliard/jobdash/internal/series"
)

// DefaultInterval is the refresh interval used when a target doesn't
// configure its own.
const DefaultInterval = 60 * time.Second

// Target is one monitored remote job and its current dataset. Targets are
// owned and mutated exclusively by the Coordinator; the worker only ever
// sees immutable Spec snapshots.
type Target struct {
	// ID is a process-unique stable identifier. Results are routed by ID
	// rather than registry position, so a removal between request and
	// completion can never apply a result to the wrong target.
	ID uint64

	Name string
	Host string
	Path string
	Kind series.Kind

	// Interval is how long the target's data may age before it goes stale.
	Interval time.Duration

	// LastRefreshed is set at enqueue time, not completion time. Writing it
	// before the request is sent is what bounds in-flight requests to at
	// most one per target.
	LastRefreshed time.Time

	// Series is the current dataset, replaced wholesale on each successful
	// refresh. LastModified is the remote file's mtime, for display only.
	Series       []series.Series
	LastModified time.Time
}

// Spec returns the immutable fetch snapshot for the target.
func (t *Target) Spec() fetch.Spec {
	return fetch.Spec{
		Name: t.Name,
		Host: t.Host,
		Path: t.Path,
		Kind: t.Kind,
	}
}

// Stale reports whether the target's data has aged past its interval.
func (t *Target) Stale(now time.Time) bool {
	return now.Sub(t.LastRefreshed) > t.Interval
}

// Request asks the worker to refresh one target. It is constructed by the
// Coordinator and owned by the request channel until the worker consumes it.
type Request struct {
	ID   uint64
	Spec fetch.Spec
}

// Result carries a completed refresh back to the Coordinator.
type Result struct {
	ID           uint64
	Series       []series.Series
	LastModified time.Time
}

// Fetcher retrieves the raw remote content for a spec. *fetch.Fetcher is
// the production implementation; tests substitute stubs.
type Fetcher interface {
	Fetch(spec fetch.Spec) (*fetch.Raw, error)
}
