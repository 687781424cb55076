package refresh

import (
	"fmt"

	"github.com/rileyhilliard/jobdash/internal/errors"
	"github.com/rileyhilliard/jobdash/internal/logger"
	"github.com/rileyhilliard/jobdash/internal/series"
)

// worker is the single background execution context that performs fetches.
// It consumes requests in send order and runs for the life of the process;
// a failed request is logged and skipped, never fatal. Serializing all
// fetches through one worker also makes the fetcher's fixed temp filenames
// safe.
type worker struct {
	fetcher  Fetcher
	requests <-chan Request
	results  chan<- Result
	log      logger.Logger
}

// run consumes requests until the request channel is closed, then closes
// done. Each refresh is independent: the worker keeps no state between
// requests.
func (w *worker) run(done chan<- struct{}) {
	defer close(done)
	for req := range w.requests {
		res, err := w.refresh(req)
		if err != nil {
			w.log.Error("refresh of %s failed: %v", req.Spec.Name, err)
			continue
		}
		w.results <- res
	}
}

// refresh performs one fetch-and-parse cycle for a request.
func (w *worker) refresh(req Request) (Result, error) {
	raw, err := w.fetcher.Fetch(req.Spec)
	if err != nil {
		return Result{}, err
	}

	s, err := series.Parse(req.Spec.Kind, raw.Contents, raw.Companion)
	if err != nil {
		return Result{}, errors.WrapWithCode(err, errors.ErrParse,
			fmt.Sprintf("Couldn't parse %s output for %s", req.Spec.Kind, req.Spec.Name),
			"The remote log may be mid-write or not the expected file.")
	}

	return Result{
		ID:           req.ID,
		Series:       s,
		LastModified: raw.LastModified,
	}, nil
}
