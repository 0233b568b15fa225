package export

import (
	"context"
	"sync"
)

// Event reports the outcome of one file's export. OutPath is the written
// output file, empty when the export failed.
type Event struct {
	Path    string
	OutPath string
	Err     error
}

// Runner dispatches one concurrent export task per input file.
type Runner struct {
	Exporter *Exporter

	// OnResult, if non-nil, is invoked from the dispatching goroutine as
	// each task finishes, in completion order.
	OnResult func(Event)
}

// ExportAll exports every path concurrently and waits for all tasks to
// finish even after a failure: siblings are never cancelled mid-flight, so
// successfully rendered files stay on disk when the run as a whole fails.
// It returns the first failure observed, in completion order.
func (r *Runner) ExportAll(ctx context.Context, paths []string) error {
	results := make(chan Event)

	var wg sync.WaitGroup
	for _, path := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			out, err := r.Exporter.Export(ctx, path)
			results <- Event{Path: path, OutPath: out, Err: err}
		}(path)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var first error
	for ev := range results {
		if r.OnResult != nil {
			r.OnResult(ev)
		}
		if ev.Err != nil && first == nil {
			first = ev.Err
		}
	}
	return first
}
