package workers

import "context"

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in registration order. A nil receiver is a no-op.
func (w *Workers) Run(ctx context.Context) {
	if w == nil {
		return
	}
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
