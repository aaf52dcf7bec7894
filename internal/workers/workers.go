package workers

import (
	"context"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/metrics"
	"github.com/MKhiriev/go-storefront/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. The search index job is
// only created when an index interval is configured and the services carry
// an IndexService. m may be nil.
func NewWorkers(ctx context.Context, services *service.Services, m *metrics.Metrics, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.IndexInterval > 0 && services.IndexService != nil {
		w.workers = append(w.workers, NewIndexJob(ctx, services.IndexService, m, cfg.IndexInterval, logger))
	}

	logger.Info().Int("workers", len(w.workers)).Msg("workers created")
	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// Len reports the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
