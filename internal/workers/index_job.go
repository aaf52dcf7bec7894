package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/metrics"
	"github.com/MKhiriev/go-storefront/internal/service"
)

const defaultIndexInterval = 15 * time.Minute

// IndexJob pushes the product catalog to the search engine on a ticker.
type IndexJob struct {
	indexService service.IndexService
	metrics      *metrics.Metrics
	interval     time.Duration

	ctx    context.Context
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewIndexJob creates an IndexJob bound to ctx. The job is idle until Run
// is called. If interval is zero or negative it defaults to 15 minutes.
func NewIndexJob(ctx context.Context, indexService service.IndexService, m *metrics.Metrics, interval time.Duration, logger *logger.Logger) *IndexJob {
	if interval <= 0 {
		interval = defaultIndexInterval
	}

	return &IndexJob{
		indexService: indexService,
		metrics:      m,
		interval:     interval,
		ctx:          ctx,
		logger:       logger,
	}
}

// Run stops any previously running sync loop, then launches a goroutine
// that synchronizes the index once right away and then every interval. The
// goroutine exits when the job's context is cancelled or Stop is called.
func (j *IndexJob) Run() {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(j.ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.sync(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sync(jobCtx)
			}
		}
	}()

	j.logger.Info().Dur("interval", j.interval).Msg("search index job started")
}

// Stop cancels the sync loop and blocks until it has exited. No-op when the
// job is not running.
func (j *IndexJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *IndexJob) sync(ctx context.Context) {
	start := time.Now()
	indexed, err := j.indexService.SyncIndex(ctx)

	// a run interrupted by shutdown is not a failure
	if err != nil && ctx.Err() != nil {
		return
	}

	if j.metrics != nil {
		j.metrics.RecordIndexRun(indexed, err)
	}

	if err != nil {
		j.logger.Err(err).Str("func", "*IndexJob.sync").Int("indexed", indexed).Msg("search index synchronization failed")
		return
	}
	j.logger.Info().Int("indexed", indexed).Dur("duration", time.Since(start)).Msg("search index synchronized")
}
