// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/metrics"
)

// spyIndexService counts SyncIndex calls.
type spyIndexService struct {
	calls   atomic.Int64
	indexed int
	err     error
}

func (s *spyIndexService) SyncIndex(_ context.Context) (int, error) {
	s.calls.Add(1)
	return s.indexed, s.err
}

func TestNewIndexJob_DefaultInterval(t *testing.T) {
	job := NewIndexJob(context.Background(), &spyIndexService{}, nil, 0, logger.Nop())
	assert.Equal(t, defaultIndexInterval, job.interval)
}

func TestIndexJob_Run_SyncsImmediatelyAndOnTicks(t *testing.T) {
	spy := &spyIndexService{indexed: 3}
	job := NewIndexJob(context.Background(), spy, nil, 10*time.Millisecond, logger.Nop())

	job.Run()
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "SyncIndex should run several times, ran %d", got)
}

func TestIndexJob_Run_FirstSyncDoesNotWaitForTicker(t *testing.T) {
	spy := &spyIndexService{}
	job := NewIndexJob(context.Background(), spy, nil, time.Hour, logger.Nop())

	job.Run()
	defer job.Stop()

	assert.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestIndexJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyIndexService{}
	job := NewIndexJob(context.Background(), spy, nil, 10*time.Millisecond, logger.Nop())

	job.Run()
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no syncs are expected after Stop")
}

func TestIndexJob_Stop_BeforeRun_NoPanic(t *testing.T) {
	job := NewIndexJob(context.Background(), &spyIndexService{}, nil, time.Minute, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestIndexJob_ParentContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	spy := &spyIndexService{}
	job := NewIndexJob(ctx, spy, nil, 10*time.Millisecond, logger.Nop())

	job.Run()
	time.Sleep(25 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after the parent context was cancelled")
	}
}

func TestIndexJob_RecordsMetrics(t *testing.T) {
	tests := []struct {
		name        string
		spy         *spyIndexService
		wantStatus  string
		wantIndexed float64
	}{
		{name: "success", spy: &spyIndexService{indexed: 7}, wantStatus: "ok", wantIndexed: 7},
		{name: "failure", spy: &spyIndexService{err: errors.New("search engine is down")}, wantStatus: "error", wantIndexed: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.NewMetrics()
			job := NewIndexJob(context.Background(), tt.spy, m, time.Hour, logger.Nop())

			job.sync(context.Background())

			families, err := m.Registry().Gather()
			require.NoError(t, err)

			runs := map[string]float64{}
			var indexed float64
			for _, f := range families {
				switch f.GetName() {
				case "storefront_search_index_runs_total":
					for _, metric := range f.GetMetric() {
						for _, label := range metric.GetLabel() {
							if label.GetName() == "status" {
								runs[label.GetValue()] += metric.GetCounter().GetValue()
							}
						}
					}
				case "storefront_search_index_products_total":
					for _, metric := range f.GetMetric() {
						indexed += metric.GetCounter().GetValue()
					}
				}
			}

			assert.Equal(t, map[string]float64{tt.wantStatus: 1}, runs)
			assert.Equal(t, tt.wantIndexed, indexed)
		})
	}
}
