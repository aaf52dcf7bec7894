package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/MKhiriev/go-storefront/internal/logger"
)

const (
	retryInitialInterval = 50 * time.Millisecond
	retryMaxInterval     = time.Second
)

func newRetryBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInitialInterval
	b.MaxInterval = retryMaxInterval
	b.MaxElapsedTime = 0
	return b
}

// retry runs op until it succeeds, fails with an error the classifier marks
// as [NonRetryable], ctx is done or the retry budget is spent. The last
// error is returned unwrapped.
func (db *DB) retry(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(newRetryBackOff(), uint64(max(db.maxRetries, 0))), ctx)

	notify := func(err error, wait time.Duration) {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*DB.retry").
			Dur("wait", wait).
			Msg("transient database error, retrying")
	}

	return backoff.RetryNotify(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return backoff.Permanent(err)
		}
		return err
	}, policy, notify)
}

// queryWithRetry is QueryContext under [DB.retry].
func (db *DB) queryWithRetry(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	var rows *sql.Rows
	err := db.retry(ctx, func() error {
		var err error
		rows, err = db.QueryContext(ctx, query, args...)
		return err
	})
	return rows, err
}
