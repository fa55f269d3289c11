package cashblotter

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"
)

// withReadRetry runs a side-effect-free read, retrying with exponential
// backoff up to the configured attempt cap. Recalculation is never retried
// this way; only query-path reads are.
func (u *cashBlotterUsecase) withReadRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 0; attempt < u.cfg.ReadRetryAttempts; attempt++ {
		if attempt > 0 {
			delay := u.cfg.ReadRetryBase << (attempt - 1)
			log.Infof("[CashBlotter] retrying %s (attempt %d) after %s", op, attempt+1, delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return err
}
