package backend

import (
	"context"
	"log/slog"
	"time"

	"mycloudmen/internal/domain/service"
	"mycloudmen/internal/infra/metrics"

	"github.com/cenkalti/backoff/v5"
	"github.com/pkg/errors"
)

// linearBackOff waits step, 2*step, 3*step, ... between attempts.
type linearBackOff struct {
	step    time.Duration
	attempt int
}

func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempt++

	return b.step * time.Duration(b.attempt)
}

func (b *linearBackOff) Reset() {
	b.attempt = 0
}

// retryable reports whether another attempt can change the outcome. Only an
// unreachable backend, a 429 or a 5xx qualifies. Any other answer is final.
func retryable(err error) bool {
	return errors.Is(err, service.ErrBackendUnavailable)
}

func withRetry[T any](ctx context.Context, c *Client, op string, fn func() (T, error)) (T, error) {
	operation := func() (T, error) {
		v, err := fn()
		if err != nil && !retryable(err) {
			return v, backoff.Permanent(err)
		}

		return v, err
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(&linearBackOff{step: c.retryBaseDelay}),
		backoff.WithMaxTries(uint(c.maxAttempts)),
		backoff.WithNotify(func(err error, wait time.Duration) {
			metrics.BackendRetries.WithLabelValues(op).Inc()
			c.log(ctx).DebugContext(ctx, "Retrying backend call",
				slog.String("operation", op),
				slog.Duration("wait", wait),
				slog.Any("error", err),
			)
		}),
	)
}
