package cache

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/folio/internal/infrastructure/metrics"
)

const driverName = "redis"

// MetricsHook records every Redis command in the key-value store metrics.
type MetricsHook struct{}

var _ redis.Hook = (*MetricsHook)(nil)

// DialHook counts failed connection attempts.
func (h *MetricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			metrics.StoreConnectionErrors.WithLabelValues(driverName).Inc()
		}
		return conn, err
	}
}

// ProcessHook times each command. A nil reply is not an error.
func (h *MetricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		observed := err
		if errors.Is(err, redis.Nil) {
			observed = nil
		}
		metrics.ObserveStoreOp(driverName, cmd.Name(), start, observed)
		return err
	}
}

// ProcessPipelineHook records a pipeline as one operation.
func (h *MetricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		metrics.ObserveStoreOp(driverName, "pipeline", start, err)
		return err
	}
}
