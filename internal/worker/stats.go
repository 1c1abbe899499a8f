package worker

import (
	"context"
	"log/slog"
	"time"

	"clinicdesk/internal/logging"
	"clinicdesk/internal/metrics"
)

type EntityCounter interface {
	CountEntities(ctx context.Context) (map[string]int64, error)
}

// StatsWorker periodically publishes row counts to the clinicdesk_entities gauge.
type StatsWorker struct {
	counter  EntityCounter
	interval time.Duration
	logger   *slog.Logger
}

func NewStatsWorker(counter EntityCounter, interval time.Duration, logger *slog.Logger) *StatsWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &StatsWorker{
		counter:  counter,
		interval: interval,
		logger:   logging.OrDefault(logger),
	}
}

// StartWorker refreshes once immediately and then on every tick until ctx is done.
func (w *StatsWorker) StartWorker(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}

func (w *StatsWorker) refresh(ctx context.Context) {
	countCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	counts, err := w.counter.CountEntities(countCtx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Warn("count entities failed", "err", err)
		}
		return
	}

	for entity, n := range counts {
		metrics.Entities.WithLabelValues(entity).Set(float64(n))
	}
	w.logger.Debug("entity gauges refreshed", "counts", counts)
}
