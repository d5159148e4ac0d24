package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-garden-keeper/internal/logger"
	"github.com/MKhiriev/go-garden-keeper/internal/metrics"
)

// GCWorker runs value log garbage collection of the embedded store on a
// fixed interval. Failed passes are logged and retried on the next tick.
type GCWorker struct {
	store    GarbageCollector
	interval time.Duration
	metrics  *metrics.Registry
	logger   *logger.Logger
}

// NewGCWorker returns a worker collecting every interval. registry may be nil.
func NewGCWorker(store GarbageCollector, interval time.Duration, registry *metrics.Registry, logger *logger.Logger) *GCWorker {
	return &GCWorker{
		store:    store,
		interval: interval,
		metrics:  registry,
		logger:   logger,
	}
}

func (w *GCWorker) Name() string {
	return "store-gc"
}

func (w *GCWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.collect(ctx)
		}
	}
}

func (w *GCWorker) collect(ctx context.Context) {
	rewritten, err := w.store.RunGC(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "GCWorker.collect").Msg("value log gc failed")
		return
	}

	if w.metrics != nil {
		w.metrics.StoreGCRuns.Inc()
		w.metrics.StoreGCRewrites.Add(float64(rewritten))
	}
	if rewritten > 0 {
		w.logger.Debug().Int("rewritten", rewritten).Msg("value log gc pass")
	}
}
