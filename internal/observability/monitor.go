package observability

import (
	"context"
	"runtime"
	"time"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
)

// ResourceMonitor samples process memory and goroutine counts on a fixed
// interval and logs them. Best effort: samples carry no ordering guarantee
// and a missed tick is not recovered.
type ResourceMonitor struct {
	interval time.Duration
	log      *logger.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewResourceMonitor(interval time.Duration, log *logger.Logger) *ResourceMonitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &ResourceMonitor{
		interval: interval,
		log:      log.With("service", "ResourceMonitor"),
	}
}

func (m *ResourceMonitor) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		m.log.Info("Resource monitoring started", "interval", m.interval.String())
		for {
			select {
			case <-ctx.Done():
				m.log.Info("Resource monitoring stopped")
				return
			case <-ticker.C:
				m.sample()
			}
		}
	}()
}

func (m *ResourceMonitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

func (m *ResourceMonitor) sample() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	m.log.Info("Resource sample",
		"heap_alloc_mb", float64(ms.HeapAlloc)/(1024*1024),
		"heap_sys_mb", float64(ms.HeapSys)/(1024*1024),
		"num_gc", ms.NumGC,
		"goroutines", runtime.NumGoroutine())
}
