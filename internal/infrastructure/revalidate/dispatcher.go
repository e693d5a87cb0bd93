package revalidate

import (
	"context"
	"sync"
	"time"

	"github.com/mikiasgoitom/folio/internal/domain/contract"
	"github.com/mikiasgoitom/folio/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/folio/internal/usecase/contract"
)

const (
	DefaultQueueSize  = 256
	invalidateTimeout = 2 * time.Second
)

// Dispatcher drops cached pages in the background after a mutation.
// InvalidatePath never blocks the caller; signals that do not fit in the
// queue are dropped.
type Dispatcher struct {
	cache  contract.IPageCache
	logger usecasecontract.IAppLogger

	queue chan string
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var _ contract.IPageInvalidator = (*Dispatcher)(nil)

// NewDispatcher starts the worker. size <= 0 uses DefaultQueueSize.
func NewDispatcher(cache contract.IPageCache, logger usecasecontract.IAppLogger, size int) *Dispatcher {
	if size <= 0 {
		size = DefaultQueueSize
	}
	d := &Dispatcher{
		cache:  cache,
		logger: logger,
		queue:  make(chan string, size),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) InvalidatePath(path string) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		metrics.Revalidations.WithLabelValues("dropped").Inc()
		return
	}
	select {
	case d.queue <- path:
	default:
		metrics.Revalidations.WithLabelValues("dropped").Inc()
		d.logger.Warnf("revalidation queue full, dropping %s", path)
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for path := range d.queue {
		d.invalidate(path)
	}
}

func (d *Dispatcher) invalidate(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
	defer cancel()
	if err := d.cache.Invalidate(ctx, path); err != nil {
		metrics.Revalidations.WithLabelValues("error").Inc()
		d.logger.Warnf("failed to invalidate %s: %v", path, err)
		return
	}
	metrics.Revalidations.WithLabelValues("ok").Inc()
	d.logger.Debugf("invalidated %s", path)
}

// Close stops accepting signals, processes what is queued and waits for the
// worker to exit. It is safe to call more than once.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()
	d.wg.Wait()
}
