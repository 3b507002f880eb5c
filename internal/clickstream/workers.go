package clickstream

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"urlite/internal/domain"
	"urlite/internal/metrics"
	"urlite/internal/repository"
)

// Event is the raw material for one click record, captured on the redirect
// path before the response is written. Classification and geolocation happen
// later, on a worker goroutine.
type Event struct {
	LinkID    string
	ClickedAt time.Time
	IPAddress string
	UserAgent string
	Referrer  string
}

// Geolocator resolves an IP to a country/city pair
type Geolocator interface {
	Locate(ctx context.Context, ipAddress string) (country, city string)
}

// Pool is the background click-capture pipeline: a buffered queue drained by
// a fixed set of workers. The redirect handler enqueues without blocking and
// moves on; nothing in here can delay or fail a redirect. Workers use their
// own contexts, so a client disconnecting after the redirect does not cancel
// the capture.
type Pool struct {
	queue  chan Event
	clicks repository.ClickRepository
	geo    Geolocator
	logger *slog.Logger
	wg     sync.WaitGroup
}

// NewPool creates a click pipeline with the given queue capacity
func NewPool(clicks repository.ClickRepository, geo Geolocator, logger *slog.Logger, queueSize int) *Pool {
	return &Pool{
		queue:  make(chan Event, queueSize),
		clicks: clicks,
		geo:    geo,
		logger: logger,
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(workers int) {
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	p.logger.Info("click workers started", "workers", workers, "queue_size", cap(p.queue))
}

// Enqueue submits a click event without blocking.
// Returns false if the queue is full; the event is dropped and counted.
func (p *Pool) Enqueue(event Event) bool {
	select {
	case p.queue <- event:
		return true
	default:
		metrics.RecordClickDropped()
		p.logger.Warn("click queue full, event dropped", "link_id", event.LinkID)
		return false
	}
}

// Stop closes the queue and waits for in-flight events to be persisted
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for event := range p.queue {
		p.process(event)
	}
}

// process classifies and persists one click. Every failure is logged and
// swallowed; the redirect this click belongs to has already been served.
func (p *Pool) process(event Event) {
	click := domain.NewClick(event.LinkID, event.IPAddress, event.UserAgent)
	click.ClickedAt = event.ClickedAt

	click.Device, click.Browser, click.OS = ClassifyUserAgent(event.UserAgent)
	click.Referrer = ClassifyReferrer(event.Referrer)

	// Detached from the request lifecycle on purpose: the lookup may take
	// seconds and bounds itself with the locator's timeout.
	click.Country, click.City = p.geo.Locate(context.Background(), event.IPAddress)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.clicks.Create(ctx, click); err != nil {
		p.logger.Error("failed to record click", "link_id", event.LinkID, "error", err)
		return
	}

	metrics.RecordClickRecorded()
}
