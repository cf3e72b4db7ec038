package stats

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gigwork_backend/internal/client"
	"gigwork_backend/internal/logger"
)

// Poller periodically fetches the gig and posting collections and keeps
// the latest combined statistics in memory. A failed cycle is logged and
// the previous document stays served.
type Poller struct {
	client   *client.Client
	interval time.Duration

	mu        sync.RWMutex
	latest    *CombinedStatistics
	updatedAt time.Time
}

func NewPoller(apiClient *client.Client, interval time.Duration) *Poller {
	return &Poller{
		client:   apiClient,
		interval: interval,
	}
}

// Run polls once immediately, then on every tick until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	logger.Info("Stat poller starting", "interval", p.interval.String())

	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stat poller stopping")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// Latest returns the most recent combined document, or false when no
// cycle has succeeded yet.
func (p *Poller) Latest() (CombinedStatistics, time.Time, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.latest == nil {
		return CombinedStatistics{}, time.Time{}, false
	}
	return *p.latest, p.updatedAt, true
}

func (p *Poller) poll(ctx context.Context) {
	combined, err := p.fetch(ctx)
	logger.WorkerLog("stat_poller", "poll", err)
	if err != nil {
		return
	}

	p.mu.Lock()
	p.latest = combined
	p.updatedAt = time.Now().UTC()
	p.mu.Unlock()
}

func (p *Poller) fetch(ctx context.Context) (*CombinedStatistics, error) {
	now := time.Now().UTC()

	// one root fetch resolves both collection hrefs for the cycle
	hrefs, err := p.client.ResourceHrefs("gigs", "postings")
	if err != nil {
		return nil, fmt.Errorf("resolving resource hrefs: %w", err)
	}

	gigs, err := p.fetchSnapshot(ctx, "gigs", hrefs["gigs"])
	if err != nil {
		return nil, err
	}
	postings, err := p.fetchSnapshot(ctx, "postings", hrefs["postings"])
	if err != nil {
		return nil, err
	}

	combined := Combine(
		ProduceGigStatistics(gigs, now),
		ProducePostingStatistics(postings, now),
	)
	return &combined, nil
}

func (p *Poller) fetchSnapshot(ctx context.Context, resource, href string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := p.client.GetRaw(href)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", resource, err)
	}

	return ParseSnapshot(raw)
}
