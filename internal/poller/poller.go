package poller

import (
	"context"
	"fmt"
	"log"

	"SiliconMeter/internal/feed"
	"SiliconMeter/internal/recorder"
	"SiliconMeter/internal/snapshot"

	"github.com/robfig/cron/v3"
)

// Poller owns the periodic feed refresh. It is started and stopped by the
// service lifecycle; Stop cancels the recurring job deterministically, so
// no detached fetch loop survives teardown.
type Poller struct {
	Cron     *cron.Cron
	Fetcher  feed.Fetcher
	Store    *snapshot.Store
	Recorder recorder.Recorder
	Ctx      context.Context
}

// NewPoller creates a poller. Overlapping runs are skipped rather than
// queued: a hung fetch delays the next poll instead of stacking requests.
func NewPoller(ctx context.Context, fetcher feed.Fetcher, store *snapshot.Store, rec recorder.Recorder) *Poller {
	return &Poller{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		Fetcher:  fetcher,
		Store:    store,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// Register schedules the poll task with the given cron spec.
func (p *Poller) Register(cronSpec string) error {
	if _, err := p.Cron.AddFunc(cronSpec, p.poll); err != nil {
		return fmt.Errorf("register poll task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (p *Poller) Start() {
	p.Cron.Start()
	log.Println("[INFO] poller started")
}

// Stop stops the cron scheduler and waits for a running poll to finish.
func (p *Poller) Stop() {
	<-p.Cron.Stop().Done()
	log.Println("[INFO] poller stopped")
}

// RunNow executes the poll task immediately (initial load).
func (p *Poller) RunNow() {
	p.poll()
}

func (p *Poller) poll() {
	snap, err := p.Fetcher.FetchSnapshot(p.Ctx)
	if err != nil {
		// Last-known-good stays published; staleness shows via last_updated.
		log.Printf("[ERROR] poll failed, keeping previous snapshot: %v", err)
		if rerr := p.Recorder.RecordPoll(&recorder.PollEvent{
			Status: "ERROR",
			Note:   err.Error(),
		}); rerr != nil {
			log.Printf("[ERROR] record poll event: %v", rerr)
		}
		return
	}

	p.Store.Replace(snap)
	log.Printf("[INFO] snapshot replaced: %d products, last_updated=%s",
		len(snap.Products), snap.LastUpdated)

	if err := p.Recorder.RecordPoll(&recorder.PollEvent{
		Status:       "OK",
		ProductCount: len(snap.Products),
		LastUpdated:  snap.LastUpdated,
	}); err != nil {
		log.Printf("[ERROR] record poll event: %v", err)
	}
	if err := p.Recorder.RecordPrices(snap); err != nil {
		log.Printf("[ERROR] record prices: %v", err)
	}
}
