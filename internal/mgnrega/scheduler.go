package mgnrega

import (
	"context"
	"log"
	"time"

	"github.com/jonboulle/clockwork"
)

// Daily ingestion fires at 03:30 server time, when the upstream dataset has
// usually rolled over.
const (
	scheduleHour   = 3
	scheduleMinute = 30
)

// Scheduler triggers ingestion once at startup and then daily. Failures are
// logged and the next trigger still fires; a broken upstream never takes
// the process down. Overlapping runs (startup + manual + scheduled) are not
// mutually excluded.
type Scheduler struct {
	pipeline *Pipeline
	state    string
	clock    clockwork.Clock
}

// NewScheduler creates a scheduler for state. A nil clock selects real
// time; tests inject a fake.
func NewScheduler(pipeline *Pipeline, state string, clock clockwork.Clock) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{pipeline: pipeline, state: state, clock: clock}
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	if err := s.pipeline.Ingest(ctx, s.state); err != nil {
		log.Printf("[scheduler] initial ingest failed: %v", err)
	}

	for {
		wait := untilNext(s.clock.Now(), scheduleHour, scheduleMinute)
		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(wait):
			log.Printf("[scheduler] daily ingest triggered")
			if err := s.pipeline.Ingest(ctx, s.state); err != nil {
				log.Printf("[scheduler] daily ingest failed: %v", err)
			}
		}
	}
}

// untilNext returns the duration from now to the next hh:mm wall-clock
// occurrence strictly after now.
func untilNext(now time.Time, hour, minute int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next.Sub(now)
}
