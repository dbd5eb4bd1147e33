// Package jobs runs periodic maintenance on the appointment book.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const sweepTimeout = 30 * time.Second

// Completer marks planned appointments whose end has passed as completed.
type Completer interface {
	CompleteEnded(ctx context.Context) (int, error)
}

type Scheduler struct {
	cron *cron.Cron
	svc  Completer
	log  *zap.Logger
}

// New registers the status sweep on spec, interpreted in loc. An empty spec
// yields a scheduler with no entries.
func New(spec string, loc *time.Location, svc Completer, log *zap.Logger) (*Scheduler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	s := &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
		svc:  svc,
		log:  log,
	}
	if spec == "" {
		log.Info("status sweep disabled")
		return s, nil
	}
	if _, err := s.cron.AddFunc(spec, func() { s.Sweep(context.Background()) }); err != nil {
		return nil, fmt.Errorf("status sweep schedule %q: %w", spec, err)
	}
	return s, nil
}

// Sweep runs one pass and reports how many appointments changed.
func (s *Scheduler) Sweep(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	n, err := s.svc.CompleteEnded(ctx)
	if err != nil {
		s.log.Error("status sweep failed", zap.Error(err))
		return 0
	}
	if n > 0 {
		s.log.Info("status sweep", zap.Int("completed", n))
	}
	return n
}

func (s *Scheduler) Entries() int { return len(s.cron.Entries()) }

func (s *Scheduler) Start() { s.cron.Start() }

// Stop halts scheduling and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
