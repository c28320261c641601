package sync

import (
	"context"
	"fmt"

	"catalog-sync/core/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Scheduler triggers sync cycles on cron schedules, independently per catalog
// type. A singleflight group keyed by catalog type guards against overlapping
// cycles: a trigger firing while a cycle of the same type is still running
// joins the in-flight cycle instead of starting a duplicate writer.
type Scheduler struct {
	service *Service
	cfg     Config
	logger  *zap.Logger
	cron    *cron.Cron
	group   singleflight.Group
}

// NewScheduler creates a scheduler for the given sync service.
func NewScheduler(service *Service, cfg Config, log *zap.Logger) *Scheduler {
	return &Scheduler{service: service, cfg: cfg, logger: log}
}

// Start validates the cron expressions and begins triggering cycles.
func (s *Scheduler) Start() error {
	c := cron.New()

	if _, err := c.AddFunc(s.cfg.ProductsCron, func() {
		s.run("products", s.service.SyncProducts)
	}); err != nil {
		return fmt.Errorf("invalid products cron %q: %w", s.cfg.ProductsCron, err)
	}

	if _, err := c.AddFunc(s.cfg.CategoriesCron, func() {
		s.run("categories", s.service.SyncCategories)
	}); err != nil {
		return fmt.Errorf("invalid categories cron %q: %w", s.cfg.CategoriesCron, err)
	}

	c.Start()
	s.cron = c
	s.logger.Info("Sync scheduler started",
		zap.String("products_cron", s.cfg.ProductsCron),
		zap.String("categories_cron", s.cfg.CategoriesCron),
	)
	return nil
}

// Stop halts the triggers and waits for any running cycle to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.logger.Info("Sync scheduler stopped")
}

// run executes one sync cycle under the per-type singleflight guard. All
// errors are logged here and never escape, so a failed cycle cannot take the
// scheduler down; the next trigger still fires.
func (s *Scheduler) run(kind string, cycle func(context.Context) error) {
	l := logger.WithCycleID(s.logger, uuid.NewString()).With(zap.String("catalog", kind))

	_, err, shared := s.group.Do(kind, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.CycleTimeout())
		defer cancel()
		l.Info("Sync cycle started")
		return nil, cycle(ctx)
	})

	if shared {
		l.Warn("Previous sync cycle still running, joined in-flight cycle")
		return
	}
	if err != nil {
		l.Error("Sync cycle failed", zap.Error(err))
		return
	}
	l.Info("Sync cycle finished")
}
