package scheduler

import (
	"context"
	"errors"
	"keyword-index/indexer/core"
	"log/slog"
	"time"
)

// ReloadScheduler loads the reference list once on start and then every interval.
// A zero interval disables the periodic reload.
type ReloadScheduler struct {
	log      *slog.Logger
	loader   core.ReferenceLoader
	interval time.Duration
}

func NewReloadScheduler(log *slog.Logger, loader core.ReferenceLoader, interval time.Duration) *ReloadScheduler {
	return &ReloadScheduler{
		log:      log,
		loader:   loader,
		interval: interval,
	}
}

func (s *ReloadScheduler) Start(ctx context.Context) error {
	s.log.Info("start reference reload scheduler", "interval", s.interval)
	if err := s.loader.ReloadReference(ctx); err != nil {
		return err
	}
	if s.interval <= 0 {
		return nil
	}
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				err := s.loader.ReloadReference(ctx)
				switch {
				case errors.Is(err, core.ErrAlreadyExists):
					s.log.Debug("reference reload already in progress")
				case err != nil:
					s.log.Error("failed to reload reference", "error", err)
				}
			case <-ctx.Done():
				s.log.Info("reference reload scheduler stopped")
				return
			}
		}
	}()
	return nil
}
