package sweepers

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gamedrive/sales-service/internal/database"
)

// StatusSweeper periodically advances sale lifecycle states by calendar
// date: scheduled sales become active on their start date, active sales
// become completed once their end date has passed.
type StatusSweeper struct {
	logger   *zerolog.Logger
	interval time.Duration
	stopChan chan struct{}
}

// NewStatusSweeper creates a new sweeper for sale status maintenance
func NewStatusSweeper(logger *zerolog.Logger, interval time.Duration) *StatusSweeper {
	return &StatusSweeper{
		logger:   logger,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the periodic status sweep
func (s *StatusSweeper) Start(ctx context.Context) {
	s.logger.Info().
		Dur("interval", s.interval).
		Msg("Starting sale status sweeper")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Sale status sweeper stopping (context cancelled)")
			return
		case <-s.stopChan:
			s.logger.Info().Msg("Sale status sweeper stopping (stop signal)")
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				s.logger.Error().Err(err).Msg("Failed to sweep sale statuses")
			}
		}
	}
}

// Stop signals the sweeper to stop
func (s *StatusSweeper) Stop() {
	close(s.stopChan)
}

// Sweep runs one status transition pass
func (s *StatusSweeper) Sweep(ctx context.Context) error {
	s.logger.Debug().Msg("Running sale status sweep")

	activated, err := database.ActivateDueSales(ctx)
	if err != nil {
		return err
	}

	completed, err := database.CompleteEndedSales(ctx)
	if err != nil {
		return err
	}

	if activated > 0 || completed > 0 {
		s.logger.Info().
			Int64("activated", activated).
			Int64("completed", completed).
			Msg("Sale statuses advanced")
	}
	return nil
}
