package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type bookingPurger interface {
	PurgeCancelled(ctx context.Context) (int64, error)
}

// Scheduler periodically purges stale cancelled bookings. Cancelled rows are
// already excluded from availability checks, so the purge is retention only.
type Scheduler struct {
	bookingService bookingPurger
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingPurger,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	purged, err := s.bookingService.PurgeCancelled(ctx)
	if err != nil {
		s.logger.Error("failed to purge cancelled bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	if purged > 0 {
		s.logger.Info("cancelled bookings removed",
			logger.Int("count", int(purged)),
		)
	}
}
