package scheduler

import (
	"context"
	"time"

	"github.com/huddle-inc/huddle/internal/domain/notification"
	"github.com/huddle-inc/huddle/internal/shared/logger"
)

// RetentionScheduler periodically prunes delivery log rows past the
// configured retention window. The log is an audit trail, not a queue, so
// missing a sweep only delays the prune until the next tick.
type RetentionScheduler struct {
	deliveryRepo  notification.DeliveryLogRepository
	retention     time.Duration
	sweepInterval time.Duration
	logger        logger.Interface
	stopChan      chan struct{}
}

func NewRetentionScheduler(
	deliveryRepo notification.DeliveryLogRepository,
	retention time.Duration,
	logger logger.Interface,
) *RetentionScheduler {
	return &RetentionScheduler{
		deliveryRepo:  deliveryRepo,
		retention:     retention,
		sweepInterval: time.Hour,
		logger:        logger,
		stopChan:      make(chan struct{}),
	}
}

// Start runs the sweep loop until the context is cancelled or Stop is called.
func (s *RetentionScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting delivery log retention scheduler",
		"retention", s.retention,
		"sweep_interval", s.sweepInterval,
	)

	go s.run(ctx)
}

// Stop stops the scheduler.
func (s *RetentionScheduler) Stop() {
	close(s.stopChan)
}

func (s *RetentionScheduler) run(ctx context.Context) {
	// Run immediately on start
	s.sweep(ctx)

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("retention scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			s.logger.Infow("retention scheduler stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *RetentionScheduler) sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.retention)

	pruned, err := s.deliveryRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Errorw("failed to prune delivery logs", "error", err, "cutoff", cutoff)
		return
	}

	if pruned > 0 {
		s.logger.Infow("pruned delivery logs", "count", pruned, "cutoff", cutoff)
	}
}
