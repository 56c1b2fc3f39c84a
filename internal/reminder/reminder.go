package reminder

import (
	"context"
	"time"

	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type pendingCounter interface {
	PendingCounts(ctx context.Context) (*domain.PendingCounts, error)
}

type pendingNotifier interface {
	NotifyPendingRequests(ctx context.Context, counts *domain.PendingCounts)
}

// Reminder periodically nudges the staff chat while requests sit in pending.
// It only ever reads counts; the intake pipeline itself stays strictly
// request/response.
type Reminder struct {
	activity pendingCounter
	notifier pendingNotifier
	interval time.Duration
	logger   logger.Logger
}

func New(
	activity pendingCounter,
	notifier pendingNotifier,
	interval time.Duration,
	logger logger.Logger,
) *Reminder {
	return &Reminder{
		activity: activity,
		notifier: notifier,
		interval: interval,
		logger:   logger,
	}
}

func (r *Reminder) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("pending-request reminder started",
		logger.Duration("interval", r.interval),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("pending-request reminder stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Reminder) tick(ctx context.Context) {
	counts, err := r.activity.PendingCounts(ctx)
	if err != nil {
		r.logger.Error("failed to read pending counts",
			logger.String("error", err.Error()),
		)
		return
	}

	if counts.Total == 0 {
		return
	}

	r.logger.Info("pending requests awaiting review",
		logger.Int("inquiries", counts.Inquiries),
		logger.Int("bookings", counts.Bookings),
	)
	r.notifier.NotifyPendingRequests(ctx, counts)
}
