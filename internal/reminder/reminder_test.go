package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wanderlk/tripdesk/internal/domain"
	"github.com/wanderlk/tripdesk/internal/reminder/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestReminder_Tick_NudgesWhilePending(t *testing.T) {
	activity := mocks.NewMockPendingCounter(t)
	notifier := mocks.NewMockPendingNotifier(t)
	log := newTestLogger(t)

	r := New(activity, notifier, 50*time.Millisecond, log)

	counts := &domain.PendingCounts{Inquiries: 2, Bookings: 1, Total: 3}
	activity.EXPECT().PendingCounts(mock.Anything).Return(counts, nil)
	notifier.EXPECT().NotifyPendingRequests(mock.Anything, counts).Return()

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(notifier.Calls), 1)
}

func TestReminder_Tick_QuietWhenNothingPending(t *testing.T) {
	activity := mocks.NewMockPendingCounter(t)
	notifier := mocks.NewMockPendingNotifier(t)
	log := newTestLogger(t)

	r := New(activity, notifier, 50*time.Millisecond, log)

	activity.EXPECT().PendingCounts(mock.Anything).Return(&domain.PendingCounts{}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.Empty(t, notifier.Calls)
}

func TestReminder_Tick_HandlesCountError(t *testing.T) {
	activity := mocks.NewMockPendingCounter(t)
	notifier := mocks.NewMockPendingNotifier(t)
	log := newTestLogger(t)

	r := New(activity, notifier, 50*time.Millisecond, log)

	activity.EXPECT().PendingCounts(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.Empty(t, notifier.Calls)
}

func TestReminder_StopsOnContextCancel(t *testing.T) {
	activity := mocks.NewMockPendingCounter(t)
	notifier := mocks.NewMockPendingNotifier(t)
	log := newTestLogger(t)

	r := New(activity, notifier, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("reminder did not stop on context cancel")
	}
}
