package activity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/payflowhq/payflow/internal/domain"
)

// writeTimeout bounds the database write of a deferred record.
const writeTimeout = 5 * time.Second

// Recorder implements domain.ActivityRecorder with a configurable write
// delay. The dashboard's activity store choked when the entry was written in
// the same burst as the mutation itself, so records are held back before
// being persisted. A zero delay writes on the next timer tick, which tests
// rely on.
type Recorder struct {
	repo   domain.ActivityRepository
	logger *slog.Logger
	delay  time.Duration

	wg sync.WaitGroup
}

// NewRecorder creates a Recorder that persists entries after the given delay.
// Panics if repo or logger is nil.
func NewRecorder(repo domain.ActivityRepository, logger *slog.Logger, delay time.Duration) *Recorder {
	if repo == nil {
		panic("activity.NewRecorder: repo must not be nil")
	}
	if logger == nil {
		panic("activity.NewRecorder: logger must not be nil")
	}
	if delay < 0 {
		delay = 0
	}
	return &Recorder{repo: repo, logger: logger, delay: delay}
}

// Record schedules an activity entry for persistence after the configured
// delay. It never blocks the caller; write failures are logged and dropped.
func (r *Recorder) Record(userID uint, actionName, email string) {
	r.wg.Add(1)
	time.AfterFunc(r.delay, func() {
		defer r.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		entry := &domain.Activity{
			UserID:     userID,
			ActionName: actionName,
			Email:      email,
		}
		if err := r.repo.Create(ctx, entry); err != nil {
			r.logger.Error("record activity failed",
				slog.Uint64("user_id", uint64(userID)),
				slog.String("action", actionName),
				slog.Any("error", err),
			)
		}
	})
}

// Flush blocks until every scheduled record has been written. Used during
// shutdown and in tests.
func (r *Recorder) Flush() {
	r.wg.Wait()
}
