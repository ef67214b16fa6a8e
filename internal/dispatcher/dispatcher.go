package dispatcher

import (
	"context"
	"time"

	"github.com/google/uuid"

	"eva-assistant/pkg/log"
)

const DefaultJobTimeout = 5 * time.Minute

// Dispatcher runs webhook jobs in the background so handlers can
// acknowledge immediately. Jobs are fire-and-forget: each runs at most
// once and failures are logged, never retried.
type Dispatcher struct {
	l       log.Logger
	timeout time.Duration
}

func New(l log.Logger, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultJobTimeout
	}
	return &Dispatcher{l: l, timeout: timeout}
}

// Dispatch schedules job on its own goroutine with a fresh context,
// detached from the request that spawned it. A panic inside the job is
// recovered and logged so one bad message cannot take the server down.
func (d *Dispatcher) Dispatch(name string, job func(ctx context.Context)) string {
	jobID := uuid.NewString()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				d.l.Errorf(ctx, "dispatcher: job %s (%s) panicked: %v", name, jobID, r)
			}
		}()

		start := time.Now()
		d.l.Debugf(ctx, "dispatcher: job %s (%s) started", name, jobID)
		job(ctx)
		d.l.Debugf(ctx, "dispatcher: job %s (%s) finished in %s", name, jobID, time.Since(start))
	}()
	return jobID
}
