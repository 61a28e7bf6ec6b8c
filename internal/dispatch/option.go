package dispatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/hackebrot/go-event-scheduler/pkg/scheduler"
)

// Handler is called by a worker for each event whose time has come.
type Handler func(ctx context.Context, event scheduler.Event) error

// Option sets optional Dispatcher settings.
type Option func(*Dispatcher)

// WithWorkers sets the number of workers. Values <= 0 select runtime.NumCPU.
func WithWorkers(n int) Option {
	return func(d *Dispatcher) {
		d.workerCount = n
	}
}

// WithBufferSize sets the capacity of the ready and result channels.
func WithBufferSize(n int) Option {
	return func(d *Dispatcher) {
		d.bufSize = n
	}
}

// WithLocation sets the location in which event timestamps are interpreted.
func WithLocation(loc *time.Location) Option {
	return func(d *Dispatcher) {
		if loc != nil {
			d.loc = loc
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// WithHandler sets the function run for each due event.
func WithHandler(h Handler) Option {
	return func(d *Dispatcher) {
		if h != nil {
			d.handler = h
		}
	}
}

// logEvent is the default Handler.
func logEvent(_ context.Context, event scheduler.Event) error {
	slog.Info("event due", "event_name", event.Name, "event_at", event.At)
	return nil
}
