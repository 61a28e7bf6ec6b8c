package dispatch

import (
	"context"
	"log/slog"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/hackebrot/go-event-scheduler/pkg/scheduler"
)

const defaultBufSize = 100

// Result records one handler invocation.
type Result struct {
	Event     scheduler.Event
	WorkerID  string
	StartTime time.Time
	EndTime   time.Time
	Error     error
}

// Dispatcher hands events to a pool of workers once their timestamp has passed.
// It sleeps until the earliest pending event is due instead of polling.
type Dispatcher struct {
	events      scheduler.Scheduler
	mu          sync.Mutex
	workerCount int
	bufSize     int
	loc         *time.Location
	now         func() time.Time
	handler     Handler
	wg          sync.WaitGroup
	wake        chan struct{}
	readyEvents chan scheduler.Event
	results     chan Result
}

// New creates a Dispatcher that drains events. The Dispatcher takes ownership
// of events: once Start has been called, further events must be added with
// Schedule.
//
// Timestamps naming a day past the end of their month are rolled over to the
// instant they denote in the dispatcher's location (31/02/2024 becomes
// 02/03/2024), so queue order and due order agree. Events already in events
// are rewritten this way in their current order.
func New(events scheduler.Scheduler, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		events:  events,
		loc:     time.Local,
		now:     time.Now,
		handler: logEvent,
		wake:    make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.workerCount <= 0 {
		d.workerCount = runtime.NumCPU()
	}

	if d.bufSize <= 0 {
		d.bufSize = defaultBufSize
	}

	d.readyEvents = make(chan scheduler.Event, d.bufSize)
	d.results = make(chan Result, d.bufSize)

	pending := d.events.ListAll()
	for range pending {
		d.events.RemoveEarliest()
	}
	for _, e := range pending {
		d.events.Insert(e.Name, d.normalize(e.At))
	}
	return d
}

// normalize maps at onto the calendar minute it denotes in the dispatcher's location.
func (d *Dispatcher) normalize(at scheduler.Timestamp) scheduler.Timestamp {
	return scheduler.FromTime(at.Time(d.loc))
}

// Schedule adds an event and wakes the dispatch loop in case it is now the earliest.
func (d *Dispatcher) Schedule(name string, at scheduler.Timestamp) {
	d.mu.Lock()
	d.events.Insert(name, d.normalize(at))
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Start runs the dispatch loop until every event has been handed to a worker
// or ctx is cancelled. It waits for the workers to finish before returning
// and closes the Results channel.
func (d *Dispatcher) Start(ctx context.Context) {
	slog.Info("starting event dispatcher", "count_events", d.PendingEventsCount(), "workers", d.workerCount)

	d.wg.Add(d.workerCount)
	for i := 0; i < d.workerCount; i++ {
		go d.runWorker(ctx, i)
	}

	for {
		if d.PendingEventsCount() == 0 {
			slog.Info("no remaining events, stopping dispatcher")
			d.shutdown()
			return
		}

		select {
		case <-ctx.Done():
			slog.Info("context cancelled, stopping dispatcher")
			d.shutdown()
			return
		default:
		}

		sleepDuration := d.dispatchDueEvents(ctx)
		if sleepDuration <= 0 {
			continue
		}

		slog.Debug("waiting for next event", "sleep_ms", sleepDuration.Milliseconds())
		timer := time.NewTimer(sleepDuration)
		select {
		case <-ctx.Done():
			timer.Stop()
			slog.Info("context cancelled, stopping dispatcher")
			d.shutdown()
			return
		case <-d.wake:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// shutdown stops the worker pool and closes channels.
func (d *Dispatcher) shutdown() {
	close(d.readyEvents)
	d.wg.Wait()
	close(d.results)
}

// dispatchDueEvents sends every due event to the workers and returns how long
// to sleep until the next one, or 0 if nothing is left to wait for.
func (d *Dispatcher) dispatchDueEvents(ctx context.Context) time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()

	for {
		next, ok := d.events.Peek()
		if !ok {
			return 0
		}

		if at := next.At.Time(d.loc); now.Before(at) {
			return at.Sub(now)
		}

		// The head cannot change while d.mu is held, so it is only removed
		// once a worker has accepted it.
		select {
		case d.readyEvents <- next:
			d.events.RemoveEarliest()
		case <-ctx.Done():
			return 0
		}
	}
}

// runWorker handles events from the readyEvents channel and sends results.
func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	defer d.wg.Done()

	for event := range d.readyEvents {
		d.results <- d.handleEvent(ctx, event, id)
	}
}

// handleEvent runs the handler for a single event and records timing and any error.
func (d *Dispatcher) handleEvent(ctx context.Context, event scheduler.Event, workerID int) Result {
	startTime := time.Now()
	err := d.handler(ctx, event)
	endTime := time.Now()

	return Result{
		Event:     event,
		WorkerID:  strconv.Itoa(workerID),
		StartTime: startTime,
		EndTime:   endTime,
		Error:     err,
	}
}

// PendingEventsCount returns the number of events not yet handed to a worker.
func (d *Dispatcher) PendingEventsCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.events.Len()
}

// Pending returns the events not yet handed to a worker, in order.
func (d *Dispatcher) Pending() []scheduler.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.events.ListAll()
}

// Results returns a channel that receives handler results.
// Consumer should read from this channel to collect results.
// The channel is closed when the dispatcher stops.
func (d *Dispatcher) Results() <-chan Result {
	return d.results
}
