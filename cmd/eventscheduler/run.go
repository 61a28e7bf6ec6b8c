package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hackebrot/go-event-scheduler/internal/dispatch"
	"github.com/hackebrot/go-event-scheduler/pkg/scheduler"
)

func newRunCmd(o *rootOptions) *cobra.Command {
	var (
		events  eventList
		workers int
		utc     bool
	)

	cmd := &cobra.Command{
		Use:   "run --event <name>@<date> [--event ...]",
		Short: "Wait for events and report each one when it is due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(events) == 0 {
				return errors.New("cmd_run: no events given, use --event")
			}

			s, err := o.load(events)
			if err != nil {
				return fmt.Errorf("cmd_run: %w", err)
			}

			loc := time.Local
			if utc {
				loc = time.UTC
			}

			out := cmd.OutOrStdout()
			var outMu sync.Mutex
			d := dispatch.New(s,
				dispatch.WithWorkers(workers),
				dispatch.WithLocation(loc),
				dispatch.WithHandler(func(_ context.Context, e scheduler.Event) error {
					outMu.Lock()
					defer outMu.Unlock()
					_, err := fmt.Fprintf(out, "Event due: %s\n", e)
					return err
				}),
			)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			done := make(chan dispatch.Summary, 1)
			go func() {
				done <- dispatch.Summarize(d.Results())
			}()

			d.Start(ctx)
			summary := <-done

			if pending := d.Pending(); len(pending) > 0 {
				slog.Info("stopped with pending events", "count_events", len(pending), "next_event", pending[0].String())
			}

			if summary.Failed > 0 {
				return fmt.Errorf("cmd_run: %d of %d events failed", summary.Failed, summary.Failed+summary.Count)
			}
			return nil
		},
	}

	f := cmd.Flags()
	addEventFlag(f, &events)
	f.IntVarP(&workers, "workers", "w", 1, "Sets the number of workers handling due events (<= 0 uses one per CPU).")
	f.BoolVar(&utc, "utc", false, "Interprets event dates as UTC instead of local time.")
	return cmd
}
