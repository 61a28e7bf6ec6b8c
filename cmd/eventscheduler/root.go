package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hackebrot/go-event-scheduler/internal/menu"
	"github.com/hackebrot/go-event-scheduler/pkg/scheduler"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	logLevel string
	backend  scheduler.Kind
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{backend: scheduler.KindBTree}

	cmd := &cobra.Command{
		Use:           "eventscheduler",
		Short:         "In-memory event scheduler",
		Long:          "Schedule named events and work through them soonest first.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setLogger(cmd.ErrOrStderr(), o.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runMenu(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&o.logLevel, "log-level", "l", "info", "Sets the logging level (debug, info, warn, error).")
	f.VarP(&o.backend, "backend", "b", "Sets the scheduler implementation (heap, btree).")

	cmd.AddCommand(
		newMenuCmd(o),
		newListCmd(o),
		newRunCmd(o),
	)
	return cmd
}

func newMenuCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runMenu(cmd)
		},
	}
}

func (o *rootOptions) runMenu(cmd *cobra.Command) error {
	events, err := scheduler.New(o.backend)
	if err != nil {
		return fmt.Errorf("cmd_menu: %w", err)
	}

	slog.Debug("starting menu", "backend", string(o.backend))
	return menu.New(events, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
}

// load creates a scheduler of the configured backend holding events.
func (o *rootOptions) load(events []scheduler.Event) (scheduler.Scheduler, error) {
	s, err := scheduler.New(o.backend)
	if err != nil {
		return nil, err
	}

	for _, e := range events {
		s.Insert(e.Name, e.At)
	}
	return s, nil
}

// eventList is a repeatable flag of "<name>@dd/MM/yyyy HH:mm" values.
type eventList []scheduler.Event

func (l *eventList) String() string {
	parts := make([]string, 0, len(*l))
	for _, e := range *l {
		parts = append(parts, e.Name+"@"+e.At.String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (l *eventList) Set(s string) error {
	e, err := scheduler.ParseEvent(s)
	if err != nil {
		return err
	}
	*l = append(*l, e)
	return nil
}

func (l *eventList) Type() string {
	return "event"
}

var _ pflag.Value = (*eventList)(nil)

func addEventFlag(f *pflag.FlagSet, l *eventList) {
	f.VarP(l, "event", "e", "Adds an event as <name>@"+scheduler.Layout+" (repeatable).")
}

func setLogger(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("cmd_eventscheduler: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}
