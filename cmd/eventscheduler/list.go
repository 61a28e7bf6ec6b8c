package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(o *rootOptions) *cobra.Command {
	var events eventList

	cmd := &cobra.Command{
		Use:   "list --event <name>@<date> [--event ...]",
		Short: "Print events in scheduled order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := o.load(events)
			if err != nil {
				return fmt.Errorf("cmd_list: %w", err)
			}

			out := cmd.OutOrStdout()
			pending := s.ListAll()
			if len(pending) == 0 {
				fmt.Fprintln(out, "No upcoming events.")
				return nil
			}

			fmt.Fprintln(out, "Upcoming events:")
			for _, e := range pending {
				fmt.Fprintln(out, e)
			}
			return nil
		},
	}

	addEventFlag(cmd.Flags(), &events)
	return cmd
}
