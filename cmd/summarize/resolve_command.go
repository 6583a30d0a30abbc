package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-summarizer/pkg/deadline"
)

func newResolveCommand() *cobra.Command {
	var nowFlag string

	cmd := &cobra.Command{
		Use:   "resolve <phrase>",
		Short: "Resolve a relative deadline phrase such as \"next Friday\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := parseNow(nowFlag)
			if err != nil {
				return err
			}

			due, ok := deadline.Resolve(strings.Join(args, " "), now)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no deadline")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), due.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&nowFlag, "now", "", "Reference time (RFC3339, default now)")
	return cmd
}
