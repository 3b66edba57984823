package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
)

func seasonCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "season",
		Short: "Print the current and last completed season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now()
			if at != "" {
				parsed, err := time.Parse(time.DateOnly, at)
				if err != nil {
					return fmt.Errorf("invalid --at %q: %w", at, err)
				}
				now = parsed
			}
			current := season.Current(now)
			fmt.Fprintf(cmd.OutOrStdout(), "current:   %s (%s)\n", season.Label(current), season.ProviderID(current))
			fmt.Fprintf(cmd.OutOrStdout(), "completed: %s (%s)\n", season.Label(current-1), season.ProviderID(current-1))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "reference date as YYYY-MM-DD (default today)")
	return cmd
}
