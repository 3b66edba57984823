package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/adjusted-goals/internal/app"
	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
	"github.com/riskibarqy/adjusted-goals/internal/usecase"
)

func stepCmd(use, short string, flags *globalFlags, steps ...string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSteps(cmd, flags, steps)
		},
	}
}

func runCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run <steps...>",
		Short: "Run the given steps (1, 2, 3, names or all)",
		Example: "  adjusted-goals run 1 3\n" +
			"  adjusted-goals run rates,leaders --from 1980",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSteps(cmd, flags, args)
		},
	}
}

func runSteps(cmd *cobra.Command, flags *globalFlags, raw []string) error {
	steps, err := usecase.ParseSteps(raw)
	if err != nil {
		return err
	}

	return withApp(cmd, flags, func(ctx context.Context, a *app.App, span season.Range) error {
		result, err := a.Service.Run(ctx, steps, span)
		if err != nil {
			return err
		}
		printRunSummary(cmd.OutOrStdout(), result, span)
		return nil
	})
}

func printRunSummary(w io.Writer, result usecase.RunResult, span season.Range) {
	fmt.Fprintf(w, "run %s over %s finished in %s\n", result.RunID, span, result.Duration.Round(time.Millisecond))
	if result.Rates != nil {
		fmt.Fprintf(w, "  rates:   %d seasons, policy %s, baseline %.4f goals/game\n",
			result.Rates.Table.Len(), result.Rates.Factors.Policy, result.Rates.Factors.Baseline)
	}
	if result.Leaders != nil {
		fmt.Fprintf(w, "  leaders: %d players\n", len(result.Leaders))
	}
	if result.Adjusted != nil {
		fmt.Fprintf(w, "  adjust:  %d players\n", len(result.Adjusted))
		if len(result.Adjusted) > 0 {
			top := result.Adjusted[0]
			fmt.Fprintf(w, "  top:     %s %d (raw %d)\n", top.Name, top.AdjustedCareerTotal, top.RawCareerTotal)
		}
	}
}
