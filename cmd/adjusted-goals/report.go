package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/adjusted-goals/internal/app"
	"github.com/riskibarqy/adjusted-goals/internal/domain/adjustment"
	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
)

func reportCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print stored results",
	}
	cmd.AddCommand(reportTotalsCmd(flags))
	cmd.AddCommand(reportRatesCmd(flags))
	return cmd
}

func reportTotalsCmd(flags *globalFlags) *cobra.Command {
	var limit int
	var perSeason bool
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Print adjusted career totals, highest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, a *app.App, _ season.Range) error {
				items, err := a.Service.AdjustedTotals(ctx, limit)
				if err != nil {
					return err
				}
				return writeTotals(cmd.OutOrStdout(), items, perSeason)
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 25, "number of players to print, 0 for all")
	cmd.Flags().BoolVar(&perSeason, "seasons", false, "include per-season contributions")
	return cmd
}

func reportRatesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Print goals per game and adjustment factor of each season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, flags, func(ctx context.Context, a *app.App, span season.Range) error {
				table, err := a.Service.StoredRates(ctx, span)
				if err != nil {
					return err
				}
				factors, err := a.Service.StoredFactors(ctx)
				if err != nil {
					return err
				}
				return writeRates(cmd.OutOrStdout(), table, factors)
			})
		},
	}
}

func writeTotals(out io.Writer, items []adjustment.AdjustedPlayerTotal, perSeason bool) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "#\tPlayer\tRaw\tAdjusted\tDiff\t")
	for i, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%+d\t\n",
			i+1, item.Name, item.RawCareerTotal, item.AdjustedCareerTotal, item.AdjustedCareerTotal-item.RawCareerTotal)
		if !perSeason {
			continue
		}
		for _, c := range item.PerSeason {
			fmt.Fprintf(w, "\t%s\t%d\t%.2f\tx%.4f\t\n", season.Label(c.Season), c.RawGoals, c.DisplayAdjusted(), c.Factor)
		}
	}
	return w.Flush()
}

func writeRates(out io.Writer, table *season.RateTable, factors adjustment.FactorSet) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "policy %s, baseline %.4f\n", factors.Policy, factors.Baseline)
	fmt.Fprintln(w, "Season\tGoals\tGames\tGoals/Game\tFactor\t")
	for _, record := range table.Records() {
		factor, ok := factors.Factor(record.Season)
		factorText := "-"
		if ok {
			factorText = fmt.Sprintf("%.4f", factor)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%.4f\t%s\t\n",
			season.Label(record.Season), record.TotalGoals, record.TotalGames, record.GoalsPerGame, factorText)
	}
	return w.Flush()
}
