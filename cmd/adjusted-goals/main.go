// Command adjusted-goals rescales career goal totals of NHL scorers by the
// league-wide scoring rate of the seasons they played in.
//
// Usage:
//
//	adjusted-goals all --from 1917
//	adjusted-goals run 1 3 --to 1999 --policy fixed:1980
//	adjusted-goals report totals --limit 25
//	adjusted-goals migrate up
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/adjusted-goals/internal/app"
	"github.com/riskibarqy/adjusted-goals/internal/config"
	"github.com/riskibarqy/adjusted-goals/internal/domain/adjustment"
	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
	"github.com/riskibarqy/adjusted-goals/internal/observability"
	"github.com/riskibarqy/adjusted-goals/internal/platform/logging"
)

// globalFlags override the matching environment values when set.
type globalFlags struct {
	from       int
	to         int
	policy     string
	resultsDir string
	store      string
	minGoals   int
	top        int
	dryRun     bool
}

func main() {
	_ = godotenv.Load(".env")

	root, _ := newRootCmd()
	if err := root.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// loggedError marks a failure that already went through the logger.
type loggedError struct{ err error }

func (e *loggedError) Error() string { return e.err.Error() }
func (e *loggedError) Unwrap() error { return e.err }

func logged(err error) error {
	if err == nil {
		return nil
	}
	return &loggedError{err: err}
}

// reportError prints failures that happened before a logger existed, such as
// flag or config errors.
func reportError(w io.Writer, err error) {
	var le *loggedError
	if errors.As(err, &le) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

func newRootCmd() (*cobra.Command, *globalFlags) {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:           "adjusted-goals",
		Short:         "Adjust career goal totals for league-wide scoring rates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.IntVarP(&flags.from, "from", "f", 0, "first season to include, by starting year (default FIRST_SEASON)")
	pf.IntVarP(&flags.to, "to", "t", 0, "last season to include, by starting year; 9999 or unset means last completed season")
	pf.StringVar(&flags.policy, "policy", "", "reference policy: average or fixed:<season>")
	pf.StringVar(&flags.resultsDir, "results-dir", "", "directory for JSON artifacts")
	pf.StringVar(&flags.store, "store", "", "store backend: file or postgres")
	pf.IntVar(&flags.minGoals, "min-goals", 0, "minimum career goals for a career leader")
	pf.IntVar(&flags.top, "top", 0, "top scorers per season to include")
	pf.BoolVar(&flags.dryRun, "dry-run", false, "keep results in memory only")

	root.AddCommand(stepCmd("rates", "Retrieve season totals and compute adjustment factors (step 1)", flags, "1"))
	root.AddCommand(stepCmd("leaders", "Retrieve career and yearly goal leaders (step 2)", flags, "2"))
	root.AddCommand(stepCmd("adjust", "Adjust goal totals of the stored leaders (step 3)", flags, "3"))
	root.AddCommand(stepCmd("all", "Run every step in order", flags, "all"))
	root.AddCommand(runCmd(flags))
	root.AddCommand(seasonCmd())
	root.AddCommand(reportCmd(flags))
	root.AddCommand(migrateCmd())
	return root, flags
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	changed := cmd.Flags().Changed
	if changed("policy") {
		policy, err := adjustment.ParsePolicy(flags.policy)
		if err != nil {
			return config.Config{}, err
		}
		cfg.ReferencePolicy = policy
	}
	if changed("results-dir") {
		cfg.ResultsDir = flags.resultsDir
	}
	if changed("store") {
		switch flags.store {
		case config.StoreFile, config.StorePostgres:
			cfg.StoreBackend = flags.store
		default:
			return config.Config{}, fmt.Errorf("invalid --store %q, expected %s or %s", flags.store, config.StoreFile, config.StorePostgres)
		}
	}
	if changed("min-goals") {
		if flags.minGoals < 1 {
			return config.Config{}, fmt.Errorf("--min-goals must be >= 1")
		}
		cfg.CareerMinGoals = flags.minGoals
	}
	if changed("top") {
		if flags.top < 0 {
			return config.Config{}, fmt.Errorf("--top must be >= 0")
		}
		cfg.YearlyTopN = flags.top
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *logging.Logger {
	return logging.New(cfg.LogFormat, cfg.LogLevel)
}

// withApp handles config loading, app assembly and signal cancellation.
func withApp(cmd *cobra.Command, flags *globalFlags, fn func(ctx context.Context, a *app.App, span season.Range) error) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitTracing(cfg, logger)
	if err != nil {
		logger.Error("init tracing", "error", err)
		return logged(err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("shutdown tracing", "error", err)
		}
	}()

	stopProfiling, err := observability.InitProfiling(cfg, logger)
	if err != nil {
		logger.Error("init profiling", "error", err)
		return logged(err)
	}
	defer func() {
		if err := stopProfiling(); err != nil {
			logger.Warn("stop profiling", "error", err)
		}
	}()

	span, err := app.ResolveRange(cfg, flags.from, flags.to, time.Now())
	if err != nil {
		logger.Error("resolve season range", "error", err)
		return logged(err)
	}

	a, err := app.New(cfg, logger, app.Options{DryRun: flags.dryRun})
	if err != nil {
		logger.Error("build app", "error", err)
		return logged(err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close app", "error", err)
		}
	}()

	if err := fn(ctx, a, span); err != nil {
		logger.ErrorContext(ctx, "command failed", "command", cmd.Name(), "error", err)
		return logged(err)
	}
	return nil
}
