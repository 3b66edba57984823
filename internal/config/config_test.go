package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/adjusted-goals/internal/domain/adjustment"
	"github.com/riskibarqy/adjusted-goals/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("REFERENCE_POLICY", "")
	t.Setenv("CANCELLED_SEASONS", "")
	t.Setenv("CAREER_MIN_GOALS", "")
	t.Setenv("YEARLY_TOP_N", "")
	t.Setenv("FIRST_SEASON", "")
	t.Setenv("APP_LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreBackend != StoreFile {
		t.Fatalf("unexpected StoreBackend: %q", cfg.StoreBackend)
	}
	if cfg.ReferencePolicy != adjustment.RangeAverage() {
		t.Fatalf("unexpected ReferencePolicy: %+v", cfg.ReferencePolicy)
	}
	if cfg.CareerMinGoals != 300 || cfg.YearlyTopN != 5 || cfg.FirstSeason != 1917 {
		t.Fatalf("unexpected selection defaults: min=%d top=%d first=%d", cfg.CareerMinGoals, cfg.YearlyTopN, cfg.FirstSeason)
	}
	if len(cfg.CancelledSeasons) != 1 || cfg.CancelledSeasons[0] != 2004 {
		t.Fatalf("unexpected CancelledSeasons: %v", cfg.CancelledSeasons)
	}
	if cfg.LogFormat != logging.FormatConsole {
		t.Fatalf("expected console logs in dev, got %q", cfg.LogFormat)
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod logs json by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("APP_LOG_FORMAT", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.LogFormat != logging.FormatJSON {
			t.Fatalf("expected json logs in prod, got %q", cfg.LogFormat)
		}
	})

	t.Run("explicit format wins", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("APP_LOG_FORMAT", "console")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.LogFormat != logging.FormatConsole {
			t.Fatalf("unexpected LogFormat: %q", cfg.LogFormat)
		}
	})
}

func TestLoad_PostgresRequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORE_BACKEND", StorePostgres)
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when STORE_BACKEND=postgres without DB_URL")
	}
}

func TestLoad_StatsConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("STATS_BASE_URL", "http://localhost:9000/stats")
	t.Setenv("STATS_TIMEOUT", "5s")
	t.Setenv("STATS_MAX_RETRIES", "4")
	t.Setenv("STATS_REQUESTS_PER_MINUTE", "30")
	t.Setenv("STATS_CIRCUIT_ENABLED", "false")
	t.Setenv("STATS_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("REFERENCE_POLICY", "fixed:1980")
	t.Setenv("CANCELLED_SEASONS", "2004, 1994,2004")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StatsBaseURL != "http://localhost:9000/stats" {
		t.Fatalf("unexpected StatsBaseURL: %q", cfg.StatsBaseURL)
	}
	if cfg.StatsTimeout != 5*time.Second || cfg.StatsMaxRetries != 4 || cfg.StatsRequestsPerMinute != 30 {
		t.Fatalf("unexpected stats settings: %+v", cfg)
	}
	breaker := cfg.StatsCircuitBreaker()
	if breaker.Enabled || breaker.FailureThreshold != 3 {
		t.Fatalf("unexpected breaker config: %+v", breaker)
	}
	if cfg.ReferencePolicy != adjustment.FixedSeason(1980) {
		t.Fatalf("unexpected ReferencePolicy: %+v", cfg.ReferencePolicy)
	}
	if len(cfg.CancelledSeasons) != 2 || cfg.CancelledSeasons[0] != 1994 || cfg.CancelledSeasons[1] != 2004 {
		t.Fatalf("unexpected CancelledSeasons: %v", cfg.CancelledSeasons)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"STATS_MAX_RETRIES":         "-1",
		"STATS_REQUESTS_PER_MINUTE": "0",
		"CACHE_TTL":                 "soon",
		"REFERENCE_POLICY":          "median",
		"CANCELLED_SEASONS":         "2004,lockout",
		"STORE_BACKEND":             "sqlite",
		"APP_LOG_FORMAT":            "xml",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestParseSeasonList_None(t *testing.T) {
	got, err := parseSeasonList("none")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestLoad_ObservabilityRequiresTargets(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_DSN is missing")
	}

	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_SERVER_ADDRESS is missing")
	}

	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://pyroscope:4040")
	t.Setenv("APP_SERVICE_NAME", "goals-backfill")
	t.Setenv("PYROSCOPE_APP_NAME", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "goals-backfill" {
		t.Fatalf("expected app name to default to service name, got %q", cfg.PyroscopeAppName)
	}
}
