package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/adjusted-goals/internal/domain/adjustment"
	"github.com/riskibarqy/adjusted-goals/internal/platform/logging"
	"github.com/riskibarqy/adjusted-goals/internal/platform/resilience"
)

const (
	StoreFile     = "file"
	StorePostgres = "postgres"
)

// Config stores runtime configuration for the adjusted goals pipeline.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	LogLevel                   logging.Level
	LogFormat                  string
	ResultsDir                 string
	StoreBackend               string
	DBURL                      string
	DBDisablePreparedBinary    bool
	CacheEnabled               bool
	CacheTTL                   time.Duration
	StatsBaseURL               string
	StatsTimeout               time.Duration
	StatsMaxRetries            int
	StatsRequestsPerMinute     int
	StatsFetchWorkers          int
	StatsCircuitEnabled        bool
	StatsCircuitFailureCount   int
	StatsCircuitOpenTimeout    time.Duration
	StatsCircuitHalfOpenMaxReq int
	AdjustWorkers              int
	ReferencePolicy            adjustment.Policy
	CareerMinGoals             int
	YearlyTopN                 int
	FirstSeason                int
	// LastSeason of zero means the most recent completed season.
	LastSeason       int
	CancelledSeasons []int

	UptraceEnabled         bool
	UptraceDSN             string
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logFormatDefault := logging.FormatConsole
	if appEnv == EnvProd {
		logFormatDefault = logging.FormatJSON
	}
	logFormat, err := parseLogFormat(getEnv("APP_LOG_FORMAT", logFormatDefault))
	if err != nil {
		return Config{}, err
	}

	storeBackend, err := parseStoreBackend(getEnv("STORE_BACKEND", StoreFile))
	if err != nil {
		return Config{}, err
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if storeBackend == StorePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORE_BACKEND=%s", StorePostgres)
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "10m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	statsTimeout, err := time.ParseDuration(getEnv("STATS_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_TIMEOUT: %w", err)
	}
	if statsTimeout <= 0 {
		return Config{}, fmt.Errorf("STATS_TIMEOUT must be > 0")
	}
	statsMaxRetries, err := getEnvAsInt("STATS_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_MAX_RETRIES: %w", err)
	}
	if statsMaxRetries < 0 {
		return Config{}, fmt.Errorf("STATS_MAX_RETRIES must be >= 0")
	}
	statsRequestsPerMinute, err := getEnvAsInt("STATS_REQUESTS_PER_MINUTE", 120)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_REQUESTS_PER_MINUTE: %w", err)
	}
	if statsRequestsPerMinute < 1 {
		return Config{}, fmt.Errorf("STATS_REQUESTS_PER_MINUTE must be >= 1")
	}
	statsFetchWorkers, err := getEnvAsInt("STATS_FETCH_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_FETCH_WORKERS: %w", err)
	}
	if statsFetchWorkers < 1 {
		return Config{}, fmt.Errorf("STATS_FETCH_WORKERS must be >= 1")
	}

	statsCircuitEnabled, err := strconv.ParseBool(getEnv("STATS_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_CIRCUIT_ENABLED: %w", err)
	}
	statsCircuitFailureCount, err := getEnvAsInt("STATS_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if statsCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("STATS_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	statsCircuitOpenTimeout, err := time.ParseDuration(getEnv("STATS_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if statsCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("STATS_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	statsCircuitHalfOpenMaxReq, err := getEnvAsInt("STATS_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if statsCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("STATS_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	adjustWorkers, err := getEnvAsInt("ADJUST_WORKERS", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse ADJUST_WORKERS: %w", err)
	}
	if adjustWorkers < 0 {
		return Config{}, fmt.Errorf("ADJUST_WORKERS must be >= 0")
	}

	policy, err := adjustment.ParsePolicy(getEnv("REFERENCE_POLICY", "average"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REFERENCE_POLICY: %w", err)
	}

	careerMinGoals, err := getEnvAsInt("CAREER_MIN_GOALS", 300)
	if err != nil {
		return Config{}, fmt.Errorf("parse CAREER_MIN_GOALS: %w", err)
	}
	if careerMinGoals < 0 {
		return Config{}, fmt.Errorf("CAREER_MIN_GOALS must be >= 0")
	}
	yearlyTopN, err := getEnvAsInt("YEARLY_TOP_N", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse YEARLY_TOP_N: %w", err)
	}
	if yearlyTopN < 0 {
		return Config{}, fmt.Errorf("YEARLY_TOP_N must be >= 0")
	}

	firstSeason, err := getEnvAsInt("FIRST_SEASON", 1917)
	if err != nil {
		return Config{}, fmt.Errorf("parse FIRST_SEASON: %w", err)
	}
	lastSeason, err := getEnvAsInt("LAST_SEASON", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse LAST_SEASON: %w", err)
	}
	if lastSeason != 0 && lastSeason < firstSeason {
		return Config{}, fmt.Errorf("LAST_SEASON must be >= FIRST_SEASON")
	}
	cancelledSeasons, err := parseSeasonList(getEnv("CANCELLED_SEASONS", "2004"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CANCELLED_SEASONS: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}
	serviceName := strings.TrimSpace(getEnv("APP_SERVICE_NAME", "adjusted-goals"))

	return Config{
		AppEnv:                     appEnv,
		ServiceName:                serviceName,
		ServiceVersion:             strings.TrimSpace(getEnv("APP_SERVICE_VERSION", "dev")),
		LogLevel:                   logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:                  logFormat,
		ResultsDir:                 strings.TrimSpace(getEnv("RESULTS_DIR", "results")),
		StoreBackend:               storeBackend,
		DBURL:                      dbURL,
		DBDisablePreparedBinary:    dbDisablePreparedBinary,
		CacheEnabled:               cacheEnabled,
		CacheTTL:                   cacheTTL,
		StatsBaseURL:               strings.TrimSpace(getEnv("STATS_BASE_URL", "https://api.nhle.com/stats/rest/en")),
		StatsTimeout:               statsTimeout,
		StatsMaxRetries:            statsMaxRetries,
		StatsRequestsPerMinute:     statsRequestsPerMinute,
		StatsFetchWorkers:          statsFetchWorkers,
		StatsCircuitEnabled:        statsCircuitEnabled,
		StatsCircuitFailureCount:   statsCircuitFailureCount,
		StatsCircuitOpenTimeout:    statsCircuitOpenTimeout,
		StatsCircuitHalfOpenMaxReq: statsCircuitHalfOpenMaxReq,
		AdjustWorkers:              adjustWorkers,
		ReferencePolicy:            policy,
		CareerMinGoals:             careerMinGoals,
		YearlyTopN:                 yearlyTopN,
		FirstSeason:                firstSeason,
		LastSeason:                 lastSeason,
		CancelledSeasons:           cancelledSeasons,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAppName:           strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", serviceName)),
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}, nil
}

func (c Config) StatsCircuitBreaker() resilience.CircuitBreakerConfig {
	return resilience.CircuitBreakerConfig{
		Enabled:          c.StatsCircuitEnabled,
		FailureThreshold: c.StatsCircuitFailureCount,
		OpenTimeout:      c.StatsCircuitOpenTimeout,
		HalfOpenMaxReq:   c.StatsCircuitHalfOpenMaxReq,
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

// parseSeasonList reads a comma separated list of starting years. "none"
// clears the list.
func parseSeasonList(raw string) ([]int, error) {
	if strings.EqualFold(strings.TrimSpace(raw), "none") {
		return nil, nil
	}

	items := splitCSV(raw)
	out := make([]int, 0, len(items))
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		value, err := strconv.Atoi(item)
		if err != nil {
			return nil, fmt.Errorf("invalid season %q: %w", item, err)
		}
		if value <= 0 {
			return nil, fmt.Errorf("season must be > 0, got %d", value)
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	sort.Ints(out)
	return out, nil
}

func parseLogFormat(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case logging.FormatJSON, logging.FormatConsole:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_LOG_FORMAT %q: valid values are %s, %s", v, logging.FormatJSON, logging.FormatConsole)
	}
}

func parseStoreBackend(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case StoreFile, StorePostgres:
		return value, nil
	default:
		return "", fmt.Errorf("invalid STORE_BACKEND %q: valid values are %s, %s", v, StoreFile, StorePostgres)
	}
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
