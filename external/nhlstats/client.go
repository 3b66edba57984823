package nhlstats

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/adjusted-goals/internal/domain/adjustment"
	"github.com/riskibarqy/adjusted-goals/internal/domain/leader"
	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
	"github.com/riskibarqy/adjusted-goals/internal/platform/logging"
	"github.com/riskibarqy/adjusted-goals/internal/platform/resilience"
	"github.com/riskibarqy/adjusted-goals/internal/usecase"
)

const (
	defaultBaseURL           = "https://api.nhle.com/stats/rest/en"
	defaultPlayerURLBase     = "https://www.nhl.com/player/"
	defaultRequestsPerMinute = 120
	defaultFetchWorkers      = 4
	regularSeasonGameType    = 2
	careerPageSize           = 100
	maxCareerPages           = 50
	maxResponseBytes         = 6 << 20
)

var errStatsTransient = crerr.New("nhl stats transient failure")

type ClientConfig struct {
	HTTPClient        *http.Client
	BaseURL           string
	Timeout           time.Duration
	MaxRetries        int
	RequestsPerMinute int
	FetchWorkers      int
	Logger            *logging.Logger
	CircuitBreaker    resilience.CircuitBreakerConfig
}

// Client reads league and skater summaries from the NHL stats REST API.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	maxRetries   int
	fetchWorkers int
	logger       *logging.Logger
	limiter      *rate.Limiter
	breaker      *resilience.CircuitBreaker
	flight       singleflight.Group
	retryDelay   time.Duration
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = defaultRequestsPerMinute
	}
	workers := cfg.FetchWorkers
	if workers <= 0 {
		workers = defaultFetchWorkers
	}

	breaker := resilience.NewCircuitBreaker("nhl-stats", cfg.CircuitBreaker, func(name string, from, to resilience.CircuitState) {
		logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
	})

	return &Client{
		httpClient:   httpClient,
		baseURL:      baseURL,
		maxRetries:   maxInt(cfg.MaxRetries, 0),
		fetchWorkers: workers,
		logger:       logger,
		limiter:      rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
		breaker:      breaker,
		retryDelay:   time.Second,
	}
}

// FetchSeasonTotals sums regular-season goals and games over every team.
// Each game is counted once per team, so the team games total is halved.
func (c *Client) FetchSeasonTotals(ctx context.Context, s int) (season.Totals, error) {
	query := map[string]string{
		"cayenneExp": fmt.Sprintf("seasonId=%s and gameTypeId=%d", season.ProviderID(s), regularSeasonGameType),
	}

	var payload envelope[teamSummaryRow]
	if err := c.doJSON(ctx, "/team/summary", query, &payload); err != nil {
		return season.Totals{}, fmt.Errorf("fetch team summary season=%d: %w", s, err)
	}

	totals := season.Totals{Season: s}
	teamGames := 0
	for _, row := range payload.Data {
		totals.TotalGoals += row.GoalsFor
		teamGames += row.GamesPlayed
	}
	totals.TotalGames = teamGames / 2

	c.logger.DebugContext(ctx, "season totals retrieved",
		"season", s,
		"teams", len(payload.Data),
		"total_goals", totals.TotalGoals,
		"total_games", totals.TotalGames,
	)
	return totals, nil
}

// FetchSeasonRange returns totals for every played season in span, ordered by season.
func (c *Client) FetchSeasonRange(ctx context.Context, span season.Range) ([]season.Totals, error) {
	if err := span.Validate(); err != nil {
		return nil, err
	}

	seasons := span.Seasons()
	out := make([]season.Totals, len(seasons))

	p := pool.New().
		WithContext(ctx).
		WithMaxGoroutines(c.fetchWorkers).
		WithCancelOnError().
		WithFirstError()
	for i, s := range seasons {
		p.Go(func(ctx context.Context) error {
			totals, err := c.FetchSeasonTotals(ctx, s)
			if err != nil {
				return err
			}
			out[i] = totals
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// FetchSeasonLeaders returns the top regular-season goal scorers of one season.
func (c *Client) FetchSeasonLeaders(ctx context.Context, s, limit int) ([]leader.SeasonGoals, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: leader limit must be greater than zero", usecase.ErrInvalidInput)
	}

	sortRaw, err := encodeSort(sortSpec{Property: "goals", Direction: "DESC"}, sortSpec{Property: "playerId", Direction: "ASC"})
	if err != nil {
		return nil, err
	}

	// Ties at the cut-off are resolved by the caller, so ask for a few extra rows.
	query := map[string]string{
		"isAggregate": "false",
		"isGame":      "false",
		"sort":        sortRaw,
		"start":       "0",
		"limit":       strconv.Itoa(limit + 10),
		"cayenneExp":  fmt.Sprintf("seasonId=%s and gameTypeId=%d", season.ProviderID(s), regularSeasonGameType),
	}

	var payload envelope[skaterSummaryRow]
	if err := c.doJSON(ctx, "/skater/summary", query, &payload); err != nil {
		return nil, fmt.Errorf("fetch season leaders season=%d: %w", s, err)
	}

	out := make([]leader.SeasonGoals, 0, len(payload.Data))
	for _, row := range payload.Data {
		if row.PlayerID <= 0 {
			continue
		}
		out = append(out, leader.SeasonGoals{
			PlayerID: strconv.FormatInt(row.PlayerID, 10),
			Name:     strings.TrimSpace(row.SkaterFullName),
			URL:      playerURL(row.PlayerID),
			Season:   s,
			Goals:    row.Goals,
		})
	}
	return out, nil
}

// FetchCareerLeaders pages through aggregated regular-season totals and keeps
// every skater with at least minGoals career goals.
func (c *Client) FetchCareerLeaders(ctx context.Context, minGoals int) ([]leader.Leader, error) {
	if minGoals < 0 {
		return nil, fmt.Errorf("%w: minimum goals must not be negative", usecase.ErrInvalidInput)
	}

	sortRaw, err := encodeSort(sortSpec{Property: "goals", Direction: "DESC"}, sortSpec{Property: "playerId", Direction: "ASC"})
	if err != nil {
		return nil, err
	}

	out := make([]leader.Leader, 0, careerPageSize)
	for page := 0; page < maxCareerPages; page++ {
		query := map[string]string{
			"isAggregate":    "true",
			"isGame":         "false",
			"sort":           sortRaw,
			"start":          strconv.Itoa(page * careerPageSize),
			"limit":          strconv.Itoa(careerPageSize),
			"factCayenneExp": fmt.Sprintf("goals>=%d", minGoals),
			"cayenneExp":     fmt.Sprintf("gameTypeId=%d", regularSeasonGameType),
		}

		var payload envelope[skaterSummaryRow]
		if err := c.doJSON(ctx, "/skater/summary", query, &payload); err != nil {
			return nil, fmt.Errorf("fetch career leaders page=%d: %w", page, err)
		}

		done := len(payload.Data) < careerPageSize
		for _, row := range payload.Data {
			if row.PlayerID <= 0 {
				continue
			}
			if row.Goals < minGoals {
				done = true
				break
			}
			out = append(out, leader.Leader{
				PlayerID:    strconv.FormatInt(row.PlayerID, 10),
				Name:        strings.TrimSpace(row.SkaterFullName),
				URL:         playerURL(row.PlayerID),
				CareerGoals: row.Goals,
				Source:      leader.SourceCareer,
			})
		}
		if done || (payload.Total > 0 && (page+1)*careerPageSize >= payload.Total) {
			break
		}
	}

	c.logger.InfoContext(ctx, "career leaders retrieved", "min_goals", minGoals, "count", len(out))
	return out, nil
}

// FetchPlayerSeasons returns one regular-season goal count per season for a skater.
// Rows split across teams within a season are summed.
func (c *Client) FetchPlayerSeasons(ctx context.Context, playerID string) ([]adjustment.PlayerSeasonGoals, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(playerID), 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: invalid player id %q", usecase.ErrInvalidInput, playerID)
	}

	query := map[string]string{
		"isAggregate": "false",
		"isGame":      "false",
		"start":       "0",
		"limit":       "-1",
		"cayenneExp":  fmt.Sprintf("playerId=%d and gameTypeId=%d", id, regularSeasonGameType),
	}

	var payload envelope[skaterSummaryRow]
	if err := c.doJSON(ctx, "/skater/summary", query, &payload); err != nil {
		return nil, fmt.Errorf("fetch player seasons player_id=%d: %w", id, err)
	}

	bySeason := make(map[int]int, len(payload.Data))
	for _, row := range payload.Data {
		s, err := season.FromProviderID(row.SeasonID)
		if err != nil {
			c.logger.WarnContext(ctx, "skip player season with unknown season id", "player_id", id, "season_id", row.SeasonID)
			continue
		}
		bySeason[s] += row.Goals
	}

	out := make([]adjustment.PlayerSeasonGoals, 0, len(bySeason))
	for s, goals := range bySeason {
		out = append(out, adjustment.PlayerSeasonGoals{
			PlayerID: playerID,
			Season:   s,
			Goals:    goals,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	shared, err, _ := c.flight.Do(fullURL, func() (any, error) {
		var body []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			body, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isStatsCircuitFailure)
		if stderrors.Is(execErr, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "nhl stats circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: stats provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		return body, execErr
	})
	if err != nil {
		return err
	}
	raw, _ := shared.([]byte)

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("%w: send request: %v", errStatsTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errStatsTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errStatsTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * c.retryDelay
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "nhl stats request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func encodeSort(specs ...sortSpec) (string, error) {
	raw, err := sonic.MarshalString(specs)
	if err != nil {
		return "", fmt.Errorf("encode sort: %w", err)
	}
	return raw, nil
}

func playerURL(id int64) string {
	return defaultPlayerURLBase + strconv.FormatInt(id, 10)
}

func isStatsCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errStatsTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
