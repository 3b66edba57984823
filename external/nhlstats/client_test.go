package nhlstats

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/adjusted-goals/internal/domain/leader"
	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
	"github.com/riskibarqy/adjusted-goals/internal/platform/resilience"
	"github.com/riskibarqy/adjusted-goals/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate func(*ClientConfig)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := ClientConfig{
		HTTPClient:        server.Client(),
		BaseURL:           server.URL,
		MaxRetries:        0,
		RequestsPerMinute: 600000,
		FetchWorkers:      2,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	client := NewClient(cfg)
	client.retryDelay = time.Millisecond
	return client
}

func TestFetchSeasonTotals_SumsTeamsAndHalvesGames(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/team/summary" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("cayenneExp"); got != "seasonId=19801981 and gameTypeId=2" {
			t.Errorf("unexpected cayenneExp %q", got)
		}
		_, _ = w.Write([]byte(`{"data":[
			{"teamId":1,"seasonId":19801981,"gamesPlayed":80,"goalsFor":300},
			{"teamId":2,"seasonId":19801981,"gamesPlayed":80,"goalsFor":250},
			{"teamId":3,"seasonId":19801981,"gamesPlayed":80,"goalsFor":280}
		],"total":3}`))
	}, nil)

	totals, err := client.FetchSeasonTotals(context.Background(), 1980)
	if err != nil {
		t.Fatalf("fetch season totals: %v", err)
	}
	if totals.Season != 1980 || totals.TotalGoals != 830 || totals.TotalGames != 120 {
		t.Fatalf("unexpected totals %+v", totals)
	}
}

func TestFetchSeasonLeaders_MapsRowsAndAsksForSpareRows(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/skater/summary" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "15" {
			t.Errorf("expected limit 15, got %q", got)
		}
		_, _ = w.Write([]byte(`{"data":[
			{"playerId":8448000,"skaterFullName":" Wayne Gretzky ","seasonId":19811982,"goals":92},
			{"playerId":0,"skaterFullName":"Unknown","seasonId":19811982,"goals":50},
			{"playerId":8447400,"skaterFullName":"Mike Bossy","seasonId":19811982,"goals":64}
		]}`))
	}, nil)

	rows, err := client.FetchSeasonLeaders(context.Background(), 1981, 5)
	if err != nil {
		t.Fatalf("fetch season leaders: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected rows without player id to be dropped, got %+v", rows)
	}
	first := rows[0]
	if first.PlayerID != "8448000" || first.Name != "Wayne Gretzky" || first.Season != 1981 || first.Goals != 92 {
		t.Fatalf("unexpected first row %+v", first)
	}
	if first.URL != "https://www.nhl.com/player/8448000" {
		t.Fatalf("unexpected player url %q", first.URL)
	}

	if _, err := client.FetchSeasonLeaders(context.Background(), 1981, 0); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero limit, got %v", err)
	}
}

func TestFetchSeasonRange_KeepsSeasonOrderAndSkipsCancelled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		exp := r.URL.Query().Get("cayenneExp")
		id := strings.TrimSuffix(strings.TrimPrefix(exp, "seasonId="), " and gameTypeId=2")
		_, _ = w.Write([]byte(`{"data":[{"teamId":1,"seasonId":` + id + `,"gamesPlayed":2,"goalsFor":10}]}`))
	}, nil)

	got, err := client.FetchSeasonRange(context.Background(), season.Range{From: 2002, To: 2006, Cancelled: []int{2004}})
	if err != nil {
		t.Fatalf("fetch season range: %v", err)
	}

	want := []int{2002, 2003, 2005, 2006}
	if len(got) != len(want) {
		t.Fatalf("expected %d seasons, got %d", len(want), len(got))
	}
	for i, s := range want {
		if got[i].Season != s {
			t.Fatalf("position %d: expected season %d, got %d", i, s, got[i].Season)
		}
		if got[i].TotalGames != 1 {
			t.Fatalf("season %d: expected one game, got %d", s, got[i].TotalGames)
		}
	}
	if calls.Load() != 4 {
		t.Fatalf("expected 4 requests, got %d", calls.Load())
	}
}

func TestFetchSeasonRange_InvalidRange(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected")
	}, nil)

	_, err := client.FetchSeasonRange(context.Background(), season.Range{From: 1990, To: 1980})
	if !errors.Is(err, season.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestFetchCareerLeaders_PagesUntilShortPage(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("isAggregate") != "true" {
			t.Errorf("expected aggregate query")
		}
		if q.Get("factCayenneExp") != "goals>=300" {
			t.Errorf("unexpected factCayenneExp %q", q.Get("factCayenneExp"))
		}

		var b strings.Builder
		b.WriteString(`{"total":101,"data":[`)
		switch q.Get("start") {
		case "0":
			for i := 0; i < careerPageSize; i++ {
				if i > 0 {
					b.WriteString(",")
				}
				b.WriteString(`{"playerId":` + strconv.Itoa(8440000+i) + `,"skaterFullName":"Skater ` + strconv.Itoa(i) + `","goals":` + strconv.Itoa(900-i) + `}`)
			}
		case "100":
			b.WriteString(`{"playerId":8449999,"skaterFullName":" Last Skater ","goals":300}`)
		default:
			t.Errorf("unexpected page start %q", q.Get("start"))
		}
		b.WriteString(`]}`)
		_, _ = w.Write([]byte(b.String()))
	}, nil)

	got, err := client.FetchCareerLeaders(context.Background(), 300)
	if err != nil {
		t.Fatalf("fetch career leaders: %v", err)
	}
	if len(got) != 101 {
		t.Fatalf("expected 101 leaders, got %d", len(got))
	}

	last := got[100]
	if last.PlayerID != "8449999" || last.Name != "Last Skater" || last.CareerGoals != 300 {
		t.Fatalf("unexpected last leader %+v", last)
	}
	if last.URL != "https://www.nhl.com/player/8449999" || last.Source != leader.SourceCareer {
		t.Fatalf("unexpected leader url/source %+v", last)
	}
}

func TestFetchPlayerSeasons_SumsSplitSeasons(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("cayenneExp"); got != "playerId=8447400 and gameTypeId=2" {
			t.Errorf("unexpected cayenneExp %q", got)
		}
		_, _ = w.Write([]byte(`{"data":[
			{"playerId":8447400,"seasonId":19951996,"goals":15},
			{"playerId":8447400,"seasonId":19791980,"goals":51},
			{"playerId":8447400,"seasonId":19951996,"goals":8},
			{"playerId":8447400,"seasonId":1995,"goals":99}
		]}`))
	}, nil)

	got, err := client.FetchPlayerSeasons(context.Background(), "8447400")
	if err != nil {
		t.Fatalf("fetch player seasons: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 seasons, got %+v", got)
	}
	if got[0].Season != 1979 || got[0].Goals != 51 {
		t.Fatalf("unexpected first season %+v", got[0])
	}
	if got[1].Season != 1995 || got[1].Goals != 23 || got[1].PlayerID != "8447400" {
		t.Fatalf("unexpected second season %+v", got[1])
	}
}

func TestFetchPlayerSeasons_RejectsInvalidID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected")
	}, nil)

	if _, err := client.FetchPlayerSeasons(context.Background(), "gretzky"); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestDoJSON_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":[{"teamId":1,"gamesPlayed":4,"goalsFor":10}]}`))
	}, func(cfg *ClientConfig) {
		cfg.MaxRetries = 2
	})

	totals, err := client.FetchSeasonTotals(context.Background(), 1990)
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if totals.TotalGoals != 10 || totals.TotalGames != 2 {
		t.Fatalf("unexpected totals %+v", totals)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 calls, got %d", calls.Load())
	}
}

func TestDoJSON_DoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"bad cayenne"}`))
	}, func(cfg *ClientConfig) {
		cfg.MaxRetries = 3
	})

	_, err := client.FetchSeasonTotals(context.Background(), 1990)
	if err == nil || !strings.Contains(err.Error(), "status=400") {
		t.Fatalf("expected status error, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected a single call, got %d", calls.Load())
	}
}

func TestDoJSON_CircuitOpensAfterTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 2,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		}
	})

	for i := 0; i < 2; i++ {
		if _, err := client.FetchSeasonTotals(context.Background(), 1990+i); err == nil {
			t.Fatalf("expected failure on call %d", i)
		}
	}

	_, err := client.FetchSeasonTotals(context.Background(), 1995)
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected breaker to stop the third request, got %d calls", calls.Load())
	}
}
