package resilience

import (
	"errors"
	"testing"
	"time"
)

func newTestBreaker(t *testing.T, threshold, probes int) (*CircuitBreaker, *time.Time, *[]CircuitState) {
	t.Helper()
	var transitions []CircuitState
	b := NewCircuitBreaker("nhl-stats", CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   probes,
	}, func(_ string, _, to CircuitState) {
		transitions = append(transitions, to)
	})
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now, &transitions
}

func TestCircuitBreaker_TripsAndRecovers(t *testing.T) {
	b, now, transitions := newTestBreaker(t, 2, 1)
	errUpstream := errors.New("upstream 503")
	fail := func() error { return errUpstream }
	ok := func() error { return nil }

	_ = b.Execute(fail, nil)
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}
	_ = b.Execute(fail, nil)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Execute(ok, nil); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	*now = now.Add(6 * time.Second)
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open after cool down, got %s", state)
	}
	if err := b.Execute(ok, nil); err != nil {
		t.Fatalf("expected probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}

	want := []CircuitState{CircuitStateOpen, CircuitStateHalfOpen, CircuitStateClosed}
	if len(*transitions) != len(want) {
		t.Fatalf("unexpected transitions: %v", *transitions)
	}
	for i := range want {
		if (*transitions)[i] != want[i] {
			t.Fatalf("transition %d = %s, want %s", i, (*transitions)[i], want[i])
		}
	}
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	b, now, _ := newTestBreaker(t, 1, 1)
	errUpstream := errors.New("upstream 502")

	_ = b.Execute(func() error { return errUpstream }, nil)
	*now = now.Add(6 * time.Second)
	if err := b.Execute(func() error { return errUpstream }, nil); !errors.Is(err, errUpstream) {
		t.Fatalf("expected probe error, got %v", err)
	}
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected reopen after failed probe, got %s", state)
	}
}

func TestCircuitBreaker_ExecuteIgnoresNonFailures(t *testing.T) {
	b, _, _ := newTestBreaker(t, 1, 1)
	errNotFound := errors.New("season not found")
	errUpstream := errors.New("upstream 503")
	isFailure := func(err error) bool { return errors.Is(err, errUpstream) }

	if err := b.Execute(func() error { return errNotFound }, isFailure); !errors.Is(err, errNotFound) {
		t.Fatalf("expected passthrough error, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after non-failure error, got %s", state)
	}

	_ = b.Execute(func() error { return errUpstream }, isFailure)
	if err := b.Execute(func() error { return nil }, isFailure); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
}

func TestCircuitBreaker_DisabledRunsEverything(t *testing.T) {
	b := NewCircuitBreaker("nhl-stats", CircuitBreakerConfig{Enabled: false}, nil)
	if b != nil {
		t.Fatalf("expected nil breaker when disabled")
	}
	calls := 0
	for i := 0; i < 3; i++ {
		_ = b.Execute(func() error { calls++; return errors.New("boom") }, nil)
	}
	if calls != 3 || b.State() != CircuitStateClosed {
		t.Fatalf("nil breaker must pass through, calls=%d state=%s", calls, b.State())
	}
}
