package id

import (
	"regexp"
	"testing"
	"time"
)

func TestRandomGenerator_NewID(t *testing.T) {
	g := NewRandomGenerator()
	first, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	second, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if len(first) != 32 {
		t.Fatalf("expected 32 hex chars, got %d", len(first))
	}
	if first == second {
		t.Fatalf("expected distinct ids")
	}
}

func TestRunIDGenerator_NewID(t *testing.T) {
	g := NewRunIDGenerator()
	g.now = func() time.Time {
		return time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("WIB", 7*3600))
	}

	got, err := g.NewID()
	if err != nil {
		t.Fatalf("new id: %v", err)
	}
	if !regexp.MustCompile(`^20260303T220607-[0-9a-f]{8}$`).MatchString(got) {
		t.Fatalf("unexpected run id %q", got)
	}
}
