package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches wrapped no rows", func(t *testing.T) {
		if !isNotFound(fmt.Errorf("get factors: %w", sql.ErrNoRows)) {
			t.Fatalf("expected wrapped sql.ErrNoRows to be not found")
		}
	})

	t.Run("ignores unrelated error", func(t *testing.T) {
		if isNotFound(fmt.Errorf("pq: relation season_totals does not exist")) {
			t.Fatalf("expected false for unrelated error")
		}
	})
}

func TestChunks(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got := chunks(items, 2)
	if len(got) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(got))
	}
	if len(got[2]) != 1 || got[2][0] != 5 {
		t.Fatalf("unexpected last chunk %v", got[2])
	}

	if got := chunks([]int(nil), 2); len(got) != 0 {
		t.Fatalf("expected no chunks for empty input, got %v", got)
	}
}

func TestExcludedSet(t *testing.T) {
	got := excludedSet("total_goals", "total_games")
	want := "total_goals = EXCLUDED.total_goals,\n    total_games = EXCLUDED.total_games"
	if got != want {
		t.Fatalf("unexpected set clause:\nwant: %s\ngot:  %s", want, got)
	}
}
