package season

import (
	"testing"
	"time"
)

func TestCurrent(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{date: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), want: 2023},
		{date: time.Date(2024, time.June, 30, 23, 0, 0, 0, time.UTC), want: 2023},
		{date: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), want: 2024},
		{date: time.Date(2012, time.December, 31, 0, 0, 0, 0, time.UTC), want: 2012},
	}

	for _, tc := range tests {
		if got := Current(tc.date); got != tc.want {
			t.Fatalf("Current(%s): got=%d want=%d", tc.date.Format(time.DateOnly), got, tc.want)
		}
	}
}

func TestProviderID(t *testing.T) {
	if got := ProviderID(1917); got != "19171918" {
		t.Fatalf("unexpected provider id: %s", got)
	}
	if got := Label(1999); got != "1999-00" {
		t.Fatalf("unexpected label: %s", got)
	}

	start, err := FromProviderID(20232024)
	if err != nil || start != 2023 {
		t.Fatalf("unexpected parse result: start=%d err=%v", start, err)
	}
	if _, err := FromProviderID(20232025); err == nil {
		t.Fatalf("expected error for non consecutive season id")
	}
}
