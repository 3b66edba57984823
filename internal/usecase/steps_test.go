package usecase

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseSteps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  []string
		want []Step
	}{
		{name: "empty means all", raw: nil, want: []Step{StepSeasonRates, StepGoalLeaders, StepAdjustTotals}},
		{name: "numbers reordered", raw: []string{"3", "1"}, want: []Step{StepSeasonRates, StepAdjustTotals}},
		{name: "comma list with names", raw: []string{"adjust, leaders"}, want: []Step{StepGoalLeaders, StepAdjustTotals}},
		{name: "duplicates collapse", raw: []string{"2", "leaders"}, want: []Step{StepGoalLeaders}},
		{name: "all keyword", raw: []string{"ALL"}, want: []Step{StepSeasonRates, StepGoalLeaders, StepAdjustTotals}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSteps(tc.raw)
			if err != nil {
				t.Fatalf("parse steps: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestParseSteps_Invalid(t *testing.T) {
	t.Parallel()

	for _, raw := range [][]string{{"4"}, {"stats"}, {" , "}} {
		if _, err := ParseSteps(raw); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%v: expected invalid input, got %v", raw, err)
		}
	}
}
