package usecase

import (
	"fmt"
	"strings"
)

// Step is one stage of the adjusted goals pipeline.
type Step int

const (
	StepSeasonRates Step = iota + 1
	StepGoalLeaders
	StepAdjustTotals
)

var allSteps = []Step{StepSeasonRates, StepGoalLeaders, StepAdjustTotals}

func (s Step) String() string {
	switch s {
	case StepSeasonRates:
		return "rates"
	case StepGoalLeaders:
		return "leaders"
	case StepAdjustTotals:
		return "adjust"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// ParseSteps accepts step numbers, names or "all" and returns them in
// pipeline order without duplicates.
func ParseSteps(raw []string) ([]Step, error) {
	if len(raw) == 0 {
		return append([]Step(nil), allSteps...), nil
	}

	selected := make(map[Step]struct{}, len(allSteps))
	for _, item := range raw {
		for _, token := range strings.Split(item, ",") {
			value := strings.ToLower(strings.TrimSpace(token))
			switch value {
			case "":
				continue
			case "all":
				for _, s := range allSteps {
					selected[s] = struct{}{}
				}
			case "1", "rates", "season-rates":
				selected[StepSeasonRates] = struct{}{}
			case "2", "leaders", "goal-leaders":
				selected[StepGoalLeaders] = struct{}{}
			case "3", "adjust", "adjusted-totals":
				selected[StepAdjustTotals] = struct{}{}
			default:
				return nil, fmt.Errorf("%w: unknown step %q, valid values are 1, 2, 3, rates, leaders, adjust, all", ErrInvalidInput, token)
			}
		}
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: no steps selected", ErrInvalidInput)
	}

	out := make([]Step, 0, len(selected))
	for _, s := range allSteps {
		if _, ok := selected[s]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}
