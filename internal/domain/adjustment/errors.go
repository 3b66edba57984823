package adjustment

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/adjusted-goals/internal/domain/season"
)

var (
	ErrDegenerateRate        = crerr.New("degenerate goals-per-game rate")
	ErrUnknownSeasonFactor   = crerr.New("unknown season factor")
	ErrEmptyTable            = crerr.New("season rate table is empty")
	ErrInvalidPolicy         = crerr.New("invalid reference policy")
	ErrIncompleteFactors     = crerr.New("incomplete factor set")
	ErrDuplicatePlayerSeason = crerr.New("duplicate player season")
	ErrNegativeGoals         = crerr.New("negative goal count")
	ErrForeignPlayerSeason   = crerr.New("season row belongs to another player")
)

type DegenerateRateError struct {
	Season int
	Rate   float64
}

func (e *DegenerateRateError) Error() string {
	return fmt.Sprintf("%s: season=%s goals_per_game=%g", ErrDegenerateRate, season.Label(e.Season), e.Rate)
}

func (e *DegenerateRateError) Is(target error) bool {
	return target == ErrDegenerateRate
}

type UnknownSeasonFactorError struct {
	PlayerID string
	Season   int
}

func (e *UnknownSeasonFactorError) Error() string {
	return fmt.Sprintf("%s: player=%s season=%s", ErrUnknownSeasonFactor, e.PlayerID, season.Label(e.Season))
}

func (e *UnknownSeasonFactorError) Is(target error) bool {
	return target == ErrUnknownSeasonFactor
}
