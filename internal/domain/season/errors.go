package season

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrMissingSeasonData = crerr.New("missing season data")
	ErrDuplicateSeason   = crerr.New("duplicate season totals")
	ErrInvalidRange      = crerr.New("invalid season range")
	ErrInvalidTotals     = crerr.New("invalid season totals")
)

// MissingSeasonDataError names the requested season that has no usable totals.
type MissingSeasonDataError struct {
	Season int
	Reason string
}

func (e *MissingSeasonDataError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: season=%s", ErrMissingSeasonData, Label(e.Season))
	}
	return fmt.Sprintf("%s: season=%s (%s)", ErrMissingSeasonData, Label(e.Season), e.Reason)
}

func (e *MissingSeasonDataError) Is(target error) bool {
	return target == ErrMissingSeasonData
}
