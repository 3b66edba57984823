package season

import (
	"fmt"
	"strconv"
	"time"
)

// Current returns the season the given date belongs to. Anything until the
// end of June is part of the season that started the year before; from July
// on a new season has begun. Seasons are identified by their starting year,
// shortened ones included.
// OpenEnd is accepted as an upper bound meaning "up to now".
const OpenEnd = 9999

func Current(t time.Time) int {
	if t.Month() < time.July {
		return t.Year() - 1
	}
	return t.Year()
}

// Label renders a season the way it is usually written, e.g. 1917-18.
func Label(season int) string {
	return fmt.Sprintf("%d-%02d", season, (season+1)%100)
}

// ProviderID renders the eight digit season id used by the NHL stats API,
// e.g. 19171918.
func ProviderID(season int) string {
	return strconv.Itoa(season) + strconv.Itoa(season+1)
}

// FromProviderID parses an eight digit season id back to its starting year.
func FromProviderID(id int64) (int, error) {
	if id < 10000000 || id > 99999999 {
		return 0, fmt.Errorf("%w: provider season id %d", ErrInvalidRange, id)
	}
	start := int(id / 10000)
	end := int(id % 10000)
	if end != start+1 {
		return 0, fmt.Errorf("%w: provider season id %d does not span consecutive years", ErrInvalidRange, id)
	}
	return start, nil
}
