// Package datex has calendar helpers.
package datex

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// DaysIn returns the number of days in month of year. It panics if month is
// not in January..December.
func DaysIn(month time.Month, year int) int {
	if month < time.January || month > time.December {
		panic("datex: month out of range")
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	span := timespan.BetweenTimes(start, start.AddDate(0, 1, 0))
	return int(span.Duration() / (24 * time.Hour))
}
