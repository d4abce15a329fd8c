// Package calendar converts instants to civil dates in a fixed zone and does
// whole-day arithmetic over YYYY-MM-DD strings.
//
// Arithmetic never looks at wall-clock offsets: a civil date is interpreted as
// UTC midnight of that day, so DST transitions cannot shift a day count.
package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DefaultZone is the zone the daily puzzle rolls over in.
const DefaultZone = "America/New_York"

const (
	layout     = "2006-01-02"
	secondsDay = 24 * 60 * 60
)

// ErrInvalidDate is returned for strings that are not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid date string")

var datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// CivilDate is a calendar date in canonical YYYY-MM-DD form.
type CivilDate string

func (d CivilDate) String() string { return string(d) }

// Valid reports whether s matches the 4-2-2 digit date pattern.
func Valid(s string) bool {
	return datePattern.MatchString(s)
}

// Parse checks s against the date pattern and returns it as a CivilDate.
func Parse(s string) (CivilDate, error) {
	if !Valid(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return CivilDate(s), nil
}

// CanonicalDate returns the civil date of instant as observed in loc.
func CanonicalDate(instant time.Time, loc *time.Location) CivilDate {
	if loc == nil {
		loc = time.UTC
	}
	return CivilDate(instant.In(loc).Format(layout))
}

// DaysSinceEpoch returns the number of whole days between 1970-01-01 and d.
// Out-of-range fields (2024-02-30) roll over the same way UTC date math does.
func DaysSinceEpoch(d CivilDate) (int, error) {
	m := datePattern.FindStringSubmatch(string(d))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, string(d))
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	unix := time.Date(y, time.Month(mo), day, 0, 0, 0, 0, time.UTC).Unix()
	return int(floorDiv(unix, secondsDay)), nil
}

// DaysBetween returns DaysSinceEpoch(b) - DaysSinceEpoch(a). It is negative
// when b is before a.
func DaysBetween(a, b CivilDate) (int, error) {
	da, err := DaysSinceEpoch(a)
	if err != nil {
		return 0, err
	}
	db, err := DaysSinceEpoch(b)
	if err != nil {
		return 0, err
	}
	return db - da, nil
}

// FromDaysSinceEpoch is the inverse of DaysSinceEpoch.
func FromDaysSinceEpoch(days int) CivilDate {
	return CivilDate(time.Unix(int64(days)*secondsDay, 0).UTC().Format(layout))
}

// AddDays shifts d by n days; n may be negative.
func AddDays(d CivilDate, n int) (CivilDate, error) {
	days, err := DaysSinceEpoch(d)
	if err != nil {
		return "", err
	}
	return FromDaysSinceEpoch(days + n), nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
