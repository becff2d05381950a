// pkg/wbtime/timestamp.go

// Package wbtime parses and converts Wikibase time values.
package wbtime

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ---- PRECISION ----

const (
	PrecisionYear  = 9
	PrecisionMonth = 10
	PrecisionDay   = 11
)

// MaxYear bounds the years for which an absolute instant is built.
// Beyond it conversions degrade to Approximate. This is wider than the
// ±275760 years of a JavaScript Date, so years in between convert exactly
// here where JavaScript-based tools fall back to the approximate string.
const MaxYear = 999999

// Value is the payload of a time datavalue.
type Value struct {
	Time          string `json:"time" yaml:"time" mapstructure:"time"`
	Timezone      int    `json:"timezone" yaml:"timezone" mapstructure:"timezone"`
	Before        int    `json:"before" yaml:"before" mapstructure:"before"`
	After         int    `json:"after" yaml:"after" mapstructure:"after"`
	Precision     int    `json:"precision" yaml:"precision" mapstructure:"precision"`
	CalendarModel string `json:"calendarmodel" yaml:"calendarmodel" mapstructure:"calendarmodel"`
}

// ---- PARSING ----

// ±YYYY...-MM-DDTHH:MM:SSZ, year zero-padded to at least four digits upstream
var timestampPattern = regexp.MustCompile(`^([+-]?)([0-9]+)-([0-9]{2})-([0-9]{2})T([0-9]{2}):([0-9]{2}):([0-9]{2})Z$`)

// ParseError reports a timestamp that cannot become an absolute instant.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wbtime: cannot parse %q: %s", e.Input, e.Reason)
}

// Timestamp holds the components of a Wikibase timestamp.
// Month and Day may be 0, meaning unspecified.
type Timestamp struct {
	Year   int64 // signed
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int

	raw string
}

// Parse splits a Wikibase timestamp into its components.
// It does not check that the components form a calendar date.
func Parse(ts string) (Timestamp, error) {
	m := timestampPattern.FindStringSubmatch(ts)
	if m == nil {
		return Timestamp{}, &ParseError{Input: ts, Reason: "malformed timestamp"}
	}

	year, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return Timestamp{}, &ParseError{Input: ts, Reason: "year out of range"}
	}
	if m[1] == "-" {
		year = -year
	}

	// two-digit groups always fit
	atoi := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}

	return Timestamp{
		Year:   year,
		Month:  atoi(m[3]),
		Day:    atoi(m[4]),
		Hour:   atoi(m[5]),
		Minute: atoi(m[6]),
		Second: atoi(m[7]),
		raw:    ts,
	}, nil
}

// Instant builds the absolute UTC instant.
// Unspecified month or day, impossible dates and out-of-range years fail.
func (t Timestamp) Instant() (time.Time, error) {
	fail := func(reason string) (time.Time, error) {
		return time.Time{}, &ParseError{Input: t.raw, Reason: reason}
	}

	switch {
	case t.Year > MaxYear || t.Year < -MaxYear:
		return fail("year out of range")
	case t.Month == 0:
		return fail("month unspecified")
	case t.Day == 0:
		return fail("day unspecified")
	case t.Month > 12:
		return fail("invalid month")
	case t.Hour > 23 || t.Minute > 59 || t.Second > 59:
		return fail("invalid time of day")
	}

	tm := time.Date(int(t.Year), time.Month(t.Month), t.Day, t.Hour, t.Minute, t.Second, 0, time.UTC)
	if tm.Day() != t.Day {
		// time.Date normalizes Feb 30 into March
		return fail("not a calendar date")
	}
	return tm, nil
}

// FormatISO renders tm as an ISO-8601 UTC string with millisecond precision.
// Years outside 0..9999 use the expanded six-digit signed form.
func FormatISO(tm time.Time) string {
	tm = tm.UTC()

	y := tm.Year()
	var year string
	if y >= 0 && y <= 9999 {
		year = fmt.Sprintf("%04d", y)
	} else {
		year = fmt.Sprintf("%+07d", y)
	}

	return fmt.Sprintf("%s-%02d-%02dT%02d:%02d:%02d.%03dZ",
		year, int(tm.Month()), tm.Day(),
		tm.Hour(), tm.Minute(), tm.Second(), tm.Nanosecond()/int(time.Millisecond),
	)
}
