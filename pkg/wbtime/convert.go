// pkg/wbtime/convert.go
package wbtime

import (
	"regexp"
	"strings"
	"time"
)

// Conversion is the outcome of converting a timestamp.
// Exact is set when an absolute instant could be built; otherwise only
// Approx is populated.
type Conversion struct {
	Exact  bool
	ISO    string
	Millis int64
	Approx string
}

// Convert attempts a strict conversion and falls back to Approximate.
// It never fails.
func Convert(ts string) Conversion {
	tm, err := instant(ts)
	if err != nil {
		return Conversion{Approx: Approximate(ts)}
	}
	return Conversion{
		Exact:  true,
		ISO:    FormatISO(tm),
		Millis: tm.UnixMilli(),
	}
}

// Approximate rewrites unspecified "-00" date segments to "-01" and keeps
// everything else verbatim. Input without a "T" separator is returned as is.
func Approximate(ts string) string {
	sign, rest := "", ts
	if strings.HasPrefix(ts, "+") || strings.HasPrefix(ts, "-") {
		sign, rest = ts[:1], ts[1:]
	}

	date, clock, ok := strings.Cut(rest, "T")
	if !ok || date == "" || clock == "" {
		return ts
	}

	date = strings.ReplaceAll(date, "-00", "-01")
	return sign + date + "T" + clock
}

// ---- SIMPLE DAY ----

var yearPadding = regexp.MustCompile(`^(-?)0+`)

// SimpleDay reduces a time value to a calendar string honoring its precision:
// "1990" for year precision, "1990-05" for month precision, "1990-05-12" for
// day precision. No instant is built, so any year is accepted.
func SimpleDay(v Value) string {
	ts := v.Time
	switch v.Precision {
	case PrecisionYear:
		ts = strings.Replace(ts, "-01-01T", "-00-00T", 1)
	case PrecisionMonth:
		ts = strings.Replace(ts, "-01T", "-00T", 1)
	}
	return SimpleDayString(ts)
}

// SimpleDayString reduces a bare timestamp, treating "-00" segments as unset.
func SimpleDayString(ts string) string {
	day, _, _ := strings.Cut(ts, "T")
	day = strings.TrimPrefix(day, "+")
	day = yearPadding.ReplaceAllString(day, "$1")

	// day, then month: each pass removes a single trailing "-00"
	day = strings.TrimSuffix(day, "-00")
	day = strings.TrimSuffix(day, "-00")

	return day
}

func instant(ts string) (time.Time, error) {
	t, err := Parse(ts)
	if err != nil {
		return time.Time{}, err
	}
	return t.Instant()
}
