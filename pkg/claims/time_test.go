// pkg/claims/time_test.go
package claims

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeDatavalue(ts string, precision int) Datavalue {
	return Datavalue{Value: map[string]any{
		"time":          ts,
		"timezone":      0,
		"before":        0,
		"after":         0,
		"precision":     precision,
		"calendarmodel": "http://www.wikidata.org/entity/Q1985727",
	}}
}

func TestTime_Converters(t *testing.T) {
	cases := []struct {
		name      string
		converter TimeConverter
		ts        string
		precision int
		want      Value
	}{
		{"default iso", "", "+1990-05-12T00:00:00Z", 11, String("1990-05-12T00:00:00.000Z")},
		{"iso", TimeISO, "+2001-09-09T01:46:40Z", 11, String("2001-09-09T01:46:40.000Z")},
		{"iso fallback", TimeISO, "+1990-00-00T00:00:00Z", 9, String("+1990-01-01T00:00:00Z")},
		{"epoch", TimeEpoch, "+2001-09-09T01:46:40Z", 11, Millis(1000000000000)},
		{"epoch fallback", TimeEpoch, "+1990-05-00T00:00:00Z", 10, String("+1990-05-01T00:00:00Z")},
		{"epoch huge year", TimeEpoch, "-13798000000-00-00T00:00:00Z", 3, String("-13798000000-01-01T00:00:00Z")},
		{"simple-day year", TimeSimpleDay, "-0500-01-01T00:00:00Z", 9, String("-500")},
		{"simple-day month", TimeSimpleDay, "+1990-05-01T00:00:00Z", 10, String("1990-05")},
		{"simple-day day", TimeSimpleDay, "+1990-05-12T00:00:00Z", 11, String("1990-05-12")},
		{"none", TimeNone, "+1990-05-12T00:00:00Z", 11, String("+1990-05-12T00:00:00Z")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse("time", timeDatavalue(tc.ts, tc.precision), Options{TimeConverter: tc.converter}, "")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTime_RichValue(t *testing.T) {
	got, err := Parse("time", timeDatavalue("+1990-05-00T00:00:00Z", 10), Options{
		KeepRichValues: true,
		TimeConverter:  TimeSimpleDay,
	}, "")
	require.NoError(t, err)

	want := RichTime{
		Time:          String("1990-05"),
		Precision:     10,
		CalendarModel: "http://www.wikidata.org/entity/Q1985727",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rich time mismatch (-want +got):\n%s", diff)
	}
}

func TestTime_BareString(t *testing.T) {
	got, err := Parse("time", Datavalue{Value: "+2020-00-00T00:00:00Z"}, Options{TimeConverter: TimeSimpleDay}, "")
	require.NoError(t, err)
	assert.Equal(t, String("2020"), got)
}

func TestTime_NonePassesThroughWithoutTime(t *testing.T) {
	raw := map[string]any{"precision": 9}

	got, err := Parse("time", Datavalue{Value: raw}, Options{TimeConverter: TimeNone}, "")
	require.NoError(t, err)
	assert.Equal(t, Raw{Value: raw}, got)
}

func TestTime_InvalidConverter(t *testing.T) {
	_, err := Parse("time", timeDatavalue("+1990-05-12T00:00:00Z", 11), Options{TimeConverter: "nope"}, "Q1$t")

	var badKey *InvalidTimeConverterError
	require.ErrorAs(t, err, &badKey)
	assert.Equal(t, "nope", badKey.Key)
	assert.Contains(t, err.Error(), "nope")
}
