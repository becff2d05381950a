// pkg/claims/simplify_test.go
package claims

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const douglasClaims = `{
  "P31": [
    {"id": "Q42$F078E5B3-F9A8-480E-B7AC-D97778CBBEF9", "rank": "normal",
     "mainsnak": {"snaktype": "value", "property": "P31", "datatype": "wikibase-item",
       "datavalue": {"type": "wikibase-entityid", "value": {"entity-type": "item", "numeric-id": 5, "id": "Q5"}}}}
  ],
  "P569": [
    {"id": "Q42$D8404CDA-25E4-4334-AF13-A3290BCD9C0F", "rank": "preferred",
     "mainsnak": {"snaktype": "value", "property": "P569", "datatype": "time",
       "datavalue": {"type": "time", "value": {"time": "+1952-03-11T00:00:00Z", "timezone": 0, "before": 0, "after": 0, "precision": 11, "calendarmodel": "http://www.wikidata.org/entity/Q1985727"}}}},
    {"id": "Q42$65EA9C32-B26C-469B-84FE-FC612B71D159", "rank": "normal",
     "mainsnak": {"snaktype": "value", "property": "P569", "datatype": "time",
       "datavalue": {"type": "time", "value": {"time": "+1952-00-00T00:00:00Z", "timezone": 0, "before": 0, "after": 0, "precision": 9, "calendarmodel": "http://www.wikidata.org/entity/Q1985727"}}}}
  ],
  "P1082": [
    {"id": "Q42$0AE6A5F0-6C2B-4F2C-8C7B-4B5A8D3C2E11", "rank": "deprecated",
     "mainsnak": {"snaktype": "value", "property": "P1082", "datatype": "quantity",
       "datavalue": {"type": "quantity", "value": {"amount": "+1", "unit": "1"}}}}
  ],
  "P40": [
    {"id": "Q42$3E9C3A4B-1D2E-4F5A-8B6C-7D8E9F0A1B2C", "rank": "normal",
     "mainsnak": {"snaktype": "somevalue", "property": "P40", "datatype": "wikibase-item"}}
  ]
}`

func loadClaims(t *testing.T) map[string][]Claim {
	t.Helper()

	var c map[string][]Claim
	require.NoError(t, json.Unmarshal([]byte(douglasClaims), &c))
	return c
}

func TestSimplifyClaims_Truthy(t *testing.T) {
	got, err := SimplifyClaims(loadClaims(t), SimplifyOptions{
		Options: Options{TimeConverter: TimeSimpleDay},
	})
	require.NoError(t, err)

	want := map[string][]Value{
		"P31":  {String("Q5")},
		"P569": {String("1952-03-11")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("simplified claims mismatch (-want +got):\n%s", diff)
	}
}

func TestSimplifyClaims_NonTruthy(t *testing.T) {
	got, err := SimplifyClaims(loadClaims(t), SimplifyOptions{
		Options:       Options{TimeConverter: TimeSimpleDay, EntityPrefix: "wd"},
		KeepNonTruthy: true,
		KeepNoValue:   true,
	})
	require.NoError(t, err)

	want := map[string][]Value{
		"P31":   {String("wd:Q5")},
		"P569":  {String("1952-03-11"), String("1952")},
		"P1082": {Number(1)},
		"P40":   {SomeValue{}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("simplified claims mismatch (-want +got):\n%s", diff)
	}
}

func TestSimplifyClaims_ErrorNamesProperty(t *testing.T) {
	claims := map[string][]Claim{
		"P1": {{
			ID:   "Q1$bad",
			Rank: RankNormal,
			Mainsnak: Snak{
				Snaktype:  SnakValue,
				Datatype:  "bogus-type",
				Datavalue: &Datavalue{Value: "x"},
			},
		}},
	}

	_, err := SimplifyClaims(claims, SimplifyOptions{})

	var unsupported *UnsupportedDatatypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Contains(t, err.Error(), "property P1")
	assert.Contains(t, err.Error(), "Q1$bad")
}

func TestSimplifySnak_NoValue(t *testing.T) {
	v, err := SimplifySnak(Snak{Snaktype: SnakNoValue}, Options{}, "")
	require.NoError(t, err)
	assert.Equal(t, NoValue{}, v)
}

func TestValue_JSON(t *testing.T) {
	values := []Value{
		String("Q5"),
		Number(10),
		LatLng{51.5, -0.12},
		Quantity{Amount: 10, Unit: "Q712226"},
		RichTime{Time: Millis(0), Precision: 11},
		NoValue{},
	}

	b, err := json.Marshal(values)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		"Q5",
		10,
		[51.5, -0.12],
		{"amount": 10, "unit": "Q712226"},
		{"time": 0, "timezone": 0, "before": 0, "after": 0, "precision": 11, "calendarmodel": ""},
		null
	]`, string(b))
}
