// pkg/claims/value.go
package claims

import "encoding/json"

// Value is a canonical claim value.
// The concrete type depends on the datatype and on Options.KeepRichValues.
type Value interface {
	canonical()
}

// ---- SCALARS ----

// String is a plain string value: identity datatypes, bare monolingual
// text, entity ids and string-rendered times.
type String string

// Number is a bare quantity amount.
type Number float64

// Millis is a time rendered as milliseconds since the Unix epoch.
type Millis int64

// LatLng is a bare coordinate: [latitude, longitude].
type LatLng [2]float64

// Raw carries a non-string payload of an identity datatype unchanged.
type Raw struct {
	Value any
}

func (r Raw) MarshalJSON() ([]byte, error) { return json.Marshal(r.Value) }
func (r Raw) MarshalYAML() (any, error)    { return r.Value, nil }

// ---- RICH VALUES ----

type Monolingual struct {
	Language string `json:"language" yaml:"language"`
	Text     string `json:"text" yaml:"text"`
}

// Quantity is a rich quantity. Unit is reduced to the trailing entity id
// ("Q712226"), or "1" for unitless amounts.
type Quantity struct {
	Amount     float64  `json:"amount" yaml:"amount"`
	Unit       string   `json:"unit" yaml:"unit"`
	UpperBound *float64 `json:"upperBound,omitempty" yaml:"upperBound,omitempty"`
	LowerBound *float64 `json:"lowerBound,omitempty" yaml:"lowerBound,omitempty"`
}

// GlobeCoordinate is the full globe-coordinate record.
type GlobeCoordinate struct {
	Latitude  float64  `json:"latitude" yaml:"latitude" mapstructure:"latitude"`
	Longitude float64  `json:"longitude" yaml:"longitude" mapstructure:"longitude"`
	Altitude  *float64 `json:"altitude" yaml:"altitude" mapstructure:"altitude"`
	Precision *float64 `json:"precision" yaml:"precision" mapstructure:"precision"`
	Globe     string   `json:"globe,omitempty" yaml:"globe,omitempty" mapstructure:"globe"`
}

// RichTime is a converted time with its source annotations copied verbatim.
type RichTime struct {
	Time          Value  `json:"time" yaml:"time"`
	Timezone      int    `json:"timezone" yaml:"timezone"`
	Before        int    `json:"before" yaml:"before"`
	After         int    `json:"after" yaml:"after"`
	Precision     int    `json:"precision" yaml:"precision"`
	CalendarModel string `json:"calendarmodel" yaml:"calendarmodel"`
}

// ---- SENTINELS ----

// NoValue is returned when a claim carries no usable value: a missing
// datatype or a "novalue" snak.
type NoValue struct{}

// SomeValue marks a "somevalue" snak: a value exists but is unknown.
type SomeValue struct{}

func (NoValue) MarshalJSON() ([]byte, error)   { return []byte("null"), nil }
func (NoValue) MarshalYAML() (any, error)      { return nil, nil }
func (SomeValue) MarshalJSON() ([]byte, error) { return []byte("null"), nil }
func (SomeValue) MarshalYAML() (any, error)    { return nil, nil }

func (String) canonical()          {}
func (Number) canonical()          {}
func (Millis) canonical()          {}
func (LatLng) canonical()          {}
func (Raw) canonical()             {}
func (Monolingual) canonical()     {}
func (Quantity) canonical()        {}
func (GlobeCoordinate) canonical() {}
func (RichTime) canonical()        {}
func (NoValue) canonical()         {}
func (SomeValue) canonical()       {}

// IsEmpty reports whether v is one of the no-value sentinels.
func IsEmpty(v Value) bool {
	switch v.(type) {
	case nil, NoValue, SomeValue:
		return true
	default:
		return false
	}
}
