// pkg/claims/rules.go
package claims

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/tamzrod/claim-normalizer/pkg/wbtime"
	"github.com/tamzrod/claim-normalizer/pkg/wikibase"
)

// decode maps a loosely typed payload onto a rule's struct.
// Weak typing lets numeric ids and amounts arrive as numbers or strings.
func decode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// ---- IDENTITY ----

func identity(v any) Value {
	if s, ok := v.(string); ok {
		return String(s)
	}
	return Raw{Value: v}
}

// ---- MONOLINGUAL TEXT ----

type monolingualPayload struct {
	Text     string `mapstructure:"text"`
	Language string `mapstructure:"language"`
}

func monolingualText(dv Datavalue, opts Options) (Value, error) {
	var p monolingualPayload
	if err := decode(dv.Value, &p); err != nil {
		return nil, err
	}
	if opts.KeepRichValues {
		return Monolingual{Language: p.Language, Text: p.Text}, nil
	}
	return String(p.Text), nil
}

// ---- ENTITY ----

type entityPayload struct {
	ID         string `mapstructure:"id"`
	EntityType string `mapstructure:"entity-type"`
	NumericID  *int64 `mapstructure:"numeric-id"`
}

func entity(dt wikibase.Datatype, dv Datavalue, opts Options) (Value, error) {
	var p entityPayload
	if err := decode(dv.Value, &p); err != nil {
		return nil, err
	}

	id := p.ID
	if id == "" {
		if p.NumericID == nil {
			return nil, errors.New("entity reference has neither id nor numeric-id")
		}

		letter := wikibase.EntityType(p.EntityType).Letter()
		if letter == "" {
			et, _ := dt.EntityType()
			letter = et.Letter()
		}
		id = letter + strconv.FormatInt(*p.NumericID, 10)
	}

	if opts.EntityPrefix != "" {
		return String(opts.EntityPrefix + ":" + id), nil
	}
	return String(id), nil
}

// ---- QUANTITY ----

var unitEntityPrefix = regexp.MustCompile(`^https?://.*/entity/`)

type quantityPayload struct {
	Amount     string  `mapstructure:"amount"`
	Unit       string  `mapstructure:"unit"`
	UpperBound *string `mapstructure:"upperBound"`
	LowerBound *string `mapstructure:"lowerBound"`
}

func quantity(dv Datavalue, opts Options) (Value, error) {
	var p quantityPayload
	if err := decode(dv.Value, &p); err != nil {
		return nil, err
	}

	amount, err := parseAmount("amount", p.Amount)
	if err != nil {
		return nil, err
	}
	if !opts.KeepRichValues {
		return Number(amount), nil
	}

	q := Quantity{
		Amount: amount,
		Unit:   unitEntityPrefix.ReplaceAllString(p.Unit, ""),
	}
	if p.UpperBound != nil {
		ub, err := parseAmount("upperBound", *p.UpperBound)
		if err != nil {
			return nil, err
		}
		q.UpperBound = &ub
	}
	if p.LowerBound != nil {
		lb, err := parseAmount("lowerBound", *p.LowerBound)
		if err != nil {
			return nil, err
		}
		q.LowerBound = &lb
	}
	return q, nil
}

func parseAmount(field, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s %q: not a finite number", field, s)
	}
	return f, nil
}

// ---- GLOBE COORDINATE ----

type coordinatePayload struct {
	Latitude  *float64 `mapstructure:"latitude"`
	Longitude *float64 `mapstructure:"longitude"`
}

func coordinate(dv Datavalue, opts Options) (Value, error) {
	var p coordinatePayload
	if err := decode(dv.Value, &p); err != nil {
		return nil, err
	}
	if p.Latitude == nil || p.Longitude == nil {
		return nil, errors.New("coordinate without latitude or longitude")
	}

	var c GlobeCoordinate
	if err := decode(dv.Value, &c); err != nil {
		return nil, err
	}
	if opts.KeepRichValues {
		return c, nil
	}
	return LatLng{c.Latitude, c.Longitude}, nil
}

// ---- TIME ----

// builtin converters also see the raw payload: "none" passes it through
// when there is no time string, "simple-day" accepts bare strings.
type timeConvert func(raw any, v wbtime.Value) Value

func timeConverter(opts Options) (timeConvert, error) {
	if opts.TimeConverterFunc != nil {
		fn := opts.TimeConverterFunc
		return func(_ any, v wbtime.Value) Value { return fn(v) }, nil
	}

	switch opts.TimeConverter {
	case "", TimeISO:
		return func(_ any, v wbtime.Value) Value {
			c := wbtime.Convert(v.Time)
			if c.Exact {
				return String(c.ISO)
			}
			return String(c.Approx)
		}, nil

	case TimeEpoch:
		return func(_ any, v wbtime.Value) Value {
			c := wbtime.Convert(v.Time)
			if c.Exact {
				return Millis(c.Millis)
			}
			return String(c.Approx)
		}, nil

	case TimeSimpleDay:
		return func(raw any, v wbtime.Value) Value {
			if s, ok := raw.(string); ok {
				return String(wbtime.SimpleDayString(s))
			}
			return String(wbtime.SimpleDay(v))
		}, nil

	case TimeNone:
		return func(raw any, v wbtime.Value) Value {
			if v.Time != "" {
				return String(v.Time)
			}
			return identity(raw)
		}, nil

	default:
		return nil, &InvalidTimeConverterError{Key: string(opts.TimeConverter)}
	}
}

func timeValue(dv Datavalue, opts Options) (Value, error) {
	convert, err := timeConverter(opts)
	if err != nil {
		return nil, err
	}

	var v wbtime.Value
	if s, ok := dv.Value.(string); ok {
		v.Time = s
	} else if err := decode(dv.Value, &v); err != nil {
		return nil, err
	}

	converted := convert(dv.Value, v)
	if !opts.KeepRichValues {
		return converted, nil
	}

	return RichTime{
		Time:          converted,
		Timezone:      v.Timezone,
		Before:        v.Before,
		After:         v.After,
		Precision:     v.Precision,
		CalendarModel: v.CalendarModel,
	}, nil
}
