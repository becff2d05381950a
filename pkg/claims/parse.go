// pkg/claims/parse.go
package claims

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tamzrod/claim-normalizer/pkg/wikibase"
)

// Datavalue is the raw value payload of a snak. Value is typically the
// result of JSON decoding: a string or a map[string]any.
type Datavalue struct {
	Value any    `json:"value" yaml:"value"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Parse converts a datavalue into its canonical form.
//
// An empty datatype is logged and yields NoValue so that batches keep going.
// A datatype without a rule fails with *UnsupportedDatatypeError.
// claimID is used for diagnostics only.
func Parse(datatype string, dv Datavalue, opts Options, claimID string) (Value, error) {
	if datatype == "" {
		opts.logger().Warn("missing datatype",
			zap.String("claim_id", claimID),
		)
		return NoValue{}, nil
	}

	dt := wikibase.ParseDatatype(datatype)
	if dt == wikibase.DatatypeUnknown {
		return nil, &UnsupportedDatatypeError{Datatype: datatype, ClaimID: claimID}
	}

	v, err := dispatch(dt, dv, opts)
	if err != nil {
		var badKey *InvalidTimeConverterError
		if errors.As(err, &badKey) {
			return nil, err
		}
		return nil, &MalformedValueError{Datatype: datatype, ClaimID: claimID, Err: err}
	}

	return v, nil
}

func dispatch(dt wikibase.Datatype, dv Datavalue, opts Options) (Value, error) {
	if dt.IsIdentity() {
		return identity(dv.Value), nil
	}

	switch dt {
	case wikibase.DatatypeMonolingualText:
		return monolingualText(dv, opts)

	case wikibase.DatatypeWikibaseItem,
		wikibase.DatatypeWikibaseLexeme,
		wikibase.DatatypeWikibaseProperty:
		return entity(dt, dv, opts)

	case wikibase.DatatypeQuantity:
		return quantity(dv, opts)

	case wikibase.DatatypeGlobeCoordinate:
		return coordinate(dv, opts)

	case wikibase.DatatypeTime:
		return timeValue(dv, opts)

	default:
		return nil, errors.New("no rule for datatype " + dt.String())
	}
}
