// pkg/claims/simplify.go
package claims

import (
	"fmt"
	"maps"
	"slices"
)

// ---- SNAKS & CLAIMS ----

const (
	SnakValue     = "value"
	SnakNoValue   = "novalue"
	SnakSomeValue = "somevalue"

	RankPreferred  = "preferred"
	RankNormal     = "normal"
	RankDeprecated = "deprecated"
)

// Snak is the property/value pair of a claim.
type Snak struct {
	Snaktype  string     `json:"snaktype"`
	Property  string     `json:"property"`
	Datatype  string     `json:"datatype,omitempty"`
	Datavalue *Datavalue `json:"datavalue,omitempty"`
}

// Claim is a statement as found in entity JSON.
type Claim struct {
	ID       string `json:"id"`
	Rank     string `json:"rank"`
	Mainsnak Snak   `json:"mainsnak"`
}

// SimplifyOptions extends Options with claim-level filtering.
type SimplifyOptions struct {
	Options

	// KeepNonTruthy keeps claims of every rank, deprecated included.
	KeepNonTruthy bool

	// KeepNoValue keeps NoValue and SomeValue results.
	KeepNoValue bool
}

// SimplifySnak normalizes a snak's value. "novalue" and "somevalue" snaks
// map to the NoValue and SomeValue sentinels.
func SimplifySnak(s Snak, opts Options, claimID string) (Value, error) {
	switch s.Snaktype {
	case SnakNoValue:
		return NoValue{}, nil
	case SnakSomeValue:
		return SomeValue{}, nil
	}

	if s.Datavalue == nil {
		return NoValue{}, nil
	}
	return Parse(s.Datatype, *s.Datavalue, opts, claimID)
}

// SimplifyPropertyClaims normalizes the claims of one property.
// Unless KeepNonTruthy is set, only truthy claims are kept: preferred ones
// when any exist, normal ones otherwise.
func SimplifyPropertyClaims(list []Claim, opts SimplifyOptions) ([]Value, error) {
	selected := list
	if !opts.KeepNonTruthy {
		selected = truthy(list)
	}

	values := make([]Value, 0, len(selected))
	for _, c := range selected {
		v, err := SimplifySnak(c.Mainsnak, opts.Options, c.ID)
		if err != nil {
			return nil, err
		}
		if IsEmpty(v) && !opts.KeepNoValue {
			continue
		}
		values = append(values, v)
	}
	return values, nil
}

// SimplifyClaims normalizes a property -> claims map.
// Properties left without values are omitted.
// Properties are processed in sorted order; the first error aborts.
func SimplifyClaims(claims map[string][]Claim, opts SimplifyOptions) (map[string][]Value, error) {
	out := make(map[string][]Value, len(claims))

	for _, prop := range slices.Sorted(maps.Keys(claims)) {
		values, err := SimplifyPropertyClaims(claims[prop], opts)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", prop, err)
		}
		if len(values) == 0 {
			continue
		}
		out[prop] = values
	}

	return out, nil
}

func truthy(list []Claim) []Claim {
	var preferred, normal []Claim
	for _, c := range list {
		switch c.Rank {
		case RankPreferred:
			preferred = append(preferred, c)
		case RankDeprecated:
		default:
			normal = append(normal, c)
		}
	}
	if len(preferred) > 0 {
		return preferred
	}
	return normal
}
