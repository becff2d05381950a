// pkg/wikibase/datatype.go
package wikibase

import "strings"

// Datatype enumerates the claim datatypes the normalizer knows about.
type Datatype int

const (
	DatatypeUnknown Datatype = iota

	// identity datatypes
	DatatypeString
	DatatypeCommonsMedia
	DatatypeURL
	DatatypeExternalID
	DatatypeMath
	DatatypeGeoShape
	DatatypeTabularData
	DatatypeMusicalNotation

	DatatypeMonolingualText

	// entity references
	DatatypeWikibaseItem
	DatatypeWikibaseLexeme
	DatatypeWikibaseProperty

	DatatypeQuantity
	DatatypeGlobeCoordinate
	DatatypeTime
)

var datatypeNames = map[Datatype]string{
	DatatypeString:           "string",
	DatatypeCommonsMedia:     "commonsMedia",
	DatatypeURL:              "url",
	DatatypeExternalID:       "external-id",
	DatatypeMath:             "math",
	DatatypeGeoShape:         "geo-shape",
	DatatypeTabularData:      "tabular-data",
	DatatypeMusicalNotation:  "musical-notation",
	DatatypeMonolingualText:  "monolingualtext",
	DatatypeWikibaseItem:     "wikibase-item",
	DatatypeWikibaseLexeme:   "wikibase-lexeme",
	DatatypeWikibaseProperty: "wikibase-property",
	DatatypeQuantity:         "quantity",
	DatatypeGlobeCoordinate:  "globe-coordinate",
	DatatypeTime:             "time",
}

var datatypesByName = func() map[string]Datatype {
	m := make(map[string]Datatype, len(datatypeNames))
	for d, name := range datatypeNames {
		m[name] = d
	}
	return m
}()

func (d Datatype) String() string {
	if name, ok := datatypeNames[d]; ok {
		return name
	}
	return "unknown"
}

// ParseDatatype resolves a datatype name. Legacy names written with spaces
// ("musical notation") are accepted. Unknown names yield DatatypeUnknown.
func ParseDatatype(name string) Datatype {
	name = strings.ReplaceAll(name, " ", "-")
	return datatypesByName[name]
}

// EntityType returns the entity type referenced by an entity datatype.
func (d Datatype) EntityType() (EntityType, bool) {
	switch d {
	case DatatypeWikibaseItem:
		return EntityItem, true
	case DatatypeWikibaseProperty:
		return EntityProperty, true
	case DatatypeWikibaseLexeme:
		return EntityLexeme, true
	default:
		return "", false
	}
}

// IsIdentity reports whether values of this datatype are passed through unchanged.
func (d Datatype) IsIdentity() bool {
	return d >= DatatypeString && d <= DatatypeMusicalNotation
}
