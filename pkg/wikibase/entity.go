// pkg/wikibase/entity.go
package wikibase

// EntityType is the "entity-type" tag found in entity reference payloads.
type EntityType string

const (
	EntityItem     EntityType = "item"
	EntityProperty EntityType = "property"
	EntityLexeme   EntityType = "lexeme"
)

// Letter returns the id prefix letter, or "" for unknown types.
func (t EntityType) Letter() string {
	switch t {
	case EntityItem:
		return "Q"
	case EntityProperty:
		return "P"
	case EntityLexeme:
		return "L"
	default:
		return ""
	}
}

// IsID reports whether id is a valid id for this entity type.
func (t EntityType) IsID(id string) bool {
	switch t {
	case EntityItem:
		return IsItemID(id)
	case EntityProperty:
		return IsPropertyID(id)
	case EntityLexeme:
		return IsLexemeID(id)
	default:
		return false
	}
}

// EntityTypeFromNamespace maps a page namespace ("Item", "Property",
// "Lexeme") to its entity type.
func EntityTypeFromNamespace(ns string) (EntityType, bool) {
	switch ns {
	case "Item":
		return EntityItem, true
	case "Property":
		return EntityProperty, true
	case "Lexeme":
		return EntityLexeme, true
	default:
		return "", false
	}
}

// EntityTypeOf returns the type of a valid entity id.
func EntityTypeOf(id string) (EntityType, bool) {
	if !IsEntityID(id) {
		return "", false
	}
	switch id[0] {
	case 'Q':
		return EntityItem, true
	case 'P':
		return EntityProperty, true
	default:
		return EntityLexeme, true
	}
}
