// pkg/wikibase/ids.go
package wikibase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ---- PATTERNS ----

var (
	numericIDPattern  = regexp.MustCompile(`^[1-9][0-9]*$`)
	entityIDPattern   = regexp.MustCompile(`^[QPL][1-9][0-9]*$`)
	itemIDPattern     = regexp.MustCompile(`^Q[1-9][0-9]*$`)
	propertyIDPattern = regexp.MustCompile(`^P[1-9][0-9]*$`)
	lexemeIDPattern   = regexp.MustCompile(`^L[1-9][0-9]*$`)
	revisionIDPattern = regexp.MustCompile(`^[0-9]+$`)
)

// canonical 8-4-4-4-12 form only; uuid.Parse alone also accepts urn and brace forms
const uuidLen = 36

// InvalidEntityIDError is returned when an entity id is required but the
// input does not look like one.
type InvalidEntityIDError struct {
	ID string
}

func (e *InvalidEntityIDError) Error() string {
	return fmt.Sprintf("invalid entity id: %q", e.ID)
}

// ---- PREDICATES ----

// IsNumericID reports whether s is a positive integer without leading zeros.
func IsNumericID(s string) bool { return numericIDPattern.MatchString(s) }

// IsEntityID reports whether s is an item, property or lexeme id.
func IsEntityID(s string) bool { return entityIDPattern.MatchString(s) }

func IsItemID(s string) bool     { return itemIDPattern.MatchString(s) }
func IsPropertyID(s string) bool { return propertyIDPattern.MatchString(s) }
func IsLexemeID(s string) bool   { return lexemeIDPattern.MatchString(s) }

// IsRevisionID reports whether s is made of digits only.
func IsRevisionID(s string) bool { return revisionIDPattern.MatchString(s) }

// IsGUID reports whether s is a statement id of the form <entity-id>$<uuid>.
// The check is case-insensitive.
func IsGUID(s string) bool {
	entity, u, ok := strings.Cut(s, "$")
	if !ok {
		return false
	}
	if !IsEntityID(strings.ToUpper(entity)) {
		return false
	}
	if len(u) != uuidLen {
		return false
	}
	_, err := uuid.Parse(u)
	return err == nil
}

// IsEntityPageTitle reports whether title names an entity page.
// "Property:P31" and "Lexeme:L1" are checked against their namespace;
// a title without namespace must be a bare item id.
func IsEntityPageTitle(title string) bool {
	if title == "" {
		return false
	}

	parts := strings.Split(title, ":")
	if len(parts) >= 2 && parts[0] != "" && parts[1] != "" {
		t, ok := EntityTypeFromNamespace(parts[0])
		if !ok {
			return false
		}
		return t.IsID(parts[1])
	}

	return IsItemID(parts[0])
}

// GetNumericID strips the entity letter from an item or property id.
// Lexeme ids are returned unchanged: only Q and P are stripped.
func GetNumericID(id string) (string, error) {
	t, ok := EntityTypeOf(id)
	if !ok {
		return "", &InvalidEntityIDError{ID: id}
	}

	if t == EntityLexeme {
		return id, nil
	}
	return id[1:], nil
}

// ---- CLASSIFICATION ----

// IDKind is the kind of identifier recognized by Classify.
type IDKind string

const (
	KindItem      IDKind = "item"
	KindProperty  IDKind = "property"
	KindLexeme    IDKind = "lexeme"
	KindGUID      IDKind = "guid"
	KindPageTitle IDKind = "page-title"
	KindRevision  IDKind = "revision"
	KindInvalid   IDKind = "invalid"
)

// Classify returns the first kind s matches, in the order listed above.
func Classify(s string) IDKind {
	switch {
	case IsItemID(s):
		return KindItem
	case IsPropertyID(s):
		return KindProperty
	case IsLexemeID(s):
		return KindLexeme
	case IsGUID(s):
		return KindGUID
	case IsEntityPageTitle(s):
		return KindPageTitle
	case IsRevisionID(s):
		return KindRevision
	default:
		return KindInvalid
	}
}
