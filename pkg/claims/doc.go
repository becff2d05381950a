// pkg/claims/doc.go

// Package claims normalizes Wikibase claim datavalues into canonical values.
//
// A datavalue is interpreted according to the datatype of its claim:
//
//	string, url, external-id, ...   -> passed through
//	monolingualtext                 -> text, or {language, text}
//	wikibase-item/property/lexeme   -> entity id, optionally prefixed
//	quantity                        -> amount, or {amount, unit, bounds}
//	globe-coordinate                -> [lat, lng], or the full record
//	time                            -> converted by the selected time converter
//
// Options.KeepRichValues selects the annotated variant of each value kind.
// Parse is a pure function of its arguments and is safe for concurrent use.
package claims
