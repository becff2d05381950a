// pkg/wikibase/commons.go
package wikibase

import (
	"net/url"
	"strconv"
	"strings"
)

const commonsFilePathBase = "https://commons.wikimedia.org/wiki/Special:FilePath/"

// ImageURL builds a Wikimedia Commons file-path URL for a commonsMedia value.
// width <= 0 omits the width parameter.
func ImageURL(filename string, width int) string {
	u := commonsFilePathBase + escapeComponent(filename)
	if width > 0 {
		u += "?width=" + strconv.Itoa(width)
	}
	return u
}

// componentUnescaper restores the marks encodeURIComponent leaves as is.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeComponent escapes like encodeURIComponent: letters, digits and
// -_.!~*'() are kept, spaces become %20.
func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
