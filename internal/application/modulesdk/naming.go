package modulesdk

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jinzhu/inflection"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)

	kebabBoundary  = regexp.MustCompile(`([a-z])([A-Z])`)
	kebabSeparator = regexp.MustCompile(`[\s_]+`)
)

// Pluralize returns the English plural of word ("Category" -> "Categories")
func Pluralize(word string) string {
	if word == "" {
		return ""
	}
	return inflection.Plural(word)
}

// UpperFirst upper-cases the first character of s and keeps the rest as is
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return upper.String(string(r)) + s[size:]
}

// LowerFirst lower-cases the first character of s and keeps the rest as is
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return lower.String(string(r)) + s[size:]
}

// KebabCase converts "ProductVariant" or "product_variant" to "product-variant"
func KebabCase(s string) string {
	s = kebabBoundary.ReplaceAllString(s, "$1-$2")
	s = kebabSeparator.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}
