// Package ring implements normalization and validation of bird ring codes.
//
// A ring code is two letters, two digits, an optional single letter, then
// four digits (e.g. GB24A1234 or NL241234). Codes are stored normalized:
// uppercase with all whitespace removed.
package ring

import (
	"regexp"
	"strings"
	"unicode"
)

var ringPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z]?[0-9]{4}$`)

// Normalize uppercases the input and strips all whitespace. It is idempotent.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// IsValid reports whether s, as given, is a well-formed ring code.
// Callers normalize first; a raw user string with spaces or lowercase
// letters is not valid until normalized.
func IsValid(s string) bool {
	return ringPattern.MatchString(s)
}
