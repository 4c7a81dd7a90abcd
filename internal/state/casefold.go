package state

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upper = cases.Upper(language.Und)
var lower = cases.Lower(language.Und)

// toggleCaseUTF8 flips the case of every letter in s: uppercase
// becomes lowercase and vice versa, using golang.org/x/text/cases so
// the transform is Unicode-aware rather than ASCII-only.
func toggleCaseUTF8(s []byte) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range string(s) {
		switch {
		case unicode.IsUpper(r):
			b.WriteString(lower.String(string(r)))
		case unicode.IsLower(r):
			b.WriteString(upper.String(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
