// Package normalize folds text for accent- and case-insensitive comparison.
package normalize

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks is the Combining Diacritical Marks block, U+0300 to U+036F.
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// stripMarks holds no state between calls, so it is shared.
var stripMarks = runes.Remove(runes.In(combiningMarks))

// Normalize returns the folded form of v. nil folds to the empty string and
// non-string values are folded through their textual form (see Coerce).
func Normalize(v any) string {
	return String(Coerce(v))
}

// String decomposes s (NFD), drops combining diacritical marks and lower-cases
// what is left. It is idempotent.
func String(s string) string {
	if s == "" {
		return ""
	}
	if isASCII(s) {
		return strings.ToLower(s)
	}

	decomposed := norm.NFD.String(s)
	stripped, _, err := transform.String(stripMarks, decomposed)
	if err != nil {
		stripped = decomposed
	}
	return strings.ToLower(stripped)
}

// Coerce converts v to the text that Normalize folds.
func Coerce(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// Contains reports whether the folded haystack contains the folded needle.
func Contains(haystack, needle string) bool {
	return strings.Contains(String(haystack), String(needle))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
