package enumdesc

import (
	"strings"
	"unicode/utf8"
)

const (
	// leadingPunct may open a segment right after its marker ("1、红色", "2. green").
	leadingPunct = ".．·、。，,"
	// trailingPunct may close a segment before the next marker.
	trailingPunct = leadingPunct + ";；"
)

// Sanitize cleans a raw segment into a label: trims whitespace, drops a
// single leading separator, and cuts everything from the last separator on.
func Sanitize(segment string) string {
	s := strings.TrimSpace(segment)
	if r, size := utf8.DecodeRuneInString(s); size > 0 && strings.ContainsRune(leadingPunct, r) {
		s = s[size:]
	}
	if i := strings.LastIndexAny(s, trailingPunct); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
