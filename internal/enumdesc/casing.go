package enumdesc

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultIdentifier drops all whitespace from s, splits the rest into words
// at '_' and '-', uppercases the first letter of each word and joins them
// ("light_red" -> "LightRed", "HTTPServer" stays as is).
func DefaultIdentifier(s string) string {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	words := strings.FieldsFunc(compact, func(r rune) bool { return r == '_' || r == '-' })
	var b strings.Builder
	b.Grow(len(compact))
	for _, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(w[size:])
	}
	return b.String()
}
