package cli

import (
	"strings"
	"unicode/utf8"
)

// markerEnds are the characters that may close a list marker ("1.", "2)", "3、").
const markerEnds = ".:)]>、．：）-"

// StripLeadingListMarker removes leading numbering or bullet from a line.
// Models often answer "1. Red" or "- Red" even when asked for a bare word.
func StripLeadingListMarker(s string) string {
	orig := s
	s = strings.TrimLeft(s, " ")
	for i := 0; i < 2; i++ {
		if len(s) == 0 {
			break
		}
		if idx := strings.IndexAny(s, markerEnds+" \t"); idx != -1 {
			_, size := utf8.DecodeRuneInString(s[idx:])
			if isListMarker(s[:idx+size]) {
				s = strings.TrimSpace(s[idx+size:])
				continue
			}
		}
		if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "*") || strings.HasPrefix(s, "+") {
			s = strings.TrimSpace(s[1:])
			continue
		}
		break
	}
	if s == "" {
		return orig
	}
	return s
}

func isListMarker(p string) bool {
	p = strings.TrimSpace(p)
	if p == "" || utf8.RuneCountInString(p) > 4 {
		return false
	}
	hasDigit := false
	for _, r := range p {
		if r >= '0' && r <= '9' {
			hasDigit = true
		}
	}
	return hasDigit && strings.ContainsAny(p, markerEnds)
}
