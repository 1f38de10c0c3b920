package enumdesc

// IsChinese reports whether s is non-empty and made only of CJK Unified
// Ideographs (U+4E00..U+9FFF).
func IsChinese(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 0x4e00 || r > 0x9fff {
			return false
		}
	}
	return true
}
