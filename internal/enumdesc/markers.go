package enumdesc

import "regexp"

var markerRe = regexp.MustCompile(`[0-9]+`)

// LocateMarkers returns the byte offset of every maximal run of ASCII digits
// in s, left to right.
func LocateMarkers(s string) []int {
	locs := markerRe.FindAllStringIndex(s, -1)
	out := make([]int, 0, len(locs))
	for _, loc := range locs {
		out = append(out, loc[0])
	}
	return out
}
